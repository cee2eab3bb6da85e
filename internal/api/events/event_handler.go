package events

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-saudi-city-events/internal/api"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/city"
	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

type HandlerImpl struct {
	logger      *slog.Logger
	cityService city.Service
	client      FetchClient
}

func NewHandlerImpl(cityService city.Service, client FetchClient, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:      logger,
		cityService: cityService,
		client:      client,
	}
}

// GetCityEvents godoc
// @Summary      Generate events for a city
// @Description  Asks the model for upcoming events in the city. Failures yield an empty list, never an error.
// @Tags         events
// @Produce      json
// @Param        cityID  path      string  true  "City slug, e.g. alula"
// @Success      200     {object}  types.CityEventsResponse
// @Failure      404     {object}  map[string]interface{}
// @Router       /cities/{cityID}/events [get]
func (h *HandlerImpl) GetCityEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("EventsHandler").Start(r.Context(), "GetCityEvents")
	defer span.End()

	cityID := chi.URLParam(r, "cityID")
	c, err := h.cityService.GetCityByID(ctx, cityID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "City lookup failed")
		if errors.Is(err, city.ErrCityNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "City not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to resolve city", slog.String("city_id", cityID), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to resolve city")
		return
	}

	events := h.client.FetchEventsForCity(ctx, c.Name)
	api.WriteJSONResponse(w, r, http.StatusOK, types.CityEventsResponse{
		City:   *c,
		Events: events,
	})
}
