package city

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-saudi-city-events/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewCityHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GetAllCities godoc
// @Summary      List catalog cities
// @Description  Returns the fixed catalog of supported cities in display order.
// @Tags         cities
// @Produce      json
// @Success      200  {array}   types.City
// @Failure      500  {object}  map[string]interface{}
// @Router       /cities [get]
func (h *Handler) GetAllCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetAllCities")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetAllCities"))

	cities, err := h.service.GetAllCities(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to retrieve cities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve cities")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, cities)
	l.DebugContext(ctx, "Returned cities", slog.Int("count", len(cities)))
	span.SetStatus(codes.Ok, "Cities returned successfully")
}

// GetCity godoc
// @Summary      Get a catalog city
// @Tags         cities
// @Produce      json
// @Param        cityID  path      string  true  "City slug, e.g. riyadh"
// @Success      200     {object}  types.City
// @Failure      404     {object}  map[string]interface{}
// @Router       /cities/{cityID} [get]
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CityHandler").Start(r.Context(), "GetCity")
	defer span.End()

	cityID := chi.URLParam(r, "cityID")
	c, err := h.service.GetCityByID(ctx, cityID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrCityNotFound) {
			span.SetStatus(codes.Error, "City not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "City not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to retrieve city", slog.String("city_id", cityID), slog.Any("error", err))
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve city")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, c)
}
