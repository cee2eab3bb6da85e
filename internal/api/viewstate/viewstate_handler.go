package viewstate

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-saudi-city-events/internal/api"
	"github.com/FACorreiaa/go-saudi-city-events/internal/api/city"
	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
	}
}

func (h *HandlerImpl) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, "Session not found")
	case errors.Is(err, city.ErrCityNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, "City not found")
	case errors.Is(err, ErrEventNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, "Event not found")
	default:
		h.logger.ErrorContext(r.Context(), "View state operation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateSession godoc
// @Summary      Start a session
// @Description  Creates a view-state session on the city grid.
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  types.ViewSnapshot
// @Router       /sessions [post]
func (h *HandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	snap := h.service.CreateSession(r.Context())
	api.WriteJSONResponse(w, r, http.StatusCreated, snap)
}

// GetSession godoc
// @Summary      Current view state
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  types.ViewSnapshot
// @Failure      404        {object}  map[string]interface{}
// @Router       /sessions/{sessionID} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, snap)
}

// DeleteSession godoc
// @Summary      End a session
// @Tags         sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]interface{}
// @Router       /sessions/{sessionID} [delete]
func (h *HandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// SelectCity godoc
// @Summary      Select a city
// @Description  Switches to the city detail screen and starts generating events. Responds immediately with loading=true unless wait=true, in which case it responds once the events have settled.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                   true   "Session ID"
// @Param        wait       query     bool                     false  "Block until the fetch settles"
// @Param        request    body      types.SelectCityRequest  true   "City to select"
// @Success      200        {object}  types.ViewSnapshot
// @Success      202        {object}  types.ViewSnapshot
// @Failure      400        {object}  map[string]interface{}
// @Failure      404        {object}  map[string]interface{}
// @Router       /sessions/{sessionID}/city [post]
func (h *HandlerImpl) SelectCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ViewStateHandler").Start(r.Context(), "SelectCity")
	defer span.End()

	var req types.SelectCityRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.CityID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "city_id is required")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	snap, done, err := h.service.SelectCity(ctx, sessionID, req.CityID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Select city failed")
		h.writeServiceError(w, r, err)
		return
	}

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		api.WriteJSONResponse(w, r, http.StatusAccepted, snap)
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
		return
	}
	snap, err = h.service.GetSession(ctx, sessionID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, snap)
}

// GoBack godoc
// @Summary      Back to the grid
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  types.ViewSnapshot
// @Failure      404        {object}  map[string]interface{}
// @Router       /sessions/{sessionID}/back [post]
func (h *HandlerImpl) GoBack(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.GoBack(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, snap)
}

// SelectEvent godoc
// @Summary      Open event detail
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                    true  "Session ID"
// @Param        request    body      types.SelectEventRequest  true  "Event to open"
// @Success      200        {object}  types.ViewSnapshot
// @Failure      400        {object}  map[string]interface{}
// @Failure      404        {object}  map[string]interface{}
// @Router       /sessions/{sessionID}/event [post]
func (h *HandlerImpl) SelectEvent(w http.ResponseWriter, r *http.Request) {
	var req types.SelectEventRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.EventID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "event_id is required")
		return
	}

	snap, err := h.service.SelectEvent(r.Context(), chi.URLParam(r, "sessionID"), req.EventID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, snap)
}

// CloseEventDetail godoc
// @Summary      Close event detail
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  types.ViewSnapshot
// @Failure      404        {object}  map[string]interface{}
// @Router       /sessions/{sessionID}/event [delete]
func (h *HandlerImpl) CloseEventDetail(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.CloseEventDetail(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, snap)
}
