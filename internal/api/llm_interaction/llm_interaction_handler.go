package llmInteraction

import (
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-saudi-city-events/internal/api"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type HandlerImpl struct {
	repo   Repository
	logger *slog.Logger
}

func NewLLMHandlerImpl(repo Repository, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		repo:   repo,
		logger: logger,
	}
}

// GetRecentInteractions godoc
// @Summary      Recent model calls
// @Description  Audit log of event generation calls, newest first. Empty when no database is configured.
// @Tags         llm
// @Produce      json
// @Param        limit  query     int  false  "Max rows (1-100)"
// @Success      200    {array}   types.LlmInteraction
// @Failure      400    {object}  map[string]interface{}
// @Router       /llm-interactions [get]
func (h *HandlerImpl) GetRecentInteractions(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("LlmInteractionHandler").Start(r.Context(), "GetRecentInteractions")
	defer span.End()

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			span.SetStatus(codes.Error, "Invalid limit")
			api.ErrorResponse(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = n
	}
	span.SetAttributes(attribute.Int("limit", limit))

	interactions, err := h.repo.GetRecentInteractions(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch llm interactions", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch interactions")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, interactions)
}
