package types

import (
	"time"

	"github.com/google/uuid"
)

// LlmInteraction is the audit record of one call to the generative model.
// Only metadata is kept; generated events are never stored.
type LlmInteraction struct {
	ID         uuid.UUID `json:"id"`
	CityName   string    `json:"city_name"`
	Prompt     string    `json:"prompt"`
	ModelUsed  string    `json:"model_used"`
	LatencyMs  int       `json:"latency_ms"`
	EventCount int       `json:"event_count"`
	Succeeded  bool      `json:"succeeded"`
	ErrorText  string    `json:"error_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
