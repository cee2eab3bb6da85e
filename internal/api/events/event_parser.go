package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-saudi-city-events/internal/types"
)

var ErrEmptyResponse = errors.New("model returned no text")

func cleanJSONResponse(txt string) string {
	txt = strings.TrimSpace(txt)
	txt = strings.TrimPrefix(txt, "```json")
	txt = strings.TrimPrefix(txt, "```")
	txt = strings.TrimSuffix(txt, "```")
	return strings.TrimSpace(txt)
}

// parseEvents is the only place model text becomes events. It never panics;
// callers decide what a failure means. The returned slice is never nil on
// success and keeps the model's order.
func parseEvents(txt string) ([]types.Event, error) {
	jsonStr := cleanJSONResponse(txt)
	if jsonStr == "" {
		return nil, ErrEmptyResponse
	}

	var events []types.Event
	if err := json.Unmarshal([]byte(jsonStr), &events); err != nil {
		return nil, fmt.Errorf("failed to parse events JSON: %w", err)
	}
	if events == nil {
		events = []types.Event{}
	}
	return events, nil
}
