package types

import (
	"encoding/json"
	"fmt"
)

// ViewState is the screen the presentation layer should render.
type ViewState int

const (
	ViewStateGrid ViewState = iota
	ViewStateCityDetail
)

func (v ViewState) String() string {
	switch v {
	case ViewStateGrid:
		return "GRID"
	case ViewStateCityDetail:
		return "CITY_DETAIL"
	default:
		return fmt.Sprintf("ViewState(%d)", int(v))
	}
}

func (v ViewState) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *ViewState) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "GRID":
		*v = ViewStateGrid
	case "CITY_DETAIL":
		*v = ViewStateCityDetail
	default:
		return fmt.Errorf("unknown view state %q", s)
	}
	return nil
}

// ViewSnapshot is a point-in-time copy of a session's view state handed to
// the presentation boundary.
type ViewSnapshot struct {
	SessionID     string    `json:"session_id"`
	State         ViewState `json:"state"`
	SelectedCity  *City     `json:"selected_city"`
	Events        []Event   `json:"events"`
	Loading       bool      `json:"loading"`
	SelectedEvent *Event    `json:"selected_event"`
}

// SelectCityRequest is the body of POST /sessions/{sessionID}/city.
type SelectCityRequest struct {
	CityID string `json:"city_id"`
}

// SelectEventRequest is the body of POST /sessions/{sessionID}/event.
type SelectEventRequest struct {
	EventID string `json:"event_id"`
}
