package types

// Event is a single generated city event. The JSON names match the schema
// requested from the model, so the same struct decodes the model output and
// encodes the API response.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	BookingURL  string `json:"bookingUrl"`
}

// CityEventsResponse is returned by the stateless events endpoint.
type CityEventsResponse struct {
	City   City    `json:"city"`
	Events []Event `json:"events"`
}
