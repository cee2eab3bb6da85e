package events

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geographicFilters pins a city to the projects the model may mention for it.
// Cities without an entry rely on the EXCLUSIVELY clause alone.
var geographicFilters = []struct {
	City string
	Hint string
}{
	{City: "RIYADH", Hint: "Only projects in Riyadh (Qiddiya, Boulevard, KAFD)."},
	{City: "JEDDAH", Hint: "Only projects in Jeddah (Red Sea, Yacht Club, Al-Balad)."},
	{City: "AL-ULA", Hint: "Only projects in Al-Ula (Hegra, Maraya)."},
	{City: "TABUK", Hint: "Only NEOM projects (Sindalah, Trojena)."},
}

var eventFields = []string{"id", "title", "description", "location", "date", "category", "bookingUrl"}

func getGeographicFilterBlock() string {
	var b strings.Builder
	for _, f := range geographicFilters {
		fmt.Fprintf(&b, "  - %s: %s\n", f.City, f.Hint)
	}
	return b.String()
}

func getCityEventsPrompt(cityName, timeWindow, bookingURL string) string {
	return fmt.Sprintf(`List 8 to 10 REAL, high-profile mega-project activities occurring EXCLUSIVELY in %s, Saudi Arabia for %s.

  GEOGRAPHIC FILTER:
%s
  UI STYLE:
  - Use brief, prestigious descriptions (max 60 words).
  - Ensure bookingUrl is EXACTLY: %s

  Format as JSON array.`, cityName, timeWindow, getGeographicFilterBlock(), bookingURL)
}

// getEventsResponseSchema is the machine-checkable shape sent with the prompt:
// an array of objects carrying the seven Event string fields, all required.
func getEventsResponseSchema() *genai.Schema {
	properties := make(map[string]*genai.Schema, len(eventFields))
	for _, f := range eventFields {
		properties[f] = &genai.Schema{Type: genai.TypeString}
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:             genai.TypeObject,
			Properties:       properties,
			Required:         append([]string(nil), eventFields...),
			PropertyOrdering: append([]string(nil), eventFields...),
		},
	}
}
