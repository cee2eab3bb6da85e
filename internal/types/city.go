package types

// City is one entry of the static catalog. Never mutated after startup.
type City struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name"`
	Description   string `json:"description"`
}
