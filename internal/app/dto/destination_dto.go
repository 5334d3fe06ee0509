package dto

// Destination kinds as served to the search combobox.
const (
	DestinationKindCountry = "Country"
	DestinationKindCity    = "City"
)

// Destination is one flattened entry of the two-level country/city taxonomy.
// IDs are prefixed with the kind so countries and cities stay unique within
// the combined list; country entries carry their own name as CountryName.
type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	CountryName string `json:"countryName"`
}
