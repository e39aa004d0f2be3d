package models

// Pedal represents a single effects pedal in the static catalog.
// Width and Height are the physical footprint in millimeters.
type Pedal struct {
	ID       string  `json:"id"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Category string  `json:"category"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	ImageURL string  `json:"imageUrl"`
	Color    string  `json:"color"` // display accent, hex string
}

// Category describes one entry in the fixed category filter list.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
