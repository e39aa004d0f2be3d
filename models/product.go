package models

// Product is a pre-configured pedalboard sold as-is.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Size            string   `json:"size"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	BasePrice       int      `json:"basePrice"`
	Images          []string `json:"images"`
	Features        []string `json:"features"`
	Tier            string   `json:"tier"`
}

// WoodFinish is one of the finish options offered for every board.
// Color is the display swatch, hex string.
type WoodFinish struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
