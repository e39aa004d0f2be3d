package models

// CustomDimensions holds the width/height (cm) of a made-to-order board.
type CustomDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CartItem is one line in the shopping cart. Price is the unit price in EGP.
// Custom lines carry their dimensions and never merge with other lines.
type CartItem struct {
	ID               string            `json:"id"`
	ProductID        string            `json:"productId"`
	ProductName      string            `json:"productName"`
	Size             string            `json:"size"`
	Tier             string            `json:"tier"`
	WoodFinish       string            `json:"woodFinish"`
	Color            string            `json:"color"`
	Quantity         int               `json:"quantity"`
	Price            int               `json:"price"`
	Image            string            `json:"image"`
	IsCustom         bool              `json:"isCustom"`
	CustomDimensions *CustomDimensions `json:"customDimensions,omitempty"`
}
