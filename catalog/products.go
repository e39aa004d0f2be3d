package catalog

import "monkey-boards/models"

// Products is the fixed set of pre-configured boards sold as-is.
var Products = []models.Product{
	{
		ID:          "compact-pedalboard",
		Name:        "Compact Pedalboard",
		Size:        "small",
		Description: "Perfect for 3-4 pedals. Ideal for minimalist setups.",
		LongDescription: "The Compact Pedalboard is handcrafted for musicians who value quality over quantity. " +
			"Built with premium hardwood, this board provides the perfect foundation for your essential pedals. " +
			"The angled design ensures optimal ergonomics while performing, and the durable construction means " +
			"this board will last for years of gigging and studio sessions.",
		BasePrice: 1499,
		Images:    []string{"/assets/products/small-walnut.png", "/assets/products/wood-grain-detail.png"},
		Features: []string{
			"Handcrafted from premium hardwood",
			"Fits 3-4 standard-size pedals",
			"Dimensions: 30cm x 15cm",
			"Non-slip rubber feet",
			"Cable routing channels",
			"Lifetime warranty on craftsmanship",
		},
		Tier: "1-tier",
	},
	{
		ID:          "standard-pedalboard",
		Name:        "Standard Pedalboard",
		Size:        "medium",
		Description: "Fits 5-6 pedals. The most popular choice for working musicians.",
		LongDescription: "Our Standard Pedalboard is the go-to choice for professional musicians. With room for " +
			"5-6 pedals, it offers the perfect balance between portability and functionality. Each board is " +
			"individually crafted and sanded by hand, ensuring a flawless finish that showcases the natural " +
			"beauty of the wood grain.",
		BasePrice: 1999,
		Images:    []string{"/assets/products/medium-oak.png", "/assets/products/wood-grain-detail.png"},
		Features: []string{
			"Handcrafted from premium hardwood",
			"Fits 5-6 standard-size pedals",
			"Dimensions: 45cm x 20cm",
			"Non-slip rubber feet",
			"Integrated cable management",
			"Power supply mounting area",
			"Lifetime warranty on craftsmanship",
		},
		Tier: "1-tier",
	},
	{
		ID:          "pro-pedalboard",
		Name:        "Pro Pedalboard",
		Size:        "large",
		Description: "Full rig with 8-10 pedals. For the serious tone chaser.",
		LongDescription: "The Pro Pedalboard is our flagship model, designed for musicians with extensive rigs. " +
			"Featuring a two-tier design, this board maximizes space efficiency while maintaining easy access " +
			"to all your pedals. The elevated rear section provides optimal visibility and ergonomics during " +
			"performance.",
		BasePrice: 2799,
		Images:    []string{"/assets/products/large-maple-two-tier.png", "/assets/products/wood-grain-detail.png"},
		Features: []string{
			"Handcrafted from premium hardwood",
			"Two-tier design for maximum capacity",
			"Fits 8-10 standard-size pedals",
			"Dimensions: 60cm x 30cm",
			"Non-slip rubber feet",
			"Advanced cable management system",
			"Dedicated power supply area",
			"Reinforced construction for touring",
			"Lifetime warranty on craftsmanship",
		},
		Tier: "2-tier",
	},
}

// WoodFinishes is the fixed set of finish options.
var WoodFinishes = []models.WoodFinish{
	{ID: "walnut", Name: "Dark Walnut", Color: "#4a3728"},
	{ID: "ebony", Name: "Ebony", Color: "#1a1a1a"},
	{ID: "natural", Name: "Natural Wood", Color: "#d4a574"},
}

// TierOptions are the structural configurations offered for every board.
var TierOptions = []string{"1-tier", "2-tier"}

// ProductByID returns the pre-configured product with the given id.
func ProductByID(id string) (models.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ProductsBySize returns the pre-configured products with the given size label.
func ProductsBySize(size string) []models.Product {
	var out []models.Product
	for _, p := range Products {
		if p.Size == size {
			out = append(out, p)
		}
	}
	return out
}

// WoodFinishByID returns the finish option with the given id.
func WoodFinishByID(id string) (models.WoodFinish, bool) {
	for _, f := range WoodFinishes {
		if f.ID == id {
			return f, true
		}
	}
	return models.WoodFinish{}, false
}
