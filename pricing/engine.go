package pricing

import (
	"fmt"
	"math"
)

// Tier options for custom boards.
const (
	TierSingle = "1-tier"
	TierDouble = "2-tier"
)

// BaseRatePerSqCm is the EGP rate applied to the board area.
// TwoTierMultiplier is the flat premium for the elevated second row, applied
// to the area-derived base and nothing else.
const (
	BaseRatePerSqCm   = 1.5
	TwoTierMultiplier = 1.4
)

// Dimension limits accepted by the custom builder, in centimeters.
const (
	MinWidth  = 20
	MaxWidth  = 100
	MinHeight = 10
	MaxHeight = 60
)

// CustomConfig is a custom pedalboard configuration. WoodFinish is carried for
// display only; it never affects the computed price.
type CustomConfig struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Tier       string  `json:"tier"`
	WoodFinish string  `json:"woodFinish"`
}

// CustomPrice computes the price of a custom board in whole EGP.
// Rounding happens once, at the end, never at intermediate steps.
func CustomPrice(cfg CustomConfig) int {
	price := cfg.Width * cfg.Height * BaseRatePerSqCm
	if cfg.Tier == TierDouble {
		price *= TwoTierMultiplier
	}
	return int(math.Round(price))
}

// ValidateConfig checks that a configuration is within the builder's limits.
func ValidateConfig(cfg CustomConfig) error {
	if cfg.Width < MinWidth || cfg.Width > MaxWidth {
		return fmt.Errorf("width must be between %d and %d cm", MinWidth, MaxWidth)
	}
	if cfg.Height < MinHeight || cfg.Height > MaxHeight {
		return fmt.Errorf("height must be between %d and %d cm", MinHeight, MaxHeight)
	}
	if cfg.Tier != TierSingle && cfg.Tier != TierDouble {
		return fmt.Errorf("tier must be %q or %q", TierSingle, TierDouble)
	}
	return nil
}
