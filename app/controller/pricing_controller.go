package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"monkey-boards/models"
	"monkey-boards/pricing"
)

// PricingController quotes custom board prices for the builder page.
type PricingController struct{}

// NewPricingController creates a new PricingController.
func NewPricingController() *PricingController {
	return &PricingController{}
}

// CustomQuoteResponse is the body returned by QuoteCustom.
type CustomQuoteResponse struct {
	Price int `json:"price"`
}

// QuoteCustom handles POST /api/custom/price
// Example request:
// { "width": 45, "height": 20, "tier": "2-tier", "woodFinish": "walnut" }
// Example response:
// { "price": 1890 }
func (c *PricingController) QuoteCustom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cfg pricing.CustomConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Printf("❌ QuoteCustom: Failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid configuration",
			Details: []string{"Request body is not valid JSON"},
		})
		return
	}

	if err := pricing.ValidateConfig(cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid configuration",
			Details: []string{err.Error()},
		})
		return
	}

	writeJSON(w, http.StatusOK, CustomQuoteResponse{Price: pricing.CustomPrice(cfg)})
}
