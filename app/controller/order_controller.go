package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"monkey-boards/metrics"
	"monkey-boards/models"
	"monkey-boards/service"
)

// OrderController handles order intake and the health check.
type OrderController struct {
	sheet service.OrderSheetInterface
}

// NewOrderController creates a new OrderController.
func NewOrderController(sheet service.OrderSheetInterface) *OrderController {
	return &OrderController{sheet: sheet}
}

// Health handles GET /api/health
func (c *OrderController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// validateOrder collects field-level validation messages. An empty slice
// means the order is acceptable.
func validateOrder(req *models.OrderRequest) []string {
	var details []string

	if len(strings.TrimSpace(req.CustomerName)) < 2 {
		details = append(details, "Name must be at least 2 characters")
	}
	if len(strings.TrimSpace(req.Phone)) < 10 {
		details = append(details, "Please enter a valid phone number")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		details = append(details, "Please enter a valid email address")
	}
	if len(strings.TrimSpace(req.Address)) < 10 {
		details = append(details, "Please enter your full address")
	}
	if len(strings.TrimSpace(req.City)) < 2 {
		details = append(details, "Please enter your city")
	}
	if req.PaymentMethod != "cod" && req.PaymentMethod != "instapay" {
		details = append(details, "Payment method must be cod or instapay")
	}
	if len(req.Items) == 0 {
		details = append(details, "Order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			details = append(details, "Item quantities must be at least 1")
			break
		}
	}
	for _, item := range req.Items {
		if item.Price < 0 {
			details = append(details, "Item prices must not be negative")
			break
		}
	}
	if req.TotalAmount < 0 {
		details = append(details, "Total amount must not be negative")
	}

	return details
}

// SubmitOrder handles POST /api/orders
// Example response:
// {
//   "success": true,
//   "orderId": "MB-LX3K9P2A",
//   "message": "Order placed successfully"
// }
func (c *OrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SubmitOrder: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ SubmitOrder: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SubmitOrder: Failed to decode request body: %v", err)
		metrics.OrderFailures.WithLabelValues("validation").Inc()
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid order data",
			Details: []string{"Request body is not valid JSON"},
		})
		return
	}

	if details := validateOrder(&req); len(details) > 0 {
		log.Printf("❌ SubmitOrder: Validation failed: %s", strings.Join(details, "; "))
		metrics.OrderFailures.WithLabelValues("validation").Inc()
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid order data",
			Details: details,
		})
		return
	}

	orderID, err := c.sheet.AppendOrder(r.Context(), &req)
	if err != nil {
		log.Printf("❌ SubmitOrder: Error recording order: %v", err)
		metrics.OrderFailures.WithLabelValues("sheet").Inc()
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to create order",
			Message: err.Error(),
		})
		return
	}

	log.Printf("✅ SubmitOrder: Successfully recorded order %s", orderID)
	metrics.OrdersSubmitted.Inc()

	writeJSON(w, http.StatusCreated, models.OrderResponse{
		Success: true,
		OrderID: orderID,
		Message: "Order placed successfully",
	})
}

// writeJSON encodes a response body with the right headers.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}
