package models

// OrderRequest is the body of POST /api/orders.
type OrderRequest struct {
	CustomerName  string     `json:"customerName"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	Notes         string     `json:"notes,omitempty"`
	PaymentMethod string     `json:"paymentMethod"`
	Items         []CartItem `json:"items"`
	TotalAmount   int        `json:"totalAmount"`
}

// OrderResponse is returned on successful order submission.
type OrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// ErrorResponse is the error body for order submission failures.
// Details is set for validation errors, Message for downstream failures.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	Message string   `json:"message,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
