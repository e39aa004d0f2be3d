package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"monkey-boards/models"
)

type fakeOrderSheet struct {
	err  error
	last *models.OrderRequest
}

func (f *fakeOrderSheet) AppendOrder(_ context.Context, order *models.OrderRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.last = order
	return "MB-TEST", nil
}

func validOrder() models.OrderRequest {
	return models.OrderRequest{
		CustomerName:  "Omar Hassan",
		Phone:         "+201001234567",
		Email:         "omar@example.com",
		Address:       "12 Tahrir Street, Downtown",
		City:          "Cairo",
		PaymentMethod: "cod",
		TotalAmount:   1999,
		Items: []models.CartItem{
			{ID: "line-1", ProductID: "standard-pedalboard", ProductName: "Standard Pedalboard", Quantity: 1, Price: 1999},
		},
	}
}

func postOrder(t *testing.T, c *OrderController, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	c.SubmitOrder(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	c := NewOrderController(&fakeOrderSheet{})
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body models.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Timestamp == "" {
		t.Fatalf("unexpected health body %+v", body)
	}
}

func TestSubmitOrderSuccess(t *testing.T) {
	sheet := &fakeOrderSheet{}
	c := NewOrderController(sheet)

	rec := postOrder(t, c, validOrder())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var body models.OrderResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.OrderID != "MB-TEST" || body.Message != "Order placed successfully" {
		t.Fatalf("unexpected response %+v", body)
	}
	if sheet.last == nil || sheet.last.CustomerName != "Omar Hassan" {
		t.Fatalf("order never reached the sheet: %+v", sheet.last)
	}
}

func TestSubmitOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.OrderRequest)
		detail string
	}{
		{"short name", func(o *models.OrderRequest) { o.CustomerName = "A" }, "Name must be at least 2 characters"},
		{"short phone", func(o *models.OrderRequest) { o.Phone = "12345" }, "Please enter a valid phone number"},
		{"bad email", func(o *models.OrderRequest) { o.Email = "not-an-email" }, "Please enter a valid email address"},
		{"short address", func(o *models.OrderRequest) { o.Address = "nowhere" }, "Please enter your full address"},
		{"missing city", func(o *models.OrderRequest) { o.City = "" }, "Please enter your city"},
		{"bad payment", func(o *models.OrderRequest) { o.PaymentMethod = "bitcoin" }, "Payment method must be cod or instapay"},
		{"no items", func(o *models.OrderRequest) { o.Items = nil }, "Order must contain at least one item"},
		{"zero quantity", func(o *models.OrderRequest) { o.Items[0].Quantity = 0 }, "Item quantities must be at least 1"},
		{"negative price", func(o *models.OrderRequest) { o.Items[0].Price = -5 }, "Item prices must not be negative"},
		{"negative total", func(o *models.OrderRequest) { o.TotalAmount = -1 }, "Total amount must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := &fakeOrderSheet{}
			c := NewOrderController(sheet)

			order := validOrder()
			tt.mutate(&order)
			rec := postOrder(t, c, order)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
			}
			var body models.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != "Invalid order data" {
				t.Fatalf("error = %q", body.Error)
			}
			found := false
			for _, d := range body.Details {
				if d == tt.detail {
					found = true
				}
			}
			if !found {
				t.Fatalf("details %v missing %q", body.Details, tt.detail)
			}
			if sheet.last != nil {
				t.Fatalf("invalid order reached the sheet")
			}
		})
	}
}

func TestSubmitOrderMalformedBody(t *testing.T) {
	c := NewOrderController(&fakeOrderSheet{})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	c.SubmitOrder(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSubmitOrderSheetFailure(t *testing.T) {
	c := NewOrderController(&fakeOrderSheet{err: errors.New("quota exceeded")})

	rec := postOrder(t, c, validOrder())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var body models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Failed to create order" || !strings.Contains(body.Message, "quota exceeded") {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestSubmitOrderRejectsGet(t *testing.T) {
	c := NewOrderController(&fakeOrderSheet{})
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	c.SubmitOrder(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}
