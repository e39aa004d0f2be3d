package service

import (
	"context"

	"monkey-boards/models"
)

// OrderSheetInterface defines the contract for the order spreadsheet log.
type OrderSheetInterface interface {
	AppendOrder(ctx context.Context, order *models.OrderRequest) (string, error)
}
