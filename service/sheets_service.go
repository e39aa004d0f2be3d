package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"monkey-boards/models"
	"monkey-boards/utils"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const ordersSheetTitle = "Orders"

var orderSheetHeader = []interface{}{
	"Order ID",
	"Date",
	"Customer Name",
	"Email",
	"Phone",
	"Address",
	"City",
	"Payment Method",
	"Items",
	"Total Amount",
	"Status",
	"Notes",
	"Custom Specs",
	"Item Details",
}

// SheetsService appends submitted orders as rows to a Google spreadsheet.
type SheetsService struct {
	client *sheets.Service

	mu            sync.Mutex
	spreadsheetID string
}

// NewSheetsService creates a new SheetsService instance.
// credentialsPath should be the path to the Service Account JSON file.
func NewSheetsService(credentialsPath string) (*SheetsService, error) {
	ctx := context.Background()

	// option.WithCredentialsFile automatically handles Service Account authentication
	client, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsService{
		client:        client,
		spreadsheetID: os.Getenv("GOOGLE_SPREADSHEET_ID"),
	}, nil
}

// Ensure SheetsService implements OrderSheetInterface
var _ OrderSheetInterface = (*SheetsService)(nil)

// AppendOrder writes one row for the order and returns the generated order id.
func (s *SheetsService) AppendOrder(ctx context.Context, order *models.OrderRequest) (string, error) {
	spreadsheetID, err := s.ensureSpreadsheet(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()
	orderID := NewOrderID(now)
	row := BuildOrderRow(orderID, now, order)

	_, err = s.client.Spreadsheets.Values.
		Append(spreadsheetID, ordersSheetTitle+"!A:N", &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to append order row: %w", err)
	}

	log.Printf("✅ AppendOrder: Recorded order %s (%d items, total %s)",
		orderID, len(order.Items), utils.FormatEGP(int64(order.TotalAmount)))
	return orderID, nil
}

// ensureSpreadsheet resolves the target spreadsheet, creating one with a
// header row when GOOGLE_SPREADSHEET_ID is not configured.
func (s *SheetsService) ensureSpreadsheet(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spreadsheetID != "" {
		return s.spreadsheetID, nil
	}

	created, err := s.client.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: "Monkey Boards Orders"},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: ordersSheetTitle}},
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create orders spreadsheet: %w", err)
	}

	_, err = s.client.Spreadsheets.Values.
		Update(created.SpreadsheetId, ordersSheetTitle+"!A1:N1", &sheets.ValueRange{
			Values: [][]interface{}{orderSheetHeader},
		}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	log.Printf("✓ Created new orders spreadsheet with ID: %s", created.SpreadsheetId)
	s.spreadsheetID = created.SpreadsheetId
	return s.spreadsheetID, nil
}

// NewOrderID generates an order id of the shape MB-<base36 ms timestamp>.
func NewOrderID(t time.Time) string {
	return "MB-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// BuildOrderRow flattens an order into the spreadsheet column layout.
func BuildOrderRow(orderID string, t time.Time, order *models.OrderRequest) []interface{} {
	summaries := make([]string, 0, len(order.Items))
	details := make([]string, 0, len(order.Items))
	var customSpecs []string

	for _, item := range order.Items {
		summaries = append(summaries, fmt.Sprintf("%s (%dx)", item.ProductName, item.Quantity))

		detail := fmt.Sprintf("%s: %s, %s, %s, %s, Qty: %d, Price: %d",
			item.ProductName, item.Size, item.Tier, item.WoodFinish, item.Color,
			item.Quantity, item.Price)
		if item.IsCustom && item.CustomDimensions != nil {
			detail += fmt.Sprintf(" [Custom: %gcm x %gcm]",
				item.CustomDimensions.Width, item.CustomDimensions.Height)
			customSpecs = append(customSpecs, fmt.Sprintf("%gcm x %gcm (%s)",
				item.CustomDimensions.Width, item.CustomDimensions.Height, item.Tier))
		}
		details = append(details, detail)
	}

	return []interface{}{
		orderID,
		t.UTC().Format(time.RFC3339),
		order.CustomerName,
		order.Email,
		order.Phone,
		order.Address,
		order.City,
		order.PaymentMethod,
		strings.Join(summaries, ", "),
		utils.FormatEGP(int64(order.TotalAmount)),
		"Pending",
		order.Notes,
		strings.Join(customSpecs, "; "),
		strings.Join(details, "; "),
	}
}
