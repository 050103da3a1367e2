// Package sheets appends analytics reports to a configured Google Sheet,
// backing the Export Report action on the analytics tab.
package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/dreamworld/wms-console/internal/config"
	"github.com/dreamworld/wms-console/internal/domain/models"
)

// Exporter defines the export operations supported by the Google Sheets
// adapter.
type Exporter interface {
	AppendReport(ctx context.Context, exportedAt time.Time, report models.AnalyticsReport) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets
// API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetRange    string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    cfg.ReportRange,
		logger:        logger,
	}, nil
}

// AppendReport appends one summary row per export: timestamp, window,
// revenue figures, fulfillment and the stock counts.
func (e *GoogleSheetExporter) AppendReport(ctx context.Context, exportedAt time.Time, report models.AnalyticsReport) error {
	if e.sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	row := []interface{}{
		exportedAt.Format(time.RFC3339),
		fmt.Sprintf("%dd", report.WindowDays),
		report.TotalRevenue.StringFixed(2),
		report.AvgOrderValue.StringFixed(2),
		fmt.Sprintf("%.1f", report.OrdersPerDay),
		fmt.Sprintf("%.1f%%", report.FulfillmentRate),
		report.InventoryValue.StringFixed(2),
		report.LowStockItems,
		report.OutOfStockItems,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, e.sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append report into range %s: %w", e.sheetRange, err)
	}

	e.logger.Info("report exported", zap.String("range", e.sheetRange), zap.Int("window_days", report.WindowDays))
	return nil
}
