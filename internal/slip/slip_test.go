package slip

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamworld/wms-console/internal/domain/models"
)

func testOrder() models.Order {
	return models.Order{
		OrderID:        "1001",
		CustomerID:     "C-9",
		Customer:       "Acme Hardware",
		CustomerPhone:  "555-0100",
		Address:        "1 Main St, Springfield",
		Timestamp:      time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC),
		Subtotal:       decimal.RequireFromString("125.75"),
		Status:         models.OrderStatusPending,
		Carrier:        "UPS",
		TrackingNumber: "1Z999",
		Lines: []models.OrderLine{
			{SKU: "WID-1", Description: "Widget", ItemType: "Hardware", Bin: "A-07", Qty: 5, Price: decimal.RequireFromString("19.99")},
		},
	}
}

func TestRenderContainsOrderData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testOrder()))
	html := buf.String()

	assert.Contains(t, html, "PICK-1001")
	assert.Contains(t, html, "Acme Hardware")
	assert.Contains(t, html, "555-0100")
	assert.Contains(t, html, "1 Main St, Springfield")
	assert.Contains(t, html, "A-07")
	assert.Contains(t, html, "WID-1")
	assert.Contains(t, html, "Widget")
	assert.Contains(t, html, "19.99")
	assert.Contains(t, html, "125.75")
	assert.Contains(t, html, "UPS")
	assert.Contains(t, html, "Jun 10, 2025")
}

func TestRenderHasPrintActionAndBlankShipColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testOrder()))
	html := buf.String()

	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "S-QTY", "shipped-qty column stays blank for hand-marking")
	assert.Contains(t, html, "O-QTY")
}

func TestRenderEscapesMarkup(t *testing.T) {
	order := testOrder()
	order.Customer = `<script>alert("x")</script>`

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, order))
	assert.NotContains(t, buf.String(), "<script>alert")
}

func TestRenderComputesLineTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testOrder()))
	assert.Contains(t, buf.String(), "99.95", "5 x 19.99")
}
