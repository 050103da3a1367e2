package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/server/handlers"
	"github.com/dreamworld/wms-console/internal/server/router"
)

type fakeLookup struct {
	orders map[string]models.Order
}

func (f *fakeLookup) OrderByKey(customerID, orderID string) (models.Order, bool) {
	order, ok := f.orders[customerID+"/"+orderID]
	return order, ok
}

func TestSlipEndpointRendersOrder(t *testing.T) {
	lookup := &fakeLookup{orders: map[string]models.Order{
		"C-9/1001": {
			OrderID:    "1001",
			CustomerID: "C-9",
			Customer:   "Acme",
			Address:    "1 Main St",
			Timestamp:  time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC),
			Subtotal:   decimal.RequireFromString("40.00"),
			Lines: []models.OrderLine{
				{SKU: "WID-1", Description: "Widget", Bin: "A-07", Qty: 2, Price: decimal.RequireFromString("20.00")},
			},
		},
	}}

	engine := router.New(handlers.NewSlipHandler(lookup, nil), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slip/C-9/1001", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "PICK-1001")
	assert.Contains(t, rec.Body.String(), "Acme")
}

func TestSlipEndpointUnknownOrder(t *testing.T) {
	engine := router.New(handlers.NewSlipHandler(&fakeLookup{}, nil), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slip/C-1/9999", nil)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	engine := router.New(handlers.NewSlipHandler(&fakeLookup{}, nil), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
