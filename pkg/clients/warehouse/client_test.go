package warehouse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamworld/wms-console/internal/config"
	"github.com/dreamworld/wms-console/internal/domain/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(config.APIConfig{BaseURL: srv.URL})
}

func TestListItemsTranslatesWireFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/item", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{
				"sku": "WID-1",
				"item_desc": "Widget",
				"bin_loc": "A-07",
				"default_selling_unit": "each",
				"item_type": "Hardware",
				"qty_on_hand": "42",
				"price": "19.99",
				"last_updated": "2025-05-01T10:30:00Z"
			}
		]`))
	})

	items, err := client.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "WID-1", item.SKU)
	assert.Equal(t, "Widget", item.Description)
	assert.Equal(t, "A-07", item.Bin)
	assert.Equal(t, "each", item.DSU)
	assert.Equal(t, "Hardware", item.ItemType)
	assert.Equal(t, 42, item.Qty)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 2025, item.LastUpdated.Year())
}

func TestListItemsDefaultsForBadValues(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"sku": "X", "qty_on_hand": "not-a-number", "price": "junk"}
		]`))
	})

	items, err := client.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Zero(t, items[0].Qty)
	assert.True(t, items[0].Price.IsZero())
	assert.False(t, items[0].LastUpdated.IsZero(), "missing last_updated falls back to fetch time")
}

func TestListItemsServerErrorIsRequestFailed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListItems(context.Background())
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestPatchItemSendsSparseBackendFields(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
		gotBody   map[string]string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"sku": "WID-1", "qty_on_hand": "10", "price": "12.50"}`))
	})

	qty := 10
	priceVal := decimal.RequireFromString("12.5")
	item, err := client.PatchItem(context.Background(), "WID-1", models.ItemPatch{
		Qty:   &qty,
		Price: &priceVal,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/item/WID-1", gotPath)
	assert.Equal(t, map[string]string{"qty_on_hand": "10", "price": "12.50"}, gotBody,
		"absent fields stay absent and price is fixed to two decimals")

	// Round-trip: a 12.5 patch comes back as a decimal 12.50.
	assert.True(t, item.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestListOrdersParsesEmbeddedLines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/order", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{
				"order_id": "1001",
				"customer_id": "C-9",
				"customer": "Acme",
				"customer_phone": "555-0100",
				"address": "1 Main St",
				"timestamp": "2025-06-10 09:15:00",
				"subtotal": "125.75",
				"status": "pending",
				"item_list": [
					{"sku": "WID-1", "item_desc": "Widget", "bin": "A-07", "qty": "5", "price": "19.99"}
				]
			}
		]`))
	})

	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, "1001", order.OrderID)
	assert.Equal(t, "C-9", order.CustomerID)
	assert.Equal(t, models.OrderStatusPending, order.Status, "wire status is case-insensitive")
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("125.75")))
	assert.Equal(t, time.June, order.Timestamp.Month())

	require.Len(t, order.Lines, 1)
	assert.Equal(t, 5, order.Lines[0].Qty)
	assert.Equal(t, "A-07", order.Lines[0].Bin)
}

func TestListOrdersCarriesUnknownStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"order_id": "1", "status": "Archived", "item_list": []}]`))
	})

	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatus("Archived"), orders[0].Status)
}

func TestPatchOrderStatusUsesCompositePath(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"order_id": "1001", "status": "Shipped"}`))
	})

	_, err := client.PatchOrderStatus(context.Background(), "C-9", "1001", models.OrderStatusShipped)
	require.NoError(t, err)

	assert.Equal(t, "/order/C-9/1001", gotPath)
	assert.Equal(t, map[string]string{"status": "Shipped"}, gotBody)
}

func TestPatchOrderTrackingBody(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"order_id": "1001"}`))
	})

	_, err := client.PatchOrderTracking(context.Background(), "C-9", "1001", models.TrackingUpdate{
		Carrier:        "UPS",
		TrackingNumber: "1Z999",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"carrier": "UPS", "tracking_number": "1Z999"}, gotBody)
}

func TestPatchOrderFailureIsRequestFailed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.PatchOrderStatus(context.Background(), "C-9", "1001", models.OrderStatusShipped)
	require.ErrorIs(t, err, ErrRequestFailed)
}
