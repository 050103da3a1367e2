package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamworld/wms-console/internal/domain/models"
)

type fakeGateway struct {
	orders       []models.Order
	listErr      error
	statusErr    error
	trackingErr  error
	lastCustomer string
	lastOrder    string
	lastStatus   models.OrderStatus
	lastTracking models.TrackingUpdate
}

func (f *fakeGateway) ListItems(context.Context) ([]models.Item, error) { return nil, nil }

func (f *fakeGateway) PatchItem(context.Context, string, models.ItemPatch) (*models.Item, error) {
	return nil, nil
}

func (f *fakeGateway) ListOrders(context.Context) ([]models.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.orders, nil
}

func (f *fakeGateway) PatchOrderStatus(_ context.Context, customerID, orderID string, status models.OrderStatus) (*models.Order, error) {
	f.lastCustomer = customerID
	f.lastOrder = orderID
	f.lastStatus = status
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &models.Order{OrderID: orderID}, nil
}

func (f *fakeGateway) PatchOrderTracking(_ context.Context, customerID, orderID string, update models.TrackingUpdate) (*models.Order, error) {
	f.lastCustomer = customerID
	f.lastOrder = orderID
	f.lastTracking = update
	if f.trackingErr != nil {
		return nil, f.trackingErr
	}
	return &models.Order{OrderID: orderID}, nil
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testOrders() []models.Order {
	return []models.Order{
		{
			OrderID: "1001", CustomerID: "C-1", Customer: "Acme",
			Timestamp: time.Now().Add(-24 * time.Hour),
			Subtotal:  money("100.00"), Status: models.OrderStatusPending,
		},
		{
			OrderID: "1002", CustomerID: "C-2", Customer: "Globex",
			Timestamp: time.Now().Add(-48 * time.Hour),
			Subtotal:  money("250.00"), Status: models.OrderStatusShipped,
		},
		{
			OrderID: "1003", CustomerID: "C-2", Customer: "Globex",
			Timestamp: time.Now().Add(-72 * time.Hour),
			Subtotal:  money("50.00"), Status: models.OrderStatusDelivered,
		},
	}
}

func loadedService(t *testing.T, gw *fakeGateway) *Service {
	t.Helper()
	svc := NewService(gw, nil)
	require.NoError(t, svc.Refresh(context.Background()))
	return svc
}

func TestSummarize(t *testing.T) {
	svc := loadedService(t, &fakeGateway{orders: testOrders()})

	summary := svc.Summarize()
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Pending)
	assert.Equal(t, 2, summary.Shipped, "shipped and delivered both count as shipped")
	assert.True(t, summary.TotalValue.Equal(money("400.00")))
}

func TestChangeStatusRevertsOnFailure(t *testing.T) {
	gw := &fakeGateway{orders: testOrders(), statusErr: errors.New("rejected")}
	svc := loadedService(t, gw)

	update := svc.ChangeStatus("1001", models.OrderStatusShipped)
	require.NotNil(t, update)

	got, ok := svc.Order("1001")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusShipped, got.Status, "optimistic rewrite is immediate")

	require.Error(t, update.Commit(context.Background()))

	got, _ = svc.Order("1001")
	assert.Equal(t, models.OrderStatusPending, got.Status, "status reverts after remote failure")
}

func TestChangeStatusUsesCompositeKey(t *testing.T) {
	gw := &fakeGateway{orders: testOrders()}
	svc := loadedService(t, gw)

	update := svc.ChangeStatus("1002", models.OrderStatusDelivered)
	require.NotNil(t, update)
	require.NoError(t, update.Commit(context.Background()))

	assert.Equal(t, "C-2", gw.lastCustomer)
	assert.Equal(t, "1002", gw.lastOrder)
	assert.Equal(t, models.OrderStatusDelivered, gw.lastStatus)
}

func TestChangeStatusUnknownOrder(t *testing.T) {
	svc := loadedService(t, &fakeGateway{orders: testOrders()})
	assert.Nil(t, svc.ChangeStatus("nope", models.OrderStatusShipped))
}

func TestUpdateTrackingRoundTrip(t *testing.T) {
	gw := &fakeGateway{orders: testOrders()}
	svc := loadedService(t, gw)

	update := svc.UpdateTracking("1001", models.TrackingUpdate{Carrier: "UPS", TrackingNumber: "1Z999"})
	require.NotNil(t, update)

	got, _ := svc.Order("1001")
	assert.Equal(t, "UPS", got.Carrier)

	require.NoError(t, update.Commit(context.Background()))
	assert.Equal(t, "1Z999", gw.lastTracking.TrackingNumber)
}

func TestUpdateTrackingRevertsOnFailure(t *testing.T) {
	gw := &fakeGateway{orders: testOrders(), trackingErr: errors.New("rejected")}
	svc := loadedService(t, gw)

	update := svc.UpdateTracking("1003", models.TrackingUpdate{Carrier: "FedEx", TrackingNumber: "F-1"})
	require.Error(t, update.Commit(context.Background()))

	got, _ := svc.Order("1003")
	assert.Empty(t, got.Carrier)
	assert.Empty(t, got.TrackingNumber)
}

func TestOrderByKey(t *testing.T) {
	svc := loadedService(t, &fakeGateway{orders: testOrders()})

	_, ok := svc.OrderByKey("C-2", "1002")
	assert.True(t, ok)

	_, ok = svc.OrderByKey("C-1", "1002")
	assert.False(t, ok, "both halves of the composite key must match")
}

func TestSetWindowIgnoresUnknownValues(t *testing.T) {
	svc := loadedService(t, &fakeGateway{orders: nil})

	svc.SetWindow(30)
	assert.Equal(t, 30, svc.Window())

	svc.SetWindow(13)
	assert.Equal(t, 30, svc.Window())
}
