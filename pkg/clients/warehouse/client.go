package warehouse

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dreamworld/wms-console/internal/config"
	"github.com/dreamworld/wms-console/internal/domain/models"
)

// ErrRequestFailed is the single failure condition exposed to callers.
// Every non-2xx response and every transport error wraps it; callers only
// learn success versus failure.
var ErrRequestFailed = errors.New("warehouse api request failed")

// Client exposes the item/order store operations used by the application.
type Client interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	PatchItem(ctx context.Context, sku string, patch models.ItemPatch) (*models.Item, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	PatchOrderStatus(ctx context.Context, customerID, orderID string, status models.OrderStatus) (*models.Order, error)
	PatchOrderTracking(ctx context.Context, customerID, orderID string, update models.TrackingUpdate) (*models.Order, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	now        func() time.Time
}

// NewClient builds a warehouse API client using the provided configuration values.
func NewClient(cfg config.APIConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		now:        time.Now,
	}
}

// ListItems fetches the full item list.
func (c *APIClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var records []itemRecord

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&records).
		Get("/item")
	if err != nil {
		return nil, fmt.Errorf("%w: list items: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: list items: status %d", ErrRequestFailed, resp.StatusCode())
	}

	items := make([]models.Item, 0, len(records))
	for _, record := range records {
		items = append(items, record.toDomain(c.now()))
	}
	return items, nil
}

// PatchItem sends a sparse update for one item, keyed by sku. Only fields
// present in the patch are transmitted, translated back to backend names.
func (c *APIClient) PatchItem(ctx context.Context, sku string, patch models.ItemPatch) (*models.Item, error) {
	record := new(itemRecord)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(wireBody(patch)).
		SetResult(record).
		Patch(fmt.Sprintf("/item/%s", sku))
	if err != nil {
		return nil, fmt.Errorf("%w: patch item %s: %v", ErrRequestFailed, sku, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: patch item %s: status %d", ErrRequestFailed, sku, resp.StatusCode())
	}

	item := record.toDomain(c.now())
	return &item, nil
}

// ListOrders fetches the full order list with embedded line items.
func (c *APIClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var records []orderRecord

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&records).
		Get("/order")
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: list orders: status %d", ErrRequestFailed, resp.StatusCode())
	}

	orders := make([]models.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, record.toDomain(c.now()))
	}
	return orders, nil
}

// PatchOrderStatus updates one order's status. The remote key is composite.
func (c *APIClient) PatchOrderStatus(ctx context.Context, customerID, orderID string, status models.OrderStatus) (*models.Order, error) {
	return c.patchOrder(ctx, customerID, orderID, map[string]string{"status": status.String()})
}

// PatchOrderTracking updates one order's carrier and tracking number.
func (c *APIClient) PatchOrderTracking(ctx context.Context, customerID, orderID string, update models.TrackingUpdate) (*models.Order, error) {
	return c.patchOrder(ctx, customerID, orderID, map[string]string{
		"carrier":         update.Carrier,
		"tracking_number": update.TrackingNumber,
	})
}

func (c *APIClient) patchOrder(ctx context.Context, customerID, orderID string, body map[string]string) (*models.Order, error) {
	record := new(orderRecord)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(record).
		Patch(fmt.Sprintf("/order/%s/%s", customerID, orderID))
	if err != nil {
		return nil, fmt.Errorf("%w: patch order %s/%s: %v", ErrRequestFailed, customerID, orderID, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: patch order %s/%s: status %d", ErrRequestFailed, customerID, orderID, resp.StatusCode())
	}

	order := record.toDomain(c.now())
	return &order, nil
}
