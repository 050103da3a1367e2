package warehouse

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dreamworld/wms-console/internal/domain/models"
)

// Wire representations use the backend's flat field names. Every numeric
// field arrives as a string and timestamps are ISO-ish strings, so all
// parsing happens at this boundary.

type itemRecord struct {
	SKU                string `json:"sku"`
	ItemDesc           string `json:"item_desc"`
	BinLoc             string `json:"bin_loc"`
	DefaultSellingUnit string `json:"default_selling_unit"`
	ItemType           string `json:"item_type,omitempty"`
	QtyOnHand          string `json:"qty_on_hand"`
	Price              string `json:"price"`
	LastUpdated        string `json:"last_updated,omitempty"`
}

type orderLineRecord struct {
	SKU      string `json:"sku"`
	ItemDesc string `json:"item_desc"`
	ItemType string `json:"item_type,omitempty"`
	Bin      string `json:"bin"`
	Qty      string `json:"qty"`
	Price    string `json:"price"`
}

type orderRecord struct {
	OrderID        string            `json:"order_id"`
	CustomerID     string            `json:"customer_id"`
	Customer       string            `json:"customer"`
	CustomerPhone  string            `json:"customer_phone"`
	Address        string            `json:"address"`
	Timestamp      string            `json:"timestamp"`
	ItemList       []orderLineRecord `json:"item_list"`
	Subtotal       string            `json:"subtotal"`
	Status         string            `json:"status"`
	Carrier        string            `json:"carrier,omitempty"`
	TrackingNumber string            `json:"tracking_number,omitempty"`
}

// timestampLayouts covers the formats the backend has been observed to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return fallback
}

func parseQty(value string) int {
	qty, err := strconv.Atoi(value)
	if err != nil || qty < 0 {
		return 0
	}
	return qty
}

func parsePrice(value string) decimal.Decimal {
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return price
}

func (r itemRecord) toDomain(now time.Time) models.Item {
	return models.Item{
		SKU:         r.SKU,
		Description: r.ItemDesc,
		Bin:         r.BinLoc,
		DSU:         r.DefaultSellingUnit,
		ItemType:    r.ItemType,
		Qty:         parseQty(r.QtyOnHand),
		Price:       parsePrice(r.Price),
		LastUpdated: parseTimestamp(r.LastUpdated, now),
	}
}

func (r orderRecord) toDomain(now time.Time) models.Order {
	lines := make([]models.OrderLine, 0, len(r.ItemList))
	for _, line := range r.ItemList {
		lines = append(lines, models.OrderLine{
			SKU:         line.SKU,
			Description: line.ItemDesc,
			ItemType:    line.ItemType,
			Bin:         line.Bin,
			Qty:         parseQty(line.Qty),
			Price:       parsePrice(line.Price),
		})
	}

	status, err := models.ParseOrderStatus(r.Status)
	if err != nil {
		// Unknown statuses are carried through untouched; the display layer
		// falls back to its gray default for them.
		status = models.OrderStatus(r.Status)
	}

	return models.Order{
		OrderID:        r.OrderID,
		CustomerID:     r.CustomerID,
		Customer:       r.Customer,
		CustomerPhone:  r.CustomerPhone,
		Address:        r.Address,
		Timestamp:      parseTimestamp(r.Timestamp, now),
		Lines:          lines,
		Subtotal:       parsePrice(r.Subtotal),
		Status:         status,
		Carrier:        r.Carrier,
		TrackingNumber: r.TrackingNumber,
	}
}

// wireBody translates the sparse patch back to backend field names. Absent
// fields stay absent so the remote side performs a partial update.
func wireBody(patch models.ItemPatch) map[string]string {
	body := make(map[string]string)
	if patch.Description != nil {
		body["item_desc"] = *patch.Description
	}
	if patch.Bin != nil {
		body["bin_loc"] = *patch.Bin
	}
	if patch.DSU != nil {
		body["default_selling_unit"] = *patch.DSU
	}
	if patch.ItemType != nil {
		body["item_type"] = *patch.ItemType
	}
	if patch.Qty != nil {
		body["qty_on_hand"] = strconv.Itoa(*patch.Qty)
	}
	if patch.Price != nil {
		body["price"] = patch.Price.StringFixed(2)
	}
	return body
}
