package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks the lifecycle of a customer order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// AllOrderStatuses lists every status in display order.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range AllOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus. Matching is
// case-insensitive; the canonical capitalized form is returned.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range AllOrderStatuses {
		if strings.EqualFold(string(candidate), value) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

// OrderLine is a single line item within an order.
type OrderLine struct {
	SKU         string
	Description string
	ItemType    string
	Bin         string
	Qty         int
	Price       decimal.Decimal
}

// Order represents one customer order. Orders are created server-side; the
// client may only mutate status, carrier and tracking number. The remote key
// is composite: customer id plus order id.
type Order struct {
	OrderID        string
	CustomerID     string
	Customer       string
	CustomerPhone  string
	Address        string
	Timestamp      time.Time
	Lines          []OrderLine
	Subtotal       decimal.Decimal
	Status         OrderStatus
	Carrier        string
	TrackingNumber string
}

// TrackingUpdate carries the two client-mutable shipping fields.
type TrackingUpdate struct {
	Carrier        string
	TrackingNumber string
}
