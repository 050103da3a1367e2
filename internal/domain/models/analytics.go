package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSales is one entry of the top-products ranking, keyed on the
// combination of description and item type.
type ProductSales struct {
	Name string
	Qty  int
}

// DailyRevenue is one bar of the revenue trend: the subtotal sum of all
// orders placed on that local calendar day.
type DailyRevenue struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// AnalyticsReport is the derived sales rollup for a trailing time window.
// Inventory value and the stock counts cover the full item list, not just
// the window.
type AnalyticsReport struct {
	WindowDays      int
	TotalRevenue    decimal.Decimal
	AvgOrderValue   decimal.Decimal
	OrdersPerDay    float64
	FulfillmentRate float64
	TopProducts     []ProductSales
	InventoryValue  decimal.Decimal
	LowStockItems   int
	OutOfStockItems int
	DailyRevenue    []DailyRevenue
}
