package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents one stock-keeping unit held in the warehouse.
type Item struct {
	SKU         string
	Description string
	Bin         string
	DSU         string // default selling unit
	ItemType    string
	Qty         int
	Price       decimal.Decimal
	LastUpdated time.Time
}

// ItemPatch carries a sparse update for a single item. Only non-nil fields
// are transmitted to the remote store.
type ItemPatch struct {
	Description *string
	Bin         *string
	DSU         *string
	ItemType    *string
	Qty         *int
	Price       *decimal.Decimal
}

// StockStatus classifies an item's on-hand quantity.
type StockStatus string

const (
	StockOut  StockStatus = "out"
	StockLow  StockStatus = "low"
	StockGood StockStatus = "good"
)

// lowStockThreshold is a fixed business rule, not configurable.
const lowStockThreshold = 100

// StockStatusFor returns "out" for zero quantity, "low" for 1..100 units
// and "good" above that.
func StockStatusFor(qty int) StockStatus {
	switch {
	case qty == 0:
		return StockOut
	case qty <= lowStockThreshold:
		return StockLow
	default:
		return StockGood
	}
}
