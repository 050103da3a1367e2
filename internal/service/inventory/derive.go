package inventory

import (
	"cmp"
	"sort"
	"strings"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/service/optimistic"
)

// SortKey names a sortable item column.
type SortKey string

const (
	SortBySKU         SortKey = "sku"
	SortByDescription SortKey = "description"
	SortByType        SortKey = "type"
	SortByBin         SortKey = "bin"
	SortByDSU         SortKey = "dsu"
	SortByQty         SortKey = "qty"
	SortByPrice       SortKey = "price"
)

// SortDirection orders a sorted column.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// SortConfig is the single active sort key and direction.
type SortConfig struct {
	Key       SortKey
	Direction SortDirection
}

// Visible derives the filtered, sorted subset of the item list:
// case-insensitive substring search across description, sku and bin, exact
// type and bin matches, the union of any active stock filters, then a
// stable sort on the configured column.
func (s *Service) Visible() []models.Item {
	s.mu.RLock()
	items := optimistic.Snapshot(s.items)
	term := strings.ToLower(s.searchTerm)
	typeFilter := s.typeFilter
	binFilter := s.binFilter
	stock := make(map[models.StockStatus]bool, len(s.stockFilters))
	for status, active := range s.stockFilters {
		stock[status] = active
	}
	sortCfg := s.sort
	s.mu.RUnlock()

	filtered := items[:0]
	for _, item := range items {
		if !matchesSearch(item, term) {
			continue
		}
		if typeFilter != "" && item.ItemType != typeFilter {
			continue
		}
		if binFilter != "" && item.Bin != binFilter {
			continue
		}
		if !matchesStockFilters(item, stock) {
			continue
		}
		filtered = append(filtered, item)
	}

	if sortCfg != nil {
		sortItems(filtered, *sortCfg)
	}
	return filtered
}

func matchesSearch(item models.Item, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.SKU), term) ||
		strings.Contains(strings.ToLower(item.Bin), term)
}

// matchesStockFilters keeps an item when any active stock filter matches.
// With no filter active there is no stock constraint at all.
func matchesStockFilters(item models.Item, filters map[models.StockStatus]bool) bool {
	if !filters[models.StockLow] && !filters[models.StockOut] {
		return true
	}
	status := models.StockStatusFor(item.Qty)
	return filters[status]
}

// sortItems stable-sorts in place. A falsy value on the sort column (zero
// quantity or price, empty string) always orders after a present value, in
// both directions. That rule intentionally misfiles a legitimate zero; it is
// the established contract of this screen and must not be "fixed" here.
func sortItems(items []models.Item, cfg SortConfig) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		aFalsy, bFalsy := isFalsy(a, cfg.Key), isFalsy(b, cfg.Key)
		switch {
		case aFalsy:
			return false
		case bFalsy:
			return true
		}

		c := compareItems(a, b, cfg.Key)
		if cfg.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
}

func isFalsy(item models.Item, key SortKey) bool {
	switch key {
	case SortByQty:
		return item.Qty == 0
	case SortByPrice:
		return item.Price.IsZero()
	default:
		return stringField(item, key) == ""
	}
}

func compareItems(a, b models.Item, key SortKey) int {
	switch key {
	case SortByQty:
		return cmp.Compare(a.Qty, b.Qty)
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	default:
		return strings.Compare(stringField(a, key), stringField(b, key))
	}
}

func stringField(item models.Item, key SortKey) string {
	switch key {
	case SortBySKU:
		return item.SKU
	case SortByDescription:
		return item.Description
	case SortByType:
		return item.ItemType
	case SortByBin:
		return item.Bin
	case SortByDSU:
		return item.DSU
	default:
		return ""
	}
}
