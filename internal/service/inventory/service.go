// Package inventory holds the view-model for the inventory tab: the fetched
// item list, the user-controlled filter/sort/search state, and the
// optimistic edit flow.
package inventory

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/service/optimistic"
	"github.com/dreamworld/wms-console/pkg/clients/warehouse"
)

// Service owns the in-memory item list for the duration of a tab mount.
type Service struct {
	gateway warehouse.Client
	logger  *zap.Logger

	mu           sync.RWMutex
	items        []models.Item
	searchTerm   string
	typeFilter   string // empty means all
	binFilter    string // empty means all
	stockFilters map[models.StockStatus]bool
	sort         *SortConfig
}

// NewService wires a new inventory view-model instance.
func NewService(gateway warehouse.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gateway:      gateway,
		logger:       logger,
		stockFilters: make(map[models.StockStatus]bool),
	}
}

// Refresh replaces the item list from the remote store. Called on tab
// activation only; there is no background polling.
func (s *Service) Refresh(ctx context.Context) error {
	items, err := s.gateway.ListItems(ctx)
	if err != nil {
		s.logger.Error("inventory fetch failed", zap.Error(err))
		return fmt.Errorf("fetch inventory: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.Info("inventory loaded", zap.Int("items", len(items)))
	return nil
}

// Items returns a copy of the full, unfiltered item list.
func (s *Service) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return optimistic.Snapshot(s.items)
}

// SetSearch updates the free-text search term.
func (s *Service) SetSearch(term string) {
	s.mu.Lock()
	s.searchTerm = term
	s.mu.Unlock()
}

// SetTypeFilter selects an exact item-type filter; empty selects all types.
func (s *Service) SetTypeFilter(itemType string) {
	s.mu.Lock()
	s.typeFilter = itemType
	s.mu.Unlock()
}

// SetBinFilter selects an exact bin filter; empty selects all bins.
func (s *Service) SetBinFilter(bin string) {
	s.mu.Lock()
	s.binFilter = bin
	s.mu.Unlock()
}

// ToggleStockFilter flips one of the low/out stock filters. Active filters
// are OR'd with each other and AND'd with the text/type/bin predicates.
func (s *Service) ToggleStockFilter(status models.StockStatus) {
	if status != models.StockLow && status != models.StockOut {
		return
	}
	s.mu.Lock()
	s.stockFilters[status] = !s.stockFilters[status]
	s.mu.Unlock()
}

// StockFilterActive reports whether the given stock filter is switched on.
func (s *Service) StockFilterActive(status models.StockStatus) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stockFilters[status]
}

// RequestSort sets the sort key, toggling ascending to descending when the
// same key is requested twice in a row.
func (s *Service) RequestSort(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	direction := Ascending
	if s.sort != nil && s.sort.Key == key && s.sort.Direction == Ascending {
		direction = Descending
	}
	s.sort = &SortConfig{Key: key, Direction: direction}
}

// Sort returns the active sort configuration, or nil when unsorted.
func (s *Service) Sort() *SortConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sort == nil {
		return nil
	}
	cfg := *s.sort
	return &cfg
}

// ItemTypes returns the distinct non-empty item types in first-seen order,
// for the type filter control.
func (s *Service) ItemTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var types []string
	for _, item := range s.items {
		if item.ItemType == "" || seen[item.ItemType] {
			continue
		}
		seen[item.ItemType] = true
		types = append(types, item.ItemType)
	}
	return types
}

// Bins returns the distinct bins in first-seen order, for the bin filter
// control.
func (s *Service) Bins() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var bins []string
	for _, item := range s.items {
		if seen[item.Bin] {
			continue
		}
		seen[item.Bin] = true
		bins = append(bins, item.Bin)
	}
	return bins
}

// TotalUnits sums quantity on hand across the full inventory.
func (s *Service) TotalUnits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Qty
	}
	return total
}

// UniqueSKUs counts distinct SKUs in the full inventory.
func (s *Service) UniqueSKUs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, item := range s.items {
		seen[item.SKU] = true
	}
	return len(seen)
}

// LowStockCount counts items with 0 < qty <= 100 across the full inventory.
func (s *Service) LowStockCount() int {
	return s.countByStatus(models.StockLow)
}

// OutOfStockCount counts items with qty == 0 across the full inventory.
func (s *Service) OutOfStockCount() int {
	return s.countByStatus(models.StockOut)
}

func (s *Service) countByStatus(status models.StockStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		if models.StockStatusFor(item.Qty) == status {
			count++
		}
	}
	return count
}

// SaveItem applies the edited item to local state immediately and returns
// the optimistic update handle. Committing it patches the remote store; on
// failure the entire list reverts to its pre-edit snapshot.
func (s *Service) SaveItem(edited models.Item) *optimistic.Update {
	var prior []models.Item

	return optimistic.Begin(
		func() {
			s.mu.Lock()
			prior = optimistic.Snapshot(s.items)
			for i := range s.items {
				if s.items[i].SKU == edited.SKU {
					s.items[i] = edited
				}
			}
			s.mu.Unlock()
		},
		func(ctx context.Context) error {
			if _, err := s.gateway.PatchItem(ctx, edited.SKU, editablePatch(edited)); err != nil {
				s.logger.Error("item update failed", zap.String("sku", edited.SKU), zap.Error(err))
				return fmt.Errorf("update item %s: %w", edited.SKU, err)
			}
			s.logger.Info("item updated", zap.String("sku", edited.SKU))
			return nil
		},
		func() {
			s.mu.Lock()
			s.items = prior
			s.mu.Unlock()
		},
	)
}

// editablePatch maps the full set of client-editable fields into a patch.
// No diffing against the previous state happens here; the gateway sends
// every field present.
func editablePatch(item models.Item) models.ItemPatch {
	desc := item.Description
	bin := item.Bin
	dsu := item.DSU
	itemType := item.ItemType
	qty := item.Qty
	price := item.Price
	return models.ItemPatch{
		Description: &desc,
		Bin:         &bin,
		DSU:         &dsu,
		ItemType:    &itemType,
		Qty:         &qty,
		Price:       &price,
	}
}
