// Package orders holds the view-model for the order tab: the fetched order
// list, optimistic status and tracking edits, and the derived sales
// analytics.
package orders

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/service/optimistic"
	"github.com/dreamworld/wms-console/pkg/clients/warehouse"
)

// DefaultWindowDays is the analytics window selected at startup.
const DefaultWindowDays = 7

// WindowChoices are the selectable analytics windows, in display order.
var WindowChoices = []int{7, 14, 30, 90}

// Service owns the in-memory order list for the duration of a tab mount.
type Service struct {
	gateway warehouse.Client
	logger  *zap.Logger

	mu         sync.RWMutex
	orders     []models.Order
	windowDays int
}

// NewService wires a new order view-model instance.
func NewService(gateway warehouse.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gateway: gateway, logger: logger, windowDays: DefaultWindowDays}
}

// Refresh replaces the order list from the remote store. Called on tab
// activation only.
func (s *Service) Refresh(ctx context.Context) error {
	orders, err := s.gateway.ListOrders(ctx)
	if err != nil {
		s.logger.Error("order fetch failed", zap.Error(err))
		return fmt.Errorf("fetch orders: %w", err)
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()

	s.logger.Info("orders loaded", zap.Int("orders", len(orders)))
	return nil
}

// Orders returns a copy of the full order list.
func (s *Service) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return optimistic.Snapshot(s.orders)
}

// Order looks up one order by id.
func (s *Service) Order(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.OrderID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// OrderByKey looks up one order by its composite remote key. The packing
// slip server resolves requests through this.
func (s *Service) OrderByKey(customerID, orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.OrderID == orderID && order.CustomerID == customerID {
			return order, true
		}
	}
	return models.Order{}, false
}

// SetWindow selects the analytics time window. Unknown values are ignored.
func (s *Service) SetWindow(days int) {
	for _, choice := range WindowChoices {
		if choice == days {
			s.mu.Lock()
			s.windowDays = days
			s.mu.Unlock()
			return
		}
	}
}

// Window returns the selected analytics window in days.
func (s *Service) Window() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowDays
}

// Summary holds the order-tab headline counts.
type Summary struct {
	Total      int
	Pending    int
	Shipped    int // shipped or delivered
	TotalValue decimal.Decimal
}

// Summarize derives the headline counts over the full order list.
func (s *Service) Summarize() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := Summary{Total: len(s.orders), TotalValue: decimal.Zero}
	for _, order := range s.orders {
		switch order.Status {
		case models.OrderStatusPending:
			summary.Pending++
		case models.OrderStatusShipped, models.OrderStatusDelivered:
			summary.Shipped++
		}
		summary.TotalValue = summary.TotalValue.Add(order.Subtotal)
	}
	return summary
}

// ChangeStatus rewrites the order's status locally and returns the
// optimistic update handle; committing patches the remote side by composite
// key, reverting the whole list on failure. Returns nil when the order id is
// unknown.
func (s *Service) ChangeStatus(orderID string, status models.OrderStatus) *optimistic.Update {
	order, ok := s.Order(orderID)
	if !ok {
		return nil
	}

	var prior []models.Order
	return optimistic.Begin(
		func() {
			s.mu.Lock()
			prior = optimistic.Snapshot(s.orders)
			for i := range s.orders {
				if s.orders[i].OrderID == orderID {
					s.orders[i].Status = status
				}
			}
			s.mu.Unlock()
		},
		func(ctx context.Context) error {
			if _, err := s.gateway.PatchOrderStatus(ctx, order.CustomerID, orderID, status); err != nil {
				s.logger.Error("status update failed",
					zap.String("order_id", orderID),
					zap.String("status", status.String()),
					zap.Error(err))
				return fmt.Errorf("update status for order %s: %w", orderID, err)
			}
			s.logger.Info("order status updated",
				zap.String("order_id", orderID),
				zap.String("status", status.String()))
			return nil
		},
		func() {
			s.mu.Lock()
			s.orders = prior
			s.mu.Unlock()
		},
	)
}

// UpdateTracking rewrites the order's carrier and tracking number locally
// and returns the optimistic update handle; same rollback contract as
// ChangeStatus. Returns nil when the order id is unknown.
func (s *Service) UpdateTracking(orderID string, update models.TrackingUpdate) *optimistic.Update {
	order, ok := s.Order(orderID)
	if !ok {
		return nil
	}

	var prior []models.Order
	return optimistic.Begin(
		func() {
			s.mu.Lock()
			prior = optimistic.Snapshot(s.orders)
			for i := range s.orders {
				if s.orders[i].OrderID == orderID {
					s.orders[i].Carrier = update.Carrier
					s.orders[i].TrackingNumber = update.TrackingNumber
				}
			}
			s.mu.Unlock()
		},
		func(ctx context.Context) error {
			if _, err := s.gateway.PatchOrderTracking(ctx, order.CustomerID, orderID, update); err != nil {
				s.logger.Error("tracking update failed", zap.String("order_id", orderID), zap.Error(err))
				return fmt.Errorf("update tracking for order %s: %w", orderID, err)
			}
			s.logger.Info("order tracking updated", zap.String("order_id", orderID))
			return nil
		},
		func() {
			s.mu.Lock()
			s.orders = prior
			s.mu.Unlock()
		},
	)
}
