package orders

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dreamworld/wms-console/internal/domain/models"
)

const topProductCount = 5

// Analytics derives the sales rollup for the currently selected window.
// Orders are windowed by timestamp >= now - N days; inventory value and the
// stock counts always cover the whole item list.
func (s *Service) Analytics(now time.Time, items []models.Item) models.AnalyticsReport {
	s.mu.RLock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	days := s.windowDays
	s.mu.RUnlock()

	return BuildReport(now, days, orders, items)
}

// BuildReport computes the analytics rollup from an explicit order and item
// snapshot.
func BuildReport(now time.Time, days int, orders []models.Order, items []models.Item) models.AnalyticsReport {
	cutoff := now.AddDate(0, 0, -days)

	var windowed []models.Order
	for _, order := range orders {
		if !order.Timestamp.Before(cutoff) {
			windowed = append(windowed, order)
		}
	}

	report := models.AnalyticsReport{
		WindowDays:    days,
		TotalRevenue:  decimal.Zero,
		AvgOrderValue: decimal.Zero,
		OrdersPerDay:  float64(len(windowed)) / float64(days),
	}

	fulfilled := 0
	for _, order := range windowed {
		report.TotalRevenue = report.TotalRevenue.Add(order.Subtotal)
		if order.Status == models.OrderStatusShipped || order.Status == models.OrderStatusDelivered {
			fulfilled++
		}
	}
	if len(windowed) > 0 {
		report.AvgOrderValue = report.TotalRevenue.Div(decimal.NewFromInt(int64(len(windowed))))
		report.FulfillmentRate = float64(fulfilled) / float64(len(windowed)) * 100
	}

	report.TopProducts = topProducts(windowed)
	report.DailyRevenue = dailyRevenue(now, days, windowed)

	report.InventoryValue = decimal.Zero
	for _, item := range items {
		report.InventoryValue = report.InventoryValue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
		switch models.StockStatusFor(item.Qty) {
		case models.StockLow:
			report.LowStockItems++
		case models.StockOut:
			report.OutOfStockItems++
		}
	}

	return report
}

// topProducts sums line-item quantity per description/type pairing across
// the windowed orders and keeps the five biggest sellers.
func topProducts(orders []models.Order) []models.ProductSales {
	totals := make(map[string]int)
	var keys []string
	for _, order := range orders {
		for _, line := range order.Lines {
			key := fmt.Sprintf("%s (%s)", line.Description, line.ItemType)
			if _, seen := totals[key]; !seen {
				keys = append(keys, key)
			}
			totals[key] += line.Qty
		}
	}

	ranked := make([]models.ProductSales, 0, len(keys))
	for _, key := range keys {
		ranked = append(ranked, models.ProductSales{Name: key, Qty: totals[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Qty > ranked[j].Qty })

	if len(ranked) > topProductCount {
		ranked = ranked[:topProductCount]
	}
	return ranked
}

// dailyRevenue builds one bucket per calendar day for the N days ending
// today, oldest first. Orders land in a bucket by local calendar date, not
// by rolling 24h offsets.
func dailyRevenue(now time.Time, days int, orders []models.Order) []models.DailyRevenue {
	series := make([]models.DailyRevenue, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		sum := decimal.Zero
		for _, order := range orders {
			if sameCalendarDay(order.Timestamp, day) {
				sum = sum.Add(order.Subtotal)
			}
		}
		series = append(series, models.DailyRevenue{Date: day, Revenue: sum})
	}
	return series
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StatusStyle is the icon/color pairing a status renders with.
type StatusStyle struct {
	Icon  string
	Color string
}

// StyleForStatus maps a status to its display style, case-insensitively.
// Anything unrecognized gets the gray default.
func StyleForStatus(status models.OrderStatus) StatusStyle {
	switch strings.ToLower(status.String()) {
	case "shipped":
		return StatusStyle{Icon: "➤", Color: "#16a34a"}
	case "delivered":
		return StatusStyle{Icon: "✓", Color: "#16a34a"}
	case "pending":
		return StatusStyle{Icon: "◷", Color: "#ca8a04"}
	case "cancelled":
		return StatusStyle{Icon: "✗", Color: "#dc2626"}
	case "processing":
		return StatusStyle{Icon: "▣", Color: "#2563eb"}
	default:
		return StatusStyle{Icon: "◷", Color: "#6b7280"}
	}
}
