package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/dreamworld/wms-console/internal/domain/models"
)

const revenueBarWidth = 30

func (m Model) viewAnalytics() string {
	report := m.orders.Analytics(time.Now(), m.inventory.Items())

	var b strings.Builder

	b.WriteString(m.viewWindowSelector(report.WindowDays))
	b.WriteString("\n\n")

	cards := []string{
		renderCard("Revenue", report.TotalRevenue.StringFixed(2), cardValueStyle),
		renderCard("Avg Order", report.AvgOrderValue.StringFixed(2), cardValueStyle),
		renderCard("Orders/Day", fmt.Sprintf("%.1f", report.OrdersPerDay), cardValueStyle),
		renderCard("Fulfillment", fmt.Sprintf("%.1f%%", report.FulfillmentRate), goodStyle.Bold(true)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	cards = []string{
		renderCard("Inventory Value", report.InventoryValue.StringFixed(2), cardValueStyle),
		renderCard("Low Stock", strconv.Itoa(report.LowStockItems), warnStyle.Bold(true)),
		renderCard("Out of Stock", strconv.Itoa(report.OutOfStockItems), badStyle.Bold(true)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Top Products"))
	b.WriteString("\n")
	if len(report.TopProducts) == 0 {
		b.WriteString(mutedStyle.Render("No sales in this window."))
		b.WriteString("\n")
	}
	for i, product := range report.TopProducts {
		b.WriteString(fmt.Sprintf("%d. %-40s %6d\n", i+1, truncate(product.Name, 40), product.Qty))
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Daily Revenue"))
	b.WriteString("\n")
	b.WriteString(renderRevenueBars(report.DailyRevenue))

	if m.ana.exportNote != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.ana.exportNote))
	}
	return b.String()
}

func (m Model) viewWindowSelector(active int) string {
	parts := make([]string, 0, 4)
	for _, days := range []int{7, 14, 30, 90} {
		label := fmt.Sprintf(" %dd ", days)
		if days == active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "")
}

// renderRevenueBars draws one scaled bar per day. Long windows show only
// the trailing two weeks so the chart stays readable.
func renderRevenueBars(series []models.DailyRevenue) string {
	if len(series) > 14 {
		series = series[len(series)-14:]
	}

	max := decimal.Zero
	for _, day := range series {
		if day.Revenue.GreaterThan(max) {
			max = day.Revenue
		}
	}

	var b strings.Builder
	for _, day := range series {
		width := 0
		if max.IsPositive() {
			width = int(day.Revenue.Div(max).Mul(decimal.NewFromInt(revenueBarWidth)).IntPart())
		}
		bar := strings.Repeat("█", width)
		if width == 0 && day.Revenue.IsPositive() {
			bar = "▏"
			width = 1
		}
		pad := strings.Repeat(" ", revenueBarWidth-width)
		b.WriteString(fmt.Sprintf("%s  %s%s %10s\n",
			day.Date.Format("Jan 02"), goodStyle.Render(bar), pad, day.Revenue.StringFixed(2)))
	}
	if len(series) == 0 {
		b.WriteString(mutedStyle.Render("No data."))
		b.WriteString("\n")
	}
	return b.String()
}
