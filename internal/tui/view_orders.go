package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/service/orders"
)

var orderColumns = []column{
	{title: "Order", width: 12},
	{title: "Customer", width: 24},
	{title: "Date", width: 12},
	{title: "Items", width: 5, right: true},
	{title: "Subtotal", width: 10, right: true},
	{title: "Status", width: 14},
	{title: "Tracking", width: 18},
}

func (m Model) viewOrders() string {
	var b strings.Builder

	summary := m.orders.Summarize()
	cards := []string{
		renderCard("Orders", strconv.Itoa(summary.Total), cardValueStyle),
		renderCard("Pending", strconv.Itoa(summary.Pending), warnStyle.Bold(true)),
		renderCard("Shipped", strconv.Itoa(summary.Shipped), goodStyle.Bold(true)),
		renderCard("Total Value", summary.TotalValue.StringFixed(2), cardValueStyle),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	list := m.orders.Orders()
	rows := make([][]string, 0, len(list))
	for _, order := range list {
		tracking := order.TrackingNumber
		if tracking == "" {
			tracking = "-"
		}
		rows = append(rows, []string{
			order.OrderID,
			order.Customer,
			order.Timestamp.Format("Jan 2, 2006"),
			strconv.Itoa(len(order.Lines)),
			order.Subtotal.StringFixed(2),
			statusCell(order.Status),
			tracking,
		})
	}

	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("No orders."))
	} else {
		b.WriteString(renderTable(orderColumns, rows, m.ord.cursor))
	}
	return b.String()
}

func statusCell(status models.OrderStatus) string {
	style := orders.StyleForStatus(status)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.Color)).
		Render(style.Icon + " " + status.String())
}

func (m Model) viewOrderDetail() string {
	order, ok := m.orders.Order(m.ord.detailID)
	if !ok {
		return mutedStyle.Render("Order no longer present.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Order " + order.OrderID))
	b.WriteString("  ")
	b.WriteString(statusCell(order.Status))
	b.WriteString("\n\n")

	b.WriteString(fieldLabelStyle.Render("Customer") + order.Customer + "\n")
	if order.CustomerPhone != "" {
		b.WriteString(fieldLabelStyle.Render("Phone") + order.CustomerPhone + "\n")
	}
	b.WriteString(fieldLabelStyle.Render("Address") + order.Address + "\n")
	b.WriteString(fieldLabelStyle.Render("Placed") + order.Timestamp.Format("Jan 2, 2006 15:04") + "\n\n")

	for _, line := range order.Lines {
		b.WriteString(fmt.Sprintf("  %-8s %-14s %-28s ×%-4d %10s\n",
			line.Bin, line.SKU, truncate(line.Description, 28), line.Qty, line.Price.StringFixed(2)))
	}
	b.WriteString(fmt.Sprintf("\n%s%s\n\n", fieldLabelStyle.Render("Subtotal"), order.Subtotal.StringFixed(2)))

	label := func(text string, idx int) string {
		if m.ord.detailFocus == idx {
			return focusedLabelStyle.Render(text)
		}
		return fieldLabelStyle.Render(text)
	}
	b.WriteString(label("Carrier", 0) + m.ord.carrier.View() + "\n")
	b.WriteString(label("Tracking", 1) + m.ord.tracking.View() + "\n\n")

	b.WriteString(helpStyle.Render("enter save tracking · ctrl+s change status · ctrl+p print slip · esc close"))
	return b.String()
}

func (m Model) viewStatusPicker() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Change Status"))
	b.WriteString("\n\n")

	for i, status := range models.AllOrderStatuses {
		line := "  " + statusCell(status)
		if i == m.ord.pickerCursor {
			line = "> " + statusCell(status)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter apply · esc back"))
	return b.String()
}
