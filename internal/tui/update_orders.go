package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/service/orders"
)

func (m Model) updateOrdersTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.ord.cursor > 0 {
			m.ord.cursor--
		}
		return m, nil

	case "down", "j":
		if m.ord.cursor < len(m.orders.Orders())-1 {
			m.ord.cursor++
		}
		return m, nil

	case "enter":
		list := m.orders.Orders()
		if m.ord.cursor < len(list) {
			return m.openOrderDetail(list[m.ord.cursor])
		}
		return m, nil

	case "p":
		list := m.orders.Orders()
		if m.ord.cursor < len(list) {
			order := list[m.ord.cursor]
			return m, m.openSlipCmd(order.CustomerID, order.OrderID)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) openOrderDetail(order models.Order) (tea.Model, tea.Cmd) {
	m.ord.detailID = order.OrderID
	m.ord.carrier.SetValue(order.Carrier)
	m.ord.tracking.SetValue(order.TrackingNumber)
	m.ord.detailFocus = 0
	m.ord.tracking.Blur()
	m.modal = modalOrderDetail
	return m, m.ord.carrier.Focus()
}

func (m Model) updateOrderDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		m.ord.carrier.Blur()
		m.ord.tracking.Blur()
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.ord.detailFocus = 1 - m.ord.detailFocus
		if m.ord.detailFocus == 0 {
			m.ord.tracking.Blur()
			return m, m.ord.carrier.Focus()
		}
		m.ord.carrier.Blur()
		return m, m.ord.tracking.Focus()

	case "ctrl+s":
		return m.openStatusPicker()

	case "ctrl+p":
		if order, ok := m.orders.Order(m.ord.detailID); ok {
			return m, m.openSlipCmd(order.CustomerID, order.OrderID)
		}
		return m, nil

	case "enter":
		return m.saveTracking()
	}

	var cmd tea.Cmd
	if m.ord.detailFocus == 0 {
		m.ord.carrier, cmd = m.ord.carrier.Update(msg)
	} else {
		m.ord.tracking, cmd = m.ord.tracking.Update(msg)
	}
	return m, cmd
}

// saveTracking closes the detail modal and commits the optimistic tracking
// rewrite for the open order.
func (m Model) saveTracking() (tea.Model, tea.Cmd) {
	update := m.orders.UpdateTracking(m.ord.detailID, models.TrackingUpdate{
		Carrier:        m.ord.carrier.Value(),
		TrackingNumber: m.ord.tracking.Value(),
	})
	m.modal = modalNone
	m.ord.carrier.Blur()
	m.ord.tracking.Blur()
	if update == nil {
		return m, nil
	}
	return m, commitCmd(update, func(err error) tea.Msg { return trackingSavedMsg{err: err} })
}

func (m Model) openStatusPicker() (tea.Model, tea.Cmd) {
	order, ok := m.orders.Order(m.ord.detailID)
	if !ok {
		return m, nil
	}
	m.ord.pickerCursor = 0
	for i, status := range models.AllOrderStatuses {
		if status == order.Status {
			m.ord.pickerCursor = i
		}
	}
	m.modal = modalStatusPicker
	return m, nil
}

func (m Model) updateStatusPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalOrderDetail
		return m, nil

	case "up", "k":
		if m.ord.pickerCursor > 0 {
			m.ord.pickerCursor--
		}
		return m, nil

	case "down", "j":
		if m.ord.pickerCursor < len(models.AllOrderStatuses)-1 {
			m.ord.pickerCursor++
		}
		return m, nil

	case "enter":
		// The picker closes immediately; the patch settles in the background.
		status := models.AllOrderStatuses[m.ord.pickerCursor]
		update := m.orders.ChangeStatus(m.ord.detailID, status)
		m.modal = modalOrderDetail
		if update == nil {
			return m, nil
		}
		return m, commitCmd(update, func(err error) tea.Msg { return statusChangedMsg{err: err} })
	}
	return m, nil
}

func (m Model) updateAnalyticsTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "w":
		next := nextWindow(m.orders.Window())
		m.orders.SetWindow(next)
		return m, nil

	case "e":
		if m.ana.exporting {
			return m, nil
		}
		if m.exporter == nil {
			m.ana.exportNote = "Export unavailable: no spreadsheet configured."
			return m, nil
		}
		m.ana.exporting = true
		m.ana.exportNote = "Exporting..."
		return m, m.exportReportCmd()
	}
	return m, nil
}

func nextWindow(current int) int {
	for i, choice := range orders.WindowChoices {
		if choice == current {
			return orders.WindowChoices[(i+1)%len(orders.WindowChoices)]
		}
	}
	return orders.DefaultWindowDays
}
