package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	bannerFetchInventory = "Failed to fetch inventory."
	bannerFetchOrders    = "Failed to fetch orders."
	bannerUpdateItem     = "Failed to update item. Reverting changes."
	bannerUpdateStatus   = "Failed to update order status. Reverting changes."
	bannerUpdateTracking = "Failed to update tracking. Reverting changes."
)

// Update is the single event loop. Remote results arrive as messages; key
// handling is routed by state, then by open modal, then by active tab.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionCheckedMsg:
		if msg.authenticated {
			return m.enterMain()
		}
		m.state = stateLogin
		return m, m.login.username.Focus()

	case signInResultMsg:
		m.login.busy = false
		if msg.err != nil {
			m.login.errMsg = msg.err.Error()
			return m, nil
		}
		m.login.errMsg = ""
		m.login.password.SetValue("")
		return m.enterMain()

	case signOutDoneMsg:
		if !m.session.Authenticated() {
			m.state = stateLogin
			m.modal = modalNone
			m.banner = ""
			m.login.username.SetValue("")
			m.login.password.SetValue("")
			m.login.focus = 0
			return m, m.login.username.Focus()
		}
		// Sign-out failed remotely; the session gate keeps us signed in.
		m.setBanner("Failed to sign out.", true)
		return m, nil

	case inventoryLoadedMsg:
		if msg.err != nil {
			m.setBanner(bannerFetchInventory, true)
			return m, nil
		}
		m.clearBannerIf(bannerFetchInventory)
		m.clampInventoryCursor()
		return m, nil

	case ordersLoadedMsg:
		if msg.err != nil {
			m.setBanner(bannerFetchOrders, true)
			return m, nil
		}
		m.clearBannerIf(bannerFetchOrders)
		m.clampOrderCursor()
		return m, nil

	case itemSavedMsg:
		if msg.err != nil {
			m.setBanner(bannerUpdateItem, true)
		}
		return m, nil

	case statusChangedMsg:
		if msg.err != nil {
			m.setBanner(bannerUpdateStatus, true)
		}
		return m, nil

	case trackingSavedMsg:
		if msg.err != nil {
			m.setBanner(bannerUpdateTracking, true)
		}
		return m, nil

	case exportDoneMsg:
		m.ana.exporting = false
		if msg.err != nil {
			m.ana.exportNote = "Export failed: " + msg.err.Error()
		} else {
			m.ana.exportNote = "Report exported."
		}
		return m, nil

	case slipOpenedMsg:
		if msg.err != nil {
			m.setBanner("Failed to open packing slip.", true)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case stateChecking:
		return m, nil
	case stateLogin:
		return m.updateLogin(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.busy {
		return m, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.login.focus = 1 - m.login.focus
		if m.login.focus == 0 {
			m.login.password.Blur()
			return m, m.login.username.Focus()
		}
		m.login.username.Blur()
		return m, m.login.password.Focus()

	case "enter":
		username := strings.TrimSpace(m.login.username.Value())
		password := m.login.password.Value()
		if username == "" || password == "" {
			m.login.errMsg = "Enter a username and password."
			return m, nil
		}
		m.login.busy = true
		m.login.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.signInCmd(username, password))
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.username, cmd = m.login.username.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != modalNone {
		return m.updateModal(msg)
	}

	if m.inv.searchFocused && m.tab == tabInventory {
		return m.updateSearch(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		return m.activateTab((m.tab + 1) % 3)
	case "shift+tab":
		return m.activateTab((m.tab + 2) % 3)
	case "ctrl+l":
		return m, m.signOutCmd()
	}

	switch m.tab {
	case tabInventory:
		return m.updateInventoryTab(msg)
	case tabOrders:
		return m.updateOrdersTab(msg)
	default:
		return m.updateAnalyticsTab(msg)
	}
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalEditItem:
		return m.updateEditModal(msg)
	case modalOrderDetail:
		return m.updateOrderDetail(msg)
	case modalStatusPicker:
		return m.updateStatusPicker(msg)
	}
	return m, nil
}

// enterMain mounts the tabbed interface and triggers the inventory tab's
// activation fetch.
func (m Model) enterMain() (tea.Model, tea.Cmd) {
	m.state = stateMain
	m.tab = tabInventory
	m.modal = modalNone
	m.banner = ""
	return m, m.refreshInventoryCmd()
}

// activateTab switches tabs and refetches that tab's data. This is the only
// trigger for refetching; there is no background polling.
func (m Model) activateTab(next tab) (tea.Model, tea.Cmd) {
	m.tab = next
	m.ana.exportNote = ""
	switch next {
	case tabInventory:
		return m, m.refreshInventoryCmd()
	case tabOrders:
		return m, m.refreshOrdersCmd()
	default:
		// Analytics reads both lists.
		return m, tea.Batch(m.refreshOrdersCmd(), m.refreshInventoryCmd())
	}
}

func (m *Model) setBanner(text string, isError bool) {
	m.banner = text
	m.bannerError = isError
}

func (m *Model) clearBannerIf(text string) {
	if m.banner == text {
		m.banner = ""
	}
}

func (m *Model) clampInventoryCursor() {
	visible := len(m.inventory.Visible())
	if m.inv.cursor >= visible {
		m.inv.cursor = visible - 1
	}
	if m.inv.cursor < 0 {
		m.inv.cursor = 0
	}
}

func (m *Model) clampOrderCursor() {
	count := len(m.orders.Orders())
	if m.ord.cursor >= count {
		m.ord.cursor = count - 1
	}
	if m.ord.cursor < 0 {
		m.ord.cursor = 0
	}
}
