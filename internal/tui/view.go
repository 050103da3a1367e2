package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the whole screen for the current state.
func (m Model) View() string {
	switch m.state {
	case stateChecking:
		return m.viewSplash()
	case stateLogin:
		return m.viewLogin()
	default:
		return m.viewMain()
	}
}

func (m Model) viewSplash() string {
	body := titleStyle.Render("Dream World WMS") + "\n\n" +
		m.spinner.View() + " Checking session..."
	return m.centered(body)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dream World WMS"))
	b.WriteString("\n\n")
	b.WriteString(m.loginLabel("Username", 0))
	b.WriteString(m.login.username.View())
	b.WriteString("\n")
	b.WriteString(m.loginLabel("Password", 1))
	b.WriteString(m.login.password.View())
	b.WriteString("\n\n")

	if m.login.busy {
		b.WriteString(m.spinner.View() + " Signing in...")
	} else if m.login.errMsg != "" {
		b.WriteString(badStyle.Render(m.login.errMsg))
	} else {
		b.WriteString(helpStyle.Render("enter sign in · tab switch field · ctrl+c quit"))
	}

	return m.centered(modalStyle.Render(b.String()))
}

func (m Model) loginLabel(label string, field int) string {
	if m.login.focus == field {
		return focusedLabelStyle.Render(label)
	}
	return fieldLabelStyle.Render(label)
}

func (m Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.banner != "" {
		if m.bannerError {
			b.WriteString(bannerErrorStyle.Render(m.banner))
		} else {
			b.WriteString(bannerInfoStyle.Render(m.banner))
		}
		b.WriteString("\n")
	}

	switch m.tab {
	case tabInventory:
		b.WriteString(m.viewInventory())
	case tabOrders:
		b.WriteString(m.viewOrders())
	default:
		b.WriteString(m.viewAnalytics())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	if m.modal != modalNone {
		return m.overlayModal(b.String())
	}
	return b.String()
}

func (m Model) viewHeader() string {
	tabs := make([]string, 0, 3)
	for _, t := range []tab{tabInventory, tabOrders, tabAnalytics} {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(tabTitles[t]))
		} else {
			tabs = append(tabs, tabStyle.Render(tabTitles[t]))
		}
	}
	left := titleStyle.Render(" Dream World WMS ")
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Join(tabs, ""))
}

func (m Model) viewFooter() string {
	switch m.tab {
	case tabInventory:
		return helpStyle.Render("↑/↓ move · enter edit · / search · s sort · r reverse · t type · b bin · l low · o out · tab switch · ctrl+l logout · q quit")
	case tabOrders:
		return helpStyle.Render("↑/↓ move · enter detail · p print slip · tab switch · ctrl+l logout · q quit")
	default:
		return helpStyle.Render("w window · e export · tab switch · ctrl+l logout · q quit")
	}
}

// overlayModal renders the open modal centered over a dimmed base view. The
// base is kept for size only; true transparency is not worth the effort
// here.
func (m Model) overlayModal(base string) string {
	var content string
	switch m.modal {
	case modalEditItem:
		content = m.viewEditModal()
	case modalOrderDetail:
		content = m.viewOrderDetail()
	case modalStatusPicker:
		content = m.viewStatusPicker()
	}
	_ = base
	return m.centered(modalStyle.Render(content))
}

func (m Model) centered(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
