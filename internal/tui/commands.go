package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dreamworld/wms-console/internal/service/optimistic"
)

// remoteTimeout bounds every command-scoped remote call.
const remoteTimeout = 20 * time.Second

func remoteContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), remoteTimeout)
}

func (m Model) checkSessionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()
		return sessionCheckedMsg{authenticated: m.session.CheckSession(ctx)}
	}
}

func (m Model) signInCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()
		return signInResultMsg{err: m.session.SignIn(ctx, username, password)}
	}
}

func (m Model) signOutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()
		m.session.SignOut(ctx)
		return signOutDoneMsg{}
	}
}

func (m Model) refreshInventoryCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()
		return inventoryLoadedMsg{err: m.inventory.Refresh(ctx)}
	}
}

func (m Model) refreshOrdersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()
		return ordersLoadedMsg{err: m.orders.Refresh(ctx)}
	}
}

// commitCmd runs the remote half of an optimistic update. The local half has
// already been applied by the caller; on failure the update rolls itself
// back before the message reaches the update loop.
func commitCmd(update *optimistic.Update, wrap func(error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := remoteContext()
		defer cancel()
		return wrap(update.Commit(ctx))
	}
}

func (m Model) exportReportCmd() tea.Cmd {
	return func() tea.Msg {
		if m.exporter == nil {
			return exportDoneMsg{err: fmt.Errorf("export is not configured")}
		}
		ctx, cancel := remoteContext()
		defer cancel()
		now := time.Now()
		report := m.orders.Analytics(now, m.inventory.Items())
		return exportDoneMsg{err: m.exporter.AppendReport(ctx, now, report)}
	}
}

// openSlipCmd points the operator's browser at the loopback slip server.
func (m Model) openSlipCmd(customerID, orderID string) tea.Cmd {
	url := fmt.Sprintf("http://%s/slip/%s/%s", m.printAddr, customerID, orderID)
	return func() tea.Msg {
		return slipOpenedMsg{err: openBrowser(url)}
	}
}
