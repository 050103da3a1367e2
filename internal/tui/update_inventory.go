package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/service/inventory"
)

func (m Model) updateInventoryTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.inv.searchFocused = true
		return m, m.inv.search.Focus()

	case "up", "k":
		if m.inv.cursor > 0 {
			m.inv.cursor--
		}
		return m, nil

	case "down", "j":
		if m.inv.cursor < len(m.inventory.Visible())-1 {
			m.inv.cursor++
		}
		return m, nil

	case "enter":
		visible := m.inventory.Visible()
		if m.inv.cursor < len(visible) {
			m.editor = newItemEditor(visible[m.inv.cursor])
			m.modal = modalEditItem
		}
		return m, nil

	case "s":
		// Cycle the sort column; a fresh column starts ascending.
		m.inv.sortIdx = (m.inv.sortIdx + 1) % len(sortCycle)
		m.inventory.RequestSort(sortCycle[m.inv.sortIdx])
		return m, nil

	case "r":
		// Re-request the current column to flip direction.
		if m.inv.sortIdx >= 0 {
			m.inventory.RequestSort(sortCycle[m.inv.sortIdx])
		}
		return m, nil

	case "t":
		types := m.inventory.ItemTypes()
		m.inv.typeIdx = (m.inv.typeIdx + 1) % (len(types) + 1)
		if m.inv.typeIdx == 0 {
			m.inventory.SetTypeFilter("")
		} else {
			m.inventory.SetTypeFilter(types[m.inv.typeIdx-1])
		}
		m.clampInventoryCursor()
		return m, nil

	case "b":
		bins := m.inventory.Bins()
		m.inv.binIdx = (m.inv.binIdx + 1) % (len(bins) + 1)
		if m.inv.binIdx == 0 {
			m.inventory.SetBinFilter("")
		} else {
			m.inventory.SetBinFilter(bins[m.inv.binIdx-1])
		}
		m.clampInventoryCursor()
		return m, nil

	case "l":
		m.inventory.ToggleStockFilter(models.StockLow)
		m.clampInventoryCursor()
		return m, nil

	case "o":
		m.inventory.ToggleStockFilter(models.StockOut)
		m.clampInventoryCursor()
		return m, nil
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inv.searchFocused = false
		m.inv.search.Blur()
		return m, nil
	case "enter":
		m.inv.searchFocused = false
		m.inv.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.inv.search, cmd = m.inv.search.Update(msg)
	m.inventory.SetSearch(m.inv.search.Value())
	m.clampInventoryCursor()
	return m, cmd
}

// Editor field order: description, bin, unit, type, quantity, price.
const (
	fieldDesc = iota
	fieldBin
	fieldDSU
	fieldType
	fieldQty
	fieldPrice
)

func (m Model) updateEditModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.editor
	if ed == nil {
		m.modal = modalNone
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.modal = modalNone
		m.editor = nil
		return m, nil

	case "tab", "down":
		return m, m.focusEditorField((ed.focus + 1) % ed.fields)

	case "shift+tab", "up":
		return m, m.focusEditorField((ed.focus + ed.fields - 1) % ed.fields)

	case "enter":
		return m.saveEditedItem()
	}

	if ed.focus == fieldQty {
		switch msg.String() {
		case "left", "-":
			ed.qty = inventory.AdjustQty(ed.qty, -1)
		case "right", "+":
			ed.qty = inventory.AdjustQty(ed.qty, 1)
		case "shift+left":
			ed.qty = inventory.AdjustQty(ed.qty, -6)
		case "shift+right":
			ed.qty = inventory.AdjustQty(ed.qty, 6)
		case "ctrl+left":
			ed.qty = inventory.AdjustQty(ed.qty, -12)
		case "ctrl+right":
			ed.qty = inventory.AdjustQty(ed.qty, 12)
		}
		return m, nil
	}

	if ed.focus == fieldPrice {
		prior := ed.price.Value()
		var cmd tea.Cmd
		ed.price, cmd = ed.price.Update(msg)
		if !inventory.ValidPriceInput(ed.price.Value()) {
			ed.price.SetValue(prior)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	switch ed.focus {
	case fieldDesc:
		ed.desc, cmd = ed.desc.Update(msg)
	case fieldBin:
		ed.bin, cmd = ed.bin.Update(msg)
	case fieldDSU:
		ed.dsu, cmd = ed.dsu.Update(msg)
	case fieldType:
		ed.typ, cmd = ed.typ.Update(msg)
	}
	return m, cmd
}

func (m Model) focusEditorField(next int) tea.Cmd {
	ed := m.editor
	ed.desc.Blur()
	ed.bin.Blur()
	ed.dsu.Blur()
	ed.typ.Blur()
	ed.price.Blur()

	ed.focus = next
	switch next {
	case fieldDesc:
		return ed.desc.Focus()
	case fieldBin:
		return ed.bin.Focus()
	case fieldDSU:
		return ed.dsu.Focus()
	case fieldType:
		return ed.typ.Focus()
	case fieldPrice:
		return ed.price.Focus()
	}
	return nil
}

// saveEditedItem closes the modal immediately and applies the change
// optimistically; the remote patch runs as a command and rolls the list
// back on failure.
func (m Model) saveEditedItem() (tea.Model, tea.Cmd) {
	ed := m.editor
	edited := ed.item
	edited.Description = ed.desc.Value()
	edited.Bin = ed.bin.Value()
	edited.DSU = ed.dsu.Value()
	edited.ItemType = ed.typ.Value()
	edited.Qty = ed.qty
	edited.Price = inventory.ParsePriceInput(ed.price.Value())

	update := m.inventory.SaveItem(edited)
	m.modal = modalNone
	m.editor = nil

	return m, commitCmd(update, func(err error) tea.Msg { return itemSavedMsg{err: err} })
}
