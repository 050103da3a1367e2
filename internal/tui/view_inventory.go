package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/service/inventory"
)

var inventoryColumns = []column{
	{title: "SKU", width: 14},
	{title: "Description", width: 32},
	{title: "Type", width: 12},
	{title: "Bin", width: 8},
	{title: "Unit", width: 6},
	{title: "Qty", width: 7, right: true},
	{title: "Price", width: 10, right: true},
	{title: "Status", width: 6},
}

func (m Model) viewInventory() string {
	var b strings.Builder

	b.WriteString(m.viewInventoryCards())
	b.WriteString("\n")

	search := "/ " + m.inv.search.View()
	if !m.inv.searchFocused && m.inv.search.Value() == "" {
		search = helpStyle.Render("press / to search")
	}
	b.WriteString(search)
	b.WriteString("   ")
	b.WriteString(m.viewInventoryFilters())
	b.WriteString("\n\n")

	visible := m.inventory.Visible()
	rows := make([][]string, 0, len(visible))
	for _, item := range visible {
		rows = append(rows, []string{
			item.SKU,
			item.Description,
			item.ItemType,
			item.Bin,
			item.DSU,
			strconv.Itoa(item.Qty),
			item.Price.StringFixed(2),
			stockBadge(item.Qty),
		})
	}

	cols := make([]column, len(inventoryColumns))
	copy(cols, inventoryColumns)
	if cfg := m.inventory.Sort(); cfg != nil {
		marker := " ▲"
		if cfg.Direction == inventory.Descending {
			marker = " ▼"
		}
		for i := range cols {
			if sortKeyForColumn(i) == cfg.Key {
				cols[i].title += marker
			}
		}
	}

	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("No items match the current filters."))
	} else {
		b.WriteString(renderTable(cols, rows, m.inv.cursor))
	}
	return b.String()
}

func sortKeyForColumn(idx int) inventory.SortKey {
	if idx < len(sortCycle) {
		return sortCycle[idx]
	}
	return ""
}

func (m Model) viewInventoryCards() string {
	cards := []string{
		renderCard("Total Units", strconv.Itoa(m.inventory.TotalUnits()), cardValueStyle),
		renderCard("Unique SKUs", strconv.Itoa(m.inventory.UniqueSKUs()), cardValueStyle),
		renderCard("Low Stock", strconv.Itoa(m.inventory.LowStockCount()), warnStyle.Bold(true)),
		renderCard("Out of Stock", strconv.Itoa(m.inventory.OutOfStockCount()), badStyle.Bold(true)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(label, value string, valueStyle lipgloss.Style) string {
	return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + valueStyle.Render(value))
}

func (m Model) viewInventoryFilters() string {
	var parts []string

	typeLabel := "type: all"
	types := m.inventory.ItemTypes()
	if m.inv.typeIdx > 0 && m.inv.typeIdx <= len(types) {
		typeLabel = "type: " + types[m.inv.typeIdx-1]
	}
	parts = append(parts, typeLabel)

	binLabel := "bin: all"
	bins := m.inventory.Bins()
	if m.inv.binIdx > 0 && m.inv.binIdx <= len(bins) {
		binLabel = "bin: " + bins[m.inv.binIdx-1]
	}
	parts = append(parts, binLabel)

	if m.inventory.StockFilterActive(models.StockLow) {
		parts = append(parts, warnStyle.Render("low"))
	}
	if m.inventory.StockFilterActive(models.StockOut) {
		parts = append(parts, badStyle.Render("out"))
	}

	return mutedStyle.Render("[" + strings.Join(parts, " · ") + "]")
}

func stockBadge(qty int) string {
	switch models.StockStatusFor(qty) {
	case models.StockOut:
		return badStyle.Render("OUT")
	case models.StockLow:
		return warnStyle.Render("LOW")
	default:
		return goodStyle.Render("OK")
	}
}

func (m Model) viewEditModal() string {
	ed := m.editor
	if ed == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit Item " + ed.item.SKU))
	b.WriteString("\n\n")

	field := func(label string, idx int, view string) {
		if ed.focus == idx {
			b.WriteString(focusedLabelStyle.Render(label))
		} else {
			b.WriteString(fieldLabelStyle.Render(label))
		}
		b.WriteString(view)
		b.WriteString("\n")
	}

	field("Description", fieldDesc, ed.desc.View())
	field("Bin", fieldBin, ed.bin.View())
	field("Unit", fieldDSU, ed.dsu.View())
	field("Type", fieldType, ed.typ.View())
	field("Quantity", fieldQty, fmt.Sprintf("%d  %s", ed.qty, helpStyle.Render("←/→ ±1  shift ±6  ctrl ±12")))
	field("Price", fieldPrice, ed.price.View())

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save · esc cancel · tab next field"))
	return b.String()
}
