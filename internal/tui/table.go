package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// column describes one table column with a fixed display width.
type column struct {
	title string
	width int
	right bool
}

// renderTable lays out a header row and body rows with per-cell truncation.
// Row styles apply to the whole line; the selected row takes the highlight
// style.
func renderTable(cols []column, rows [][]string, cursor int) string {
	var b strings.Builder

	b.WriteString(headerRowStyle.Render(renderCells(cols, headerTitles(cols))))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", tableWidth(cols))))
	b.WriteString("\n")

	for i, row := range rows {
		line := renderCells(cols, row)
		if i == cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func headerTitles(cols []column) []string {
	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
	}
	return titles
}

func tableWidth(cols []column) int {
	width := 0
	for _, col := range cols {
		width += col.width + 2
	}
	return width
}

func renderCells(cols []column, cells []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = truncate(cell, col.width)
		if col.right {
			cell = lipgloss.NewStyle().Width(col.width).Align(lipgloss.Right).Render(cell)
		} else {
			cell = lipgloss.NewStyle().Width(col.width).Render(cell)
		}
		parts[i] = cell
	}
	return strings.Join(parts, "  ")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
