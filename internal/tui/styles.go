package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#2563eb")
	colorGood   = lipgloss.Color("#16a34a")
	colorWarn   = lipgloss.Color("#ca8a04")
	colorBad    = lipgloss.Color("#dc2626")
	colorMuted  = lipgloss.Color("#6b7280")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorAccent)

	bannerErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(colorBad).
				Padding(0, 1)

	bannerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorGood).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2).
			MarginRight(1)

	cardLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	cardValueStyle = lipgloss.NewStyle().Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 3)

	fieldLabelStyle   = lipgloss.NewStyle().Foreground(colorMuted).Width(14)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Width(14)

	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	selectedStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorAccent)

	goodStyle  = lipgloss.NewStyle().Foreground(colorGood)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	badStyle   = lipgloss.NewStyle().Foreground(colorBad)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
