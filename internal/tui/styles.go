package tui

import (
	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#0EA5E9")
	selectFg  = lipgloss.Color("#FACC15")
	borderCol = lipgloss.Color("#334155")

	appStyle      = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol)
	titleStyle    = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(baseDimFg)
	selectedStyle = lipgloss.NewStyle().Foreground(selectFg).Bold(true)
)

// swatch is a block in a shape's fill color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}

func inspectorStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderCol).
		BorderBottom(true).
		Foreground(baseDimFg)
	s.Selected = s.Selected.Foreground(selectFg).Background(lipgloss.NoColor{}).Bold(true)
	return s
}
