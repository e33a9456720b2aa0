package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shapes/internal/render"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	canvasW, canvasH := m.canvasSize()

	header := titleStyle.Render(" shapes ─ tap to spawn, drag to move, wheel to pinch ")
	header = lipgloss.NewStyle().Width(canvasW).Render(header)

	var body string
	if m.showInspector {
		m.tbl.SetHeight(min(canvasH-3, 20))
		box := boxStyle.Render(m.tbl.View())
		body = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, box)
	} else {
		c := render.NewCanvas(canvasW, canvasH)
		c.Select(m.selected)
		c.Draw(m.scene.Shapes())
		body = lipgloss.NewStyle().Width(canvasW).Height(canvasH).Render(c.String())
	}

	status := dimStyle.Render(" " + m.status + " ")
	count := dimStyle.Render(fmt.Sprintf(" shapes=%d ", m.scene.Len()))
	sel := ""
	if sh := m.scene.Get(m.selected); sh != nil {
		sel = selectedStyle.Render(fmt.Sprintf(" sel=%d ", sh.ID)) + swatch(sh.Fill.Hex())
	}
	spacer := strings.Repeat(" ", max(0, canvasW-lipgloss.Width(status)-lipgloss.Width(sel)-lipgloss.Width(count)))
	footer := lipgloss.JoinHorizontal(lipgloss.Bottom, status, spacer, sel, count)
	helpLine := ""
	if m.helpVisible {
		helpLine = " " + m.help.View(m.keys)
	}
	footer = lipgloss.JoinVertical(lipgloss.Left, footer, helpLine)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(canvasW).Height(m.height).Render(ui)
}
