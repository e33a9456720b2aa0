package tui

import (
	"fmt"
	"math"

	table "github.com/charmbracelet/bubbles/table"
)

var inspectorColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Kind", Width: 13},
	{Title: "Center", Width: 14},
	{Title: "Scale", Width: 7},
	{Title: "Rot", Width: 6},
	{Title: "Fill", Width: 9},
}

// refreshInspector rebuilds the table rows from the scene, front-most first.
func (m *Model) refreshInspector() {
	if !m.showInspector {
		return
	}
	shapes := m.scene.Shapes()
	rows := make([]table.Row, 0, len(shapes))
	cursor := 0
	for i := len(shapes) - 1; i >= 0; i-- {
		sh := shapes[i]
		if sh.ID == m.selected {
			cursor = len(rows)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", sh.ID),
			sh.Kind().String(),
			fmt.Sprintf("%.0f,%.0f", sh.Center.X, sh.Center.Y),
			fmt.Sprintf("%.2f", sh.Scale()),
			fmt.Sprintf("%.0f°", sh.Rotation()*180/math.Pi),
			sh.Fill.Hex(),
		})
	}
	m.tbl.SetRows(rows)
	if len(rows) > 0 {
		m.tbl.SetCursor(cursor)
	}
}
