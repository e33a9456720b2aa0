package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"shapes/internal/geom"
	"shapes/internal/render"
)

// snapshotMsg reports the outcome of a PNG export.
type snapshotMsg struct {
	path string
	err  error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m, cmd, handled := m.handleKey(msg); handled {
			m.refreshInspector()
			return m, cmd
		}
		if m.showInspector {
			m.tbl, cmd = m.tbl.Update(msg)
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case snapshotMsg:
		if msg.err != nil {
			m.status = "snapshot error: " + msg.err.Error()
			log.Error().Err(msg.err).Msg("snapshot failed")
		} else {
			m.status = "saved " + msg.path
			log.Info().Str("path", msg.path).Msg("snapshot saved")
		}
	}
	m.refreshInspector()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, m.keys.Inspect):
		m.showInspector = !m.showInspector
		m.status = fmt.Sprintf("inspector: %v", m.showInspector)
	case key.Matches(msg, m.keys.Spawn):
		w, h := m.canvasSize()
		m.spawn(render.CellToWorld(w/2, h/2))
	case key.Matches(msg, m.keys.Next):
		m.selectNext()
	case key.Matches(msg, m.keys.Grow):
		m.pinch(m.selected, pinchStep)
	case key.Matches(msg, m.keys.Shrink):
		m.pinch(m.selected, 1/pinchStep)
	case key.Matches(msg, m.keys.RotateLeft):
		m.rotate(m.selected, -rotateStep)
	case key.Matches(msg, m.keys.RotateRight):
		m.rotate(m.selected, rotateStep)
	case key.Matches(msg, m.keys.Redraw):
		if m.scene.Redraw(m.selected) {
			m.status = fmt.Sprintf("shape %d redrawn as %s", m.selected, m.scene.Get(m.selected).Kind())
		} else {
			m.status = "no shape selected"
		}
	case key.Matches(msg, m.keys.Remove):
		if m.scene.Remove(m.selected) {
			m.status = fmt.Sprintf("removed shape %d", m.selected)
			if m.dragID == m.selected {
				m.pressed, m.dragID = false, 0
			}
			m.selected = 0
		} else {
			m.status = "no shape selected"
		}
	case key.Matches(msg, m.keys.Clear):
		m.scene.Clear()
		m.selected = 0
		m.pressed, m.dragID = false, 0
		m.status = "cleared"
	case key.Matches(msg, m.keys.Snapshot):
		return m, m.snapshot(), true
	default:
		return m, nil, false
	}
	return m, nil, true
}

// handleMouse turns terminal mouse events into gestures. A press and
// release without motion is a tap and spawns a shape, even over another
// shape. Motion after pressing on a shape pans it; the wheel pinches.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	cx, cy, inside := m.canvasCell(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if !inside {
			return m
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.pressed, m.dragged = true, false
			m.lastX, m.lastY = msg.X, msg.Y
			m.dragID = 0
			if hit := m.scene.HitTest(render.CellToWorld(cx, cy)); hit != nil {
				m.dragID = hit.ID
				m.selected = hit.ID
			}
		case tea.MouseButtonWheelUp:
			if hit := m.scene.HitTest(render.CellToWorld(cx, cy)); hit != nil {
				m.pinch(hit.ID, pinchStep)
			}
		case tea.MouseButtonWheelDown:
			if hit := m.scene.HitTest(render.CellToWorld(cx, cy)); hit != nil {
				m.pinch(hit.ID, 1/pinchStep)
			}
		}
	case tea.MouseActionMotion:
		// a lost release leaves pressed set; plain hover ends the drag
		if msg.Button != tea.MouseButtonLeft {
			m.pressed, m.dragged, m.dragID = false, false, 0
			return m
		}
		if !m.pressed {
			return m
		}
		dx, dy := msg.X-m.lastX, msg.Y-m.lastY
		if dx == 0 && dy == 0 {
			return m
		}
		m.dragged = true
		m.lastX, m.lastY = msg.X, msg.Y
		if m.dragID != 0 {
			wx, wy := render.CellDelta(dx, dy)
			if m.scene.Pan(m.dragID, wx, wy) {
				sh := m.scene.Get(m.dragID)
				m.status = fmt.Sprintf("shape %d at (%.0f, %.0f)", sh.ID, sh.Center.X, sh.Center.Y)
			} else {
				m.dragID = 0
			}
		}
	case tea.MouseActionRelease:
		if m.pressed && !m.dragged && inside {
			m.spawn(render.CellToWorld(cx, cy))
		}
		m.pressed, m.dragged, m.dragID = false, false, 0
	}
	return m
}

func (m *Model) spawn(at geom.Point) {
	sh := m.scene.Spawn(at)
	m.selected = sh.ID
	kind := sh.Kind()
	m.status = fmt.Sprintf("spawned %s #%d", kind, sh.ID)
	log.Info().Int("id", sh.ID).Str("kind", kind.String()).
		Float64("x", at.X).Float64("y", at.Y).Msg("spawn")
}

func (m *Model) pinch(id int, factor float64) {
	if !m.scene.Pinch(id, factor) {
		m.status = "no shape selected"
		return
	}
	m.selected = id
	m.status = fmt.Sprintf("shape %d scale %.2fx", id, m.scene.Get(id).Scale())
}

func (m *Model) rotate(id int, degrees float64) {
	if !m.scene.Rotate(id, degrees*math.Pi/180) {
		m.status = "no shape selected"
		return
	}
	m.selected = id
	rot := m.scene.Get(id).Rotation() * 180 / math.Pi
	m.status = fmt.Sprintf("shape %d rotation %.0f°", id, rot)
}

// selectNext cycles the selection from front to back.
func (m *Model) selectNext() {
	shapes := m.scene.Shapes()
	if len(shapes) == 0 {
		m.status = "no shapes"
		return
	}
	next := shapes[len(shapes)-1]
	for i := len(shapes) - 1; i > 0; i-- {
		if shapes[i].ID == m.selected {
			next = shapes[i-1]
			break
		}
	}
	m.selected = next.ID
	m.status = fmt.Sprintf("selected shape %d", next.ID)
}

func (m Model) snapshot() tea.Cmd {
	w, h := m.canvasSize()
	ww, wh := render.WorldSize(w, h)
	shapes := m.scene.Shapes()
	// the command runs off the update loop, so it gets its own copies
	for i, sh := range shapes {
		shapes[i] = sh.Clone()
	}
	dir, now := m.snapshotDir, m.now()
	return func() tea.Msg {
		p, err := render.SaveSnapshot(dir, shapes, int(ww), int(wh), now)
		return snapshotMsg{path: p, err: err}
	}
}
