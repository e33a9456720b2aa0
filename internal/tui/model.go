package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"shapes/internal/config"
	"shapes/internal/scene"
)

// Layout rows around the canvas.
const (
	headerHeight = 1
	footerHeight = 2
)

// Gesture step sizes for wheel and keyboard input.
const (
	pinchStep  = 1.1
	rotateStep = 15.0 // degrees
)

type Model struct {
	width  int
	height int

	helpVisible bool
	status      string

	scene    *scene.Scene
	selected int // id of the last touched shape, 0 for none

	// pointer state between press and release
	pressed bool
	dragged bool
	dragID  int
	lastX   int
	lastY   int

	// inspector table
	showInspector bool
	tbl           table.Model

	keys keyMap
	help help.Model

	snapshotDir string
	now         func() time.Time
}

func New(cfg config.Config) Model {
	opts := []scene.Option{scene.WithSide(cfg.Side)}
	if cfg.Seed != 0 {
		opts = append(opts, scene.WithSeed(cfg.Seed))
	}
	m := Model{
		helpVisible: true,
		status:      "tap anywhere to spawn a shape",
		scene:       scene.New(opts...),
		keys:        defaultKeyMap(),
		help:        help.New(),
		snapshotDir: cfg.SnapshotDir,
		now:         time.Now,
	}
	m.tbl = table.New(
		table.WithColumns(inspectorColumns),
		table.WithFocused(true),
		table.WithStyles(inspectorStyles()),
	)
	m.tbl.SetHeight(12)
	return m
}

// Scene exposes the shapes being edited.
func (m Model) Scene() *scene.Scene { return m.scene }

func (m Model) Init() tea.Cmd { return nil }

// canvasSize is the canvas area in cells; it must match View.
func (m Model) canvasSize() (int, int) {
	return max(10, m.width), max(4, m.height-headerHeight-footerHeight)
}

// canvasCell converts a terminal position into canvas cell coordinates.
func (m Model) canvasCell(x, y int) (int, int, bool) {
	w, h := m.canvasSize()
	cx, cy := x, y-headerHeight
	return cx, cy, cx >= 0 && cx < w && cy >= 0 && cy < h
}
