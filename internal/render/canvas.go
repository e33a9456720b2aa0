// Package render rasterizes a scene onto a braille terminal canvas or a
// PNG image.
package render

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shapes/internal/geom"
	"shapes/internal/scene"
)

// UnitsPerMicro is how many canvas units one braille micro pixel covers.
// A reference 150 unit shape spans 15 cells by 7.5 rows.
const UnitsPerMicro = 5.0

// CellToWorld maps a terminal cell to the canvas point at its middle.
func CellToWorld(cx, cy int) geom.Point {
	return geom.Point{
		X: (float64(cx)*2 + 1) * UnitsPerMicro,
		Y: (float64(cy)*4 + 2) * UnitsPerMicro,
	}
}

// CellDelta converts a movement in cells to canvas units.
func CellDelta(dx, dy int) (float64, float64) {
	return float64(dx) * 2 * UnitsPerMicro, float64(dy) * 4 * UnitsPerMicro
}

// WorldSize is the canvas extent covered by w x h cells.
func WorldSize(w, h int) (float64, float64) {
	return float64(w) * 2 * UnitsPerMicro, float64(h) * 4 * UnitsPerMicro
}

// Canvas is a braille raster with one foreground color per cell, taken
// from the front-most shape touching it.
type Canvas struct {
	buf      *brailleBuf
	owner    [][]int // index into shapes, -1 for empty
	shapes   []*scene.Shape
	selected int
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(1, w), max(1, h)
	owner := make([][]int, h)
	for y := range owner {
		owner[y] = make([]int, w)
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}
	return &Canvas{buf: newBrailleBuf(w, h), owner: owner}
}

// Select marks the shape whose cells are rendered bold.
func (c *Canvas) Select(id int) { c.selected = id }

// Draw paints shapes back to front. Interiors use a checkerboard dot
// pattern that erases what lies beneath; edges are solid.
func (c *Canvas) Draw(shapes []*scene.Shape) {
	for _, sh := range shapes {
		c.shapes = append(c.shapes, sh)
		idx := len(c.shapes) - 1
		pts := sh.Path(UnitsPerMicro)
		if len(pts) < 3 {
			continue
		}
		mic := make([]geom.Point, len(pts))
		for i, p := range pts {
			mic[i] = geom.Point{X: p.X / UnitsPerMicro, Y: p.Y / UnitsPerMicro}
		}
		b := sh.Bounds()
		c.fill(mic, b.Y/UnitsPerMicro, b.MaxY()/UnitsPerMicro, idx)
		c.stroke(mic, idx)
	}
}

// fill scans micro rows top..bottom through pixel centers, even-odd rule.
func (c *Canvas) fill(ring []geom.Point, top, bottom float64, idx int) {
	hMic, wMic := c.buf.h*4, c.buf.w*2
	y0 := max(0, int(math.Floor(top)))
	y1 := min(hMic-1, int(math.Ceil(bottom)))
	var xs []float64
	for ym := y0; ym <= y1; ym++ {
		y := float64(ym) + 0.5
		xs = xs[:0]
		for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
			a, e := ring[i], ring[j]
			if (a.Y > y) == (e.Y > y) {
				continue
			}
			xs = append(xs, a.X+(y-a.Y)*(e.X-a.X)/(e.Y-a.Y))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xstart := max(0, int(math.Ceil(xs[i]-0.5)))
			xend := min(wMic-1, int(math.Floor(xs[i+1]-0.5)))
			for xm := xstart; xm <= xend; xm++ {
				if (xm+ym)%2 == 0 {
					c.buf.setPixel(xm, ym)
				} else {
					c.buf.clearPixel(xm, ym)
				}
				c.own(xm, ym, idx)
			}
		}
	}
}

func (c *Canvas) stroke(ring []geom.Point, idx int) {
	plot := func(x, y int) {
		c.buf.setPixel(x, y)
		c.own(x, y, idx)
	}
	for i := range ring {
		a, b := ring[i], ring[(i+1)%len(ring)]
		drawLineMicro(round(a.X), round(a.Y), round(b.X), round(b.Y), plot)
	}
}

func (c *Canvas) own(mx, my, idx int) {
	if cx, cy, _, ok := c.buf.cell(mx, my); ok {
		c.owner[cy][cx] = idx
	}
}

// Rows returns the raster as plain text, one string per cell row.
func (c *Canvas) Rows() []string {
	out := make([]string, c.buf.h)
	for y := 0; y < c.buf.h; y++ {
		row := make([]rune, c.buf.w)
		for x := 0; x < c.buf.w; x++ {
			row[x] = c.buf.rune(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Lines returns the raster with each run of cells styled in the color
// of the shape that owns it.
func (c *Canvas) Lines() []string {
	out := make([]string, c.buf.h)
	for y := 0; y < c.buf.h; y++ {
		var sb strings.Builder
		runStart := 0
		for x := 1; x <= c.buf.w; x++ {
			if x < c.buf.w && c.owner[y][x] == c.owner[y][runStart] {
				continue
			}
			sb.WriteString(c.styleRun(y, runStart, x))
			runStart = x
		}
		out[y] = sb.String()
	}
	return out
}

func (c *Canvas) styleRun(y, from, to int) string {
	row := make([]rune, 0, to-from)
	for x := from; x < to; x++ {
		row = append(row, c.buf.rune(x, y))
	}
	idx := c.owner[y][from]
	if idx < 0 {
		return string(row)
	}
	sh := c.shapes[idx]
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(sh.Fill.Hex()))
	if sh.ID == c.selected {
		st = st.Bold(true)
	}
	return st.Render(string(row))
}

// String renders the styled raster.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func round(v float64) int {
	return int(math.Round(v))
}
