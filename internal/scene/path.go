package scene

import (
	"math"

	"github.com/gogpu/gg"

	"shapes/internal/geom"
)

// Tracer receives outline segments. *gg.Context satisfies it directly.
type Tracer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Trace replays the outline's segments onto t.
func Trace(t Tracer, o geom.Outline) {
	for _, s := range o.Segments {
		switch s.Op {
		case geom.OpMove:
			t.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		case geom.OpLine:
			t.LineTo(s.Pts[0].X, s.Pts[0].Y)
		case geom.OpCubic:
			t.CubicTo(s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y, s.Pts[2].X, s.Pts[2].Y)
		case geom.OpClose:
			t.ClosePath()
		}
	}
}

// pathTracer adapts gg.Path, whose close method is named Close.
type pathTracer struct{ *gg.Path }

func (p pathTracer) ClosePath() { p.Close() }

// OutlinePath converts an outline to a gg path in the same coordinates.
func OutlinePath(o geom.Outline) *gg.Path {
	p := gg.NewPath()
	Trace(pathTracer{p}, o)
	return p
}

// Ring flattens p into a closed polygon that does not repeat its first
// point.
func Ring(p *gg.Path, tolerance float64) []geom.Point {
	flat := p.Flatten(tolerance)
	out := make([]geom.Point, 0, len(flat))
	for _, q := range flat {
		out = append(out, geom.Point{X: q.X, Y: q.Y})
	}
	// closing a contour that already ends on its start repeats that point
	for len(out) > 1 && nearlyEqual(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// RectOf converts a gg bounding box to a geom rect.
func RectOf(r gg.Rect) geom.Rect {
	return geom.Rect{X: r.Min.X, Y: r.Min.Y, W: r.Width(), H: r.Height()}
}

func nearlyEqual(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
