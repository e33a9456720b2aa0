package scene

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"shapes/internal/geom"
)

// Fill parameters for spawned shapes; only the hue is random.
const (
	FillSaturation = 0.8
	FillBrightness = 1.0
	FillAlpha      = 0.8
)

// Shape is one spawned figure. Its outline is not stored: every call to
// Outline builds it again from the shape's draw seed.
type Shape struct {
	ID    int
	Fill  colorful.Color
	Alpha float64

	Center geom.Point
	Side   float64
	Inset  float64

	// linear part of the view transform; translation lives in Center
	transform gg.Matrix
	seed      uint64
}

// Outline builds the shape's outline in local coordinates, inside the
// Side x Side square with its origin at the top-left.
func (s *Shape) Outline() geom.Outline {
	return geom.Generate(s.Side, s.Inset, geom.NewSource(s.seed))
}

// Clone returns an independent copy that draws the same outline.
func (s *Shape) Clone() *Shape {
	c := *s
	return &c
}

// Transform returns the accumulated scale and rotation.
func (s *Shape) Transform() gg.Matrix { return s.transform }

// Scale is the uniform scale factor of the transform.
func (s *Shape) Scale() float64 {
	m := s.transform
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// Rotation is the transform's rotation in radians, in (-π, π].
func (s *Shape) Rotation() float64 {
	return math.Atan2(s.transform.D, s.transform.A)
}

// Matrix maps local outline coordinates to canvas coordinates: the
// square is centered on the origin, transformed, then moved to Center.
func (s *Shape) Matrix() gg.Matrix {
	return gg.Translate(s.Center.X, s.Center.Y).
		Multiply(s.transform).
		Multiply(gg.Translate(-s.Side/2, -s.Side/2))
}

// CanvasPath returns the outline as a gg path in canvas coordinates.
func (s *Shape) CanvasPath() *gg.Path {
	return OutlinePath(s.Outline()).Transform(s.Matrix())
}

// Path returns the outline flattened in canvas coordinates.
func (s *Shape) Path(tolerance float64) []geom.Point {
	return Ring(s.CanvasPath(), tolerance)
}

// Contains reports whether the canvas point p falls inside the shape.
func (s *Shape) Contains(p geom.Point) bool {
	return s.CanvasPath().Contains(gg.Pt(p.X, p.Y))
}

// Bounds returns the canvas-space bounding box.
func (s *Shape) Bounds() geom.Rect {
	return RectOf(s.CanvasPath().BoundingBox())
}

// Kind reports which outline the shape currently draws.
func (s *Shape) Kind() geom.Kind {
	return s.Outline().Kind
}

func (s *Shape) pan(dx, dy float64) {
	s.Center.X += dx
	s.Center.Y += dy
}

func (s *Shape) pinch(factor float64) {
	s.transform = s.transform.Multiply(gg.Scale(factor, factor))
}

func (s *Shape) rotate(angle float64) {
	s.transform = s.transform.Multiply(gg.Rotate(angle))
}
