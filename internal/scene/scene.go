// Package scene holds the shapes spawned on the canvas and applies tap,
// pan, pinch and rotate gestures to them.
package scene

import (
	"math/rand/v2"
	"slices"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"shapes/internal/geom"
)

// Scene is the ordered shape collection owned by the window. Index order
// is z-order, the last shape is in front. Not safe for concurrent use.
type Scene struct {
	shapes []*Shape
	rnd    *rand.Rand
	nextID int
	side   float64
	inset  float64
}

// Option configures a Scene.
type Option func(*Scene)

// WithRand sets the generator used for colors and draw seeds.
func WithRand(r *rand.Rand) Option {
	return func(s *Scene) { s.rnd = r }
}

// WithSeed seeds the scene's generator.
func WithSeed(seed uint64) Option {
	return func(s *Scene) { s.rnd = geom.NewSource(seed) }
}

// WithSide sets the side of spawned shapes' bounding square.
func WithSide(side float64) Option {
	return func(s *Scene) {
		if side > 2*s.inset {
			s.side = side
		}
	}
}

func New(opts ...Option) *Scene {
	s := &Scene{
		side:  geom.DefaultSide,
		inset: geom.DefaultInset,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Spawn places a new shape centered on at, on top of the others.
func (s *Scene) Spawn(at geom.Point) *Shape {
	s.nextID++
	sh := &Shape{
		ID:        s.nextID,
		Fill:      s.randomColor(),
		Alpha:     FillAlpha,
		Center:    at,
		Side:      s.side,
		Inset:     s.inset,
		transform: gg.Identity(),
		seed:      s.rnd.Uint64(),
	}
	s.shapes = append(s.shapes, sh)
	return sh
}

func (s *Scene) randomColor() colorful.Color {
	return colorful.Hsv(s.rnd.Float64()*360, FillSaturation, FillBrightness)
}

// Redraw asks the shape to draw itself anew; with a fresh seed it will
// usually come out as a different kind.
func (s *Scene) Redraw(id int) bool {
	sh := s.Get(id)
	if sh == nil {
		return false
	}
	sh.seed = s.rnd.Uint64()
	return true
}

// Get returns the shape with id, or nil.
func (s *Scene) Get(id int) *Shape {
	if i := s.index(id); i >= 0 {
		return s.shapes[i]
	}
	return nil
}

// HitTest returns the front-most shape containing p, or nil.
func (s *Scene) HitTest(p geom.Point) *Shape {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if s.shapes[i].Contains(p) {
			return s.shapes[i]
		}
	}
	return nil
}

// BringToFront moves the shape to the top of the z-order.
func (s *Scene) BringToFront(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	sh := s.shapes[i]
	s.shapes = append(slices.Delete(s.shapes, i, i+1), sh)
	return true
}

// Pan moves the shape by a canvas-space translation.
func (s *Scene) Pan(id int, dx, dy float64) bool {
	return s.gesture(id, func(sh *Shape) { sh.pan(dx, dy) })
}

// Pinch composes an incremental uniform scale into the shape's transform.
// A non-positive factor is ignored.
func (s *Scene) Pinch(id int, factor float64) bool {
	if factor <= 0 {
		return false
	}
	return s.gesture(id, func(sh *Shape) { sh.pinch(factor) })
}

// Rotate composes an incremental rotation, in radians.
func (s *Scene) Rotate(id int, angle float64) bool {
	return s.gesture(id, func(sh *Shape) { sh.rotate(angle) })
}

// every gesture brings its shape to the front before applying
func (s *Scene) gesture(id int, apply func(*Shape)) bool {
	if !s.BringToFront(id) {
		return false
	}
	apply(s.shapes[len(s.shapes)-1])
	return true
}

func (s *Scene) Remove(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.shapes = slices.Delete(s.shapes, i, i+1)
	return true
}

func (s *Scene) Clear() { s.shapes = nil }

func (s *Scene) Len() int { return len(s.shapes) }

// Shapes returns the shapes back to front. The slice is a copy.
func (s *Scene) Shapes() []*Shape {
	return slices.Clone(s.shapes)
}

func (s *Scene) index(id int) int {
	return slices.IndexFunc(s.shapes, func(sh *Shape) bool { return sh.ID == id })
}
