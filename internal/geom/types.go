package geom

import "fmt"

// Point is a position in the plane. Y grows downwards, as on screen.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Rect is an axis aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Square returns the side x side rect at the origin.
func Square(side float64) Rect {
	return Rect{W: side, H: side}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Kind selects one of the five outline families.
type Kind int

const (
	KindRoundedRect Kind = iota
	KindEllipse
	KindTriangle
	KindRegularPolygon
	KindStar

	kindCount = 5
)

func (k Kind) String() string {
	switch k {
	case KindRoundedRect:
		return "rounded-rect"
	case KindEllipse:
		return "ellipse"
	case KindTriangle:
		return "triangle"
	case KindRegularPolygon:
		return "polygon"
	case KindStar:
		return "star"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Op is a path segment operation.
type Op int

const (
	OpMove Op = iota
	OpLine
	OpCubic
	OpClose
)

// Segment is one path command. Move and Line use Pts[0]; Cubic uses
// Pts[0] and Pts[1] as control points and Pts[2] as the end point.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// End returns the point the pen rests on after the segment.
func (s Segment) End() Point {
	if s.Op == OpCubic {
		return s.Pts[2]
	}
	return s.Pts[0]
}
