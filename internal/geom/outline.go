package geom

import "math"

// Reference dimensions of a spawned shape.
const (
	DefaultSide  = 150.0
	DefaultInset = 2.0 // equals the stroke width so the stroke stays visible

	CornerRadius  = 10.0
	StarExtrusion = 30.0 // radius of the star's inner notches

	MinPolygonSides  = 3
	PolygonSideRange = 10 // sides in [3, 12]
	MinStarPoints    = 5
	StarPointRange   = 10 // points in [5, 14]
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498307936

// Outline is a closed contour. Vertices holds the corner points of
// polygonal kinds in path order and is nil for curved kinds.
type Outline struct {
	Kind     Kind
	Rect     Rect // box the outline was built in
	Sides    int  // polygon sides or star points, zero otherwise
	Vertices []Point
	Segments []Segment
}

// Closed reports whether the path ends with an explicit close.
func (o Outline) Closed() bool {
	return len(o.Segments) > 0 && o.Segments[len(o.Segments)-1].Op == OpClose
}

// Generate picks a kind uniformly and builds its outline inside a
// side x side square whose drawing box is shrunk by inset.
func Generate(side, inset float64, src Source) Outline {
	square := Square(side)
	box := square.Inset(inset)
	switch Kind(src.IntN(kindCount)) {
	case KindRoundedRect:
		return RoundedRect(box, CornerRadius)
	case KindEllipse:
		return Ellipse(box)
	case KindTriangle:
		return Triangle(box)
	case KindRegularPolygon:
		return RegularPolygon(square, MinPolygonSides+src.IntN(PolygonSideRange))
	default:
		return Star(square, MinStarPoints+src.IntN(StarPointRange), StarExtrusion)
	}
}

// PointFrom maps polar coordinates around center to the plane.
func PointFrom(angle, radius float64, center Point) Point {
	return Point{
		X: radius*math.Cos(angle) + center.X,
		Y: radius*math.Sin(angle) + center.Y,
	}
}

// RoundedRect builds r with quarter-ellipse corners of radius cr.
func RoundedRect(r Rect, cr float64) Outline {
	cr = math.Max(0, math.Min(cr, math.Min(r.W, r.H)/2))
	k := cr * (1 - kappa)
	x0, y0, x1, y1 := r.X, r.Y, r.MaxX(), r.MaxY()
	var b pathBuilder
	b.moveTo(Point{x0 + cr, y0})
	b.lineTo(Point{x1 - cr, y0})
	b.cubicTo(Point{x1 - k, y0}, Point{x1, y0 + k}, Point{x1, y0 + cr})
	b.lineTo(Point{x1, y1 - cr})
	b.cubicTo(Point{x1, y1 - k}, Point{x1 - k, y1}, Point{x1 - cr, y1})
	b.lineTo(Point{x0 + cr, y1})
	b.cubicTo(Point{x0 + k, y1}, Point{x0, y1 - k}, Point{x0, y1 - cr})
	b.lineTo(Point{x0, y0 + cr})
	b.cubicTo(Point{x0, y0 + k}, Point{x0 + k, y0}, Point{x0 + cr, y0})
	b.close()
	return Outline{Kind: KindRoundedRect, Rect: r, Segments: b.segs}
}

// Ellipse builds the ellipse inscribed in r from four cubic arcs.
func Ellipse(r Rect) Outline {
	c := r.Center()
	rx, ry := r.W/2, r.H/2
	ox, oy := rx*kappa, ry*kappa
	var b pathBuilder
	b.moveTo(Point{c.X + rx, c.Y})
	b.cubicTo(Point{c.X + rx, c.Y + oy}, Point{c.X + ox, c.Y + ry}, Point{c.X, c.Y + ry})
	b.cubicTo(Point{c.X - ox, c.Y + ry}, Point{c.X - rx, c.Y + oy}, Point{c.X - rx, c.Y})
	b.cubicTo(Point{c.X - rx, c.Y - oy}, Point{c.X - ox, c.Y - ry}, Point{c.X, c.Y - ry})
	b.cubicTo(Point{c.X + ox, c.Y - ry}, Point{c.X + rx, c.Y - oy}, Point{c.X + rx, c.Y})
	b.close()
	return Outline{Kind: KindEllipse, Rect: r, Segments: b.segs}
}

// Triangle joins the top-center, bottom-right and bottom-left of r.
func Triangle(r Rect) Outline {
	verts := []Point{
		{X: r.X + r.W/2, Y: r.Y},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.X, Y: r.MaxY()},
	}
	return polyline(KindTriangle, r, 0, verts)
}

// RegularPolygon places n vertices on the circle of radius r.W/2 around
// the center of r, starting straight up.
func RegularPolygon(r Rect, n int) Outline {
	c := r.Center()
	radius := r.W / 2
	step := 2 * math.Pi / float64(n)
	angle := -math.Pi / 2
	verts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		verts = append(verts, PointFrom(angle, radius, c))
		angle += step
	}
	return polyline(KindRegularPolygon, r, n, verts)
}

// Star alternates p outer points on radius r.W/2 with p inner notches
// on radius inner, each notch half a step past its outer point.
func Star(r Rect, p int, inner float64) Outline {
	c := r.Center()
	radius := r.W / 2
	step := 2 * math.Pi / float64(p)
	angle := -math.Pi / 2
	verts := make([]Point, 0, 2*p)
	var b pathBuilder
	b.moveTo(PointFrom(angle, radius, c))
	for i := 0; i < p; i++ {
		outer := PointFrom(angle, radius, c)
		notch := PointFrom(angle+step/2, inner, c)
		next := PointFrom(angle+step, radius, c)
		verts = append(verts, outer, notch)
		b.lineTo(notch)
		b.lineTo(next)
		angle += step
	}
	b.close()
	return Outline{Kind: KindStar, Rect: r, Sides: p, Vertices: verts, Segments: b.segs}
}

func polyline(kind Kind, r Rect, sides int, verts []Point) Outline {
	var b pathBuilder
	for i, v := range verts {
		if i == 0 {
			b.moveTo(v)
			continue
		}
		b.lineTo(v)
	}
	b.close()
	return Outline{Kind: kind, Rect: r, Sides: sides, Vertices: verts, Segments: b.segs}
}

type pathBuilder struct {
	segs []Segment
}

func (b *pathBuilder) moveTo(p Point) {
	b.segs = append(b.segs, Segment{Op: OpMove, Pts: [3]Point{p}})
}

func (b *pathBuilder) lineTo(p Point) {
	b.segs = append(b.segs, Segment{Op: OpLine, Pts: [3]Point{p}})
}

func (b *pathBuilder) cubicTo(c1, c2, p Point) {
	b.segs = append(b.segs, Segment{Op: OpCubic, Pts: [3]Point{c1, c2, p}})
}

func (b *pathBuilder) close() {
	b.segs = append(b.segs, Segment{Op: OpClose})
}
