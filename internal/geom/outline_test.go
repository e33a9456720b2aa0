package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays fixed values; each is reduced modulo n.
type scripted struct {
	vals []int
	i    int
}

func (s *scripted) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func seq(vals ...int) *scripted { return &scripted{vals: vals} }

const eps = 1e-9

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func TestGenerateSelectsEveryKind(t *testing.T) {
	tests := []struct {
		selector int
		want     Kind
	}{
		{0, KindRoundedRect},
		{1, KindEllipse},
		{2, KindTriangle},
		{3, KindRegularPolygon},
		{4, KindStar},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			o := Generate(DefaultSide, DefaultInset, seq(tt.selector, 0))
			require.Equal(t, tt.want, o.Kind)
			require.True(t, o.Closed())
			require.Equal(t, OpMove, o.Segments[0].Op)
		})
	}
}

func TestGenerateVertexCountRanges(t *testing.T) {
	src := NewSource(42)
	seen := map[Kind]bool{}
	for i := 0; i < 2000; i++ {
		o := Generate(DefaultSide, DefaultInset, src)
		seen[o.Kind] = true
		switch o.Kind {
		case KindRegularPolygon:
			require.GreaterOrEqual(t, o.Sides, 3)
			require.LessOrEqual(t, o.Sides, 12)
			require.Len(t, o.Vertices, o.Sides)
		case KindStar:
			require.GreaterOrEqual(t, o.Sides, 5)
			require.LessOrEqual(t, o.Sides, 14)
			require.Len(t, o.Vertices, 2*o.Sides)
		}
	}
	require.Len(t, seen, 5)
}

func TestGenerateBounds(t *testing.T) {
	// extremes of the selector draws
	o := Generate(DefaultSide, DefaultInset, seq(3, 0))
	assert.Equal(t, 3, o.Sides)
	o = Generate(DefaultSide, DefaultInset, seq(3, 9))
	assert.Equal(t, 12, o.Sides)
	o = Generate(DefaultSide, DefaultInset, seq(4, 0))
	assert.Equal(t, 5, o.Sides)
	o = Generate(DefaultSide, DefaultInset, seq(4, 9))
	assert.Equal(t, 14, o.Sides)
}

func TestPolygonVerticesOnCircle(t *testing.T) {
	for n := MinPolygonSides; n < MinPolygonSides+PolygonSideRange; n++ {
		o := RegularPolygon(Square(DefaultSide), n)
		c := Point{75, 75}
		for _, v := range o.Vertices {
			assert.InDelta(t, DefaultSide/2, dist(c, v), eps)
		}
		assert.True(t, o.Closed())
	}
}

func TestPolygonDiamond(t *testing.T) {
	o := RegularPolygon(Square(DefaultSide), 4)
	want := []Point{{75, 0}, {150, 75}, {75, 150}, {0, 75}}
	require.Len(t, o.Vertices, 4)
	for i, w := range want {
		assert.InDelta(t, w.X, o.Vertices[i].X, eps)
		assert.InDelta(t, w.Y, o.Vertices[i].Y, eps)
	}
	// move, three lines, close
	require.Len(t, o.Segments, 5)
	assert.Equal(t, OpClose, o.Segments[4].Op)
}

func TestStarRadii(t *testing.T) {
	for p := MinStarPoints; p < MinStarPoints+StarPointRange; p++ {
		o := Star(Square(DefaultSide), p, StarExtrusion)
		c := Point{75, 75}
		for i, v := range o.Vertices {
			want := DefaultSide / 2
			if i%2 == 1 {
				want = StarExtrusion
			}
			assert.InDelta(t, want, dist(c, v), eps)
		}
	}
}

func TestStarFivePoints(t *testing.T) {
	o := Star(Square(DefaultSide), 5, StarExtrusion)
	require.Len(t, o.Vertices, 10)
	for i := range o.Vertices {
		for j := i + 1; j < len(o.Vertices); j++ {
			assert.Greater(t, dist(o.Vertices[i], o.Vertices[j]), 1.0)
		}
	}
	// move, outer->inner->next outer for each point, close
	require.Len(t, o.Segments, 1+2*5+1)
	assert.InDelta(t, 0, dist(o.Segments[0].End(), o.Segments[10].End()), 1e-6)
}

func TestTriangleVertices(t *testing.T) {
	box := Square(DefaultSide).Inset(DefaultInset)
	o := Triangle(box)
	require.Equal(t, []Point{{75, 2}, {148, 148}, {2, 148}}, o.Vertices)
	require.Len(t, o.Segments, 4)
	assert.True(t, o.Closed())
}

func TestCurvedOutlinesStayInInsetSquare(t *testing.T) {
	box := Square(DefaultSide).Inset(DefaultInset)
	require.Equal(t, 146.0, box.W)
	for _, o := range []Outline{RoundedRect(box, CornerRadius), Ellipse(box)} {
		for _, s := range o.Segments {
			var pts []Point
			switch s.Op {
			case OpMove, OpLine:
				pts = s.Pts[:1]
			case OpCubic:
				pts = s.Pts[:]
			}
			for _, p := range pts {
				assert.GreaterOrEqual(t, p.X, box.X-eps)
				assert.GreaterOrEqual(t, p.Y, box.Y-eps)
				assert.LessOrEqual(t, p.X, box.MaxX()+eps)
				assert.LessOrEqual(t, p.Y, box.MaxY()+eps)
			}
		}
	}
}

func TestPointFrom(t *testing.T) {
	p := PointFrom(-math.Pi/2, 10, Point{5, 5})
	assert.InDelta(t, 5, p.X, eps)
	assert.InDelta(t, -5, p.Y, eps)
}

func TestNewSourceDeterministic(t *testing.T) {
	a, b := NewSource(7), NewSource(7)
	for i := 0; i < 20; i++ {
		require.Equal(t, Generate(DefaultSide, DefaultInset, a), Generate(DefaultSide, DefaultInset, b))
	}
}
