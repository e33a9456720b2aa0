package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapes/internal/geom"
	"shapes/internal/scene"
)

func TestCellToWorld(t *testing.T) {
	assert.Equal(t, geom.Point{X: 5, Y: 10}, CellToWorld(0, 0))
	assert.Equal(t, geom.Point{X: 35, Y: 50}, CellToWorld(3, 2))
	dx, dy := CellDelta(2, -1)
	assert.Equal(t, 20.0, dx)
	assert.Equal(t, -20.0, dy)
	w, h := WorldSize(80, 20)
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 400.0, h)
}

func TestBrailleBits(t *testing.T) {
	b := newBrailleBuf(1, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	assert.Equal(t, '⢁', b.rune(0, 0))
	b.clearPixel(0, 0)
	assert.Equal(t, '⢀', b.rune(0, 0))
	b.setPixel(5, 5) // off-grid is ignored
	b.clearPixel(1, 3)
	assert.Equal(t, ' ', b.rune(0, 0))
}

func TestDrawLineMicroEndpoints(t *testing.T) {
	var got [][2]int
	drawLineMicro(0, 0, 3, 1, func(x, y int) { got = append(got, [2]int{x, y}) })
	require.NotEmpty(t, got)
	assert.Equal(t, [2]int{0, 0}, got[0])
	assert.Equal(t, [2]int{3, 1}, got[len(got)-1])
	assert.Len(t, got, 4)
}

func TestCanvasDrawsShapeAroundCenter(t *testing.T) {
	s := scene.New(scene.WithSeed(9))
	sh := s.Spawn(CellToWorld(20, 10))

	c := NewCanvas(40, 20)
	c.Select(sh.ID)
	c.Draw(s.Shapes())
	rows := c.Rows()
	require.Len(t, rows, 20)

	center := []rune(rows[10])[20]
	assert.NotEqual(t, ' ', center)
	assert.Equal(t, ' ', []rune(rows[0])[0])
	assert.Equal(t, ' ', []rune(rows[19])[39])

	// the shape spans at most 15 cells by 8 rows
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			assert.InDelta(t, 20, x, 8, "x=%d y=%d", x, y)
			assert.InDelta(t, 10, y, 5, "x=%d y=%d", x, y)
		}
	}
	plain := strings.Join(rows, "")
	assert.NotEmpty(t, strings.TrimSpace(plain))
	assert.Len(t, c.Lines(), 20)
}

func TestCanvasClipsOffscreenShapes(t *testing.T) {
	s := scene.New(scene.WithSeed(2))
	s.Spawn(geom.Point{X: -10, Y: -10})
	s.Spawn(geom.Point{X: 10000, Y: 10000})
	c := NewCanvas(10, 5)
	c.Draw(s.Shapes())
	assert.Len(t, c.Rows(), 5)
}

func TestEncodePNG(t *testing.T) {
	s := scene.New(scene.WithSeed(4))
	s.Spawn(geom.Point{X: 100, Y: 100})

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, s.Shapes(), 300, 300))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 300, img.Bounds().Dy())

	r, g, b, _ := img.At(295, 295).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(100, 100).RGBA()
	assert.NotEqual(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestSaveSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	s := scene.New(scene.WithSeed(4))
	s.Spawn(geom.Point{X: 50, Y: 50})

	now := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)
	p, err := SaveSnapshot(dir, s.Shapes(), 200, 200, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shapes-20261015-123000.000.png"), p)

	st, err := os.Stat(p)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}
