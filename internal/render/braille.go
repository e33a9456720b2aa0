package render

// brailleBuf is a monochrome grid of 2x4 micro pixels per cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotBits maps a micro pixel inside a cell to its braille dot bit.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// cell resolves micro coords to a cell and bit; ok is false off-grid.
func (b *brailleBuf) cell(mx, my int) (cx, cy int, bit uint8, ok bool) {
	if mx < 0 || my < 0 {
		return 0, 0, 0, false
	}
	cx, cy = mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return 0, 0, 0, false
	}
	return cx, cy, dotBits[mx%2][my%4], true
}

func (b *brailleBuf) setPixel(mx, my int) {
	if cx, cy, bit, ok := b.cell(mx, my); ok {
		b.m[cy][cx] |= bit
	}
}

func (b *brailleBuf) clearPixel(mx, my int) {
	if cx, cy, bit, ok := b.cell(mx, my); ok {
		b.m[cy][cx] &^= bit
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham, calling
// plot for each micro pixel it covers.
func drawLineMicro(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) rune(cx, cy int) rune {
	mask := b.m[cy][cx]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
