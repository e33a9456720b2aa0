package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"shapes/internal/geom"
	"shapes/internal/scene"
)

// StrokeWidth is the width of the black outline around every shape.
const StrokeWidth = geom.DefaultInset

// EncodePNG renders the shapes, back to front, onto a white width x
// height image and writes it as PNG.
func EncodePNG(w io.Writer, shapes []*scene.Shape, width, height int) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	for _, sh := range shapes {
		if err := drawShape(dc, sh); err != nil {
			return fmt.Errorf("draw shape %d: %w", sh.ID, err)
		}
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawShape(dc *gg.Context, sh *scene.Shape) error {
	dc.Push()
	defer dc.Pop()
	dc.Transform(sh.Matrix())

	scene.Trace(dc, sh.Outline())
	dc.SetRGBA(sh.Fill.R, sh.Fill.G, sh.Fill.B, sh.Alpha)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(StrokeWidth)
	return dc.Stroke()
}

// SaveSnapshot writes a timestamped PNG into dir and returns its path.
func SaveSnapshot(dir string, shapes []*scene.Shape, width, height int, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	name := fmt.Sprintf("shapes-%s.png", now.Format("20060102-150405.000"))
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	if err := EncodePNG(f, shapes, width, height); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	return p, nil
}
