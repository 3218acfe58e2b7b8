package blockdiag

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gogpu/blockdiag/internal/canvas"
)

// Diagram is a rendered layout.
type Diagram struct {
	// Image holds the pixels. Its bounds start at the origin.
	Image image.Image

	// Frame maps canvas units to Image pixels. It accounts for cropping.
	Frame Frame

	// DPI is the resolution recorded in encoded output.
	DPI float64
}

// Size returns the image dimensions in pixels.
func (d *Diagram) Size() (width, height int) {
	b := d.Image.Bounds()
	return b.Dx(), b.Dy()
}

// ToPixel converts a canvas point to image pixel coordinates.
func (d *Diagram) ToPixel(p Point) (x, y float64) {
	return d.Frame.ToPixel(p)
}

// EncodePNG writes the diagram as a PNG carrying its resolution.
// Encoding is deterministic: the same diagram always yields the same bytes.
func (d *Diagram) EncodePNG(w io.Writer) error {
	return canvas.EncodePNG(w, d.Image, d.DPI)
}

// SavePNG writes the diagram to a PNG file at path, replacing any existing
// file.
func (d *Diagram) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("blockdiag: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("blockdiag: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := d.EncodePNG(bw); err != nil {
		return fmt.Errorf("blockdiag: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("blockdiag: write %s: %w", path, err)
	}

	w, h := d.Size()
	Logger().Info("saved diagram", "path", path, "width", w, "height", h, "dpi", d.DPI)
	return nil
}
