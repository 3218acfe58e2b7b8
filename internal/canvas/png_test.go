package canvas

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestEncodePNGWritesPhys(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, 300); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	data := buf.Bytes()
	i := bytes.Index(data, []byte("pHYs"))
	if i < 0 {
		t.Fatal("pHYs chunk missing")
	}
	if i != 8+25+4 {
		t.Errorf("pHYs at offset %d, want right after IHDR", i)
	}
	ppm := binary.BigEndian.Uint32(data[i+4 : i+8])
	if ppm != 11811 {
		t.Errorf("pixels per metre = %d, want 11811", ppm)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("decoded size = %v, want 4x3", decoded.Bounds())
	}
}

func TestEncodePNGNoDPI(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, image.NewGray(image.Rect(0, 0, 2, 2)), 0); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("pHYs")) {
		t.Error("pHYs written with dpi 0")
	}
}

func TestEncodePNGDeterministic(t *testing.T) {
	dc := NewContext(50, 50)
	dc.Clear(color.White)
	dc.DrawRoundedRectangle(5, 5, 40, 40, 6)
	dc.Stroke()

	var a, b bytes.Buffer
	if err := EncodePNG(&a, dc.Image(), 96); err != nil {
		t.Fatal(err)
	}
	if err := EncodePNG(&b, dc.Image(), 96); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("encoding the same image twice produced different bytes")
	}
}

func TestContentBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(20, 30, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(60, 70, color.RGBA{0, 0, 0, 255})

	tests := []struct {
		name string
		pad  int
		want image.Rectangle
	}{
		{"no pad", 0, image.Rect(20, 30, 61, 71)},
		{"pad", 5, image.Rect(15, 25, 66, 76)},
		{"pad clamped", 50, image.Rect(0, 0, 100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentBounds(img, color.White, tt.pad); got != tt.want {
				t.Errorf("ContentBounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentBoundsBlank(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	if got := ContentBounds(img, color.Transparent, 2); got != img.Bounds() {
		t.Errorf("ContentBounds(blank) = %v, want full bounds", got)
	}
}

func TestCrop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.SetRGBA(4, 5, color.RGBA{255, 0, 0, 255})
	got := Crop(img, image.Rect(3, 3, 8, 9))
	if got.Bounds() != image.Rect(0, 0, 5, 6) {
		t.Fatalf("Crop bounds = %v, want 5x6 at origin", got.Bounds())
	}
	if c := got.NRGBAAt(1, 2); c.R != 255 || c.A != 255 {
		t.Errorf("cropped pixel = %v, want red", c)
	}
}
