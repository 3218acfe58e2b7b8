package canvas

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

// inchesPerMeter converts DPI to the pixels-per-metre unit of pHYs.
const inchesPerMeter = 1 / 0.0254

// pngSignature is the fixed 8-byte PNG file header.
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// EncodePNG writes img as a PNG. When dpi is positive the stream carries a
// pHYs chunk recording that resolution.
func EncodePNG(w io.Writer, img image.Image, dpi float64) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return err
	}
	data := buf.Bytes()
	if dpi <= 0 {
		_, err := w.Write(data)
		return err
	}

	// IHDR is always first: 8 signature bytes then a 25 byte chunk.
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if len(data) < ihdrEnd || !bytes.Equal(data[:8], pngSignature) ||
		string(data[12:16]) != "IHDR" {
		return ErrNotPNG
	}

	if _, err := w.Write(data[:ihdrEnd]); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(dpi)); err != nil {
		return err
	}
	_, err := w.Write(data[ihdrEnd:])
	return err
}

// physChunk builds a pHYs chunk for the given resolution.
func physChunk(dpi float64) []byte {
	ppm := uint32(math.Round(dpi * inchesPerMeter))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}

// ContentBounds returns the smallest rectangle holding every pixel of img
// that differs from bg, grown by pad pixels and clamped to the image. It
// returns the full image bounds when every pixel matches bg.
func ContentBounds(img image.Image, bg color.Color, pad int) image.Rectangle {
	b := img.Bounds()
	br, bgG, bb, ba := bg.RGBA()

	differs := func(x, y int) bool {
		r, g, bl, a := img.At(x, y).RGBA()
		return r != br || g != bgG || bl != bb || a != ba
	}
	if rgba, ok := img.(*image.RGBA); ok {
		want := color.RGBAModel.Convert(bg).(color.RGBA)
		differs = func(x, y int) bool {
			i := rgba.PixOffset(x, y)
			p := rgba.Pix[i : i+4 : i+4]
			return p[0] != want.R || p[1] != want.G || p[2] != want.B || p[3] != want.A
		}
	}

	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !differs(x, y) {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return b
	}
	return image.Rect(minX-pad, minY-pad, maxX+1+pad, maxY+1+pad).Intersect(b)
}

// Crop returns a copy of the rect area of img. The result's bounds start
// at the origin.
func Crop(img image.Image, rect image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, rect)
}
