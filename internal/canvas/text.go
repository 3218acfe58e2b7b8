package canvas

import (
	"bytes"
	"fmt"
	"image"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed font usable at any size. It is safe for concurrent use.
type Font struct {
	ot     *opentype.Font
	shaped *gotext.Font
}

// ParseFont parses TrueType or OpenType data.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("canvas: failed to parse font: %w", err)
	}
	// ParseTTF returns a Face wrapping the thread-safe Font.
	gf, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("canvas: failed to parse font for shaping: %w", err)
	}
	return &Font{ot: ot, shaped: gf.Font}, nil
}

// Face is a font at a fixed size and resolution. A Face is not safe for
// concurrent use.
type Face struct {
	face   font.Face
	shaped *gotext.Face
	shaper shaping.HarfbuzzShaper
	ppem   float64
}

// NewFace creates a face of the given size in points rendered at dpi.
func (f *Font) NewFace(points, dpi float64) (*Face, error) {
	ot, err := opentype.NewFace(f.ot, &opentype.FaceOptions{
		Size:    points,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("canvas: failed to create face: %w", err)
	}
	return &Face{
		face:   ot,
		shaped: gotext.NewFace(f.shaped),
		ppem:   points * dpi / 72,
	}, nil
}

// Close releases the face.
func (f *Face) Close() error {
	return f.face.Close()
}

// Size returns the em size of the face in pixels.
func (f *Face) Size() float64 {
	return f.ppem
}

// Metrics returns the ascent and descent of the face in pixels. Both are
// positive.
func (f *Face) Metrics() (ascent, descent float64) {
	m := f.face.Metrics()
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

// Advance returns the shaped horizontal advance of s in pixels, kerning
// included.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	return fixedToFloat(f.shape([]rune(s)).Advance)
}

func (f *Face) shape(runes []rune) shaping.Output {
	return f.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.shaped,
		Size:      floatToFixed(f.ppem),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// SetFontFace sets the face used for text drawing.
func (c *Context) SetFontFace(f *Face) {
	c.face = f
}

// DrawString draws s with its baseline origin at (x, y). It does nothing
// without a font face.
//
// Glyph clusters are placed at their shaped pen positions, so the drawn
// width is the width MeasureString reports.
func (c *Context) DrawString(s string, x, y float64) {
	if c.face == nil || s == "" {
		return
	}
	runes := []rune(s)
	out := c.face.shape(runes)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.color),
		Face: c.face.face,
	}

	pen, baseline := floatToFixed(x), floatToFixed(y)
	cluster := -1
	for _, g := range out.Glyphs {
		if start := g.TextIndex(); start != cluster && g.RuneCount > 0 {
			cluster = start
			end := min(start+g.RuneCount, len(runes))
			d.Dot = fixed.Point26_6{X: pen + g.XOffset, Y: baseline - g.YOffset}
			d.DrawString(string(runes[start:end]))
		}
		pen += g.Advance
	}
}

// DrawStringAnchored draws s so that the anchor point (ax, ay) of its box
// lands on (x, y). The box spans the advance horizontally and ascent to
// descent vertically:
//
//	(0, 0)     = top-left
//	(0.5, 0.5) = center
//	(1, 1)     = bottom-right
func (c *Context) DrawStringAnchored(s string, x, y, ax, ay float64) {
	if c.face == nil || s == "" {
		return
	}
	w, h := c.MeasureString(s)
	ascent, _ := c.face.Metrics()
	c.DrawString(s, x-w*ax, y-h*ay+ascent)
}

// MeasureString returns the advance width of s and the height of the
// face (ascent plus descent) in pixels.
func (c *Context) MeasureString(s string) (w, h float64) {
	if c.face == nil {
		return 0, 0
	}
	ascent, descent := c.face.Metrics()
	return c.face.Advance(s), ascent + descent
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
