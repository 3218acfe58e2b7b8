package blockdiag

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/blockdiag/internal/canvas"
)

const (
	// pointsPerInch converts point sizes to pixels: px = pt * dpi / 72.
	pointsPerInch = 72.0

	// lineSpacing is the distance between label baselines as a multiple
	// of the font size.
	lineSpacing = 1.2

	// Arrow heads scale with mutationScale points: the head is
	// headLength*mutationScale long and headWidth*mutationScale wide on
	// each side of the shaft.
	mutationScale = 12.0
	headLength    = 0.4
	headWidth     = 0.2

	// captionPad surrounds the caption background patch, in points.
	captionPad = 1.5
)

// Renderer rasterizes layouts. It holds only immutable options and parsed
// fonts, so one Renderer may serve concurrent Render calls.
type Renderer struct {
	opts    options
	regular *canvas.Font
	bold    *canvas.Font
}

// NewRenderer creates a renderer. With no options it draws a 22x14 inch
// figure at 300 DPI, cropped to its content.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.dpi <= 0 || math.IsNaN(o.dpi) {
		return nil, fmt.Errorf("%w: got %g", ErrDPI, o.dpi)
	}
	if o.margin < 0 || o.width-2*o.margin <= 0 || o.height-2*o.margin <= 0 {
		return nil, fmt.Errorf("%w: %gx%g in with %g in margins", ErrFigureSize, o.width, o.height, o.margin)
	}

	if o.regular == nil {
		o.regular = goregular.TTF
	}
	if o.bold == nil {
		o.bold = gobold.TTF
	}
	regular, err := canvas.ParseFont(o.regular)
	if err != nil {
		return nil, fmt.Errorf("blockdiag: regular font: %w", err)
	}
	bold, err := canvas.ParseFont(o.bold)
	if err != nil {
		return nil, fmt.Errorf("blockdiag: bold font: %w", err)
	}

	return &Renderer{opts: o, regular: regular, bold: bold}, nil
}

// DPI returns the output resolution.
func (r *Renderer) DPI() float64 {
	return r.opts.dpi
}

// FigureSize returns the uncropped figure size in pixels.
func (r *Renderer) FigureSize() (width, height int) {
	return int(math.Round(r.opts.width * r.opts.dpi)), int(math.Round(r.opts.height * r.opts.dpi))
}

// Render validates l and draws it. Box outlines and arrows are drawn
// first, then box labels, captions and the title so that text always sits
// on top of lines.
func (r *Renderer) Render(l Layout) (*Diagram, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	w, h := r.FigureSize()
	margin := r.opts.margin * r.opts.dpi
	d := &drawing{
		r:  r,
		dc: canvas.NewContext(w, h),
		frame: Frame{
			Bounds: l.Bounds,
			Area:   R(margin, margin, float64(w)-margin, float64(h)-margin),
		},
		faces: make(map[faceKey]*canvas.Face),
	}
	defer d.close()

	Logger().Info("rendering diagram",
		"layout", l.Name, "width", w, "height", h, "dpi", r.opts.dpi,
		"boxes", len(l.Boxes), "arrows", len(l.Arrows))

	d.dc.Clear(r.opts.background)
	for _, b := range l.Boxes {
		d.boxOutline(b)
	}
	for _, a := range l.Arrows {
		d.arrow(a)
	}
	for _, b := range l.Boxes {
		if err := d.boxLabel(b); err != nil {
			return nil, err
		}
	}
	for _, a := range l.Arrows {
		if err := d.caption(a); err != nil {
			return nil, err
		}
	}
	if err := d.title(l.Title); err != nil {
		return nil, err
	}

	var img image.Image = d.dc.Image()
	frame := d.frame
	if r.opts.tight {
		pad := int(math.Round(r.opts.tightPad * r.opts.dpi))
		rect := canvas.ContentBounds(img, r.opts.background, pad)
		img = canvas.Crop(img, rect)
		frame = frame.Shift(-float64(rect.Min.X), -float64(rect.Min.Y))
		Logger().Debug("cropped to content", "rect", rect)
	}

	return &Diagram{Image: img, Frame: frame, DPI: r.opts.dpi}, nil
}

type faceKey struct {
	bold   bool
	points float64
}

// drawing is the state of one Render call.
type drawing struct {
	r     *Renderer
	dc    *canvas.Context
	frame Frame
	faces map[faceKey]*canvas.Face
}

// px converts a length in points to pixels.
func (d *drawing) px(points float64) float64 {
	return points * d.r.opts.dpi / pointsPerInch
}

// pixel converts a canvas point to pixel space.
func (d *drawing) pixel(p Point) canvas.Point {
	return canvas.Pt(d.frame.ToPixel(p))
}

// face returns a cached face of the given weight and size.
func (d *drawing) face(bold bool, points float64) (*canvas.Face, error) {
	key := faceKey{bold: bold, points: points}
	if f, ok := d.faces[key]; ok {
		return f, nil
	}
	font := d.r.regular
	if bold {
		font = d.r.bold
	}
	f, err := font.NewFace(points, d.r.opts.dpi)
	if err != nil {
		return nil, fmt.Errorf("blockdiag: %w", err)
	}
	d.faces[key] = f
	return f, nil
}

func (d *drawing) close() {
	for _, f := range d.faces {
		_ = f.Close()
	}
}

// boxOutline strokes the rounded outline of b.
func (d *drawing) boxOutline(b Box) {
	o := b.Outline()
	tl := d.pixel(Pt(o.Min.X, o.Max.Y))
	br := d.pixel(Pt(o.Max.X, o.Min.Y))
	sx, sy := d.frame.Scale()

	d.dc.SetColor(d.r.opts.foreground)
	d.dc.SetLineWidth(d.px(DefaultLineWidth))
	d.dc.DrawRoundedRectangle(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y, b.Pad*math.Min(sx, sy))
	d.dc.Stroke()
}

// boxLabel draws the wrapped label of b centered in the box.
func (d *drawing) boxLabel(b Box) error {
	lines := b.Lines()
	Logger().Debug("box", "name", b.Name, "lines", len(lines), "wrap", WrapWidth(b.W))
	if len(lines) == 0 {
		return nil
	}

	face, err := d.face(false, orDefault(b.FontSize, DefaultFontSize))
	if err != nil {
		return err
	}
	d.dc.SetFontFace(face)
	d.dc.SetColor(d.r.opts.foreground)

	c := d.pixel(b.Center())
	lineHeight := lineSpacing * face.Size()
	top := c.Y - lineHeight*float64(len(lines))/2
	for i, line := range lines {
		d.dc.DrawStringAnchored(line, c.X, top+(float64(i)+0.5)*lineHeight, 0.5, 0.5)
	}
	return nil
}

// arrow draws the shaft and head of a. The head tip lands on a.To.
func (d *drawing) arrow(a Arrow) {
	Logger().Debug("arrow", "from", a.From, "to", a.To, "caption", a.Caption)

	p0, p1 := d.pixel(a.From), d.pixel(a.To)
	v := p1.Sub(p0)
	length := v.Length()
	if length < 1e-9 {
		return
	}
	u := v.Mul(1 / length)
	n := u.Perp()

	headLen := d.px(headLength * mutationScale)
	halfWidth := d.px(headWidth * mutationScale)
	if headLen > length {
		halfWidth *= length / headLen
		headLen = length
	}
	base := p1.Sub(u.Mul(headLen))
	left, right := base.Add(n.Mul(halfWidth)), base.Sub(n.Mul(halfWidth))

	d.dc.SetColor(d.r.opts.foreground)
	d.dc.SetLineWidth(d.px(orDefault(a.LineWidth, DefaultLineWidth)))

	switch a.Head {
	case HeadOpen:
		d.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
		d.dc.MoveTo(left.X, left.Y)
		d.dc.LineTo(p1.X, p1.Y)
		d.dc.LineTo(right.X, right.Y)
		d.dc.Stroke()
	default:
		d.dc.DrawLine(p0.X, p0.Y, base.X, base.Y)
		d.dc.Stroke()
		d.dc.DrawPolygon(p1, left, right)
		d.dc.Fill()
	}
}

// caption draws the caption of a centered on its anchor over a patch of
// background color.
func (d *drawing) caption(a Arrow) error {
	if a.Caption == "" {
		return nil
	}
	face, err := d.face(false, CaptionFontSize)
	if err != nil {
		return err
	}
	d.dc.SetFontFace(face)

	c := d.pixel(a.CaptionAnchor())
	w, h := d.dc.MeasureString(a.Caption)
	pad := d.px(captionPad)

	d.dc.SetColor(d.r.opts.background)
	d.dc.DrawRectangle(c.X-w/2-pad, c.Y-h/2-pad, w+2*pad, h+2*pad)
	d.dc.Fill()

	d.dc.SetColor(d.r.opts.foreground)
	d.dc.DrawStringAnchored(a.Caption, c.X, c.Y, 0.5, 0.5)
	return nil
}

// title draws t horizontally centered on t.At with t.At on the baseline.
func (d *drawing) title(t Title) error {
	if t.Text == "" {
		return nil
	}
	face, err := d.face(t.Bold, orDefault(t.FontSize, TitleFontSize))
	if err != nil {
		return err
	}
	d.dc.SetFontFace(face)
	d.dc.SetColor(d.r.opts.foreground)

	p := d.pixel(t.At)
	w, _ := d.dc.MeasureString(t.Text)
	d.dc.DrawString(t.Text, p.X-w/2, p.Y)
	return nil
}

// orDefault returns v, or def when v is zero.
func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
