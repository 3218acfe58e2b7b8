package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Context is the drawing context. It owns an RGBA image, the current path,
// the current color, line width and font face.
type Context struct {
	width  int
	height int
	img    *image.RGBA

	path      *Path
	color     color.Color
	lineWidth float64
	face      *Face
}

// NewContext creates a drawing context with a transparent image of the
// given dimensions, black paint and a 1 pixel line width.
func NewContext(width, height int) *Context {
	return &Context{
		width:     width,
		height:    height,
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		path:      NewPath(),
		color:     color.Black,
		lineWidth: 1,
	}
}

// Width returns the width of the context in pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context in pixels.
func (c *Context) Height() int {
	return c.height
}

// Image returns the backing image. It is not copied.
func (c *Context) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with col, ignoring the current path.
func (c *Context) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// SetColor sets the paint used by Fill, Stroke and text drawing.
func (c *Context) SetColor(col color.Color) {
	c.color = col
}

// SetLineWidth sets the stroke width in pixels.
func (c *Context) SetLineWidth(width float64) {
	c.lineWidth = width
}

// LineWidth returns the stroke width in pixels.
func (c *Context) LineWidth() float64 {
	return c.lineWidth
}

// MoveTo starts a new subpath.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo adds a line segment to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

// CubicTo adds a cubic Bezier segment to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath discards the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// DrawLine adds a line from (x1, y1) to (x2, y2) as a new subpath.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.path.MoveTo(x1, y1)
	c.path.LineTo(x2, y2)
}

// DrawRectangle adds a rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.path.Rectangle(x, y, w, h)
}

// DrawRoundedRectangle adds a rectangle with rounded corners of radius r.
func (c *Context) DrawRoundedRectangle(x, y, w, h, r float64) {
	c.path.RoundedRectangle(x, y, w, h, r)
}

// DrawPolygon adds a closed polygon through pts.
func (c *Context) DrawPolygon(pts ...Point) {
	c.path.Polygon(pts...)
}

// Fill fills the current path with the current color and clears it.
func (c *Context) Fill() {
	var polys [][]Point
	for _, l := range c.path.Flatten() {
		polys = append(polys, l.Points)
	}
	c.rasterize(polys)
	c.path.Clear()
}

// Stroke strokes the current path with the current color and line width
// and clears it.
func (c *Context) Stroke() {
	c.rasterize(strokeOutline(c.path.Flatten(), c.lineWidth))
	c.path.Clear()
}

// rasterize composites the union of polys over the image. The rasterizer
// only spans the bounding box of polys, clipped to the image.
func (c *Context) rasterize(polys [][]Point) {
	bounds := polygonBounds(polys).Intersect(c.img.Bounds())
	if bounds.Empty() {
		return
	}

	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Over
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		r.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
		for _, p := range poly[1:] {
			r.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		r.ClosePath()
	}
	r.Draw(c.img, bounds, image.NewUniform(c.color), image.Point{})
}

// polygonBounds returns the smallest integer rectangle containing polys.
func polygonBounds(polys [][]Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
