package blockdiag

import "fmt"

// Point is a position in canvas units. Canvas y grows upward.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min, Max Point
}

// R returns the rectangle with corners (x0, y0) and (x1, y1).
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// Frame maps canvas units onto image pixels. Bounds is the canvas area in
// canvas units (y up) and Area the pixel rectangle it fills (y down, Min
// at the top-left).
type Frame struct {
	Bounds Rect
	Area   Rect
}

// ToPixel converts a canvas point to image pixel coordinates.
func (f Frame) ToPixel(p Point) (x, y float64) {
	sx, sy := f.Scale()
	return f.Area.Min.X + (p.X-f.Bounds.Min.X)*sx,
		f.Area.Min.Y + (f.Bounds.Max.Y-p.Y)*sy
}

// Scale returns the number of pixels per canvas unit along each axis.
func (f Frame) Scale() (sx, sy float64) {
	return f.Area.Width() / f.Bounds.Width(), f.Area.Height() / f.Bounds.Height()
}

// Shift returns the frame moved by (dx, dy) pixels.
func (f Frame) Shift(dx, dy float64) Frame {
	f.Area.Min.X += dx
	f.Area.Max.X += dx
	f.Area.Min.Y += dy
	f.Area.Max.Y += dy
	return f
}
