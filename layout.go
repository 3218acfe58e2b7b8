package blockdiag

import "fmt"

// Box is a labeled rectangular region of the diagram. X and Y locate the
// lower-left corner in canvas units.
type Box struct {
	Name  string
	X, Y  float64
	W, H  float64
	Label string

	// FontSize is the label size in points. Zero selects DefaultFontSize.
	FontSize float64

	// Pad grows the outline on every side and is also its corner radius,
	// in canvas units. Zero draws square corners on the exact rectangle.
	Pad float64

	// KeepBreaks wraps each line of Label separately instead of reflowing
	// the whole label as one paragraph.
	KeepBreaks bool
}

// Center returns the middle of the box.
func (b Box) Center() Point {
	return Pt(b.X+b.W/2, b.Y+b.H/2)
}

// Outline returns the rectangle the border is drawn on: the box grown by
// Pad on every side.
func (b Box) Outline() Rect {
	return R(b.X-b.Pad, b.Y-b.Pad, b.X+b.W+b.Pad, b.Y+b.H+b.Pad)
}

// Lines returns the label wrapped to the box width.
func (b Box) Lines() []string {
	if b.KeepBreaks {
		return WrapLines(b.Label, WrapWidth(b.W))
	}
	return Wrap(b.Label, WrapWidth(b.W))
}

// Validate checks the box invariants.
func (b Box) Validate() error {
	switch {
	case b.W <= 0 || b.H <= 0:
		return fmt.Errorf("%w: got %gx%g", ErrBoxSize, b.W, b.H)
	case b.Pad < 0:
		return fmt.Errorf("%w: got %g", ErrBoxPad, b.Pad)
	case b.FontSize < 0:
		return fmt.Errorf("%w: got %g", ErrFontSize, b.FontSize)
	}
	return nil
}

// ArrowHead selects how the end of an arrow is drawn.
type ArrowHead uint8

const (
	// HeadFilled is a closed, filled triangle. This is the default.
	HeadFilled ArrowHead = iota

	// HeadOpen is two strokes meeting at the tip.
	HeadOpen
)

// String returns the string representation of the head style.
func (h ArrowHead) String() string {
	switch h {
	case HeadFilled:
		return "Filled"
	case HeadOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// Arrow is a directed edge between two canvas points.
type Arrow struct {
	From, To Point

	// Caption is drawn over a white patch at CaptionPos along the arrow.
	// Empty means no caption.
	Caption string

	// CaptionPos is the caption location as a fraction of the way from
	// From to To.
	CaptionPos float64

	// LineWidth is the shaft weight in points. Zero selects
	// DefaultLineWidth.
	LineWidth float64

	Head ArrowHead
}

// CaptionAnchor returns the point the caption is centered on.
func (a Arrow) CaptionAnchor() Point {
	return a.From.Lerp(a.To, a.CaptionPos)
}

// Validate checks the arrow invariants.
func (a Arrow) Validate() error {
	switch {
	case a.CaptionPos < 0 || a.CaptionPos > 1:
		return fmt.Errorf("%w: got %g", ErrCaptionPosition, a.CaptionPos)
	case a.LineWidth < 0:
		return fmt.Errorf("%w: got %g", ErrLineWidth, a.LineWidth)
	}
	return nil
}

// Title is a single line of text drawn centered on At, with At on the
// baseline.
type Title struct {
	Text     string
	At       Point
	FontSize float64
	Bold     bool
}

// Layout is the full static description of a diagram.
type Layout struct {
	Name   string
	Bounds Rect
	Boxes  []Box
	Arrows []Arrow
	Title  Title
}

// Validate checks the layout and every element in it, returning the first
// violation found.
func (l Layout) Validate() error {
	if l.Bounds.Empty() {
		return fmt.Errorf("%w: got %v", ErrEmptyBounds, l.Bounds)
	}
	for i, b := range l.Boxes {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("box %d (%s): %w", i, b.Name, err)
		}
	}
	for i, a := range l.Arrows {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("arrow %d (%v -> %v): %w", i, a.From, a.To, err)
		}
	}
	if l.Title.FontSize < 0 {
		return fmt.Errorf("title: %w: got %g", ErrFontSize, l.Title.FontSize)
	}
	return nil
}

// Box returns the box with the given name.
func (l Layout) Box(name string) (Box, bool) {
	for _, b := range l.Boxes {
		if b.Name == name {
			return b, true
		}
	}
	return Box{}, false
}
