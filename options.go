package blockdiag

import "image/color"

// Figure defaults. Sizes are in inches.
const (
	// DefaultDPI is the output resolution.
	DefaultDPI = 300.0

	// DefaultFigureWidth and DefaultFigureHeight give the 22x14 inch figure.
	DefaultFigureWidth  = 22.0
	DefaultFigureHeight = 14.0

	// DefaultMargin separates the canvas bounds from the figure edge.
	DefaultMargin = 0.1

	// DefaultTightPad is kept around the content when cropping.
	DefaultTightPad = 0.1
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default 22x14 inch figure at 300 DPI, cropped to its content
//	r, err := blockdiag.NewRenderer()
//
//	// Quick low-resolution draft without cropping
//	r, err := blockdiag.NewRenderer(blockdiag.WithDPI(72), blockdiag.WithTightBBox(false))
type Option func(*options)

// options holds the Renderer configuration.
type options struct {
	dpi        float64
	width      float64
	height     float64
	margin     float64
	tight      bool
	tightPad   float64
	background color.Color
	foreground color.Color
	regular    []byte
	bold       []byte
}

// defaultOptions returns the default renderer options. Nil font data
// selects the embedded Go fonts.
func defaultOptions() options {
	return options{
		dpi:        DefaultDPI,
		width:      DefaultFigureWidth,
		height:     DefaultFigureHeight,
		margin:     DefaultMargin,
		tight:      true,
		tightPad:   DefaultTightPad,
		background: color.White,
		foreground: color.Black,
	}
}

// WithDPI sets the output resolution in dots per inch.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		o.dpi = dpi
	}
}

// WithFigureSize sets the figure size in inches before cropping.
func WithFigureSize(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithMargin sets the gap, in inches, between the figure edge and the
// layout bounds.
func WithMargin(margin float64) Option {
	return func(o *options) {
		o.margin = margin
	}
}

// WithTightBBox enables or disables cropping the output to its content.
// It is enabled by default.
func WithTightBBox(enabled bool) Option {
	return func(o *options) {
		o.tight = enabled
	}
}

// WithBackground sets the figure background, also used behind captions.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithForeground sets the color of outlines, arrows and text.
func WithForeground(c color.Color) Option {
	return func(o *options) {
		o.foreground = c
	}
}

// WithFonts replaces the embedded fonts with TrueType or OpenType data.
// Nil keeps the default for that weight.
func WithFonts(regular, bold []byte) Option {
	return func(o *options) {
		if regular != nil {
			o.regular = regular
		}
		if bold != nil {
			o.bold = bold
		}
	}
}
