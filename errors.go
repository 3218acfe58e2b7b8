package blockdiag

import "errors"

// Sentinel errors returned by layout validation. Errors from Validate wrap
// one of these with the offending element.
var (
	// ErrEmptyBounds is returned when the layout bounds have no area.
	ErrEmptyBounds = errors.New("blockdiag: layout bounds must have positive width and height")

	// ErrBoxSize is returned for a box with a non-positive width or height.
	ErrBoxSize = errors.New("blockdiag: box width and height must be positive")

	// ErrBoxPad is returned for a box with a negative corner pad.
	ErrBoxPad = errors.New("blockdiag: box pad must not be negative")

	// ErrCaptionPosition is returned for a caption fraction outside [0, 1].
	ErrCaptionPosition = errors.New("blockdiag: caption position must be within [0, 1]")

	// ErrLineWidth is returned for a negative arrow line width.
	ErrLineWidth = errors.New("blockdiag: line width must not be negative")

	// ErrFontSize is returned for a negative font size.
	ErrFontSize = errors.New("blockdiag: font size must not be negative")
)

// Sentinel errors returned by NewRenderer for invalid options.
var (
	// ErrDPI is returned for a non-positive resolution.
	ErrDPI = errors.New("blockdiag: dpi must be positive")

	// ErrFigureSize is returned when the figure, less its margins, has no
	// area.
	ErrFigureSize = errors.New("blockdiag: figure must be larger than its margins")
)
