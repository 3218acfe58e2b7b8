package canvas

import "errors"

// Sentinel errors for the canvas package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("canvas: empty font data")

	// ErrNotPNG is returned when encoded output does not start with a PNG
	// header chunk.
	ErrNotPNG = errors.New("canvas: encoded data is not a PNG stream")
)
