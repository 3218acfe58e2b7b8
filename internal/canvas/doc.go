// Package canvas is the immediate-mode drawing context behind blockdiag.
//
// A Context holds a current path, color, line width and font face. Fills
// are anti-aliased with golang.org/x/image/vector and strokes are expanded
// to polygons with round joins. Text goes through golang.org/x/image/font.
//
// Coordinates are pixels with the origin at the top-left corner and y
// growing downward.
package canvas
