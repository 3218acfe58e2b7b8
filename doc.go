// Package blockdiag renders block diagrams, labeled boxes joined by
// captioned arrows, to PNG.
//
// # Overview
//
// A diagram is plain data: a [Layout] lists its [Box] regions, [Arrow]
// edges and [Title] in canvas units inside the layout bounds. A [Renderer]
// turns a layout into a [Diagram], which can be encoded or saved.
//
//	r, err := blockdiag.NewRenderer()
//	if err != nil {
//	    return err
//	}
//	d, err := r.Render(blockdiag.NPUArchitecture())
//	if err != nil {
//	    return err
//	}
//	return d.SavePNG("npu_architecture_neat.png")
//
// # Coordinate System
//
// Canvas coordinates have the origin at the bottom-left of the layout
// bounds with y increasing upward. Boxes are positioned by their lower-left
// corner. The renderer maps the bounds onto the figure, less a small margin,
// so the two axes may scale differently.
//
// # Drawing
//
// Boxes are drawn as rounded outlines with the label word-wrapped by
// [Wrap] to [WrapWidth] characters and centered. Arrows end in a fixed-size
// head whose tip lands exactly on the end point. A caption sits on a patch
// of background color at [Arrow.CaptionAnchor]. Text always goes on top
// of lines.
//
// # Output
//
// The default figure is 22x14 inches at 300 DPI, cropped to its content
// plus 0.1 inch of padding. PNG output records the resolution in a pHYs
// chunk and is byte-for-byte reproducible.
package blockdiag
