// Package preview shows an image in the terminal.
//
// Every terminal cell holds two vertically stacked pixels drawn with an
// upper half block: the foreground is the top pixel, the background the
// bottom one.
package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"
)

// upperHalfBlock is the glyph used for each cell.
const upperHalfBlock = '▀'

// Show opens the terminal, displays img scaled to fit and blocks until the
// user presses q, Esc or Ctrl-C.
func Show(img image.Image) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer s.Fini()
	return Run(s, img)
}

// Run draws img on an initialized screen and handles events until a quit
// key arrives or the screen is finalized. It does not finalize s.
func Run(s tcell.Screen, img image.Image) error {
	Draw(s, img)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
			Draw(s, img)
		case *tcell.EventKey:
			if quits(ev) {
				return nil
			}
		}
	}
}

func quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Draw renders img on s, scaled to fit while keeping its aspect ratio,
// and shows the result.
func Draw(s tcell.Screen, img image.Image) {
	s.Clear()
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 || img.Bounds().Empty() {
		s.Show()
		return
	}

	small := imaging.Fit(img, cols, rows*2, imaging.Box)
	b := small.Bounds()
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := small.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			bottom := top
			if y+1 < b.Dy() {
				bottom = small.NRGBAAt(b.Min.X+x, b.Min.Y+y+1)
			}
			style := tcell.StyleDefault.
				Foreground(cellColor(top)).
				Background(cellColor(bottom))
			s.SetContent(x, y/2, upperHalfBlock, nil, style)
		}
	}
	s.Show()
}

// cellColor flattens c over white.
func cellColor(c color.NRGBA) tcell.Color {
	blend := func(v uint8) int32 {
		return int32((uint32(v)*uint32(c.A) + 255*(255-uint32(c.A))) / 255)
	}
	return tcell.NewRGBColor(blend(c.R), blend(c.G), blend(c.B))
}
