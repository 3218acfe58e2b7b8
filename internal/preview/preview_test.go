package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

// splitImage is black on its top half and white on its bottom half.
func splitImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{255, 255, 255, 255}
			if y < h/2 {
				c = color.NRGBA{0, 0, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDrawHalfBlocks(t *testing.T) {
	s := newScreen(t, 10, 5)
	Draw(s, splitImage(100, 100))

	r, _, style, _ := s.GetContent(0, 0)
	if r != upperHalfBlock {
		t.Fatalf("cell (0,0) = %q, want %q", r, upperHalfBlock)
	}
	fg, bg, _ := style.Decompose()
	if fr, fg2, fb := fg.RGB(); fr != 0 || fg2 != 0 || fb != 0 {
		t.Errorf("top cell foreground = (%d,%d,%d), want black", fr, fg2, fb)
	}
	if br, _, _ := bg.RGB(); br != 0 {
		t.Errorf("top cell background R = %d, want black", br)
	}

	// A square image in a 10x5 grid is 10x10 pixels: rows 0-4 are cells,
	// the bottom cell row is white.
	_, _, style, _ = s.GetContent(0, 4)
	fg, _, _ = style.Decompose()
	if fr, _, _ := fg.RGB(); fr != 255 {
		t.Errorf("bottom cell foreground R = %d, want white", fr)
	}
}

func TestDrawKeepsAspect(t *testing.T) {
	s := newScreen(t, 40, 10)
	Draw(s, splitImage(100, 100))

	// 100x100 fits in 40x20 pixels as 20x20: columns past 20 stay empty.
	if r, _, _, _ := s.GetContent(25, 0); r == upperHalfBlock {
		t.Error("image drawn past its scaled width")
	}
	if r, _, _, _ := s.GetContent(19, 0); r != upperHalfBlock {
		t.Error("image not drawn across its scaled width")
	}
}

func TestRunQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(t, 8, 4)
			s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			s.InjectKey(tt.key, tt.r, tcell.ModNone)
			if err := Run(s, splitImage(8, 8)); err != nil {
				t.Errorf("Run() = %v, want nil", err)
			}
		})
	}
}

func TestCellColorBlendsOverWhite(t *testing.T) {
	r, g, b := cellColor(color.NRGBA{0, 0, 0, 0}).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("transparent = (%d,%d,%d), want white", r, g, b)
	}
	r, _, _ = cellColor(color.NRGBA{0, 0, 0, 255}).RGB()
	if r != 0 {
		t.Errorf("opaque black R = %d, want 0", r)
	}
}
