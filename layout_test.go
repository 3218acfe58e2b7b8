package blockdiag

import (
	"errors"
	"math"
	"testing"
)

func TestNPUArchitecture(t *testing.T) {
	l := NPUArchitecture()
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if l.Bounds != R(0, 0, 100, 60) {
		t.Errorf("Bounds = %v, want 0..100 x 0..60", l.Bounds)
	}
	if len(l.Boxes) != 12 {
		t.Errorf("len(Boxes) = %d, want 12", len(l.Boxes))
	}
	if len(l.Arrows) != 12 {
		t.Errorf("len(Arrows) = %d, want 12", len(l.Arrows))
	}
	if l.Title.At != Pt(50, 58) || !l.Title.Bold || l.Title.FontSize != TitleFontSize {
		t.Errorf("Title = %+v", l.Title)
	}

	names := map[string]bool{}
	for _, b := range l.Boxes {
		if names[b.Name] {
			t.Errorf("duplicate box name %q", b.Name)
		}
		names[b.Name] = true
	}
	for _, name := range []string{
		"host", "control", "debug", "interfaces",
		"systolic", "mac", "postproc",
		"weight_buffer", "activation_buffer", "psum_buffer", "agu", "dma",
	} {
		if !names[name] {
			t.Errorf("missing box %q", name)
		}
	}
}

func TestNPUElementsInsideBounds(t *testing.T) {
	l := NPUArchitecture()
	in := func(p Point) bool {
		return p.X >= l.Bounds.Min.X && p.X <= l.Bounds.Max.X &&
			p.Y >= l.Bounds.Min.Y && p.Y <= l.Bounds.Max.Y
	}
	for _, b := range l.Boxes {
		o := b.Outline()
		if !in(o.Min) || !in(o.Max) {
			t.Errorf("box %s outline %v outside bounds", b.Name, o)
		}
	}
	for i, a := range l.Arrows {
		if !in(a.From) || !in(a.To) {
			t.Errorf("arrow %d %v -> %v outside bounds", i, a.From, a.To)
		}
	}
}

func TestLayoutBoxLookup(t *testing.T) {
	l := NPUArchitecture()
	b, ok := l.Box("dma")
	if !ok {
		t.Fatal("Box(dma) not found")
	}
	if b.X != 76 || b.Y != 2 || b.W != 18 || b.H != 10 {
		t.Errorf("dma = %+v", b)
	}
	if _, ok := l.Box("gpu"); ok {
		t.Error("Box(gpu) found, want missing")
	}
}

func TestBoxGeometry(t *testing.T) {
	b := NewBox("b", 10, 20, 4, 6, "x")
	if got := b.Center(); got != Pt(12, 23) {
		t.Errorf("Center = %v, want (12, 23)", got)
	}
	want := R(9.9, 19.9, 14.1, 26.1)
	got := b.Outline()
	for _, d := range []float64{
		got.Min.X - want.Min.X, got.Min.Y - want.Min.Y,
		got.Max.X - want.Max.X, got.Max.Y - want.Max.Y,
	} {
		if math.Abs(d) > 1e-9 {
			t.Fatalf("Outline = %v, want %v", got, want)
		}
	}
}

func TestCaptionAnchor(t *testing.T) {
	from, to := Pt(13, 50), Pt(40, 42)
	for _, f := range []float64{0, 0.25, 0.5, 0.75, 1} {
		a := NewArrow(from, to, "c")
		a.CaptionPos = f
		got := a.CaptionAnchor()
		wantX := from.X + f*(to.X-from.X)
		wantY := from.Y + f*(to.Y-from.Y)
		if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Y-wantY) > 1e-9 {
			t.Errorf("CaptionAnchor(f=%v) = %v, want (%v, %v)", f, got, wantX, wantY)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() Layout {
		return Layout{
			Bounds: R(0, 0, 10, 10),
			Boxes:  []Box{NewBox("a", 1, 1, 2, 2, "a")},
			Arrows: []Arrow{NewArrow(Pt(0, 0), Pt(5, 5), "")},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Layout)
		want   error
	}{
		{"valid", func(*Layout) {}, nil},
		{"empty bounds", func(l *Layout) { l.Bounds = R(0, 0, 0, 10) }, ErrEmptyBounds},
		{"inverted bounds", func(l *Layout) { l.Bounds = R(10, 0, 0, 10) }, ErrEmptyBounds},
		{"zero width", func(l *Layout) { l.Boxes[0].W = 0 }, ErrBoxSize},
		{"negative height", func(l *Layout) { l.Boxes[0].H = -1 }, ErrBoxSize},
		{"negative pad", func(l *Layout) { l.Boxes[0].Pad = -0.1 }, ErrBoxPad},
		{"negative font", func(l *Layout) { l.Boxes[0].FontSize = -9 }, ErrFontSize},
		{"caption before start", func(l *Layout) { l.Arrows[0].CaptionPos = -0.01 }, ErrCaptionPosition},
		{"caption past end", func(l *Layout) { l.Arrows[0].CaptionPos = 1.5 }, ErrCaptionPosition},
		{"negative line width", func(l *Layout) { l.Arrows[0].LineWidth = -1 }, ErrLineWidth},
		{"negative title size", func(l *Layout) { l.Title.FontSize = -1 }, ErrFontSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(&l)
			err := l.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestArrowHeadString(t *testing.T) {
	tests := []struct {
		h    ArrowHead
		want string
	}{
		{HeadFilled, "Filled"},
		{HeadOpen, "Open"},
		{ArrowHead(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("ArrowHead(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestFrameToPixel(t *testing.T) {
	f := Frame{Bounds: R(0, 0, 100, 60), Area: R(10, 10, 210, 130)}
	tests := []struct {
		p      Point
		wx, wy float64
	}{
		{Pt(0, 60), 10, 10},
		{Pt(100, 0), 210, 130},
		{Pt(50, 30), 110, 70},
	}
	for _, tt := range tests {
		x, y := f.ToPixel(tt.p)
		if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
			t.Errorf("ToPixel(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
		}
	}

	shifted := f.Shift(-10, -5)
	x, y := shifted.ToPixel(Pt(0, 60))
	if x != 0 || y != 5 {
		t.Errorf("shifted ToPixel = (%v, %v), want (0, 5)", x, y)
	}
	if sx, sy := f.Scale(); sx != 2 || sy != 2 {
		t.Errorf("Scale = (%v, %v), want (2, 2)", sx, sy)
	}
}
