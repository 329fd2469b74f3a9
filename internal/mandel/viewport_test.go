package mandel

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/mandelbrot/internal/palette"
)

func TestDefaultViewport(t *testing.T) {
	v := DefaultViewport()
	if err := v.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if v.Width != 1280 || v.Height != 720 {
		t.Errorf("resolution = %dx%d, want 1280x720", v.Width, v.Height)
	}
	if v.Rendering != Fast || v.Coloring != palette.PaletteMode {
		t.Errorf("modes = %v/%v, want fast/palette", v.Rendering, v.Coloring)
	}
	if g := v.Gradient(); g == nil || g.Name != palette.DefaultName {
		t.Errorf("Gradient() = %v, want default", g)
	}
	rect := v.Rect()
	if rect.Start.X != -2.5 || rect.End.X != 1.5 || rect.Start.Y != -1.125 || rect.End.Y != 1.125 {
		t.Errorf("Rect() = %+v", rect)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *Viewport)
	}{
		{"zero width", func(v *Viewport) { v.Width = 0 }},
		{"negative height", func(v *Viewport) { v.Height = -1 }},
		{"zero zoom", func(v *Viewport) { v.Zoom.X = 0 }},
		{"negative zoom", func(v *Viewport) { v.Zoom.Y = -1 }},
		{"nan zoom", func(v *Viewport) { v.Zoom.X = math.NaN() }},
		{"inf zoom", func(v *Viewport) { v.Zoom.Y = math.Inf(1) }},
		{"nan position", func(v *Viewport) { v.Position.X = math.NaN() }},
		{"zero iterations", func(v *Viewport) { v.MaxIterations = 0 }},
		{"zero bailout", func(v *Viewport) { v.Bailout = 0 }},
		{"zero period", func(v *Viewport) { v.PeriodLength = 0 }},
		{"zero exponent", func(v *Viewport) { v.Exponent = 0 }},
		{"zero block", func(v *Viewport) { v.BlockSize = 0 }},
		{"bad mode", func(v *Viewport) { v.Rendering = RenderingMode(7) }},
		{"no palettes", func(v *Viewport) { v.Palettes = nil }},
		{"palette index", func(v *Viewport) { v.Palette = 99 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DefaultViewport()
			tt.mutate(v)
			if err := v.Validate(); !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("Validate() error = %v, want ErrInvalidViewport", err)
			}
		})
	}
}

func TestProceduralNeedsNoPalette(t *testing.T) {
	v := DefaultViewport()
	v.Coloring = palette.ProceduralMode
	v.Palettes = nil
	if err := v.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestReset(t *testing.T) {
	v := DefaultViewport()
	v.ZoomAt(10, 10, 0.25)
	v.MaxIterations = 5
	v.Rendering = Smooth
	v.Reset()

	want := DefaultViewport()
	if v.Position != want.Position || v.Zoom != want.Zoom || v.MaxIterations != want.MaxIterations || v.Rendering != want.Rendering {
		t.Errorf("Reset() = %+v", v)
	}
}

func TestZoomRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		factor float64
	}{
		{"center", 640, 360, 0.25},
		{"corner", 0, 0, 0.5},
		{"off center", 1000, 123, 0.1},
		{"zoom out", 300, 700, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DefaultViewport()
			orig := v.Zoom
			v.ZoomAt(tt.x, tt.y, tt.factor)
			v.ZoomAt(tt.x, tt.y, 1/tt.factor)
			if !approx(v.Zoom.X, orig.X, 1e-12) || !approx(v.Zoom.Y, orig.Y, 1e-12) {
				t.Errorf("Zoom = %v, want %v", v.Zoom, orig)
			}
		})
	}
}

func TestZoomAtRecenters(t *testing.T) {
	v := DefaultViewport()
	want := v.ScreenToPlane(320, 180)
	v.ZoomAt(320, 180, ZoomIn)

	if v.Position.X != real(want) || v.Position.Y != imag(want) {
		t.Errorf("Position = %v, want %v", v.Position, want)
	}
	if v.Zoom.X != 0.5 || v.Zoom.Y != 1.125*0.25 {
		t.Errorf("Zoom = %v", v.Zoom)
	}

	// The new center is the middle of the screen.
	x, y := v.PlaneToScreen(want)
	if !approx(x, 640, 1e-9) || !approx(y, 360, 1e-9) {
		t.Errorf("PlaneToScreen() = %v, %v, want 640, 360", x, y)
	}
}

func TestScreenPlaneInverse(t *testing.T) {
	v := DefaultViewport()
	v.ZoomAt(900, 200, 0.01)

	for _, p := range [][2]float64{{0, 0}, {1280, 720}, {17, 401}, {640.5, 359.25}} {
		c := v.ScreenToPlane(p[0], p[1])
		x, y := v.PlaneToScreen(c)
		if !approx(x, p[0], 1e-6) || !approx(y, p[1], 1e-6) {
			t.Errorf("round trip of %v = %v, %v", p, x, y)
		}
	}

	// End points are exact.
	if c := v.ScreenToPlane(0, 0); real(c) != v.Position.X-v.Zoom.X || imag(c) != v.Position.Y-v.Zoom.Y {
		t.Errorf("ScreenToPlane(0, 0) = %v", c)
	}
}

func TestPanRoundTrip(t *testing.T) {
	v := DefaultViewport()
	orig := v.Position

	v.Pan(128, -72)
	if v.Position == orig {
		t.Fatal("Pan() did not move the view")
	}
	if !approx(v.Position.X-orig.X, 128*4.0/1280, 1e-12) {
		t.Errorf("x delta = %v, want %v", v.Position.X-orig.X, 0.4)
	}

	v.Pan(-128, 72)
	if !approx(v.Position.X, orig.X, 1e-12) || !approx(v.Position.Y, orig.Y, 1e-12) {
		t.Errorf("Position = %v, want %v", v.Position, orig)
	}
	if v.Zoom != DefaultViewport().Zoom {
		t.Errorf("Pan() changed Zoom to %v", v.Zoom)
	}
}

func TestPaletteSelection(t *testing.T) {
	v := DefaultViewport()
	if err := v.SelectPalette("ocean"); err != nil {
		t.Fatalf("SelectPalette() error = %v", err)
	}
	if v.Gradient().Name != "ocean" {
		t.Errorf("Gradient() = %s", v.Gradient().Name)
	}
	if err := v.SelectPalette("nope"); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("SelectPalette(nope) error = %v", err)
	}

	v.Palette = len(v.Palettes) - 1
	v.CyclePalette()
	if v.Palette != 0 {
		t.Errorf("CyclePalette() = %d, want 0", v.Palette)
	}
}

func TestClone(t *testing.T) {
	v := DefaultViewport()
	c := v.Clone()
	c.ZoomAt(0, 0, 0.5)
	c.Palettes[0] = nil

	if v.Zoom != DefaultViewport().Zoom {
		t.Error("Clone shares Zoom")
	}
	if v.Palettes[0] == nil {
		t.Error("Clone shares Palettes")
	}
}

func TestParseRenderingMode(t *testing.T) {
	tests := []struct {
		in      string
		want    RenderingMode
		wantErr bool
	}{
		{"smooth", Smooth, false},
		{"FAST", Fast, false},
		{"gpu", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRenderingMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRenderingMode(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRenderingMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Abs(b))
}
