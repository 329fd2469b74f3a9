package mandel

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/mandelbrot/internal/compute"
	"github.com/san-kum/mandelbrot/internal/geom"
	"github.com/san-kum/mandelbrot/internal/palette"
)

type RenderingMode int

const (
	Smooth RenderingMode = iota
	Fast
)

func (m RenderingMode) String() string {
	switch m {
	case Smooth:
		return "smooth"
	case Fast:
		return "fast"
	}
	return fmt.Sprintf("RenderingMode(%d)", int(m))
}

func ParseRenderingMode(s string) (RenderingMode, error) {
	switch strings.ToLower(s) {
	case "smooth":
		return Smooth, nil
	case "fast":
		return Fast, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRenderingMode, s)
}

const (
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultExponent  = 1.0
	DefaultBlockSize = 4096

	// ZoomIn is the factor applied by a single click.
	ZoomIn  = 0.25
	ZoomOut = 1 / ZoomIn
)

// Viewport is the logical render state. Zoom is the half extent of the view
// on each axis, so the visible rectangle is Position ± Zoom.
type Viewport struct {
	Position geom.Vector[float64]
	Zoom     geom.Vector[float64]

	Width  int
	Height int

	MaxIterations int
	// Bailout is a squared magnitude.
	Bailout      float64
	PeriodLength int

	Rendering RenderingMode
	Coloring  palette.Mode
	Exponent  float64

	Palettes []*palette.Gradient
	Palette  int

	// BlockSize is the number of pixels per Smooth work unit.
	BlockSize int
}

func DefaultViewport() *Viewport {
	return &Viewport{
		Position:      geom.NewVector(-0.5, 0.0),
		Zoom:          geom.NewVector(2.0, 1.125),
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxIterations: compute.DefaultMaxIterations,
		Bailout:       compute.DefaultBailout,
		PeriodLength:  compute.DefaultPeriodLength,
		Rendering:     Fast,
		Coloring:      palette.PaletteMode,
		Exponent:      DefaultExponent,
		Palettes:      palette.Presets(),
		Palette:       0,
		BlockSize:     DefaultBlockSize,
	}
}

// Reset replaces every field with its default.
func (v *Viewport) Reset() {
	*v = *DefaultViewport()
}

// Clone returns a copy that can be mutated independently. Gradients are
// immutable and shared.
func (v *Viewport) Clone() *Viewport {
	c := *v
	c.Palettes = append([]*palette.Gradient(nil), v.Palettes...)
	return &c
}

func (v *Viewport) Validate() error {
	switch {
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidViewport, v.Width, v.Height)
	case !(v.Zoom.X > 0) || !(v.Zoom.Y > 0) || math.IsInf(v.Zoom.X, 0) || math.IsInf(v.Zoom.Y, 0):
		return fmt.Errorf("%w: zoom %v", ErrInvalidViewport, v.Zoom)
	case math.IsNaN(v.Position.X) || math.IsNaN(v.Position.Y):
		return fmt.Errorf("%w: position %v", ErrInvalidViewport, v.Position)
	case v.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidViewport, v.MaxIterations)
	case !(v.Bailout > 0):
		return fmt.Errorf("%w: bailout %v", ErrInvalidViewport, v.Bailout)
	case v.PeriodLength <= 0:
		return fmt.Errorf("%w: period length %d", ErrInvalidViewport, v.PeriodLength)
	case !(v.Exponent > 0):
		return fmt.Errorf("%w: exponent %v", ErrInvalidViewport, v.Exponent)
	case v.BlockSize <= 0:
		return fmt.Errorf("%w: block size %d", ErrInvalidViewport, v.BlockSize)
	case v.Rendering != Smooth && v.Rendering != Fast:
		return fmt.Errorf("%w: %v", ErrInvalidViewport, v.Rendering)
	}

	if v.Coloring == palette.PaletteMode {
		if len(v.Palettes) == 0 {
			return fmt.Errorf("%w: no palettes", ErrInvalidViewport)
		}
		if v.Palette < 0 || v.Palette >= len(v.Palettes) || v.Palettes[v.Palette] == nil {
			return fmt.Errorf("%w: palette index %d of %d", ErrInvalidViewport, v.Palette, len(v.Palettes))
		}
	}
	return nil
}

func (v *Viewport) Params() compute.Params {
	return compute.Params{
		MaxIterations: v.MaxIterations,
		Bailout:       v.Bailout,
		PeriodLength:  v.PeriodLength,
	}
}

func (v *Viewport) Rect() geom.Rectangle[float64] {
	return geom.RectFromPosition(v.Position, v.Zoom)
}

// Ranges returns the screen axes and the plane axes they map onto.
func (v *Viewport) Ranges() (width, height, real, imag geom.Range) {
	return geom.Axes(v.Width, v.Height, v.Rect())
}

func (v *Viewport) ScreenToPlane(x, y float64) complex128 {
	w, h, re, im := v.Ranges()
	return complex(w.Scale(x, re), h.Scale(y, im))
}

func (v *Viewport) PlaneToScreen(c complex128) (x, y float64) {
	w, h, re, im := v.Ranges()
	return re.Scale(real(c), w), im.Scale(imag(c), h)
}

// ZoomAt recenters the view on the plane point under screen pixel (x, y)
// and scales both half extents by factor. Factors below 1 zoom in.
func (v *Viewport) ZoomAt(x, y, factor float64) {
	w, h, re, im := v.Ranges()
	v.Position = geom.NewVector(w.Scale(x, re), h.Scale(y, im))
	v.Zoom = v.Zoom.Mul(factor)
}

// Pan moves the center by a screen-space delta in pixels.
func (v *Viewport) Pan(dx, dy float64) {
	w, h, re, im := v.Ranges()
	delta := geom.NewVector(
		w.Scale(dx, re)-re.Min,
		h.Scale(dy, im)-im.Min,
	)
	v.Position = v.Position.Add(delta)
}

// Gradient returns the selected palette, or nil when the index is out of
// range.
func (v *Viewport) Gradient() *palette.Gradient {
	if v.Palette < 0 || v.Palette >= len(v.Palettes) {
		return nil
	}
	return v.Palettes[v.Palette]
}

// SelectPalette selects the palette with the given name.
func (v *Viewport) SelectPalette(name string) error {
	for i, g := range v.Palettes {
		if g != nil && g.Name == name {
			v.Palette = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownPalette, name)
}

// CyclePalette advances the selection by one, wrapping around.
func (v *Viewport) CyclePalette() {
	if len(v.Palettes) == 0 {
		return
	}
	v.Palette = (v.Palette + 1) % len(v.Palettes)
}

func (v *Viewport) Colorizer() palette.Colorizer {
	return palette.NewColorizer(v.Coloring, v.Gradient(), v.MaxIterations, v.Exponent)
}
