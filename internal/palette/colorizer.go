package palette

import (
	"fmt"
	"image/color"
	"math"
	"math/cmplx"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/mandelbrot/internal/compute"
)

type Mode int

const (
	PaletteMode Mode = iota
	ProceduralMode
)

func (m Mode) String() string {
	switch m {
	case PaletteMode:
		return "palette"
	case ProceduralMode:
		return "procedural"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "palette":
		return PaletteMode, nil
	case "procedural", "lch":
		return ProceduralMode, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

var black = color.RGBA{A: math.MaxUint8}

// Colorizer maps escape values to colors. The zero Exponent is treated as 1;
// a nil Gradient falls back to the default preset.
type Colorizer struct {
	Mode          Mode
	Gradient      *Gradient
	MaxIterations int
	Exponent      float64
}

func NewColorizer(mode Mode, g *Gradient, maxIterations int, exponent float64) Colorizer {
	if g == nil && mode == PaletteMode {
		g = DefaultGradient()
	}
	if exponent == 0 {
		exponent = 1
	}
	return Colorizer{Mode: mode, Gradient: g, MaxIterations: maxIterations, Exponent: exponent}
}

// Escape colors a full-mode kernel result with the renormalized count.
func (c Colorizer) Escape(e compute.Escape) color.RGBA {
	if e.Bounded() {
		return black
	}
	return c.Color(c.Progress(SmoothCount(e.Iterations, e.Z)))
}

// Count colors a raw iteration count. Counts at or above MaxIterations are
// bounded.
func (c Colorizer) Count(n int) color.RGBA {
	if n >= c.MaxIterations {
		return black
	}
	return c.Color(c.Progress(float64(n)))
}

// Progress normalizes a raw escape value to s in [0, 1].
func (c Colorizer) Progress(raw float64) float64 {
	return Progress(raw, c.MaxIterations, c.Exponent)
}

// Color maps s in [0, 1] through the selected strategy.
func (c Colorizer) Color(s float64) color.RGBA {
	switch c.Mode {
	case ProceduralMode:
		return toRGBA(Procedural(s))
	default:
		g := c.Gradient
		if g == nil {
			g = DefaultGradient()
		}
		return toRGBA(g.At(math.Cbrt(s)))
	}
}

// SmoothCount returns the renormalized escape count n + 1 - log2(log2|z|).
func SmoothCount(n int, z complex128) float64 {
	r2 := real(z)*real(z) + imag(z)*imag(z)
	if r2 <= 1 || cmplx.IsNaN(z) {
		return float64(n)
	}
	return float64(n) + 1 - math.Log(math.Log(r2)/2/math.Ln2)/math.Ln2
}

func Progress(raw float64, maxIterations int, exponent float64) float64 {
	if maxIterations <= 0 || math.IsNaN(raw) {
		return 0
	}
	s := clamp01(raw / float64(maxIterations))
	return clamp01(math.Pow(s, exponent))
}

// Procedural maps s onto a hue ramp in CIE LCh(ab).
func Procedural(s float64) colorful.Color {
	u := math.Pow(clamp01(s), 1.5)
	cos := math.Cos(math.Pi * u)
	v := 1 - cos*cos
	l := 75 - 75*v
	ch := 28 + (75 - 75*v)
	h := math.Mod(360*u, 360)
	return colorful.Hcl(h, ch/100, l/100).Clamped()
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
