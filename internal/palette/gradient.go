package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient interpolates between control colors along a uniform Catmull-Rom
// spline in CIE L*a*b* space. It is immutable after construction and safe
// for concurrent use.
type Gradient struct {
	Name  string
	stops []colorful.Color
	lab   [][3]float64
}

// NewGradient parses the hex stops ("#RRGGBB", the '#' is optional) in order.
func NewGradient(hex ...string) (*Gradient, error) {
	return NewNamedGradient("", hex...)
}

func NewNamedGradient(name string, hex ...string) (*Gradient, error) {
	if len(hex) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewStops, len(hex))
	}

	g := &Gradient{
		Name:  name,
		stops: make([]colorful.Color, len(hex)),
		lab:   make([][3]float64, len(hex)),
	}
	for i, h := range hex {
		c, err := parseHex(h)
		if err != nil {
			return nil, err
		}
		l, a, b := c.Lab()
		g.stops[i] = c
		g.lab[i] = [3]float64{l, a, b}
	}
	return g, nil
}

// MustGradient is like NewGradient but panics on error. Intended for
// package-level literals.
func MustGradient(name string, hex ...string) *Gradient {
	g, err := NewNamedGradient(name, hex...)
	if err != nil {
		panic(err)
	}
	return g
}

func parseHex(h string) (colorful.Color, error) {
	s := strings.TrimSpace(h)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, h)
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, h)
		}
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, h, err)
	}
	return c, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (g *Gradient) Len() int {
	return len(g.stops)
}

// Stops returns the control colors as lower-case hex strings.
func (g *Gradient) Stops() []string {
	out := make([]string, len(g.stops))
	for i, c := range g.stops {
		out[i] = c.Hex()
	}
	return out
}

// At evaluates the gradient at t, clamped to [0, 1]. The end points return
// the first and last control colors exactly.
func (g *Gradient) At(t float64) colorful.Color {
	n := len(g.stops)
	if !(t > 0) {
		return g.stops[0]
	}
	if t >= 1 {
		return g.stops[n-1]
	}

	u := t * float64(n-1)
	seg := int(u)
	if seg > n-2 {
		seg = n - 2
	}
	f := u - float64(seg)

	p0 := g.lab[max(seg-1, 0)]
	p1 := g.lab[seg]
	p2 := g.lab[seg+1]
	p3 := g.lab[min(seg+2, n-1)]

	var out [3]float64
	for i := range out {
		out[i] = catmullRom(p0[i], p1[i], p2[i], p3[i], f)
	}
	return colorful.Lab(out[0], out[1], out[2]).Clamped()
}

func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(3*p1-p0-3*p2+p3)*t3)
}

// RGBA evaluates the gradient at t as an opaque 8-bit color.
func (g *Gradient) RGBA(t float64) color.RGBA {
	return toRGBA(g.At(t))
}

// Bake samples the gradient at n evenly spaced points from 0 to 1.
func (g *Gradient) Bake(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	lut := make([]color.RGBA, n)
	if n == 1 {
		lut[0] = g.RGBA(0)
		return lut
	}
	for i := range lut {
		lut[i] = g.RGBA(float64(i) / float64(n-1))
	}
	return lut
}

func toRGBA(c colorful.Color) color.RGBA {
	r, gr, b := c.RGB255()
	return color.RGBA{R: r, G: gr, B: b, A: math.MaxUint8}
}
