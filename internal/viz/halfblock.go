package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mandelbrot/internal/mandel"
	"github.com/san-kum/mandelbrot/internal/palette"
)

const upperHalf = "▀"

// HalfBlock draws a w x h RGBA8 buffer using one upper half block per two
// pixel rows: the foreground is the top pixel and the background the bottom
// one. An odd last row is drawn over black.
func HalfBlock(pix []byte, w, h int) string {
	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := hexAt(pix, (y*w+x)*4)
			bottom := "#000000"
			if y+1 < h {
				bottom = hexAt(pix, ((y+1)*w+x)*4)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			b.WriteString(style.Render(upperHalf))
		}
	}
	return b.String()
}

func hexAt(pix []byte, i int) string {
	return fmt.Sprintf("#%02x%02x%02x", pix[i], pix[i+1], pix[i+2])
}

// Preview renders v into a cols x rows character grid. The view keeps its
// plane extent; only the sampling resolution changes.
func Preview(r *mandel.Renderer, v *mandel.Viewport, cols, rows int) (string, error) {
	small := v.Clone()
	small.Width = cols
	small.Height = rows * 2

	pix := make([]byte, small.Width*small.Height*4)
	if err := r.Render(small, pix); err != nil {
		return "", err
	}
	return HalfBlock(pix, small.Width, small.Height), nil
}

// Swatch draws g as a single row of width cells.
func Swatch(g *palette.Gradient, width int) string {
	var b strings.Builder
	for _, c := range g.Bake(width) {
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(" "))
	}
	return b.String()
}
