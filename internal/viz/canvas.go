package viz

import (
	"strings"

	"github.com/san-kum/mandelbrot/internal/mandel"
)

// Braille cells hold 2x4 dots numbered
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// dotBits[row][col] is the bit of each dot above U+2800.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBlank rune = 0x2800

// Canvas is a Cols x Rows grid of braille cells, addressed in dots.
type Canvas struct {
	Cols, Rows int
	cells      []rune
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, cells: make([]rune, cols*rows)}
	c.Clear()
	return c
}

// Set turns on the dot at (x, y). The canvas is Cols*2 by Rows*4 dots; dots
// outside are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.Cols*2 || y >= c.Rows*4 {
		return
	}
	c.cells[(y/4)*c.Cols+x/2] |= dotBits[y%4][x%2]
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = brailleBlank
	}
}

func (c *Canvas) String() string {
	lines := make([]string, c.Rows)
	for r := range lines {
		lines[r] = string(c.cells[r*c.Cols : (r+1)*c.Cols])
	}
	return strings.Join(lines, "\n")
}

// MaskCanvas plots every bounded pixel of f, one dot per pixel.
func MaskCanvas(f *mandel.Field) *Canvas {
	c := NewCanvas((f.Width+1)/2, (f.Height+3)/4)
	for i, b := range f.Bounded {
		if b {
			c.Set(i%f.Width, i/f.Width)
		}
	}
	return c
}
