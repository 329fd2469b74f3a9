package mandel

import (
	"github.com/san-kum/mandelbrot/internal/compute"
)

// Scanner approximates the iteration counts of one horizontal band of rows
// [start, end). It evaluates the band border, then follows every
// iteration-count discontinuity inward. Pixels never reached take the value
// of their left neighbor.
//
// A Scanner owns its arrays and is used from a single goroutine.
type Scanner struct {
	kernel compute.Kernel
	params compute.Params
	plane  *plane

	width int
	start int
	end   int

	counts []int
	loaded []bool
	queued []bool
	queue  []int
	head   int

	evaluated int
}

func NewScanner(k compute.Kernel, v *Viewport, start, end int) *Scanner {
	size := v.Width * (end - start)
	return &Scanner{
		kernel: k,
		params: v.Params(),
		plane:  newPlane(v, start, end),
		width:  v.Width,
		start:  start,
		end:    end,
		counts: make([]int, size),
		loaded: make([]bool, size),
		queued: make([]bool, size),
		queue:  make([]int, 0, 2*(v.Width+end-start)),
	}
}

// Evaluated returns how many pixels were passed to the kernel.
func (s *Scanner) Evaluated() int {
	return s.evaluated
}

// Scan fills and returns the band's counts in row-major order. Index 0 is
// pixel (0, start).
func (s *Scanner) Scan() []int {
	w := s.width
	rows := s.end - s.start
	if rows <= 0 || w <= 0 {
		return s.counts
	}

	for y := 0; y < rows; y++ {
		s.push(y * w)
		s.push(y*w + w - 1)
	}
	for x := 1; x < w-1; x++ {
		s.push(x)
		s.push((rows-1)*w + x)
	}

	for s.head < len(s.queue) {
		i := s.queue[s.head]
		s.head++
		s.scan(i)
	}

	for i := 0; i < len(s.counts)-1; i++ {
		if s.loaded[i] && !s.loaded[i+1] {
			s.counts[i+1] = s.counts[i]
			s.loaded[i+1] = true
		}
	}
	return s.counts
}

func (s *Scanner) push(i int) {
	if s.queued[i] {
		return
	}
	s.queued[i] = true
	s.queue = append(s.queue, i)
}

func (s *Scanner) load(i int) int {
	if s.loaded[i] {
		return s.counts[i]
	}
	c := s.plane.at(i%s.width, s.start+i/s.width)
	n := s.kernel.Iterations(c, s.params)
	s.counts[i] = n
	s.loaded[i] = true
	s.evaluated++
	return n
}

func (s *Scanner) scan(i int) {
	w := s.width
	x, y := i%w, i/w
	center := s.load(i)

	hasL := x > 0
	hasR := x+1 < w
	hasU := y > 0
	hasD := y+1 < s.end-s.start

	l := hasL && s.load(i-1) != center
	r := hasR && s.load(i+1) != center
	u := hasU && s.load(i-w) != center
	d := hasD && s.load(i+w) != center

	if l {
		s.push(i - 1)
	}
	if r {
		s.push(i + 1)
	}
	if u {
		s.push(i - w)
	}
	if d {
		s.push(i + w)
	}

	// Corners follow a discontinuity on either adjacent side.
	if hasU && hasL && (l || u) {
		s.push(i - w - 1)
	}
	if hasU && hasR && (r || u) {
		s.push(i - w + 1)
	}
	if hasD && hasL && (l || d) {
		s.push(i + w - 1)
	}
	if hasD && hasR && (r || d) {
		s.push(i + w + 1)
	}
}
