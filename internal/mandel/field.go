package mandel

import (
	"github.com/san-kum/mandelbrot/internal/compute"
	"github.com/san-kum/mandelbrot/internal/palette"
)

// Field holds the per-pixel escape values of one frame. Values are
// renormalized counts in Smooth mode and raw counts in Fast mode; bounded
// pixels hold MaxIterations.
type Field struct {
	Width         int
	Height        int
	MaxIterations int
	Rendering     RenderingMode

	Values  []float64
	Bounded []bool

	// Evaluated is the number of kernel evaluations the frame needed.
	Evaluated int
}

// Field runs the same partitioning as Render and returns the escape values
// instead of colors.
func (r *Renderer) Field(v *Viewport) (*Field, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	n := v.Width * v.Height
	f := &Field{
		Width:         v.Width,
		Height:        v.Height,
		MaxIterations: v.MaxIterations,
		Rendering:     v.Rendering,
		Values:        make([]float64, n),
		Bounded:       make([]bool, n),
	}
	limit := float64(v.MaxIterations)

	evaluated, err := r.run(v, visitor{
		block: func(lo int, es []compute.Escape) {
			for i, e := range es {
				if e.Bounded() {
					f.Values[lo+i] = limit
					f.Bounded[lo+i] = true
					continue
				}
				f.Values[lo+i] = palette.SmoothCount(e.Iterations, e.Z)
			}
		},
		band: func(lo int, counts []int) {
			for i, c := range counts {
				f.Values[lo+i] = float64(c)
				f.Bounded[lo+i] = c >= v.MaxIterations
			}
		},
	})
	if err != nil {
		return nil, err
	}
	f.Evaluated = evaluated
	return f, nil
}

func (f *Field) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

func (f *Field) BoundedCount() int {
	n := 0
	for _, b := range f.Bounded {
		if b {
			n++
		}
	}
	return n
}

// Histogram counts escaped pixels by escape value.
type Histogram struct {
	Counts  []int
	Bounded int
	// Width is the escape value range covered by one bucket.
	Width float64
}

func (h Histogram) Total() int {
	n := h.Bounded
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// Series returns the bucket counts as float64, ready for charting.
func (h Histogram) Series() []float64 {
	out := make([]float64, len(h.Counts))
	for i, c := range h.Counts {
		out[i] = float64(c)
	}
	return out
}

// Histogram sorts escaped pixels into buckets evenly spaced over
// [0, MaxIterations). Values outside the range land in the end buckets.
func (f *Field) Histogram(buckets int) Histogram {
	if buckets <= 0 {
		buckets = 1
	}
	h := Histogram{
		Counts: make([]int, buckets),
		Width:  float64(f.MaxIterations) / float64(buckets),
	}
	for i, v := range f.Values {
		if f.Bounded[i] {
			h.Bounded++
			continue
		}
		b := int(v / h.Width)
		h.Counts[max(min(b, buckets-1), 0)]++
	}
	return h
}
