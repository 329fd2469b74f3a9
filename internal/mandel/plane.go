package mandel

// plane caches the plane coordinates of every column and of the rows
// [start, end). Each coordinate comes from a single Range.Scale call so
// both rendering modes sample identical points.
type plane struct {
	start int
	xs    []float64
	ys    []float64
}

func newPlane(v *Viewport, start, end int) *plane {
	w, h, re, im := v.Ranges()
	p := &plane{
		start: start,
		xs:    make([]float64, v.Width),
		ys:    make([]float64, end-start),
	}
	for x := range p.xs {
		p.xs[x] = w.Scale(float64(x), re)
	}
	for y := range p.ys {
		p.ys[y] = h.Scale(float64(start+y), im)
	}
	return p
}

// at returns the sample point for pixel (x, y) in image coordinates.
func (p *plane) at(x, y int) complex128 {
	return complex(p.xs[x], p.ys[y-p.start])
}
