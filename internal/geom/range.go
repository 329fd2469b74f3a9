package geom

// Range is one coordinate axis. Min and Max may come in either order but the
// span must not be zero when the range is the input of Scale.
type Range struct {
	Min float64
	Max float64
}

func NewRange(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// Span returns the signed length Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies between the end points, inclusive, in
// whichever order they were given.
func (r Range) Contains(v float64) bool {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Scale remaps value linearly from r onto out. It is exact at r.Min and r.Max
// and undefined when r has zero span.
func (r Range) Scale(value float64, out Range) float64 {
	switch value {
	case r.Min:
		return out.Min
	case r.Max:
		return out.Max
	}
	return (r.Max*out.Min - r.Min*out.Max + value*(out.Max-out.Min)) / (r.Max - r.Min)
}

// Axes returns the screen and plane ranges for both axes of a size w x h
// screen showing rect.
func Axes(w, h int, rect Rectangle[float64]) (width, height, real, imag Range) {
	width = NewRange(0, float64(w))
	height = NewRange(0, float64(h))
	real = NewRange(rect.Start.X, rect.End.X)
	imag = NewRange(rect.Start.Y, rect.End.Y)
	return
}
