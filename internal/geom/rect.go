package geom

// Rectangle is not normalized: Start may lie on either side of End and the
// caller decides what the orientation means.
type Rectangle[T Number] struct {
	Start Vector[T]
	End   Vector[T]
}

func NewRectangle[T Number](start, end Vector[T]) Rectangle[T] {
	return Rectangle[T]{Start: start, End: end}
}

// Width returns the signed delta End.X - Start.X.
func (r Rectangle[T]) Width() T {
	return r.End.X - r.Start.X
}

// Height returns the signed delta End.Y - Start.Y.
func (r Rectangle[T]) Height() T {
	return r.End.Y - r.Start.Y
}

// RectFromPosition returns the rectangle centered on position whose half
// extent along each axis is zoom.
func RectFromPosition[T Number](position, zoom Vector[T]) Rectangle[T] {
	return Rectangle[T]{
		Start: position.Sub(zoom),
		End:   position.Add(zoom),
	}
}
