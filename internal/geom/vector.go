package geom

import "golang.org/x/exp/constraints"

// Number is any scalar a Vector can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

type Vector[T Number] struct {
	X T `yaml:"x"`
	Y T `yaml:"y"`
}

func NewVector[T Number](x, y T) Vector[T] {
	return Vector[T]{X: x, Y: y}
}

func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	return Vector[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	return Vector[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales both components by factor.
func (v Vector[T]) Mul(factor T) Vector[T] {
	return Vector[T]{X: v.X * factor, Y: v.Y * factor}
}
