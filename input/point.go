package input

import "golang.org/x/exp/constraints"

// Point in a 2D grid. Y grows downwards.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Add returns p+q.
func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{p.X + q.X, p.Y + q.Y} }

// Scale returns p*n.
func (p Point[T]) Scale(n T) Point[T] { return Point[T]{p.X * n, p.Y * n} }

// Manhattan distance from the origin.
func (p Point[T]) Manhattan() T { return Abs(p.X) + Abs(p.Y) }

// RotateRight rotates p by 90 degrees clockwise around the origin.
func (p Point[T]) RotateRight() Point[T] { return Point[T]{-p.Y, p.X} }

// RotateLeft rotates p by 90 degrees anticlockwise around the origin.
func (p Point[T]) RotateLeft() Point[T] { return Point[T]{p.Y, -p.X} }

// Neighbours are the eight offsets surrounding a cell.
var Neighbours = []Point[int]{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
