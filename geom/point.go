package geom

import (
	"fmt"
	"math"
)

// Point is a 2D vector. Depending on context it is used either as a
// location or as a direction.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Uniform returns a Point with both components set to v.
func Uniform[T Scalar](v T) Point[T] {
	return Point[T]{X: v, Y: v}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Div returns p scaled by 1/s.
func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{X: p.X / s, Y: p.Y / s}
}

func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of p and q.
func (p Point[T]) Dot(q Point[T]) T {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the cross product of p and q
// embedded in 3D space with z = 0. It is positive when q is
// counter-clockwise from p in a y-up coordinate system.
func (p Point[T]) Cross(q Point[T]) T {
	return p.X*q.Y - p.Y*q.X
}

// LenSq returns the squared length of p.
func (p Point[T]) LenSq() T {
	return p.Dot(p)
}

// Len returns the Euclidean length of p.
func (p Point[T]) Len() T {
	return T(math.Sqrt(float64(p.LenSq())))
}

// DistSq returns the squared distance between p and q.
func (p Point[T]) DistSq(q Point[T]) T {
	return p.Sub(q).LenSq()
}

// Normalize returns a vector of length 1 pointing in the same
// direction as p. The zero vector is not special-cased, so for
// floating-point types the result has NaN components.
func (p Point[T]) Normalize() Point[T] {
	return p.Div(p.Len())
}

// Eq reports whether p and q are exactly equal.
func (p Point[T]) Eq(q Point[T]) bool {
	return p == q
}

// Overlaps reports whether p1 and p2 are within margin of each other
// using Euclidean distance.
func Overlaps[T Scalar](p1, p2 Point[T], margin T) bool {
	return p1.DistSq(p2) <= margin*margin
}

// Tangent returns v rotated by 90 degrees. The result has the same
// length as v.
func Tangent[T Scalar](v Point[T]) Point[T] {
	return Point[T]{X: -v.Y, Y: v.X}
}

// SetLen returns a vector pointing in the same direction as v with a
// length of l.
func SetLen[T Float](v Point[T], l T) Point[T] {
	return v.Mul(l / v.Len())
}

// Mirror reflects v across a line through the origin with the given
// normal. The normal is expected to be of unit length. Negating the
// normal does not change the result.
func Mirror[T Float](v, normal Point[T]) Point[T] {
	n := normal.Mul(v.Dot(normal))
	return n.Mul(-2).Add(v)
}
