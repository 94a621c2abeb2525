// Package line calculates relations between lines and other geometric
// primitives: distances, side tests, intersections and collisions.
//
// Lines are never represented by a type of their own. A line is given
// by two points, a1 and a2, and runs in the direction from a1 to a2.
// A segment is given the same way but ends at both points. The
// direction matters: swapping the points flips the result of the side
// tests and changes which of two circle intersections is reported.
//
// Functions that compute a point return it along with a boolean. The
// point is only meaningful if the boolean is true.
package line

import (
	"math"

	"deedles.dev/xgeom/geom"
)

func sqrt[T geom.Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func abs[T geom.Float](v T) T {
	return T(math.Abs(float64(v)))
}

// DistSigned returns the distance from x to the line through a1 and
// a2. The result is positive if x is on the left of the line and
// negative otherwise.
func DistSigned[T geom.Float](x, a1, a2 geom.Point[T]) T {
	n := (a2.X-a1.X)*(a1.Y-x.Y) - (a1.X-x.X)*(a2.Y-a1.Y)
	return n / sqrt(geom.Square(a2.X-a1.X)+geom.Square(a2.Y-a1.Y))
}

// ClosestPoint returns the point on the line through a1 and a2 that is
// closest to x. If a1 and a2 are equal, the result is NaN.
func ClosestPoint[T geom.Float](x, a1, a2 geom.Point[T]) geom.Point[T] {
	n := a2.Sub(a1).Normalize()
	d := n.Dot(x.Sub(a1))
	return a1.Add(n.Mul(d))
}

// IsBetween reports whether x lies in the strip bounded by two
// parallel lines, one through each of p1 and p2, both perpendicular to
// the line connecting p1 and p2. Points on either boundary are inside.
func IsBetween[T geom.Float](x, p1, p2 geom.Point[T]) bool {
	if x.Sub(p1).Dot(p2.Sub(p1)) < 0 {
		return false
	}
	if x.Sub(p2).Dot(p1.Sub(p2)) < 0 {
		return false
	}
	return true
}

// IsRightOf reports whether x is right of or on the line running from
// a1 to a2.
//
// Points exactly on the line can be misclassified because of rounding
// error. Use IsRightOfMargin to handle them reliably.
func IsRightOf[T geom.Float](x, a1, a2 geom.Point[T]) bool {
	return a2.Sub(a1).Cross(x.Sub(a1)) >= 0
}

// IsRightOfMargin reports whether x is right of the line running from
// a1 to a2 by more than margin. A positive margin has the same effect
// as shifting the line to the right and makes the test stricter. A
// negative margin shifts it to the left.
//
// A small positive margin, such as geom.TinyMargin, reliably excludes
// points that lie exactly on the line.
func IsRightOfMargin[T geom.Float](x, a1, a2 geom.Point[T], margin T) bool {
	return DistSigned(x, a1, a2) < -margin
}
