// Package geom provides the value types that the rest of xgeom is
// built on: a generic 2D vector, named position and size wrappers,
// and a few rectangular shapes composed from them.
//
// It is patterned loosely after image.Point and image.Rectangle, but
// works with any numeric type and adds the vector algebra needed for
// analytic geometry.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Float | constraints.Integer
}

// Float is a constraint for the floating-point types. Functions that
// need square roots or tolerances are restricted to it.
type Float interface {
	constraints.Float
}

// TinyMargin is the default tolerance for predicates that compare
// floating-point values. It is small enough to only absorb rounding
// error in reasonably sized coordinates.
const TinyMargin = 1e-5

// Square returns x*x.
func Square[T Scalar](x T) T {
	return x * x
}
