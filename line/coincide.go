package line

import "deedles.dev/xgeom/geom"

// Coincide reports whether the line through a1 and a2 and the line
// through b1 and b2 are the same line. The lines must be parallel and
// b1 must lie on the first line, both to within margin, so lines that
// are very nearly but not quite coincident may still be reported as
// coincident.
func Coincide[T geom.Float](a1, a2, b1, b2 geom.Point[T], margin T) bool {
	d1 := (a1.X-a2.X)*(b1.Y-b2.Y) - (b1.X-b2.X)*(a1.Y-a2.Y)
	d2 := (a1.X-a2.X)*(a1.Y-b1.Y) - (a1.X-b1.X)*(a1.Y-a2.Y)
	return abs(d1) < margin && abs(d2) < margin
}

// SegmentsCoincide reports whether the segment from a1 to a2 and the
// segment from b1 to b2 overlap along some length. Segments that only
// touch at an endpoint do not coincide. The margin is used both for
// the collinearity test and to decide whether two endpoints touch.
func SegmentsCoincide[T geom.Float](a1, a2, b1, b2 geom.Point[T], margin T) bool {
	if !Coincide(a1, a2, b1, b2, margin) {
		return false
	}

	touches := func(p geom.Point[T]) bool {
		return geom.Overlaps(p, b1, margin) || geom.Overlaps(p, b2, margin)
	}

	switch {
	case IsBetween(a1, b1, b2):
		if IsBetween(a2, b1, b2) {
			// a lies completely within b.
			return true
		}
		return !touches(a1)

	case IsBetween(a2, b1, b2):
		return !touches(a2)

	case IsBetween(b1, a1, a2):
		// b lies completely within a.
		return true

	default:
		return false
	}
}
