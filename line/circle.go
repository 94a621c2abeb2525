package line

import "deedles.dev/xgeom/geom"

// CircleIntersect returns a point where the line through a1 and a2
// crosses the circle with the given center and radius r. If there are
// two such points, the one that comes first in the line's direction,
// the one on the side of a1, is returned. It returns false if the line
// misses the circle or if a1 and a2 are equal.
func CircleIntersect[T geom.Float](center geom.Point[T], r T, a1, a2 geom.Point[T]) (geom.Point[T], bool) {
	if a1.Eq(a2) {
		return geom.Point[T]{}, false
	}

	closest := ClosestPoint(center, a1, a2)
	dist2 := closest.DistSq(center)
	if dist2 > r*r {
		return geom.Point[T]{}, false
	}

	half := sqrt(r*r - dist2)
	return closest.Add(geom.SetLen(a1.Sub(a2), half)), true
}

// SegmentCircleIntersect is like CircleIntersect but only reports an
// intersection that lies within the segment from a1 to a2.
func SegmentCircleIntersect[T geom.Float](center geom.Point[T], r T, a1, a2 geom.Point[T]) (geom.Point[T], bool) {
	p, ok := CircleIntersect(center, r, a1, a2)
	if !ok || !IsBetween(p, a1, a2) {
		return geom.Point[T]{}, false
	}
	return p, true
}
