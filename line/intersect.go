package line

import "deedles.dev/xgeom/geom"

// Intersect returns the point where the line through a1 and a2 crosses
// the line through b1 and b2. It returns false if the lines are
// parallel, including if they coincide.
func Intersect[T geom.Float](a1, a2, b1, b2 geom.Point[T]) (geom.Point[T], bool) {
	d3 := (a1.X-a2.X)*(b1.Y-b2.Y) - (b1.X-b2.X)*(a1.Y-a2.Y)
	if d3 == 0 {
		return geom.Point[T]{}, false
	}

	d1 := a1.X*a2.Y - a2.X*a1.Y
	d2 := b1.X*b2.Y - b2.X*b1.Y
	dx := d1*(b1.X-b2.X) - d2*(a1.X-a2.X)
	dy := d1*(b1.Y-b2.Y) - d2*(a1.Y-a2.Y)
	return geom.Pt(dx/d3, dy/d3), true
}

// SegmentsIntersect returns the point where the segment from a1 to a2
// crosses the segment from b1 to b2. It returns false if the segments
// are parallel or if the lines that they lie on cross outside of
// either segment.
func SegmentsIntersect[T geom.Float](a1, a2, b1, b2 geom.Point[T]) (geom.Point[T], bool) {
	p, ok := Intersect(a1, a2, b1, b2)
	if !ok || !IsBetween(p, a1, a2) || !IsBetween(p, b1, b2) {
		return geom.Point[T]{}, false
	}
	return p, true
}

// HorizontalRaySegment reports whether a ray starting at start and
// running in the positive x direction crosses the segment from a1 to
// a2. Both endpoint rows of the segment count as crossable.
//
// This is the primitive of the even-odd point-in-polygon test. See
// package polygon for a version that does not count shared vertices
// twice.
func HorizontalRaySegment[T geom.Float](start, a1, a2 geom.Point[T]) bool {
	top, bottom := a2, a1
	if a1.Y > a2.Y {
		top, bottom = a1, a2
	}

	if start.Y < bottom.Y || start.Y > top.Y {
		return false
	}

	f := (start.Y - bottom.Y) / (top.Y - bottom.Y)
	x := f*(top.X-bottom.X) + bottom.X
	return x >= start.X
}
