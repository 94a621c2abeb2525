// Package polygon tests points against simple polygons using the
// even-odd rule.
package polygon

import (
	"iter"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/line"
	"deedles.dev/xiter"
)

// Polygon is a closed polygon. The last point is connected back to
// the first. Polygons with fewer than three points have no interior.
type Polygon[T geom.Float] struct {
	Points []geom.Point[T]
}

// Of returns a polygon with the given points.
func Of[T geom.Float](points ...geom.Point[T]) Polygon[T] {
	return Polygon[T]{Points: points}
}

// Edge is a side of a polygon running from A to B.
type Edge[T geom.Float] struct {
	A, B geom.Point[T]
}

// Edges yields the edges of the polygon in order, ending with the edge
// from the last point back to the first.
func (poly Polygon[T]) Edges() iter.Seq[Edge[T]] {
	return func(yield func(Edge[T]) bool) {
		n := len(poly.Points)
		for i, p := range poly.Points {
			if !yield(Edge[T]{A: p, B: poly.Points[(i+1)%n]}) {
				return
			}
		}
	}
}

// CrossedEdges yields the indices of the edges crossed by a ray
// starting at p and running in the positive x direction. An edge is
// only crossable from the row of its lower endpoint up to, but not
// including, the row of its upper one. A ray passing exactly through a
// vertex therefore crosses the two edges that meet there an even
// number of times only if they both lie on the same side of it, and
// horizontal edges are never crossed.
func (poly Polygon[T]) CrossedEdges(p geom.Point[T]) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, e := range xiter.Enumerate(poly.Edges()) {
			if p.Y == max(e.A.Y, e.B.Y) {
				continue
			}
			if !line.HorizontalRaySegment(p, e.A, e.B) {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// Crossings returns the number of edges crossed by a ray starting at p
// and running in the positive x direction.
func (poly Polygon[T]) Crossings(p geom.Point[T]) int {
	var n int
	for range poly.CrossedEdges(p) {
		n++
	}
	return n
}

// Contains reports whether p is inside of the polygon according to
// the even-odd rule. Points exactly on an edge may be reported either
// way.
func (poly Polygon[T]) Contains(p geom.Point[T]) bool {
	if len(poly.Points) < 3 {
		return false
	}
	if !poly.Bounds().Contains(p) {
		return false
	}
	return poly.Crossings(p)%2 == 1
}

// Bounds returns the smallest area containing every point of the
// polygon. The bounds of an empty polygon are the zero Area.
func (poly Polygon[T]) Bounds() geom.Area[T] {
	if len(poly.Points) == 0 {
		return geom.Area[T]{}
	}

	tl, br := poly.Points[0], poly.Points[0]
	for _, p := range poly.Points[1:] {
		tl = geom.Pt(min(tl.X, p.X), min(tl.Y, p.Y))
		br = geom.Pt(max(br.X, p.X), max(br.Y, p.Y))
	}
	return geom.AreaFromCorners(geom.PosOf(tl), geom.PosOf(br))
}
