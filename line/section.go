package line

import "deedles.dev/xgeom/geom"

// InsideSection reports whether x is inside of the section formed by
// two arms that share the center point. The section begins at the arm
// through a and runs counter-clockwise until the arm through b.
//
// Points exactly on an arm can be misclassified because of rounding
// error. Use InsideSectionMargin to handle them reliably.
func InsideSection[T geom.Float](x, center, a, b geom.Point[T]) bool {
	c := a.Sub(center).Cross(b.Sub(center))
	if c >= 0 {
		return IsRightOf(x, a, center) || IsRightOf(x, center, b)
	}
	return IsRightOf(x, a, center) && IsRightOf(x, center, b)
}

// InsideSectionMargin is like InsideSection but uses IsRightOfMargin
// for both arms. The margin has the same effect as shifting, not
// rotating, the arms to shrink the section for positive values and
// expand it for negative ones.
//
// Unlike InsideSection, a section whose arms are collinear is treated
// as wider than a half-plane, so x must be right of both arms.
func InsideSectionMargin[T geom.Float](x, center, a, b geom.Point[T], margin T) bool {
	c := a.Sub(center).Cross(b.Sub(center))
	if c > 0 {
		return IsRightOfMargin(x, a, center, margin) || IsRightOfMargin(x, center, b, margin)
	}
	return IsRightOfMargin(x, a, center, margin) && IsRightOfMargin(x, center, b, margin)
}
