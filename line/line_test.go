package line_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/line"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

type pt = geom.Point[float64]

func requirePoint(t *testing.T, expected, actual pt) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, "x of %v", actual)
	require.InDelta(t, expected.Y, actual.Y, delta, "y of %v", actual)
}

func TestDistSigned(t *testing.T) {
	p1 := geom.Pt(0.0, 0.0)
	p2 := geom.Pt(1.0, 0.0)
	require.Equal(t, -5.0, line.DistSigned(geom.Pt(2.0, 5.0), p1, p2))
	require.Equal(t, 3.0, line.DistSigned(geom.Pt(2.0, -3.0), p1, p2))

	// Reversing the line flips the sign.
	require.Equal(t, 5.0, line.DistSigned(geom.Pt(2.0, 5.0), p2, p1))

	// Not normalized by a unit-length line.
	require.InDelta(t, -5.0, line.DistSigned(geom.Pt(2.0, 5.0), p1, geom.Pt(7.0, 0.0)), delta)
	require.Equal(t, float32(-5), line.DistSigned(geom.Pt[float32](2, 5), geom.Pt[float32](0, 0), geom.Pt[float32](1, 0)))
}

func TestClosestPoint(t *testing.T) {
	require.Equal(t, geom.Pt(4.0, 0.0), line.ClosestPoint(geom.Pt(4.0, 3.0), geom.Pt(0.0, 0.0), geom.Pt(1.0, 0.0)))
	requirePoint(t, geom.Pt(1.0, 1.0), line.ClosestPoint(geom.Pt(0.0, 2.0), geom.Pt(0.0, 0.0), geom.Pt(3.0, 3.0)))

	p := line.ClosestPoint(geom.Pt(4.0, 3.0), geom.Pt(1.0, 1.0), geom.Pt(1.0, 1.0))
	require.True(t, math.IsNaN(p.X))
	require.True(t, math.IsNaN(p.Y))
}

func TestIsBetween(t *testing.T) {
	p1 := geom.Pt(0.0, 0.0)
	p2 := geom.Pt(2.0, 0.0)
	require.True(t, line.IsBetween(geom.Pt(1.0, 10.0), p1, p2))
	require.True(t, line.IsBetween(geom.Pt(1.0, 10.0), p2, p1))
	require.False(t, line.IsBetween(geom.Pt(-2.0, 0.0), p2, p1))
	require.False(t, line.IsBetween(geom.Pt(3.0, 0.0), p2, p1))

	// Boundaries are inclusive.
	require.True(t, line.IsBetween(geom.Pt(0.0, 5.0), p1, p2))
	require.True(t, line.IsBetween(geom.Pt(2.0, -5.0), p1, p2))

	for _, x := range []pt{{-1, 3}, {0.5, 1}, {2, 2}, {2.5, -1}, {1, 0}} {
		require.Equal(t, line.IsBetween(x, p1, p2), line.IsBetween(x, p2, p1), "%v", x)
	}
}

func TestIsRightOf(t *testing.T) {
	p1 := geom.Pt(0.0, 0.0)
	p2 := geom.Pt(1.0, 0.0)
	require.True(t, line.IsRightOf(geom.Pt(0.0, 1.0), p1, p2))
	require.False(t, line.IsRightOf(geom.Pt(0.0, -1.0), p1, p2))
	require.True(t, line.IsRightOf(geom.Pt(5.0, 0.0), p1, p2))
	require.False(t, line.IsRightOf(geom.Pt(0.0, 1.0), p2, p1))
}

func TestIsRightOfMargin(t *testing.T) {
	p1 := geom.Pt(0.0, 0.0)
	p2 := geom.Pt(1.0, 0.0)

	require.True(t, line.IsRightOfMargin(geom.Pt(0.0, 1.0), p1, p2, geom.TinyMargin))
	require.True(t, line.IsRightOfMargin(geom.Pt(0.0, 0.0), p1, p2, -0.1))
	require.False(t, line.IsRightOfMargin(geom.Pt(0.0, -1.0), p1, p2, geom.TinyMargin))
	require.False(t, line.IsRightOfMargin(geom.Pt(0.0, 0.0), p1, p2, 0.1))
	require.False(t, line.IsRightOfMargin(geom.Pt(0.0, 0.0), p1, p2, geom.TinyMargin))

	t.Run("Monotonic", func(t *testing.T) {
		x := geom.Pt(3.0, 0.01)
		require.True(t, line.IsRightOfMargin(x, p1, p2, -1))
		require.True(t, line.IsRightOfMargin(x, p1, p2, 0.005))
		require.False(t, line.IsRightOfMargin(x, p1, p2, 0.02))
		require.False(t, line.IsRightOfMargin(x, p1, p2, 1))

		x = geom.Pt(3.0, -0.01)
		require.False(t, line.IsRightOfMargin(x, p1, p2, 0))
		require.True(t, line.IsRightOfMargin(x, p1, p2, -0.02))
	})
}

func TestInsideSection(t *testing.T) {
	p := geom.Pt(0.0, 0.0)
	a := geom.Pt(1.0, 1.0)
	b := geom.Pt(1.0, 0.0)

	require.True(t, line.InsideSection(geom.Pt(1.0, 0.5), p, a, b))
	require.False(t, line.InsideSection(geom.Pt(1.0, 2.0), p, a, b))
	require.True(t, line.InsideSection(geom.Pt(1.0, 2.0), p, b, a))
	require.False(t, line.InsideSection(geom.Pt(1.0, 0.5), p, b, a))

	t.Run("Collinear", func(t *testing.T) {
		// Arms in opposite directions: both side tests are combined
		// with OR.
		a := geom.Pt(-1.0, 0.0)
		b := geom.Pt(1.0, 0.0)
		require.True(t, line.InsideSection(geom.Pt(0.0, 1.0), p, a, b))
		require.True(t, line.InsideSection(geom.Pt(3.0, 0.0), p, a, b))
		require.False(t, line.InsideSection(geom.Pt(0.0, -1.0), p, a, b))
	})
}

func TestInsideSectionMargin(t *testing.T) {
	p := geom.Pt(0.0, 0.0)
	a := geom.Pt(1.0, 1.0)
	b := geom.Pt(1.0, 0.0)

	require.True(t, line.InsideSectionMargin(geom.Pt(1.0, 0.5), p, a, b, geom.TinyMargin))
	require.False(t, line.InsideSectionMargin(geom.Pt(1.0, 2.0), p, a, b, geom.TinyMargin))
	require.True(t, line.InsideSectionMargin(geom.Pt(1.0, -0.1), p, a, b, -0.5))
	require.False(t, line.InsideSectionMargin(geom.Pt(1.0, 0.1), p, a, b, 0.5))

	require.True(t, line.InsideSectionMargin(geom.Pt(1.0, 2.0), p, b, a, geom.TinyMargin))
	require.False(t, line.InsideSectionMargin(geom.Pt(1.0, 0.5), p, b, a, geom.TinyMargin))
	require.True(t, line.InsideSectionMargin(geom.Pt(1.0, 0.1), p, b, a, -0.5))
	require.False(t, line.InsideSectionMargin(geom.Pt(1.0, -0.1), p, b, a, 0.5))

	t.Run("Collinear", func(t *testing.T) {
		// Both arms point the same way, so x is right of exactly one
		// of them. InsideSection combines the side tests with OR,
		// InsideSectionMargin with AND.
		a := geom.Pt(1.0, 0.0)
		b := geom.Pt(2.0, 0.0)
		x := geom.Pt(0.0, 1.0)
		require.True(t, line.InsideSection(x, p, a, b))
		require.False(t, line.InsideSectionMargin(x, p, a, b, geom.TinyMargin))
	})
}

func TestIntersect(t *testing.T) {
	p1 := geom.Pt(0.0, 0.0)
	p2 := geom.Pt(2.0, 4.0)
	p3 := geom.Pt(0.0, 5.0)
	p4 := geom.Pt(4.0, 3.0)
	p5 := geom.Pt(1.0, 2.0)

	r, ok := line.Intersect(p1, p2, p3, p4)
	require.True(t, ok)
	require.Equal(t, geom.Pt(2.0, 4.0), r)

	r, ok = line.Intersect(p1, p5, p3, p4)
	require.True(t, ok)
	require.Equal(t, geom.Pt(2.0, 4.0), r)

	_, ok = line.Intersect(p1, p2, p1, p5)
	require.False(t, ok)

	_, ok = line.Intersect(p1, p2, p3, p3.Add(p2))
	require.False(t, ok)
}

func TestSegmentsIntersect(t *testing.T) {
	p1 := geom.Pt(0.0, 0.0)
	p2 := geom.Pt(2.0, 4.0)
	p3 := geom.Pt(0.0, 5.0)
	p4 := geom.Pt(4.0, 3.0)
	p5 := geom.Pt(1.0, 2.0)

	r, ok := line.SegmentsIntersect(p1, p2, p3, p4)
	require.True(t, ok)
	require.Equal(t, geom.Pt(2.0, 4.0), r)

	// The lines cross at (2, 4), which is past the end of p1-p5.
	_, ok = line.Intersect(p1, p5, p3, p4)
	require.True(t, ok)
	_, ok = line.SegmentsIntersect(p1, p5, p3, p4)
	require.False(t, ok)

	_, ok = line.SegmentsIntersect(p1, p2, p1, p5)
	require.False(t, ok)

	r, ok = line.SegmentsIntersect(geom.Pt(0.0, 0.0), geom.Pt(2.0, 2.0), geom.Pt(0.0, 2.0), geom.Pt(2.0, 0.0))
	require.True(t, ok)
	requirePoint(t, geom.Pt(1.0, 1.0), r)
}

func TestHorizontalRaySegment(t *testing.T) {
	c := geom.Pt(5.0, 5.0)

	tests := []struct {
		name   string
		a1, a2 pt
		hit    bool
	}{
		{"Crossing", geom.Pt(5.0, 7.0), geom.Pt(6.0, 3.0), true},
		{"Above", geom.Pt(5.0, 7.0), geom.Pt(7.0, 6.0), false},
		{"Below", geom.Pt(5.0, 4.0), geom.Pt(7.0, 3.0), false},
		{"Behind", geom.Pt(4.0, 7.0), geom.Pt(5.0, 3.0), false},
		{"Reversed", geom.Pt(6.0, 3.0), geom.Pt(5.0, 7.0), true},
		{"TopRow", geom.Pt(8.0, 5.0), geom.Pt(9.0, 1.0), true},
		{"BottomRow", geom.Pt(8.0, 9.0), geom.Pt(9.0, 5.0), true},
		{"Start", geom.Pt(5.0, 0.0), geom.Pt(5.0, 10.0), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.hit, line.HorizontalRaySegment(c, test.a1, test.a2))
		})
	}
}
