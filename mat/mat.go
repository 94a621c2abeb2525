// Package mat builds 2D transformation matrices.
//
// Matrices are f32.Mat3 values in row-major order that transform
// points in homogeneous coordinates, so the translation is in the
// last column:
//
//	| sx  0  tx |
//	|  0 sy  ty |
//	|  0  0   1 |
package mat

import (
	"deedles.dev/xgeom/geom"
	"golang.org/x/image/math/f32"
)

// Identity returns the identity matrix.
func Identity() f32.Mat3 {
	return f32.Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// ScaleMove returns a matrix that scales by scale and then moves by
// move.
func ScaleMove(scale, move geom.Point[float32]) f32.Mat3 {
	return f32.Mat3{
		scale.X, 0, move.X,
		0, scale.Y, move.Y,
		0, 0, 1,
	}
}

// ScreenProject returns a matrix that maps a canvas of the given size,
// with y pointing down, to coordinates from (-1, 1) at its top-left
// corner to (1, -1) at its bottom-right corner.
func ScreenProject(canvas geom.Size[float32]) f32.Mat3 {
	return f32.Mat3{
		2 / canvas.X, 0, -1,
		0, -2 / canvas.Y, 1,
		0, 0, 1,
	}
}

// ScreenProjectOffset is like ScreenProject, but the canvas' top-left
// corner is at offset instead of at the origin. Offsetting the canvas
// by half of its size moves it by one unit in the projected
// coordinates.
func ScreenProjectOffset(canvas geom.Size[float32], offset geom.Pos[float32]) f32.Mat3 {
	return f32.Mat3{
		2 / canvas.X, 0, -2*offset.X/canvas.X - 1,
		0, -2 / canvas.Y, 2*offset.Y/canvas.Y + 1,
		0, 0, 1,
	}
}

// Mul returns the product a*b. Applying the result is the same as
// applying b and then a.
func Mul(a, b f32.Mat3) f32.Mat3 {
	var m f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[3*r+c] = a[3*r]*b[c] + a[3*r+1]*b[3+c] + a[3*r+2]*b[6+c]
		}
	}
	return m
}

// Apply transforms p by m.
func Apply(m f32.Mat3, p geom.Point[float32]) geom.Point[float32] {
	x := m[0]*p.X + m[1]*p.Y + m[2]
	y := m[3]*p.X + m[4]*p.Y + m[5]
	w := m[6]*p.X + m[7]*p.Y + m[8]
	return geom.Pt(x/w, y/w)
}

// Vec2 converts p to an f32.Vec2.
func Vec2(p geom.Point[float32]) f32.Vec2 {
	return f32.Vec2{p.X, p.Y}
}

// Point converts v to a geom.Point.
func Point(v f32.Vec2) geom.Point[float32] {
	return geom.Pt(v[0], v[1])
}
