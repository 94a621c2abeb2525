package geom

// Pos is a Point used as a location. It exists to distinguish
// location arguments from size arguments in function signatures.
type Pos[T Scalar] struct {
	Point[T]
}

// NewPos returns the position (x, y).
func NewPos[T Scalar](x, y T) Pos[T] {
	return Pos[T]{Pt(x, y)}
}

// UniformPos returns the position (v, v).
func UniformPos[T Scalar](v T) Pos[T] {
	return Pos[T]{Uniform(v)}
}

// PosOf wraps p as a position.
func PosOf[T Scalar](p Point[T]) Pos[T] {
	return Pos[T]{p}
}

// Add returns p offset by v.
func (p Pos[T]) Add(v Point[T]) Pos[T] {
	return Pos[T]{p.Point.Add(v)}
}

// Sub returns p offset by -v.
func (p Pos[T]) Sub(v Point[T]) Pos[T] {
	return Pos[T]{p.Point.Sub(v)}
}

// Size is a Point used as a width and height.
type Size[T Scalar] struct {
	Point[T]
}

// NewSize returns the size w by h.
func NewSize[T Scalar](w, h T) Size[T] {
	return Size[T]{Pt(w, h)}
}

// UniformSize returns the size v by v.
func UniformSize[T Scalar](v T) Size[T] {
	return Size[T]{Uniform(v)}
}

// SizeOf wraps p as a size.
func SizeOf[T Scalar](p Point[T]) Size[T] {
	return Size[T]{p}
}

func (s Size[T]) Add(v Point[T]) Size[T] {
	return Size[T]{s.Point.Add(v)}
}

func (s Size[T]) Sub(v Point[T]) Size[T] {
	return Size[T]{s.Point.Sub(v)}
}

// Rect is a rectangle represented by its location, the corner with
// the smallest coordinates, and its size.
type Rect[T Scalar] struct {
	Location Pos[T]
	Size     Size[T]
}

// RectFromSize returns a rectangle of the given size located at the
// origin.
func RectFromSize[T Scalar](sz Size[T]) Rect[T] {
	return Rect[T]{Size: sz}
}

// Area returns r represented by its corners.
func (r Rect[T]) Area() Area[T] {
	return AreaFromSize(r.Location, r.Size)
}

// Area is a rectangle represented by its opposite corners.
type Area[T Scalar] struct {
	TopLeft     Pos[T]
	BottomRight Pos[T]
}

// AreaFromCorners returns the area spanning from tl to br.
func AreaFromCorners[T Scalar](tl, br Pos[T]) Area[T] {
	return Area[T]{TopLeft: tl, BottomRight: br}
}

// AreaFromSize returns the area with its top-left corner at tl and
// the given size.
func AreaFromSize[T Scalar](tl Pos[T], sz Size[T]) Area[T] {
	return Area[T]{TopLeft: tl, BottomRight: tl.Add(sz.Point)}
}

func (a Area[T]) TopRight() Pos[T] {
	return NewPos(a.BottomRight.X, a.TopLeft.Y)
}

func (a Area[T]) BottomLeft() Pos[T] {
	return NewPos(a.TopLeft.X, a.BottomRight.Y)
}

// Contains reports whether p is inside of a. All edges are considered
// part of the area.
func (a Area[T]) Contains(p Point[T]) bool {
	return InsideRect(p, a.TopLeft.Point, a.BottomRight.Point)
}

// Box is a rectangle represented by both its opposite corners and its
// size. The constructors keep the three fields consistent. Modifying
// the fields directly does not.
type Box[T Scalar] struct {
	TopLeft     Pos[T]
	BottomRight Pos[T]
	Size        Size[T]
}

// BoxFromCorners returns the box spanning from tl to br.
func BoxFromCorners[T Scalar](tl, br Pos[T]) Box[T] {
	return Box[T]{
		TopLeft:     tl,
		BottomRight: br,
		Size:        SizeOf(br.Point.Sub(tl.Point)),
	}
}

// BoxFromSize returns the box with its top-left corner at tl and the
// given size.
func BoxFromSize[T Scalar](tl Pos[T], sz Size[T]) Box[T] {
	return Box[T]{
		TopLeft:     tl,
		BottomRight: tl.Add(sz.Point),
		Size:        sz,
	}
}

// BoxOfSize returns a box of the given size located at the origin.
func BoxOfSize[T Scalar](sz Size[T]) Box[T] {
	return BoxFromSize(Pos[T]{}, sz)
}

func (b Box[T]) Rect() Rect[T] {
	return Rect[T]{Location: b.TopLeft, Size: b.Size}
}

func (b Box[T]) Area() Area[T] {
	return AreaFromCorners(b.TopLeft, b.BottomRight)
}

// InsideRect reports whether p lies within the axis-aligned rectangle
// spanning from tl to br, edges included.
func InsideRect[T Scalar](p, tl, br Point[T]) bool {
	return p.X >= tl.X && p.X <= br.X && p.Y >= tl.Y && p.Y <= br.Y
}
