package engine

// Rect is an axis-aligned bounding box. W and H are never negative.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle, clamping negative sizes to zero.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x0, y0 := min(r.X, other.X), min(r.Y, other.Y)
	x1, y1 := max(r.Right(), other.Right()), max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether a and b intersect. All four comparisons are strict,
// so boxes that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Arena is the fixed rectangular play area [0,Width] x [0,Height].
type Arena struct {
	Width  int
	Height int
}

// NewArena creates an arena. Negative dimensions are a programming error.
func NewArena(width, height int) Arena {
	if width < 0 || height < 0 {
		panic("arena dimensions cannot be negative")
	}
	return Arena{Width: width, Height: height}
}

// Rect returns the arena as a rectangle anchored at the origin.
func (a Arena) Rect() Rect {
	return Rect{W: float64(a.Width), H: float64(a.Height)}
}

// Outside reports whether r lies wholly outside the arena. Boxes touching the
// boundary from outside count as outside.
func (a Arena) Outside(r Rect) bool {
	return r.X+r.W <= 0 ||
		r.X >= float64(a.Width) ||
		r.Y+r.H <= 0 ||
		r.Y >= float64(a.Height)
}

// Escapes reports whether any edge of r has crossed the arena boundary.
func (a Arena) Escapes(r Rect) bool {
	return r.X < 0 ||
		r.Y < 0 ||
		r.X+r.W > float64(a.Width) ||
		r.Y+r.H > float64(a.Height)
}
