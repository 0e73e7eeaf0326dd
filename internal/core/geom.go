// Package core provides the geometry, input and screen types shared by the
// Arkanoid engine and the terminal platform. It has no Bubble Tea dependency,
// so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle stored as a center and half extents.
// Edges are always derived so they stay consistent with the position after a move.
// Y grows upward.
type Rect struct {
	X, Y         float64 // Center
	HalfW, HalfH float64
}

// NewRect creates a rectangle centered at (x, y) with the given full width and height.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, HalfW: w / 2, HalfH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X - r.HalfW }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.HalfW }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y - r.HalfH }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.HalfH }

// Width returns the full width.
func (r Rect) Width() float64 { return 2 * r.HalfW }

// Height returns the full height.
func (r Rect) Height() float64 { return 2 * r.HalfH }

// SetLeft moves the rectangle so its left edge sits at x.
func (r *Rect) SetLeft(x float64) { r.X = x + r.HalfW }

// SetRight moves the rectangle so its right edge sits at x.
func (r *Rect) SetRight(x float64) { r.X = x - r.HalfW }

// Circle is a circle stored as a center and radius.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{X: x, Y: y, R: r}
}

// Left returns the x-coordinate of the leftmost point.
func (c Circle) Left() float64 { return c.X - c.R }

// Right returns the x-coordinate of the rightmost point.
func (c Circle) Right() float64 { return c.X + c.R }

// Bottom returns the y-coordinate of the lowest point.
func (c Circle) Bottom() float64 { return c.Y - c.R }

// Top returns the y-coordinate of the highest point.
func (c Circle) Top() float64 { return c.Y + c.R }

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, HalfW: c.R, HalfH: c.R}
}

// Edges is implemented by any shape that can report its bounding edges.
type Edges interface {
	Left() float64
	Right() float64
	Bottom() float64
	Top() float64
}

// Overlaps reports whether the bounding intervals of a and b intersect on both axes.
// Touching edges count as overlap.
func Overlaps(a, b Edges) bool {
	if a.Right() < b.Left() || b.Right() < a.Left() {
		return false
	}
	if a.Top() < b.Bottom() || b.Top() < a.Bottom() {
		return false
	}
	return true
}

// CircleRectOverlap tests a circle against a rectangle using the circle's bounding box.
func CircleRectOverlap(c Circle, r Rect) bool {
	return Overlaps(c, r)
}
