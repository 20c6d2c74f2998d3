// Package physics provides axis-aligned rectangles, screen clamping and
// broad-phase collision lookup.
package physics

// Rect is an axis-aligned rectangle in logical screen units.
// X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter builds a rectangle of the given size centred on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Move returns the rectangle translated by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ClampInto moves r so it lies fully inside a width x height screen anchored at the origin.
// The left and top edges win when r is larger than the screen.
func ClampInto(r Rect, width, height float64) Rect {
	if r.Right() > width {
		r.X = width - r.W
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Bottom() > height {
		r.Y = height - r.H
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}
