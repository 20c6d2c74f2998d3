package draw

import (
	"math"
	"slices"
)

// DrawLine draws a line between two logical points with Bresenham's algorithm
// in pixel space.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x, y := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx, dy := abs(x2-x), -abs(y2-y)
	sx, sy := 1, 1
	if x > x2 {
		sx = -1
	}
	if y > y2 {
		sy = -1
	}

	e := dx + dy
	for {
		c.setPixel(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
// Any rectangle inside the canvas sets at least one pixel, however small.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+w)*c.scaleX))-1, x0)
	y1 := max(int(math.Ceil((y+h)*c.scaleY))-1, y0)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py)
		}
	}
}

// DrawPolygon outlines a closed polygon, filling it first when filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	n := len(points)
	if n < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	prev := points[n-1]
	for _, p := range points {
		c.DrawLine(prev, p)
		prev = p
	}
}

// fillPolygon fills the interior with an even-odd scanline pass in pixel space,
// sampling each pixel row through its centre.
func (c *Canvas) fillPolygon(points []Point) {
	c.scaledBuf = c.scaledBuf[:0]
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		sp := Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		c.scaledBuf = append(c.scaledBuf, sp)
		top = math.Min(top, sp.Y)
		bottom = math.Max(bottom, sp.Y)
	}

	poly := c.scaledBuf
	for y := int(math.Floor(top)); y <= int(math.Ceil(bottom)); y++ {
		scanY := float64(y) + 0.5

		xs := c.intersectionBuf[:0]
		a := poly[len(poly)-1]
		for _, b := range poly {
			if (a.Y <= scanY) != (b.Y <= scanY) {
				xs = append(xs, a.X+(scanY-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
			a = b
		}
		slices.Sort(xs)
		c.intersectionBuf = xs

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// BorrowPoints returns a reusable slice of n Points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
