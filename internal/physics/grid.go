package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a bounded screen.
// Rectangles are inserted by index into every cell they cover, so a query only has to
// look at the cells under the probe rectangle.
//
// Positions outside the screen are clamped into the border cells; falling asteroids
// spend part of their life above or below the visible area.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
	seen        []uint32 // Per-index query stamp, avoids duplicate callbacks
	stamp       uint32
}

// gridCell stores the indices of rectangles that touch a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering a width x height screen.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds the rectangle identified by index to every cell it covers.
func (g *SpatialGrid) Insert(r Rect, index int) {
	c0, r0 := g.posToCell(r.Left(), r.Top())
	c1, r1 := g.posToCell(r.Right(), r.Bottom())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*g.cols + col
			g.cells[idx].items = append(g.cells[idx].items, index)
		}
	}
	if index >= len(g.seen) {
		g.seen = append(g.seen, make([]uint32, index-len(g.seen)+1)...)
	}
}

// Query calls fn once for each index whose cells intersect the probe rectangle.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) Query(r Rect, fn func(index int) bool) {
	g.stamp++
	c0, r0 := g.posToCell(r.Left(), r.Top())
	c1, r1 := g.posToCell(r.Right(), r.Bottom())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			for _, itemIdx := range g.cells[row*g.cols+col].items {
				if g.seen[itemIdx] == g.stamp {
					continue
				}
				g.seen[itemIdx] = g.stamp
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts screen coordinates to grid cell coordinates,
// clamping to the border cells.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
