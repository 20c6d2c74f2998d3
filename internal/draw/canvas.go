package draw

import (
	"io"
	"math"
	"unicode/utf8"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It maps a fixed logical coordinate space onto whatever terminal size is available
// and only repaints cells that changed since the previous Render.
type Canvas struct {
	termWidth      int    // Terminal columns used for drawing
	termHeight     int    // Terminal rows used for drawing
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set
	cells          []rune // Last rendered character per cell, for diffing
	forceRedraw    bool

	// Position of the drawing area inside the terminal, for letterboxing
	offsetCol int
	offsetRow int

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Reusable buffers to reduce allocations
	renderBuf       []byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the terminal dimensions in cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// Returns true if the size changed; the next Render then repaints every cell.
func (c *Canvas) Resize(termWidth, termHeight int) bool {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}

	changed := termWidth != c.termWidth || termHeight != c.termHeight
	if changed {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.cells = make([]rune, termHeight*termWidth)
		c.forceRedraw = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	return changed
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the screen was cleared.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// SetOffset moves the drawing area to start at the given 0-based terminal cell.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.offsetCol = col
		c.offsetRow = row
		c.forceRedraw = true
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// toPixel maps a logical point to the nearest sub-pixel.
func (c *Canvas) toPixel(x, y float64) (px, py int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// SetFloat sets the pixel nearest to a logical point.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(c.toPixel(x, y))
}

// Pixel reports whether the pixel at terminal sub-pixel coordinates is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// glyph returns the half-block character showing the cell's two pixels.
func glyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// Render writes every cell whose glyph changed since the last Render.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf = c.renderBuf[:0]
	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[2*row*c.termWidth:]
		bottom := c.pixels[(2*row+1)*c.termWidth:]
		cells := c.cells[row*c.termWidth:]

		for col := 0; col < c.termWidth; col++ {
			ch := glyph(top[col], bottom[col])
			if cells[col] == ch && !c.forceRedraw {
				continue
			}
			cells[col] = ch
			c.renderBuf = appendCursor(c.renderBuf, c.offsetCol+col+1, c.offsetRow+row+1)
			c.renderBuf = utf8.AppendRune(c.renderBuf, ch)
		}
	}
	c.forceRedraw = false
	return writeChunks(w, c.renderBuf)
}

// Invalidate makes the next Render repaint n cells starting at the 1-based
// terminal position (col, row), e.g. after text was written over them.
func (c *Canvas) Invalidate(col, row, n int) {
	row -= c.offsetRow + 1
	col -= c.offsetCol + 1
	if row < 0 || row >= c.termHeight {
		return
	}
	for i := max(col, 0); i < col+n && i < c.termWidth; i++ {
		c.cells[row*c.termWidth+i] = 0
	}
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// Used to place text overlays over canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return c.offsetCol + px + 1, c.offsetRow + py/2 + 1
}

// Fit returns the largest drawing area inside a termWidth x termHeight terminal
// that keeps the logical aspect ratio, and the offset that centres it.
// Half-block pixels are treated as square.
func Fit(termWidth, termHeight int, logicalWidth, logicalHeight float64) (width, height, offsetCol, offsetRow int) {
	width, height = termWidth, termHeight
	if w := int(float64(termHeight*2) * logicalWidth / logicalHeight); w < width {
		width = w
	}
	if h := int(float64(termWidth) * logicalHeight / logicalWidth / 2); h < height {
		height = h
	}
	width = max(width, 1)
	height = max(height, 1)
	return width, height, (termWidth - width) / 2, (termHeight - height) / 2
}
