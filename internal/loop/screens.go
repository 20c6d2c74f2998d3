package loop

import (
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/rocketdodge/internal/draw"
	"github.com/tomz197/rocketdodge/internal/object"
)

// hudStyles colours the text drawn over the canvas.
type hudStyles struct {
	score lipgloss.Style
	fps   lipgloss.Style
	hint  lipgloss.Style
}

func newHUDStyles(r *lipgloss.Renderer) hudStyles {
	return hudStyles{
		score: r.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		fps:   r.NewStyle().Foreground(lipgloss.Color("#FF7F50")), // coral
		hint:  r.NewStyle().Faint(true),
	}
}

// terminalView draws frames onto a half-block canvas scaled from the logical screen.
type terminalView struct {
	writer       io.Writer
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	termSizeFunc draw.TermSizeFunc
	styles       hudStyles
	screen       object.Screen

	termWidth    int
	termHeight   int
	prevGameOver bool
}

func newTerminalView(w io.Writer, screen object.Screen, termSizeFunc draw.TermSizeFunc, renderer *lipgloss.Renderer) *terminalView {
	return &terminalView{
		writer:       w,
		canvas:       draw.NewScaledCanvas(1, 1, float64(screen.Width), float64(screen.Height)),
		chunkWriter:  draw.NewChunkWriter(w),
		termSizeFunc: termSizeFunc,
		styles:       newHUDStyles(renderer),
		screen:       screen,
	}
}

// updateScreen handles terminal resize, keeping the logical aspect ratio.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (v *terminalView) updateScreen() {
	termWidth, termHeight, err := v.termSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		return
	}
	if termWidth == v.termWidth && termHeight == v.termHeight {
		return
	}
	v.termWidth, v.termHeight = termWidth, termHeight

	width, height, offsetCol, offsetRow := draw.Fit(termWidth, termHeight, float64(v.screen.Width), float64(v.screen.Height))
	v.chunkWriter.WriteString("\033[H\033[2J")
	v.canvas.Resize(width, height)
	v.canvas.SetOffset(offsetCol, offsetRow)
	v.canvas.ForceRedraw()
}

// drawFrame draws the current frame.
func (v *terminalView) drawFrame(f *object.Frame) error {
	// Full clear on game over and reset so the hint does not linger
	if f.GameOver != v.prevGameOver {
		v.chunkWriter.WriteString("\033[H\033[2J")
		v.canvas.ForceRedraw()
		v.prevGameOver = f.GameOver
	}

	v.canvas.Clear()
	for i := range f.Blits {
		v.drawBlit(&f.Blits[i])
	}
	if err := v.canvas.Render(v.chunkWriter); err != nil {
		return err
	}

	v.drawHUD(f)
	return v.chunkWriter.Flush()
}

func (v *terminalView) drawBlit(b *object.Blit) {
	switch b.Kind {
	case object.SpriteStar:
		v.canvas.FillRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H)
	case object.SpriteAsteroid:
		v.drawAsteroid(b)
	case object.SpritePlayer:
		v.drawRocket(b)
	}
}

// drawAsteroid draws the asteroid as an irregular polygon outline.
func (v *terminalView) drawAsteroid(b *object.Blit) {
	numVerts := len(b.Outline)
	if numVerts < 3 {
		v.canvas.FillRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H)
		return
	}

	// Use reusable buffer from canvas to avoid per-frame allocations.
	points := v.canvas.BorrowPoints(numVerts)
	cx, cy := b.Rect.Center()
	rx, ry := b.Rect.W/2, b.Rect.H/2
	for i, r := range b.Outline {
		angle := b.Angle + float64(i)*2*math.Pi/float64(numVerts)
		points[i] = draw.Point{
			X: cx + math.Cos(angle)*rx*r,
			Y: cy + math.Sin(angle)*ry*r,
		}
	}
	v.canvas.DrawPolygon(points, false)
}

// drawRocket draws the rocket as a filled triangle pointing up with a flickering
// exhaust. The blit rectangle includes the animation margin around the hull.
func (v *terminalView) drawRocket(b *object.Blit) {
	hullX := b.Rect.X + rocketMarginX
	hullY := b.Rect.Y + rocketMarginY
	hullW := b.Rect.W - 2*rocketMarginX
	hullH := b.Rect.H - 2*rocketMarginY
	cx := hullX + hullW/2
	bodyBottom := hullY + hullH*0.8

	hull := v.canvas.BorrowPoints(3)
	hull[0] = draw.Point{X: cx, Y: hullY}
	hull[1] = draw.Point{X: hullX + hullW, Y: bodyBottom}
	hull[2] = draw.Point{X: hullX, Y: bodyBottom}
	v.canvas.DrawPolygon(hull, true)

	// Exhaust length cycles with the animation frame
	flame := hullH * (0.1 + 0.05*float64(b.Frame%3))
	exhaust := v.canvas.BorrowPoints(3)
	exhaust[0] = draw.Point{X: cx - hullW/4, Y: bodyBottom}
	exhaust[1] = draw.Point{X: cx + hullW/4, Y: bodyBottom}
	exhaust[2] = draw.Point{X: cx, Y: bodyBottom + flame}
	v.canvas.DrawPolygon(exhaust, false)
}

// drawHUD writes the score, FPS and game-over hint over the canvas and marks
// the cells they cover for repainting.
func (v *terminalView) drawHUD(f *object.Frame) {
	if f.FPS.Value != "" {
		v.writeText(f.FPS, v.styles.fps)
	}
	v.writeText(f.Score, v.styles.score)

	if f.GameOver {
		hint := object.Text{Value: gameOverHint}.PlaceCentered(f.Score.X, f.Score.Y+hintSpacing)
		v.writeText(hint, v.styles.hint)
	}
}

func (v *terminalView) writeText(t object.Text, style lipgloss.Style) {
	col, row := v.canvas.LogicalToTerminal(t.X, t.Y)
	width := lipgloss.Width(t.Value)
	if t.Anchor == object.AnchorCenter {
		col -= width / 2
	}
	if col < 1 {
		col = 1
	}
	v.chunkWriter.WriteAt(col, row, style.Render(t.Value))
	v.canvas.Invalidate(col, row, width)
}
