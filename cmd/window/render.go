package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/rocketdodge/internal/object"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	skyColor     = color.RGBA{R: 8, G: 10, B: 32, A: 255}
	starColor    = colornames.White
	rockColor    = colornames.Sienna
	rockEdge     = colornames.Saddlebrown
	hullColor    = colornames.Silver
	noseColor    = colornames.Crimson
	flameColor   = colornames.Orange
	scoreColor   = colornames.White
	fpsColor     = colornames.Coral
	textFace     = text.NewGoXFace(basicfont.Face7x13)
	rocketMargin = [2]float32{13, 3}
)

func drawBackground(screen *ebiten.Image) {
	screen.Fill(skyColor)
}

// drawFrame draws every blit in order, then the text on top.
func drawFrame(screen *ebiten.Image, f *object.Frame) {
	for i := range f.Blits {
		b := &f.Blits[i]
		switch b.Kind {
		case object.SpriteStar:
			vector.DrawFilledRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), starColor, false)
		case object.SpriteAsteroid:
			drawAsteroid(screen, b)
		case object.SpritePlayer:
			drawRocket(screen, b)
		}
	}

	drawText(screen, f.Score, scoreColor)
	if f.FPS.Value != "" {
		drawText(screen, f.FPS, fpsColor)
	}
}

// drawAsteroid fills a disc and outlines the irregular rock shape around it.
func drawAsteroid(screen *ebiten.Image, b *object.Blit) {
	cx, cy := b.Rect.Center()
	rx, ry := b.Rect.W/2, b.Rect.H/2
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(math.Min(rx, ry)*0.7), rockColor, true)

	n := len(b.Outline)
	for i := 0; i < n; i++ {
		a0 := b.Angle + float64(i)*2*math.Pi/float64(n)
		a1 := b.Angle + float64(i+1)*2*math.Pi/float64(n)
		r0, r1 := b.Outline[i], b.Outline[(i+1)%n]
		vector.StrokeLine(screen,
			float32(cx+math.Cos(a0)*rx*r0), float32(cy+math.Sin(a0)*ry*r0),
			float32(cx+math.Cos(a1)*rx*r1), float32(cy+math.Sin(a1)*ry*r1),
			2, rockEdge, true)
	}
}

// drawRocket draws the hull inside the blit margin, a nose cone and an
// exhaust whose length follows the animation frame.
func drawRocket(screen *ebiten.Image, b *object.Blit) {
	x := float32(b.Rect.X) + rocketMargin[0]
	y := float32(b.Rect.Y) + rocketMargin[1]
	w := float32(b.Rect.W) - 2*rocketMargin[0]
	h := float32(b.Rect.H) - 2*rocketMargin[1]
	cx := x + w/2
	noseH := h * 0.3

	vector.DrawFilledRect(screen, x, y+noseH, w, h*0.6, hullColor, false)
	vector.StrokeLine(screen, x, y+noseH, cx, y, 2, noseColor, true)
	vector.StrokeLine(screen, x+w, y+noseH, cx, y, 2, noseColor, true)

	flame := h * (0.1 + 0.05*float32(b.Frame))
	vector.StrokeLine(screen, cx, y+noseH+h*0.6, cx, y+noseH+h*0.6+flame, w/2, flameColor, true)
}

// drawText places HUD text, letting the layout options do the centring.
func drawText(screen *ebiten.Image, t object.Text, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(clr)
	if t.Anchor == object.AnchorCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(screen, t.Value, textFace, op)
}
