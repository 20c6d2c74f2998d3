package object

import "github.com/tomz197/rocketdodge/internal/physics"

// SpriteKind identifies which image a blit refers to.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteAsteroid
	SpriteStar
)

// Blit asks the frontend to draw one image.
type Blit struct {
	Kind    SpriteKind
	Variant int          // Image variant (asteroid/star size)
	Frame   int          // Animation frame, players only
	Rect    physics.Rect // Where the image goes, in logical units
	Angle   float64      // Rotation in radians, asteroids only
	Outline []float64    // Outline radii as fractions of the half-size, asteroids only
}

// Frame is everything a frontend needs to present one simulation step.
type Frame struct {
	Screen   Screen
	Blits    []Blit
	Score    Text
	FPS      Text // Empty Value when the overlay is off
	GameOver bool
}

// Reset empties the frame for reuse, keeping the blit buffer.
func (f *Frame) Reset(screen Screen) {
	f.Screen = screen
	f.Blits = f.Blits[:0]
	f.Score = Text{}
	f.FPS = Text{}
	f.GameOver = false
}

// Add appends a blit.
func (f *Frame) Add(b Blit) {
	f.Blits = append(f.Blits, b)
}
