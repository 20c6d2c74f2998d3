package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/rocketdodge/internal/config"
	"github.com/tomz197/rocketdodge/internal/physics"
)

// Asteroid variants, matching config.AsteroidSizes.
const (
	AsteroidLarge = iota
	AsteroidMedium
	AsteroidSmall
)

// Asteroid is a falling rock. Touching it ends the game.
type Asteroid struct {
	Rect          physics.Rect
	Speed         float64   // Units per frame, fixed at spawn
	Variant       int       // Index into config.AsteroidSizes
	Angle         float64   // Cosmetic rotation
	RotationSpeed float64   // Radians per frame
	Vertices      []float64 // Outline radii as fractions of the half-size
	Destroyed     bool
}

// NewAsteroid creates an asteroid of the given variant centred on (cx, cy).
func NewAsteroid(cx, cy float64, variant int, speed float64, rng *rand.Rand) *Asteroid {
	size := config.AsteroidSizes[variant]

	// Irregular outline, 8-12 vertices at 70-100% of the half-size
	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		vertices[i] = 0.7 + rng.Float64()*0.3
	}

	return &Asteroid{
		Rect:          physics.RectFromCenter(cx, cy, float64(size.Width), float64(size.Height)),
		Speed:         speed,
		Variant:       variant,
		Angle:         rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 0.1,
		Vertices:      vertices,
	}
}

// Update moves the asteroid down. Once it is more than its own height below the
// screen it is removed, scoring a point if the player is still alive.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	if a.Destroyed {
		return true
	}

	a.Rect = a.Rect.Move(0, a.Speed)
	a.Angle += a.RotationSpeed

	if a.Rect.Bottom() > float64(ctx.Screen.Height)+a.Rect.H {
		if ctx.Player != nil && ctx.Player.Alive {
			ctx.Player.Score++
		}
		a.Destroyed = true
		return true
	}
	return false
}

// Bounds returns the asteroid's hitbox.
func (a *Asteroid) Bounds() physics.Rect {
	return a.Rect
}

// Draw adds the asteroid image.
func (a *Asteroid) Draw(f *Frame) {
	f.Add(Blit{
		Kind:    SpriteAsteroid,
		Variant: a.Variant,
		Rect:    a.Rect,
		Angle:   a.Angle,
		Outline: a.Vertices,
	})
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}
