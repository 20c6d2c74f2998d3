// Package object defines the game entities and the per-frame output consumed by frontends.
package object

import (
	"time"

	"github.com/tomz197/rocketdodge/internal/input"
	"github.com/tomz197/rocketdodge/internal/physics"
)

// Spawner accepts objects created during a frame.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext is what an object sees while it updates.
type UpdateContext struct {
	Delta  time.Duration
	Input  Input
	Screen Screen
	Player *Player // Receives score; nil or dead after game over
}

// Screen is the logical playfield size. Objects never see terminal or window pixels.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen of the given logical size.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Object is anything that lives in the game's object list.
type Object interface {
	// Update advances one frame and reports whether the object is finished.
	Update(ctx UpdateContext) (remove bool)

	// Bounds is the rectangle used for collisions and culling.
	Bounds() physics.Rect

	// Draw appends the object's blits to the frame.
	Draw(f *Frame)
}

// Destructible objects can be flagged for removal by someone else, e.g. a collision.
type Destructible interface {
	// MarkDestroyed flags the object; its next Update removes it.
	MarkDestroyed()
	// IsDestroyed reports whether MarkDestroyed was called.
	IsDestroyed() bool
}

// Releasable objects come from a pool.
type Releasable interface {
	// Release hands the object back; it must not be used afterwards.
	Release()
}

// ReleaseObject returns obj to its pool when it has one.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}
