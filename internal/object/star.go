package object

import (
	"sync"

	"github.com/tomz197/rocketdodge/internal/config"
	"github.com/tomz197/rocketdodge/internal/physics"
)

// starPool is a sync.Pool for reusing Star objects; several spawn every second.
var starPool = sync.Pool{
	New: func() any {
		return &Star{}
	},
}

// Star is a background particle crossing the screen sideways.
// It has no gameplay effect.
type Star struct {
	Rect      physics.Rect
	VX        float64 // Fixed at spawn; sign is the travel direction
	VY        float64 // Accumulates Gravity*TimeStep every frame
	Variant   int     // Index into config.StarSizes
	FromRight bool    // Spawned past the right edge, travelling left
}

// NewStar creates a star from the pool. It starts just outside the edge it
// enters from, centred vertically on cy, and moves at speed units per frame.
func NewStar(screen Screen, variant, speed int, fromRight bool, cy float64) *Star {
	size := config.StarSizes[variant]
	w, h := float64(size.Width), float64(size.Height)

	vx := float64(speed)
	cx := -0.5 * w
	if fromRight {
		vx = -vx
		cx = float64(screen.Width) + 0.5*w
	}

	s := starPool.Get().(*Star)
	*s = Star{
		Rect:      physics.RectFromCenter(cx, cy, w, h),
		VX:        vx,
		Variant:   variant,
		FromRight: fromRight,
	}
	return s
}

// Release returns the star to the pool for reuse.
// Should be called when the star is removed from the game.
func (s *Star) Release() {
	starPool.Put(s)
}

// Update drifts the star. Vertical motion is the accumulated velocity plus
// one time step, which offsets the first frames of the downward pull.
// The star is removed once it has fully left the side it was heading for.
func (s *Star) Update(ctx UpdateContext) bool {
	s.VY += config.Gravity * config.TimeStep
	s.Rect = s.Rect.Move(s.VX, s.VY+config.TimeStep)

	if s.FromRight {
		return s.Rect.Right() < 0
	}
	return s.Rect.Left() > float64(ctx.Screen.Width)
}

// Bounds returns the star's rectangle.
func (s *Star) Bounds() physics.Rect {
	return s.Rect
}

// Draw adds the star image.
func (s *Star) Draw(f *Frame) {
	f.Add(Blit{
		Kind:    SpriteStar,
		Variant: s.Variant,
		Rect:    s.Rect,
	})
}
