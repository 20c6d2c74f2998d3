package object

import (
	"time"

	"github.com/tomz197/rocketdodge/internal/config"
	"github.com/tomz197/rocketdodge/internal/physics"
)

// Velocity component indices. Each direction has its own pull.
const (
	PullLeft = iota
	PullRight
	PullUp
	PullDown
)

// Player is the rocket the user steers.
type Player struct {
	Rect     physics.Rect
	Velocity [4]float64 // Left, right, up, down pulls; each within ±Speed
	Speed    float64    // Magnitude a held key sets its pull to
	Decay    float64    // Amount every pull loses per frame
	Score    int
	Alive    bool

	age time.Duration // Drives the rocket animation
}

// NewPlayer creates a player centred horizontally with its bottom edge on the screen bottom.
func NewPlayer(screen Screen) *Player {
	w, h := float64(config.PlayerWidth), float64(config.PlayerHeight)
	return &Player{
		Rect: physics.Rect{
			X: float64(screen.Width)/2 - w/2,
			Y: float64(screen.Height) - h,
			W: w,
			H: h,
		},
		Speed: config.PlayerSpeed,
		Decay: config.PlayerDecay,
		Alive: true,
	}
}

// ChangeVelocity sets the pull of every held direction to full speed.
// Pulls of released directions are left to decay.
func (p *Player) ChangeVelocity(in Input) {
	if in.Left {
		p.Velocity[PullLeft] = -p.Speed
	}
	if in.Right {
		p.Velocity[PullRight] = p.Speed
	}
	if in.Up {
		p.Velocity[PullUp] = -p.Speed
	}
	if in.Down {
		p.Velocity[PullDown] = p.Speed
	}
}

// Displacement returns this frame's movement. On each axis the pull pointing the
// way of the summed pulls wins outright; opposing pulls that cancel exactly give no movement.
func (p *Player) Displacement() (dx, dy float64) {
	return dominant(p.Velocity[PullLeft], p.Velocity[PullRight]),
		dominant(p.Velocity[PullUp], p.Velocity[PullDown])
}

func dominant(neg, pos float64) float64 {
	sum := neg + pos
	switch {
	case sum > 0:
		return pos
	case sum < 0:
		return neg
	default:
		return 0
	}
}

// decayVelocity moves every pull toward zero by Decay, stopping at zero.
func (p *Player) decayVelocity() {
	for i, v := range p.Velocity {
		switch {
		case v > p.Decay:
			p.Velocity[i] = v - p.Decay
		case v < -p.Decay:
			p.Velocity[i] = v + p.Decay
		default:
			p.Velocity[i] = 0
		}
	}
}

// Update applies input, moves, decays the pulls and keeps the player on screen.
// A dead player asks to be removed.
func (p *Player) Update(ctx UpdateContext) bool {
	if !p.Alive {
		return true
	}

	p.age += ctx.Delta
	p.ChangeVelocity(ctx.Input)

	dx, dy := p.Displacement()
	p.Rect = p.Rect.Move(dx, dy)
	p.decayVelocity()

	p.Rect = physics.ClampInto(p.Rect, float64(ctx.Screen.Width), float64(ctx.Screen.Height))
	return false
}

// Kill marks the player dead.
func (p *Player) Kill() {
	p.Alive = false
}

// Bounds returns the player's hitbox.
func (p *Player) Bounds() physics.Rect {
	return p.Rect
}

// AnimationFrame returns the current rocket animation frame.
func (p *Player) AnimationFrame() int {
	return int(p.age/config.RocketFrameTime) % config.RocketFrames
}

// Draw adds the rocket animation, which extends past the hitbox on every side.
func (p *Player) Draw(f *Frame) {
	if !p.Alive {
		return
	}
	f.Add(Blit{
		Kind:  SpritePlayer,
		Frame: p.AnimationFrame(),
		Rect: physics.Rect{
			X: p.Rect.X - config.RocketOffsetLeft,
			Y: p.Rect.Y - config.RocketOffsetTop,
			W: p.Rect.W + 2*config.RocketOffsetLeft,
			H: p.Rect.H + 2*config.RocketOffsetTop,
		},
	})
}
