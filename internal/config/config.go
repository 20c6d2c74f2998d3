package config

import "time"

// Logical screen. Frontends scale these coordinates to whatever they draw on.
const (
	MaxScreenWidth  = 600
	MaxScreenHeight = 800
	ScreenMargin    = 150 // Subtracted from small displays
	WindowTitle     = "Touhou 69"
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Player
const (
	PlayerWidth      = 19
	PlayerHeight     = 46
	PlayerSpeed      = 7.0
	PlayerDecay      = 0.7
	RocketFrames     = 5
	RocketFrameTime  = 100 * time.Millisecond
	RocketOffsetLeft = 13 // Animation is drawn this far left of the hitbox
	RocketOffsetTop  = 3
)

// Asteroids
const (
	AsteroidBaseSpeed = 5.0 // Multiplied by difficulty time at spawn
)

// Stars
const (
	StarMinSpeed = 9
	StarMaxSpeed = 15
	Gravity      = -1.0
	TimeStep     = -0.1
)

// Spawn scheduling
const (
	InitialAsteroidInterval = 250 * time.Millisecond
	StarInterval            = 200 * time.Millisecond
	DifficultyInterval      = time.Second
	MinAsteroidInterval     = 100 * time.Millisecond
)

// Difficulty curve
const (
	InitialDifficultyTime = 1.0
	DifficultyStep        = 0.1
	CurveBaseInterval     = 600.0 // ms
	CurveCeiling          = 500.0 // ms
	CurveKnee             = 10.0
)

// HUD
const (
	ScoreTextTop = 20
	FPSTextLeft  = 10
	FPSTextTop   = 0
)

// Size is a width and height in logical units.
type Size struct {
	Width  int
	Height int
}

// AsteroidSizes lists the asteroid variants: large, medium, small.
var AsteroidSizes = []Size{
	{Width: 60, Height: 56},
	{Width: 43, Height: 43},
	{Width: 28, Height: 28},
}

// StarSizes lists the star variants: small, small2, medium, large.
var StarSizes = []Size{
	{Width: 3, Height: 3},
	{Width: 4, Height: 4},
	{Width: 9, Height: 9},
	{Width: 15, Height: 15},
}

// ScreenSize picks the logical screen for a display of the given size:
// the full 600x800 when it fits, otherwise the display minus a margin.
func ScreenSize(displayWidth, displayHeight int) (width, height int) {
	width, height = MaxScreenWidth, MaxScreenHeight
	if displayWidth <= MaxScreenWidth {
		width = displayWidth - ScreenMargin
	}
	if displayHeight <= MaxScreenHeight {
		height = displayHeight - ScreenMargin
	}
	if width < PlayerWidth {
		width = PlayerWidth
	}
	if height < PlayerHeight {
		height = PlayerHeight
	}
	return width, height
}
