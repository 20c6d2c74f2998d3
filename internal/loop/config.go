package loop

import "github.com/tomz197/rocketdodge/internal/config"

// Loop tuning. Gameplay constants live in the config package.

// Layout
const (
	scoreTextTop = float64(config.ScoreTextTop)
	fpsTextLeft  = float64(config.FPSTextLeft)
	fpsTextTop   = float64(config.FPSTextTop)
	hintSpacing  = 40.0 // Logical units between the score and the hint below it

	rocketMarginX = float64(config.RocketOffsetLeft)
	rocketMarginY = float64(config.RocketOffsetTop)
)

// Collision
const (
	gridCellSize = 100.0 // Larger than the biggest asteroid
)

// Frame clock
const (
	fpsWindow = 10 // Frames averaged for the FPS reading
)

// HUD strings shown by the terminal renderer
const (
	gameOverHint = "R to restart, Q to quit"
)
