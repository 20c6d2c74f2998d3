// Package difficulty maps elapsed game time to asteroid speed and spawn rate.
package difficulty

import (
	"math"
	"time"

	"github.com/tomz197/rocketdodge/internal/config"
)

// stepsPerUnit is how many ticks raise difficulty time by 1.0.
var stepsPerUnit = math.Round(1 / config.DifficultyStep)

// Curve is the saturating difficulty function f(x) = 500x² / (x² + 10x).
// The quotient is 0/0 at x = 0; its limit there is 0, which is what Curve returns.
func Curve(x float64) float64 {
	denom := x*x + config.CurveKnee*x
	if denom == 0 {
		return 0
	}
	return config.CurveCeiling * x * x / denom
}

// AsteroidInterval returns the asteroid spawn interval for curve input x,
// 600ms - f(x), never shorter than config.MinAsteroidInterval.
func AsteroidInterval(x float64) time.Duration {
	ms := config.CurveBaseInterval - Curve(x)
	interval := time.Duration(ms * float64(time.Millisecond))
	if interval < config.MinAsteroidInterval {
		return config.MinAsteroidInterval
	}
	return interval
}

// State is the monotonic difficulty clock of one game.
// The zero value is a fresh game at difficulty time 1.0.
type State struct {
	ticks int
}

// Tick advances difficulty time by one step and returns the new asteroid interval.
func (s *State) Tick() time.Duration {
	s.ticks++
	return AsteroidInterval(s.Level())
}

// Reset returns to the starting difficulty.
func (s *State) Reset() {
	s.ticks = 0
}

// Ticks returns how many difficulty ticks have elapsed.
func (s *State) Ticks() int {
	return s.ticks
}

// Time returns difficulty_time: 1.0 plus 0.1 per tick.
// Computed from the tick count so repeated steps do not accumulate rounding error.
func (s *State) Time() float64 {
	return (config.InitialDifficultyTime*stepsPerUnit + float64(s.ticks)) / stepsPerUnit
}

// Level returns the curve input x = difficulty_time*10 - 10, i.e. the tick count.
func (s *State) Level() float64 {
	return float64(s.ticks)
}

// AsteroidSpeed returns the fall speed, in units per frame, for an asteroid spawned now.
func (s *State) AsteroidSpeed() float64 {
	return config.AsteroidBaseSpeed * s.Time()
}
