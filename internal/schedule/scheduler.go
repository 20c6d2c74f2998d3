package schedule

import (
	"time"

	"github.com/tomz197/rocketdodge/internal/config"
)

// Event identifies which timer fired.
type Event int

const (
	EventSpawnAsteroid Event = iota
	EventSpawnStar
	EventDifficultyTick
)

// String returns a short name for logging.
func (e Event) String() string {
	switch e {
	case EventSpawnAsteroid:
		return "spawn_asteroid"
	case EventSpawnStar:
		return "spawn_star"
	case EventDifficultyTick:
		return "difficulty_tick"
	default:
		return "unknown"
	}
}

// Scheduler owns the three game timers. The star timer is cosmetic and is never
// disarmed; the asteroid and difficulty timers stop when the game ends.
type Scheduler struct {
	Asteroid   Timer
	Star       Timer
	Difficulty Timer

	fired []Event // Reused between frames
}

// NewScheduler creates a scheduler with every timer armed for a fresh game.
func NewScheduler() *Scheduler {
	s := &Scheduler{fired: make([]Event, 0, 3)}
	s.Star.Set(config.StarInterval)
	s.Arm()
	return s
}

// Arm starts the gameplay timers at their initial intervals.
func (s *Scheduler) Arm() {
	s.Asteroid.Set(config.InitialAsteroidInterval)
	s.Difficulty.Set(config.DifficultyInterval)
}

// Disarm stops the gameplay timers. The star timer keeps running.
func (s *Scheduler) Disarm() {
	s.Asteroid.Set(0)
	s.Difficulty.Set(0)
}

// SetAsteroidInterval re-arms the asteroid timer, keeping it strictly positive.
func (s *Scheduler) SetAsteroidInterval(interval time.Duration) {
	if interval < config.MinAsteroidInterval {
		interval = config.MinAsteroidInterval
	}
	s.Asteroid.Set(interval)
}

// Advance moves every timer forward by delta and returns the events that fired,
// in a fixed order. All timers advance before any event is handled, so a handler
// re-arming a timer never affects this frame's firings.
// The returned slice is only valid until the next call.
func (s *Scheduler) Advance(delta time.Duration) []Event {
	s.fired = s.fired[:0]
	if s.Difficulty.Advance(delta) {
		s.fired = append(s.fired, EventDifficultyTick)
	}
	if s.Asteroid.Advance(delta) {
		s.fired = append(s.fired, EventSpawnAsteroid)
	}
	if s.Star.Advance(delta) {
		s.fired = append(s.fired, EventSpawnStar)
	}
	return s.fired
}
