// Package schedule provides the frame-driven timers that pace spawning and difficulty.
package schedule

import "time"

// Timer is a repeating countdown advanced by the frame delta.
// An interval of zero disables it.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewTimer creates a timer armed with the given interval.
func NewTimer(interval time.Duration) *Timer {
	t := &Timer{}
	t.Set(interval)
	return t
}

// Set re-arms the timer with a new interval and restarts its countdown.
// Negative intervals disable the timer.
func (t *Timer) Set(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	t.interval = interval
	t.elapsed = 0
}

// Interval returns the current interval (zero when disabled).
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Active reports whether the timer can fire.
func (t *Timer) Active() bool {
	return t.interval > 0
}

// Advance adds delta to the countdown and reports whether the timer fired.
// A timer fires at most once per call; a backlog longer than one interval
// is dropped, so intervals shorter than a frame fire once per frame.
func (t *Timer) Advance(delta time.Duration) bool {
	if t.interval <= 0 || delta <= 0 {
		return false
	}
	t.elapsed += delta
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed -= t.interval
	if t.elapsed >= t.interval {
		t.elapsed %= t.interval
	}
	return true
}
