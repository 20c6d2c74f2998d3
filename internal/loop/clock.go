package loop

import "time"

// Clock throttles the loop to a target frame time and measures the frame rate.
type Clock struct {
	frameTime time.Duration
	now       func() time.Time
	sleep     func(time.Duration)

	last    time.Time
	samples [fpsWindow]time.Duration
	count   int // Samples recorded, up to fpsWindow
	next    int // Ring buffer write position
}

// NewClock creates a clock targeting frameTime per frame.
func NewClock(frameTime time.Duration) *Clock {
	c := &Clock{
		frameTime: frameTime,
		now:       time.Now,
		sleep:     time.Sleep,
	}
	c.last = c.now()
	return c
}

// Tick waits until at least one frame time has passed since the previous Tick
// and returns the time that actually elapsed.
func (c *Clock) Tick() time.Duration {
	if elapsed := c.now().Sub(c.last); elapsed < c.frameTime {
		c.sleep(c.frameTime - elapsed)
	}

	now := c.now()
	delta := now.Sub(c.last)
	c.last = now

	c.samples[c.next] = delta
	c.next = (c.next + 1) % fpsWindow
	if c.count < fpsWindow {
		c.count++
	}
	return delta
}

// FPS returns the frame rate averaged over the last few ticks, or 0 before the first.
func (c *Clock) FPS() float64 {
	var total time.Duration
	for _, d := range c.samples[:c.count] {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(c.count) / total.Seconds()
}
