package app

import "time"

// Clock measures time since it was created and between ticks.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

// NewClock starts a clock. A nil now uses time.Now, whose readings carry
// the monotonic clock.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Clock{now: now, start: t, last: t}
}

// Tick returns the seconds elapsed since start and since the previous tick.
func (c *Clock) Tick() (elapsed, delta float32) {
	t := c.now()
	elapsed = float32(t.Sub(c.start).Seconds())
	delta = float32(t.Sub(c.last).Seconds())
	c.last = t
	return elapsed, delta
}
