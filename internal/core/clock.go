package core

import "time"

// MaxFrameDelta caps a single frame's delta so a long stall (a suspended
// process, a slow SSH link) does not teleport entities through walls.
const MaxFrameDelta = 100 * time.Millisecond

// FrameClock measures elapsed time between ticks.
type FrameClock struct {
	last    time.Time
	started bool
	max     time.Duration
}

// NewFrameClock creates a clock that clamps deltas to max.
// A non-positive max selects MaxFrameDelta.
func NewFrameClock(max time.Duration) *FrameClock {
	if max <= 0 {
		max = MaxFrameDelta
	}
	return &FrameClock{max: max}
}

// Tick records now and returns the delta since the previous tick.
// The first tick returns 0. The result is always in [0, max].
func (c *FrameClock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.max {
		return c.max
	}
	return dt
}

// Restart forgets the previous tick, so the next Tick returns 0.
func (c *FrameClock) Restart() {
	c.started = false
}
