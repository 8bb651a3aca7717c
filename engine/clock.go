package engine

import "time"

// FrameClock turns successive timestamps into elapsed seconds for Session.Step
// A single delta is capped at maxDelta so a suspended process does not teleport the runners
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration
	last     time.Time
}

// NewFrameClock starts measuring from the provider's current time
// maxDelta <= 0 disables the cap
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
		last:     provider.Now(),
	}
}

// Delta returns seconds since the previous call, Reset or construction
func (c *FrameClock) Delta() float64 {
	now := c.provider.Now()
	d := now.Sub(c.last)
	c.last = now

	if d < 0 {
		return 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}
	return d.Seconds()
}

// Reset discards time accumulated since the last Delta
func (c *FrameClock) Reset() {
	c.last = c.provider.Now()
}
