package engine

import (
	"sync"
	"time"
)

// FrameClock converts a TimeProvider into per-tick deltas for World.Update
// Paused time is excluded and each delta is capped at maxDelta
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	maxDelta time.Duration

	last    time.Time
	started bool
	paused  bool

	// GameTime accumulates every delta handed out
	gameTime time.Duration
}

// NewFrameClock creates a clock; maxDelta <= 0 disables the cap
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
	}
}

// Tick returns the elapsed simulation time since the previous Tick
// The first Tick after creation or resume returns zero
func (c *FrameClock) Tick() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now

	if c.paused || dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.gameTime += dt
	return dt
}

// Pause freezes simulation time; ticks return zero until Resume
func (c *FrameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume restarts simulation time without a catch-up jump
func (c *FrameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		c.paused = false
		c.started = false
	}
}

// Toggle flips the pause state and returns true if now paused
func (c *FrameClock) Toggle() bool {
	c.mu.Lock()
	paused := c.paused
	c.mu.Unlock()

	if paused {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// IsPaused reports the pause state
func (c *FrameClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// GameTime returns total simulated time handed out so far
func (c *FrameClock) GameTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gameTime
}
