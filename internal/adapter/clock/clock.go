// Package clock provides the clock oracles used to evaluate campaign
// deadlines.
package clock

import (
	"sync"
	"time"
)

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Offset is a wall clock that can be fast-forwarded, the way a local
// development ledger lets scripts increase block time. The offset only
// grows, so time read from an Offset never goes backwards.
type Offset struct {
	mu     sync.RWMutex
	base   func() time.Time
	offset time.Duration
}

// NewOffset returns an Offset on top of the system clock.
func NewOffset() *Offset {
	return &Offset{base: System{}.Now}
}

func (c *Offset) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.base().Add(c.offset)
}

// Advance moves the clock forward by d and returns the new time. Negative
// durations are ignored.
func (c *Offset) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	if d > 0 {
		c.offset += d
	}
	c.mu.Unlock()
	return c.Now()
}

// Manual is a clock that only moves when told to. It is meant for tests
// and deterministic replays.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock reading now.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now.UTC()}
}

func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *Manual) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set moves the clock to t.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}
