// Package timeutil provides the time source used when stamping address
// book events, with a frozen clock for tests.
package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts a time source.
type Clock interface {
	// Now returns current time (UTC expected by convention).
	Now() time.Time
	// Since is a convenience wrapper over Now().Sub(t).
	Since(t time.Time) time.Duration
}

// UTCClock uses system time in UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

// Important: use Clock.Now() for consistency with custom clocks.
func (c UTCClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// FrozenClock keeps fixed time with manual advancement.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time // always UTC
}

func NewFrozenClock(t time.Time) *FrozenClock { return &FrozenClock{t: t.UTC()} }

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *FrozenClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t.UTC()
	c.mu.Unlock()
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d) // already UTC
	c.mu.Unlock()
}

var (
	defaultMu    sync.RWMutex
	defaultClock Clock = UTCClock{}
)

func DefaultClock() Clock {
	defaultMu.RLock()
	c := defaultClock
	defaultMu.RUnlock()
	return c
}

// SetDefault sets global clock and returns previous value.
func SetDefault(c Clock) (prev Clock) {
	if c == nil {
		c = UTCClock{}
	}

	defaultMu.Lock()
	prev = defaultClock
	defaultClock = c
	defaultMu.Unlock()
	return prev
}

// WithDefault sets a clock and returns restore function.
func WithDefault(c Clock) (restore func()) {
	prev := SetDefault(c)
	return func() { SetDefault(prev) }
}

// Now is an alias for DefaultClock().Now().
// It guarantees UTC even if custom clock returns non-UTC location.
func Now() time.Time { return DefaultClock().Now().UTC() }

// Since is a convenience wrapper over DefaultClock().Since(t).
func Since(t time.Time) time.Duration { return DefaultClock().Since(t) }
