package playback

import (
	"sync"
	"time"
)

// FakeClock is a controllable Clock for tests. Advance fires due timers
// in deadline order; timers sharing a deadline fire in the order they
// were scheduled. Callbacks run on the goroutine calling Advance and may
// schedule further timers, which also fire if due within the advance
// window.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *FakeClock
	at      time.Time
	seq     uint64
	f       func()
	stopped bool
	fired   bool
}

// NewFakeClock creates a fake clock starting at the given time.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules f to run once the clock advances past d.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{
		clock: c,
		at:    c.now.Add(d),
		seq:   c.seq,
		f:     f,
	}
	c.seq++
	c.timers = append(c.timers, t)
	return t
}

// Stop prevents the timer from firing.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d, firing due timers. The lock is
// released around each callback so callbacks can schedule new timers.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		if next.at.After(c.now) {
			c.now = next.at
		}
		next.fired = true

		c.mu.Unlock()
		next.f()
		c.mu.Lock()
	}

	c.now = target
	c.mu.Unlock()
}

// nextDue returns the earliest pending timer due at or before target,
// breaking deadline ties by schedule order. Caller holds c.mu.
func (c *FakeClock) nextDue(target time.Time) *fakeTimer {
	var best *fakeTimer
	live := c.timers[:0]
	for _, t := range c.timers {
		if t.fired || t.stopped {
			continue
		}
		live = append(live, t)
		if t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	c.timers = live
	return best
}

// PendingCount returns the number of timers waiting to fire.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
