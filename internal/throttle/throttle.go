// Package throttle implements a leading-edge rate limiter.
//
// The first event of a burst passes; every later event is dropped until the
// window measured from the accepted event has elapsed. Nothing is queued.
package throttle

import (
	"sync"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Gate is a busy flag with a timed reset. The reset happens whether or not
// the work started on acquisition has finished.
type Gate struct {
	mu         sync.Mutex
	busy       bool
	acquiredAt time.Time
	releaseAt  time.Time
	hasRelease bool
}

// TryAcquire sets the gate busy and returns true, unless it is still busy at
// now, in which case it returns false.
func (g *Gate) TryAcquire(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.expire(now)
	if g.busy {
		return false
	}
	g.busy = true
	g.acquiredAt = now
	g.hasRelease = false
	return true
}

// ReleaseAfter schedules the gate to reopen d after the last acquisition.
func (g *Gate) ReleaseAfter(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.releaseAt = g.acquiredAt.Add(d)
	g.hasRelease = true
}

// Busy reports whether the gate is closed at now.
func (g *Gate) Busy(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.expire(now)
	return g.busy
}

// ReleaseAt returns when the gate reopens. ok is false when the gate is open
// or no release has been scheduled.
func (g *Gate) ReleaseAt() (t time.Time, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.releaseAt, g.busy && g.hasRelease
}

func (g *Gate) expire(now time.Time) {
	if g.busy && g.hasRelease && !now.Before(g.releaseAt) {
		g.busy = false
		g.hasRelease = false
	}
}

// Throttle runs a function at most once per window.
type Throttle struct {
	gate   Gate
	window time.Duration
	clock  Clock
}

// New creates a throttle with the given window. A nil clock uses the system
// clock.
func New(window time.Duration, clock Clock) *Throttle {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Throttle{window: window, clock: clock}
}

// Window returns the configured window.
func (t *Throttle) Window() time.Duration {
	return t.window
}

// Do calls fn if the throttle is open and reports whether it did.
func (t *Throttle) Do(fn func()) bool {
	return t.DoAt(t.clock.Now(), fn)
}

// DoAt is Do with an explicit time, for callers that carry their own event
// timestamps.
func (t *Throttle) DoAt(now time.Time, fn func()) bool {
	if !t.gate.TryAcquire(now) {
		return false
	}
	t.gate.ReleaseAfter(t.window)
	fn()
	return true
}

// Busy reports whether events arriving at now would be dropped.
func (t *Throttle) Busy(now time.Time) bool {
	return t.gate.Busy(now)
}

// Remaining returns how long until the throttle reopens, or 0 if open.
func (t *Throttle) Remaining(now time.Time) time.Duration {
	at, ok := t.gate.ReleaseAt()
	if !ok || !now.Before(at) {
		return 0
	}
	return at.Sub(now)
}
