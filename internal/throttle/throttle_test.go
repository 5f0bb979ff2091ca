package throttle

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFake() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
}

func TestGate_TryAcquire(t *testing.T) {
	clk := newFake()
	var g Gate

	if !g.TryAcquire(clk.Now()) {
		t.Fatal("first acquire should succeed")
	}
	if g.TryAcquire(clk.Now()) {
		t.Error("second acquire should fail while busy")
	}

	// Without a scheduled release the gate stays closed.
	clk.Advance(time.Hour)
	if g.TryAcquire(clk.Now()) {
		t.Error("acquire should fail without ReleaseAfter")
	}
}

func TestGate_ReleaseAfter(t *testing.T) {
	clk := newFake()
	var g Gate

	g.TryAcquire(clk.Now())
	g.ReleaseAfter(2 * time.Second)

	clk.Advance(1999 * time.Millisecond)
	if !g.Busy(clk.Now()) {
		t.Error("gate should be busy before the window elapses")
	}

	clk.Advance(time.Millisecond)
	if g.Busy(clk.Now()) {
		t.Error("gate should reopen exactly at the window")
	}
	if !g.TryAcquire(clk.Now()) {
		t.Error("acquire should succeed once reopened")
	}
}

func TestThrottle_BurstAcceptsOne(t *testing.T) {
	clk := newFake()
	th := New(2*time.Second, clk)

	calls := 0
	for i := 0; i < 10; i++ {
		th.Do(func() { calls++ })
		clk.Advance(50 * time.Millisecond) // 10 events within 500ms
	}

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestThrottle_LeadingEdge(t *testing.T) {
	clk := newFake()
	th := New(2*time.Second, clk)

	var order []int
	th.Do(func() { order = append(order, 1) })
	clk.Advance(1500 * time.Millisecond)
	th.Do(func() { order = append(order, 2) }) // dropped, not deferred
	clk.Advance(500 * time.Millisecond)
	th.Do(func() { order = append(order, 3) })

	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("order = %v, want [1 3]", order)
	}
}

func TestThrottle_WindowMeasuredFromAcceptedEvent(t *testing.T) {
	clk := newFake()
	th := New(2*time.Second, clk)

	th.Do(func() {})
	// Dropped events must not extend the window.
	for i := 0; i < 19; i++ {
		clk.Advance(100 * time.Millisecond)
		th.Do(func() {})
	}
	clk.Advance(100 * time.Millisecond)

	if !th.Do(func() {}) {
		t.Error("event at acceptedAt+2s should be accepted")
	}
}

func TestThrottle_Remaining(t *testing.T) {
	clk := newFake()
	th := New(2*time.Second, clk)

	if got := th.Remaining(clk.Now()); got != 0 {
		t.Errorf("Remaining before any event = %v, want 0", got)
	}

	th.Do(func() {})
	clk.Advance(500 * time.Millisecond)
	if got := th.Remaining(clk.Now()); got != 1500*time.Millisecond {
		t.Errorf("Remaining = %v, want 1.5s", got)
	}

	clk.Advance(2 * time.Second)
	if got := th.Remaining(clk.Now()); got != 0 {
		t.Errorf("Remaining after window = %v, want 0", got)
	}
}

func TestNew_DefaultClock(t *testing.T) {
	th := New(time.Minute, nil)
	if !th.Do(func() {}) {
		t.Error("first call with system clock should pass")
	}
	if th.Window() != time.Minute {
		t.Errorf("Window = %v, want 1m", th.Window())
	}
}
