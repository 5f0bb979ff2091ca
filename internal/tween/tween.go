// Package tween animates float64 properties over time.
//
// Tweens are fire-and-forget: they capture their start value on the first
// Step after creation, run to completion and are then dropped. Tweens on the
// same property are applied in creation order, so the newest one wins.
package tween

import (
	"time"

	"github.com/fogleman/ease"
)

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(t float64) float64

// Easing curves.
var (
	Linear     EaseFunc = ease.Linear
	ExpoInOut  EaseFunc = ease.InOutExpo
	CubicInOut EaseFunc = ease.InOutCubic
)

// Tween interpolates one property.
type Tween struct {
	target   *float64
	value    float64 // absolute end value, or delta when relative
	relative bool
	duration time.Duration
	ease     EaseFunc

	created time.Time
	started bool
	from    float64
	to      float64
	done    bool
}

// Done reports whether the tween has reached its end value.
func (tw *Tween) Done() bool { return tw.done }

// step applies the tween at now and reports whether it finished.
func (tw *Tween) step(now time.Time) bool {
	if tw.done {
		return true
	}
	if !tw.started {
		tw.started = true
		tw.from = *tw.target
		if tw.relative {
			tw.to = tw.from + tw.value
		} else {
			tw.to = tw.value
		}
	}

	elapsed := now.Sub(tw.created)
	if elapsed < 0 {
		elapsed = 0
	}
	if tw.duration <= 0 || elapsed >= tw.duration {
		*tw.target = tw.to
		tw.done = true
		return true
	}

	p := tw.ease(float64(elapsed) / float64(tw.duration))
	*tw.target = tw.from + (tw.to-tw.from)*p
	return false
}

// Timeline owns the running tweens. It is not safe for concurrent use; drive
// it from the goroutine that owns the animated values.
type Timeline struct {
	tweens []*Tween
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// To animates target to value.
func (tl *Timeline) To(now time.Time, target *float64, value float64, d time.Duration, e EaseFunc) *Tween {
	return tl.add(&Tween{target: target, value: value, duration: d, ease: e, created: now})
}

// By animates target by delta relative to its value when the tween starts.
func (tl *Timeline) By(now time.Time, target *float64, delta float64, d time.Duration, e EaseFunc) *Tween {
	return tl.add(&Tween{target: target, value: delta, relative: true, duration: d, ease: e, created: now})
}

func (tl *Timeline) add(tw *Tween) *Tween {
	if tw.ease == nil {
		tw.ease = Linear
	}
	tl.tweens = append(tl.tweens, tw)
	return tw
}

// Step advances every tween to now and drops finished ones.
func (tl *Timeline) Step(now time.Time) {
	live := tl.tweens[:0]
	for _, tw := range tl.tweens {
		if !tw.step(now) {
			live = append(live, tw)
		}
	}
	for i := len(live); i < len(tl.tweens); i++ {
		tl.tweens[i] = nil
	}
	tl.tweens = live
}

// Active returns the number of running tweens.
func (tl *Timeline) Active() int {
	return len(tl.tweens)
}
