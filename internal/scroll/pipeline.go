package scroll

import (
	"math"
	"time"

	"github.com/litescript/ls-planets/internal/logging"
	"github.com/litescript/ls-planets/internal/throttle"
	"github.com/litescript/ls-planets/internal/tween"
)

// Config controls pipeline timing.
type Config struct {
	// Window is the leading-edge throttle window.
	Window time.Duration
	// Duration of the heading and rotation tweens.
	Duration time.Duration
}

// DefaultConfig returns a 2s throttle window and 1.2s tweens.
func DefaultConfig() Config {
	return Config{
		Window:   2000 * time.Millisecond,
		Duration: 1200 * time.Millisecond,
	}
}

// Animator receives the visual effects of accepted events.
type Animator interface {
	// AnimateHeadings moves every heading to offsetPercent.
	AnimateHeadings(now time.Time, offsetPercent float64)
	// RotateGroup turns the planet group by delta radians.
	RotateGroup(now time.Time, delta float64)
}

// Pipeline owns the scroll state, the touch tracking and the throttle.
type Pipeline struct {
	state    State
	throttle *throttle.Throttle
	animator Animator
	logger   *logging.Logger

	touchStartY float64
	touchEndY   float64
}

// NewPipeline creates a pipeline in state 0.
func NewPipeline(cfg Config, animator Animator, logger *logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Pipeline{
		throttle: throttle.New(cfg.Window, nil),
		animator: animator,
		logger:   logger,
	}
}

// State returns the current heading state.
func (p *Pipeline) State() State {
	return p.state
}

// Busy reports whether events at now would be dropped.
func (p *Pipeline) Busy(now time.Time) bool {
	return p.throttle.Busy(now)
}

// Cooldown returns how long until the next event can be accepted.
func (p *Pipeline) Cooldown(now time.Time) time.Duration {
	return p.throttle.Remaining(now)
}

// HandleWheel processes a wheel event and reports whether it was accepted.
func (p *Pipeline) HandleWheel(now time.Time, e WheelEvent) bool {
	accepted := p.throttle.DoAt(now, func() {
		p.apply(now, Classify(e))
	})
	if !accepted {
		p.logger.Debug("dropped wheel deltaY=%v", e.DeltaY)
	}
	return accepted
}

// TouchStart records where a single-touch gesture began.
func (p *Pipeline) TouchStart(y float64) {
	p.touchStartY = y
}

// TouchEnd completes a gesture at y and feeds the synthesized wheel event
// through the throttle.
func (p *Pipeline) TouchEnd(now time.Time, y float64) bool {
	p.touchEndY = y
	return p.HandleWheel(now, SynthesizeSwipe(p.touchStartY, p.touchEndY))
}

func (p *Pipeline) apply(now time.Time, d Direction) {
	p.state = p.state.Advance(d)
	p.logger.Debug("scroll %s -> heading %d", d, p.state.Index)

	if p.animator == nil {
		return
	}
	p.animator.AnimateHeadings(now, p.state.HeadingOffset())
	delta := -math.Pi / 2
	if d == Down {
		delta = math.Pi / 2
	}
	p.animator.RotateGroup(now, delta)
}

// TweenAnimator animates heading offsets and the group rotation on a
// tween timeline.
type TweenAnimator struct {
	Timeline *tween.Timeline
	Headings []*float64
	Group    *float64
	Duration time.Duration
	Ease     tween.EaseFunc
}

// AnimateHeadings implements Animator.
func (a *TweenAnimator) AnimateHeadings(now time.Time, offsetPercent float64) {
	for _, h := range a.Headings {
		a.Timeline.To(now, h, offsetPercent, a.Duration, a.ease())
	}
}

// RotateGroup implements Animator.
func (a *TweenAnimator) RotateGroup(now time.Time, delta float64) {
	if a.Group == nil {
		return
	}
	a.Timeline.By(now, a.Group, delta, a.Duration, a.ease())
}

func (a *TweenAnimator) ease() tween.EaseFunc {
	if a.Ease == nil {
		return tween.ExpoInOut
	}
	return a.Ease
}
