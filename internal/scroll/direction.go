// Package scroll turns wheel and swipe input into heading changes.
package scroll

// Direction is the scroll direction an input event resolves to.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// WheelEvent is a wheel-shaped input. Touch swipes are synthesized into the
// same shape. HasDelta is false for events that carry no vertical delta.
type WheelEvent struct {
	DeltaY   float64
	HasDelta bool
}

// Wheel returns a wheel event carrying deltaY.
func Wheel(deltaY float64) WheelEvent {
	return WheelEvent{DeltaY: deltaY, HasDelta: true}
}

// Classify resolves an event to a direction.
//
// Events with a delta scroll down for positive deltas and up otherwise, so a
// zero delta is up. Events without a delta use the fallback rule, where a
// negative delta is down; this branch is kept as is even though it reads
// inverted.
func Classify(e WheelEvent) Direction {
	if e.HasDelta {
		if e.DeltaY > 0 {
			return Down
		}
		return Up
	}
	if e.DeltaY < 0 {
		return Down
	}
	return Up
}

// SynthesizeSwipe converts a vertical drag from startY to endY into a wheel
// event. Dragging upward (endY < startY) yields a positive delta; any other
// drag, including a tap with no movement, yields a negative one.
func SynthesizeSwipe(startY, endY float64) WheelEvent {
	if endY-startY < 0 {
		return Wheel(1)
	}
	return Wheel(-1)
}
