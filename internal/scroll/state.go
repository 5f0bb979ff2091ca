package scroll

// Headings is the number of heading positions the state cycles through.
const Headings = 4

// State is the current heading index, always in [0, Headings).
type State struct {
	Index int
}

// Advance returns the state after one accepted event in direction d.
func (s State) Advance(d Direction) State {
	if d == Down {
		return State{Index: (s.Index + 1) % Headings}
	}
	return State{Index: (s.Index - 1 + Headings) % Headings}
}

// HeadingOffset returns the vertical offset of the headings for s, in
// percent of one heading's height.
func (s State) HeadingOffset() float64 {
	return float64(-s.Index * 100)
}
