package input

// Signals is the logical input state for one tick.
type Signals struct {
	Left   bool
	Right  bool
	Up     bool
	Action bool // reserved for action buttons, never set yet
}

// Any reports whether any signal is set.
func (s Signals) Any() bool {
	return s.Left || s.Right || s.Up || s.Action
}

// Pointer is one pointer slot in camera units.
type Pointer struct {
	Active bool
	X, Y   float64
}

// KeyState is the held state of the arrow keys.
type KeyState struct {
	Left  bool
	Right bool
	Up    bool
}

// Evaluate computes the signals for one tick from scratch. Every active
// pointer sets each region it falls in, so two thumbs can hold left and up at
// once; held keys are OR-ed on top.
func Evaluate(pointers []Pointer, keys KeyState, layout Layout) Signals {
	var s Signals

	for _, p := range pointers {
		if !p.Active {
			continue
		}
		if layout.Left.Contains(p.X, p.Y) {
			s.Left = true
		}
		if layout.Right.Contains(p.X, p.Y) {
			s.Right = true
		}
		if layout.Up.Contains(p.X, p.Y) {
			s.Up = true
		}
	}

	s.Left = s.Left || keys.Left
	s.Right = s.Right || keys.Right
	s.Up = s.Up || keys.Up

	return s
}
