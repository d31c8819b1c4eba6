// Package input turns raw pointer and keyboard state into the logical
// signals a platformer needs: move left, move right, jump.
//
// The on-screen buttons are invisible rectangles as tall as the screen, so a
// player holding a phone like a gamepad can press anywhere above a button
// hint. Left and right sit side by side at the left edge, up sits at the
// right edge.
package input

// DefaultButtonWidth is the width of each on-screen button in camera units.
const DefaultButtonWidth = 100

// Region is an axis-aligned rectangle in camera units.
type Region struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside r. Edges count as inside.
func (r Region) Contains(x, y float64) bool {
	return r.X <= x && x <= r.X+r.Width &&
		r.Y <= y && y <= r.Y+r.Height
}

// Layout holds the three button regions.
type Layout struct {
	Left  Region
	Right Region
	Up    Region
}

// NewLayout places the buttons for a screen of width by height camera units.
// Every button is buttonWidth wide and spans the full height; a
// non-positive buttonWidth uses DefaultButtonWidth. Screens wider than
// three buttons leave a gap between right and up. Narrower screens make up
// overlap right and are not rejected.
func NewLayout(width, height, buttonWidth float64) Layout {
	if buttonWidth <= 0 {
		buttonWidth = DefaultButtonWidth
	}

	return Layout{
		Left:  Region{X: 0, Y: 0, Width: buttonWidth, Height: height},
		Right: Region{X: buttonWidth, Y: 0, Width: buttonWidth, Height: height},
		Up:    Region{X: width - buttonWidth, Y: 0, Width: buttonWidth, Height: height},
	}
}
