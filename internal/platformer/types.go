package platformer

// Player is the square the controller moves around.
type Player struct {
	X, Y     float64 // top-left corner in camera units
	VX, VY   float64
	OnGround bool
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// GameState is the screen the manager is showing.
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
	StatePaused
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
