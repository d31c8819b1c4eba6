package ebiten

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/platformkit/internal/render"
)

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	touches []ebiten.TouchID
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// IsPointerActive reports whether slot N has a touch. Without any touches,
// slot 0 follows the left mouse button.
func (m *EbitenInputManager) IsPointerActive(slot int) bool {
	touches := m.activeTouches()
	if slot < len(touches) {
		return true
	}
	return slot == 0 && len(touches) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// PointerPosition returns the logical screen position of slot N.
func (m *EbitenInputManager) PointerPosition(slot int) (x, y int) {
	touches := m.activeTouches()
	if slot < len(touches) {
		return ebiten.TouchPosition(touches[slot])
	}
	if slot == 0 {
		return ebiten.CursorPosition()
	}
	return 0, 0
}

// activeTouches returns the current touch IDs sorted so slot order is stable
// while fingers stay down.
func (m *EbitenInputManager) activeTouches() []ebiten.TouchID {
	m.touches = ebiten.AppendTouchIDs(m.touches[:0])
	slices.Sort(m.touches)
	return m.touches
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeySpace:
		return ebiten.KeySpace, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	case render.KeyF1:
		return ebiten.KeyF1, true
	default:
		return 0, false
	}
}
