package platformer

import (
	"github.com/charmbracelet/log"

	"chosenoffset.com/platformkit/internal/game"
	"chosenoffset.com/platformkit/internal/input"
	"chosenoffset.com/platformkit/internal/render"
	"chosenoffset.com/platformkit/internal/ui/text"
)

// Manager handles the overall game state: title screen, play and pause.
// It implements render.Game. Each tick polls the controller first, then
// advances the active screen; each frame draws the screen and then the
// controller's button hints on top.
type Manager struct {
	Common     *game.Common
	State      GameState
	Game       *Game
	InputMgr   render.InputManager
	Controller *input.PlatformerController
	logger     *log.Logger
}

// NewManager creates a game manager showing the title screen.
func NewManager(c *game.Common, im render.InputManager, controller *input.PlatformerController, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		Common:     c,
		State:      StateTitle,
		InputMgr:   im,
		Controller: controller,
		logger:     logger,
	}
}

// Update updates the game state.
func (m *Manager) Update() error {
	signals := m.Controller.ProcessInput(m.InputMgr)

	if m.InputMgr.IsKeyJustPressed(render.KeyF1) {
		m.Controller.SetHintsVisible(!m.Controller.HintsVisible())
	}

	switch m.State {
	case StateTitle:
		if signals.Any() || m.InputMgr.IsKeyJustPressed(render.KeySpace) {
			m.Game = NewGame(m.Common)
			m.Game.ShowMessage("Go!")
			m.setState(StatePlaying)
		}
	case StatePlaying:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.setState(StatePaused)
			return nil
		}
		m.Game.Step(signals)
	case StatePaused:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) || signals.Any() {
			m.setState(StatePlaying)
		}
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateTitle:
		screen.Fill(backgroundColor)
		_, cy := m.Common.Center()
		text.DrawCenteredLines(m.Common, screen, []string{
			"PLATFORMKIT",
			"",
			"Arrow keys or the on-screen buttons",
			"Press any button to start",
		}, cy-40, textColor)
	case StatePlaying:
		m.Game.Draw(screen)
	case StatePaused:
		m.Game.Draw(screen)
		_, cy := m.Common.Center()
		text.DrawCentered(m.Common, screen, "Paused", cy, textColor)
	}

	m.Controller.Render(screen, m.Common.Renderer)
}

// Layout returns the fixed logical screen size; the engine scales it to
// the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Common.Width, m.Common.Height
}

// Close releases the controller's images.
func (m *Manager) Close() {
	m.Controller.Dispose()
}

func (m *Manager) setState(s GameState) {
	m.logger.Debug("state change", "from", m.State, "to", s)
	m.State = s
}
