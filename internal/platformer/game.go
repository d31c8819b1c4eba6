// Package platformer is a minimal platformer that drives the on-screen
// controller: move with left and right, jump with up.
package platformer

import (
	"chosenoffset.com/platformkit/internal/game"
	"chosenoffset.com/platformkit/internal/input"
)

// Movement tuning, in camera units per tick.
const (
	PlayerSize   = 24
	MoveSpeed    = 3.0
	JumpVelocity = -9.0
	Gravity      = 0.5
	MaxFallSpeed = 12.0
	GroundHeight = 60 // distance from the bottom of the screen to the floor
)

// Game holds the world state for one play session.
type Game struct {
	Common   *game.Common
	Player   Player
	Messages []Message
}

// NewGame places the player on the floor in the middle of the screen.
func NewGame(c *game.Common) *Game {
	g := &Game{Common: c}
	g.Player.X = float64(c.Width)/2 - PlayerSize/2
	g.Player.Y = g.FloorY() - PlayerSize
	g.Player.OnGround = true
	return g
}

// FloorY is the y of the floor surface.
func (g *Game) FloorY() float64 {
	return float64(g.Common.Height - GroundHeight)
}

// Step advances the world by one tick using this tick's signals.
func (g *Game) Step(s input.Signals) {
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	p := &g.Player
	p.VX = 0
	if s.Left {
		p.VX -= MoveSpeed
	}
	if s.Right {
		p.VX += MoveSpeed
	}
	if s.Up && p.OnGround {
		p.VY = JumpVelocity
		p.OnGround = false
	}

	p.VY += Gravity
	if p.VY > MaxFallSpeed {
		p.VY = MaxFallSpeed
	}

	p.X += p.VX
	p.Y += p.VY

	// Keep player in bounds
	maxX := float64(g.Common.Width - PlayerSize)
	if p.X < 0 {
		p.X = 0
	}
	if p.X > maxX {
		p.X = maxX
	}
	if floor := g.FloorY() - PlayerSize; p.Y >= floor {
		p.Y = floor
		p.VY = 0
		p.OnGround = true
	}
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
}
