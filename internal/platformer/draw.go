package platformer

import (
	"image/color"

	"chosenoffset.com/platformkit/internal/render"
	"chosenoffset.com/platformkit/internal/ui/text"
)

var (
	backgroundColor = color.RGBA{30, 32, 40, 255}
	groundColor     = color.RGBA{80, 85, 95, 255}
	playerColor     = color.RGBA{0, 255, 100, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
	messageColor    = color.RGBA{255, 255, 200, 255}
)

// Draw renders the world and any active messages onto screen.
func (g *Game) Draw(screen render.Image) {
	c := g.Common
	r := c.Renderer

	screen.Fill(backgroundColor)

	floor := g.FloorY()
	r.FillRect(screen, 0, float32(floor), float32(c.Width), float32(float64(c.Height)-floor), groundColor)
	r.FillRect(screen, float32(g.Player.X), float32(g.Player.Y), PlayerSize, PlayerSize, playerColor)

	g.drawMessages(screen)
}

func (g *Game) drawMessages(screen render.Image) {
	y := 16.0
	for _, msg := range g.Messages {
		alpha := uint8(255 * msg.TimeLeft / msg.MaxTime)
		clr := color.NRGBA{messageColor.R, messageColor.G, messageColor.B, alpha}
		text.DrawCentered(g.Common, screen, msg.Text, y, clr)
		y += g.Common.Font.LineHeight()
	}
}
