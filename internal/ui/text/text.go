// Package text provides helpers for placing strings on the screen.
package text

import (
	"image/color"

	"chosenoffset.com/platformkit/internal/game"
	"chosenoffset.com/platformkit/internal/render"
)

// CenterX returns the x at which a string textWidth wide is horizontally
// centered on a screen screenWidth wide.
func CenterX(screenWidth, textWidth float64) float64 {
	return screenWidth/2 - textWidth/2
}

// DrawCentered draws s horizontally centered on the logical screen of c,
// with its top y units from the top of the screen.
func DrawCentered(c *game.Common, dst render.Image, s string, y float64, clr color.Color) {
	w, _ := c.Font.Measure(s)
	c.Renderer.DrawText(dst, s, c.Font, CenterX(float64(c.Width), w), y, clr)
}

// DrawCenteredLines draws each line centered on its own, one line height
// apart, starting at y.
func DrawCenteredLines(c *game.Common, dst render.Image, lines []string, y float64, clr color.Color) {
	lh := c.Font.LineHeight()
	for i, line := range lines {
		DrawCentered(c, dst, line, y+float64(i)*lh, clr)
	}
}
