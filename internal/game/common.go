// Package game holds the state shared by every screen of a game.
package game

import "chosenoffset.com/platformkit/internal/render"

// Logical screen size used when the host does not pick one.
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

// Common is the state every screen of a game shares: the renderer, the
// default font, and the logical screen size. The host creates it once at
// startup and hands it to whatever needs it. It owns none of its handles.
type Common struct {
	Renderer render.Renderer
	Font     render.Font
	Width    int
	Height   int
}

// NewCommon bundles the shared renderer and font with a fixed logical size.
func NewCommon(r render.Renderer, font render.Font, width, height int) *Common {
	return &Common{
		Renderer: r,
		Font:     font,
		Width:    width,
		Height:   height,
	}
}

// Center returns the midpoint of the logical screen.
func (c *Common) Center() (x, y float64) {
	return float64(c.Width) / 2, float64(c.Height) / 2
}
