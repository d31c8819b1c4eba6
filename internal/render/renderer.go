package render

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Game code draws through a Renderer it was handed
// explicitly, never through package-level state.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image
	NewGeoM() GeoM

	// Shapes
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, font Font, x, y float64, clr color.Color)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// Textures loaded from assets are Images too.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
	IsDisposed() bool
}

// Font measures and describes a face that the Renderer can draw with.
type Font interface {
	// Measure returns the bounding box of text in pixels under the
	// current font settings.
	Measure(text string) (width, height float64)

	// LineHeight is the distance between two baselines.
	LineHeight() float64
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// InputManager reports already-polled device state: keyboard keys and up to
// a handful of pointer slots (touches, or the mouse on desktop).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool

	// IsPointerActive reports whether pointer slot N is touching or clicking.
	IsPointerActive(slot int) bool
	// PointerPosition is the logical screen position of slot N.
	PointerPosition(slot int) (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for common keys
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEscape
	KeyF1
)

// ResourceLoader handles loading resources like images by asset name.
type ResourceLoader interface {
	LoadImage(name string) (Image, error)
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
