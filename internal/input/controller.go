package input

import (
	"fmt"

	"github.com/charmbracelet/log"

	"chosenoffset.com/platformkit/internal/render"
)

// PointerSlots is how many pointers are polled each tick: one per thumb.
const PointerSlots = 2

// DefaultGroundOffset is the gap between the bottom of the screen and the
// button hints, in camera units.
const DefaultGroundOffset = 10

// IconNames are the asset names of the three button hints.
type IconNames struct {
	Left  string
	Right string
	Up    string
}

// DefaultIcons are the asset names looked up when none are configured.
var DefaultIcons = IconNames{
	Left:  "btn_arrow_left.png",
	Right: "btn_arrow_right.png",
	Up:    "btn_arrow_up.png",
}

// Options tune a PlatformerController. The zero value is usable.
type Options struct {
	ButtonWidth  float64
	GroundOffset float64
	Icons        IconNames
	HideHints    bool
	Logger       *log.Logger
}

// PlatformerController maps pointer and keyboard state to Signals and draws
// hints for the on-screen buttons. It owns its three icon images until
// Dispose.
type PlatformerController struct {
	width        float64
	height       float64
	buttonWidth  float64
	groundOffset float64
	hideHints    bool
	camera       *render.Camera
	logger       *log.Logger

	layout  Layout
	signals Signals

	leftIcon  render.Image
	rightIcon render.Image
	upIcon    render.Image
	disposed  bool
}

// NewPlatformerController lays out the buttons for a width by height camera
// space and loads the button icons. camera converts pointer positions from
// screen pixels into that space; nil means one unit per pixel.
func NewPlatformerController(loader render.ResourceLoader, width, height float64, camera *render.Camera, opts Options) (*PlatformerController, error) {
	if camera == nil {
		camera = render.NewCamera()
	}
	if opts.GroundOffset == 0 {
		opts.GroundOffset = DefaultGroundOffset
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	icons := opts.Icons
	if icons.Left == "" {
		icons.Left = DefaultIcons.Left
	}
	if icons.Right == "" {
		icons.Right = DefaultIcons.Right
	}
	if icons.Up == "" {
		icons.Up = DefaultIcons.Up
	}

	c := &PlatformerController{
		width:        width,
		height:       height,
		buttonWidth:  opts.ButtonWidth,
		groundOffset: opts.GroundOffset,
		hideHints:    opts.HideHints,
		camera:       camera,
		logger:       opts.Logger,
		layout:       NewLayout(width, height, opts.ButtonWidth),
	}

	var err error
	if c.leftIcon, err = loader.LoadImage(icons.Left); err != nil {
		return nil, fmt.Errorf("failed to load left button icon: %w", err)
	}
	if c.rightIcon, err = loader.LoadImage(icons.Right); err != nil {
		c.leftIcon.Dispose()
		return nil, fmt.Errorf("failed to load right button icon: %w", err)
	}
	if c.upIcon, err = loader.LoadImage(icons.Up); err != nil {
		c.leftIcon.Dispose()
		c.rightIcon.Dispose()
		return nil, fmt.Errorf("failed to load up button icon: %w", err)
	}

	c.logger.Debug("controller ready", "width", width, "height", height, "button_width", c.layout.Left.Width)
	return c, nil
}

// ProcessInput polls im and replaces the previous tick's signals.
// Nothing carries over: a signal is set only if its key or region is held
// right now.
func (c *PlatformerController) ProcessInput(im render.InputManager) Signals {
	pointers := make([]Pointer, 0, PointerSlots)
	for slot := 0; slot < PointerSlots; slot++ {
		if !im.IsPointerActive(slot) {
			continue
		}
		sx, sy := im.PointerPosition(slot)
		x, y := c.camera.Unproject(float64(sx), float64(sy))
		pointers = append(pointers, Pointer{Active: true, X: x, Y: y})
	}

	keys := KeyState{
		Left:  im.IsKeyPressed(render.KeyLeft),
		Right: im.IsKeyPressed(render.KeyRight),
		Up:    im.IsKeyPressed(render.KeyUp),
	}

	c.signals = Evaluate(pointers, keys, c.layout)
	return c.signals
}

// Reset clears the signals captured during the last tick.
func (c *PlatformerController) Reset() {
	c.signals = Signals{}
}

// Signals returns the signals from the last ProcessInput.
func (c *PlatformerController) Signals() Signals { return c.signals }

func (c *PlatformerController) IsLeftPressed() bool { return c.signals.Left }
func (c *PlatformerController) IsRightPressed() bool { return c.signals.Right }
func (c *PlatformerController) IsUpPressed() bool { return c.signals.Up }
func (c *PlatformerController) IsActionPressed() bool { return c.signals.Action }

// Layout returns the current button regions.
func (c *PlatformerController) Layout() Layout {
	return c.layout
}

// Resize lays the buttons out again for a new camera-space size.
func (c *PlatformerController) Resize(width, height float64) {
	c.width = width
	c.height = height
	c.layout = NewLayout(width, height, c.buttonWidth)
}

// SetHintsVisible shows or hides the button hints drawn by Render.
func (c *PlatformerController) SetHintsVisible(visible bool) {
	c.hideHints = !visible
}

// HintsVisible reports whether Render draws anything.
func (c *PlatformerController) HintsVisible() bool {
	return !c.hideHints
}

// Render draws the three button hints onto dst, each centered in its region
// just above the bottom of the screen. The icons are much smaller than the
// regions; they only tell the player where to press.
func (c *PlatformerController) Render(dst render.Image, r render.Renderer) {
	if c.hideHints || c.disposed {
		return
	}

	c.drawIcon(dst, r, c.leftIcon, c.layout.Left)
	c.drawIcon(dst, r, c.rightIcon, c.layout.Right)
	c.drawIcon(dst, r, c.upIcon, c.layout.Up)
}

// IconPosition is where Render puts the top-left corner of icon in region,
// in camera units.
func (c *PlatformerController) IconPosition(icon render.Image, region Region) (x, y float64) {
	w, h := icon.Size()
	x = region.X + (region.Width-float64(w))/2
	y = c.height - c.groundOffset - float64(h)
	return x, y
}

func (c *PlatformerController) drawIcon(dst render.Image, r render.Renderer, icon render.Image, region Region) {
	x, y := c.IconPosition(icon, region)
	sx, sy := c.camera.Project(x, y)
	scale := c.camera.Scale()

	geoM := r.NewGeoM()
	geoM.Scale(scale, scale)
	geoM.Translate(sx, sy)
	dst.DrawImage(icon, &render.DrawImageOptions{GeoM: geoM})
}

// Dispose releases the icon images. Later calls do nothing.
func (c *PlatformerController) Dispose() {
	if c.disposed {
		return
	}
	c.leftIcon.Dispose()
	c.rightIcon.Dispose()
	c.upIcon.Dispose()
	c.disposed = true
	c.logger.Debug("controller disposed")
}
