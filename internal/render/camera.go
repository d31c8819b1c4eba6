package render

// Camera maps logical screen pixels to camera units and back.
// X and Y are the camera-space coordinates shown at the screen's top-left
// corner; Zoom is screen pixels per camera unit. Both spaces are y-down.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64
}

// NewCamera returns an identity camera: one camera unit per screen pixel.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// Unproject converts a logical screen position into camera space.
func (c *Camera) Unproject(sx, sy float64) (wx, wy float64) {
	z := c.zoom()
	return sx/z + c.X, sy/z + c.Y
}

// Project converts a camera-space position into logical screen pixels.
func (c *Camera) Project(wx, wy float64) (sx, sy float64) {
	z := c.zoom()
	return (wx - c.X) * z, (wy - c.Y) * z
}

// Scale is the number of screen pixels per camera unit.
func (c *Camera) Scale() float64 {
	return c.zoom()
}
