package systems

// CameraOrigin supplies the origin of the logical game screen.
// ScreenMetrics reads it on every geometry query, so moving the camera
// moves top/left without another Init call.
type CameraOrigin interface {
	Origin() (x, y float64)
}

// Camera is the view that the game screen is drawn through
type Camera struct {
	X, Y float64
}

// NewCamera creates a camera at the given offset
func NewCamera(x, y float64) *Camera {
	return &Camera{X: x, Y: y}
}

// Origin implements CameraOrigin
func (c *Camera) Origin() (x, y float64) {
	return c.X, c.Y
}

// SetOrigin moves the camera
func (c *Camera) SetOrigin(x, y float64) {
	c.X = x
	c.Y = y
}
