// Package camera turns held keys into the smoothed zoom and cube rotation
// and builds the view and projection matrices from them.
package camera

import (
	"cubetest/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FOV is the fixed vertical field of view in degrees.
	FOV = 65.0
	// BaseDistance is the fixed pull-back applied on top of the zoom.
	BaseDistance = 6.0
	// StartZoom places the camera far out so the scene eases in on the first frames.
	StartZoom = -500.0
)

// Camera is the eye: user settings plus the eased zoom distance.
type Camera struct {
	Settings *config.Camera
	Zoom     float32
}

// New creates a camera reading its parameters from settings.
func New(settings *config.Camera) *Camera {
	return &Camera{
		Settings: settings,
		Zoom:     StartZoom,
	}
}

// View translates the world by the camera position and the zoom pulled back by BaseDistance.
func (c *Camera) View() mgl32.Mat4 {
	p := c.Settings.Position
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()+c.Zoom-BaseDistance)
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FOV), aspect, c.Settings.Near, c.Settings.Far)
}
