package camera

import (
	"cubetest/internal/input"
	"cubetest/internal/mathutil"

	"github.com/go-gl/mathgl/mgl32"
)

// Zoom targets and easing rates per frame.
const (
	FarLimit  = -100.0
	NearLimit = 4.0

	ZoomOutRate = 0.01
	ZoomInRate  = 0.05
	RestoreRate = 0.05
)

// KeyState is the subset of the input manager the controller reads.
type KeyState interface {
	IsActive(action input.Action) bool
}

// Controller samples held keys once per frame.
type Controller struct {
	camera *Camera

	// velocity is the damped pitch/yaw accumulator in degrees.
	velocity mgl32.Vec2
}

// NewController creates a controller driving cam.
func NewController(cam *Camera) *Controller {
	return &Controller{camera: cam}
}

// Rotation returns this frame's cube rotation (pitch, yaw) in degrees.
func (c *Controller) Rotation() mgl32.Vec2 {
	return c.velocity
}

// Update eases the zoom, steps the rotation velocity and reports whether
// the quit key is held.
func (c *Controller) Update(keys KeyState) (quit bool) {
	quit = keys.IsActive(input.ActionQuit)

	cam := c.camera
	switch {
	case keys.IsActive(input.ActionZoomOut):
		cam.Zoom = mathutil.Lerp(cam.Zoom, FarLimit, ZoomOutRate)
	case keys.IsActive(input.ActionZoomIn):
		cam.Zoom = mathutil.Lerp(cam.Zoom, NearLimit, ZoomInRate)
	default:
		cam.Zoom = mathutil.Lerp(cam.Zoom, 0, RestoreRate)
	}

	speed := cam.Settings.RotationSpeed
	if keys.IsActive(input.ActionPitchUp) {
		c.velocity[0] += speed
	}
	if keys.IsActive(input.ActionPitchDown) {
		c.velocity[0] -= speed
	}
	if keys.IsActive(input.ActionYawLeft) {
		c.velocity[1] += speed
	}
	if keys.IsActive(input.ActionYawRight) {
		c.velocity[1] -= speed
	}
	c.velocity = c.velocity.Mul(cam.Settings.Smoothing)

	return quit
}
