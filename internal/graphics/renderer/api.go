package renderer

import (
	"cubetest/internal/camera"
	"cubetest/internal/config"
	"cubetest/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera   *camera.Camera
	Scene    config.Scene
	Rotation mgl32.Vec2   // cube pitch/yaw in degrees
	Spin     *scene.State // advanced by the box chain
	Time     float64      // seconds since start
	View     mgl32.Mat4
	Proj     mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
