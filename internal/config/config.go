package config

import (
	"cubetest/internal/mathutil"

	"github.com/go-gl/mathgl/mgl32"
)

// Slider and flag ranges shared by the settings panel and the CLI.
const (
	MinBoxCount = 1
	MaxBoxCount = 30

	MinSpinSpeed = 0
	MaxSpinSpeed = 1000

	MinLineThickness = 0.1
	MaxLineThickness = 10

	MinOuterScale = 1.0
	MaxOuterScale = 1.5

	MinRotationSpeed = 0.1
	MaxRotationSpeed = 15

	MinClipNear = 0.01
	MaxClipNear = 10
	MinClipFar  = 50
	MaxClipFar  = 100000

	MinCameraPosition = -50
	MaxCameraPosition = 50
)

// Scene holds the tunables of the box cascade.
type Scene struct {
	BoxCount       int
	SpinSpeed      float32
	OuterWireframe bool
	OuterThickness float32
	OuterScale     float32
	InnerWireframe bool
	InnerThickness float32
	RaveShader     bool
}

// Camera holds the user-facing camera parameters.
type Camera struct {
	Position      mgl32.Vec3
	RotationSpeed float32
	Smoothing     float32
	Near          float32
	Far           float32
}

// Assets points at the shader sources and optional texture images.
type Assets struct {
	ShaderDir string
	// Textures are image paths for units 0 and 1; empty means a generated pattern.
	Textures [2]string
}

// Settings is every tunable of the demo. The app owns one instance and hands
// it to the components that need it.
type Settings struct {
	Window Window
	Scene  Scene
	Camera Camera
	Assets Assets
}

// Defaults returns the startup settings.
func Defaults() Settings {
	return Settings{
		Window: Window{
			Width:        1280,
			Height:       720,
			VsyncEnabled: true,
			Vsync:        VsyncFull,
			MaxFramerate: 120,
		},
		Scene: Scene{
			BoxCount:       30,
			OuterWireframe: true,
			OuterThickness: 2.0,
			OuterScale:     1.05,
			InnerThickness: 2.0,
		},
		Camera: Camera{
			RotationSpeed: 4.5,
			Smoothing:     0.95,
			Near:          0.1,
			Far:           100000,
		},
		Assets: Assets{
			ShaderDir: "assets/shaders",
		},
	}
}

// Clamp pulls every field into its valid range.
func (s *Settings) Clamp() {
	s.Window.Clamp()
	s.Scene.Clamp()
	s.Camera.Clamp()
}

// Clamp pulls the scene tunables into range.
func (s *Scene) Clamp() {
	s.BoxCount = mathutil.ClampInt(s.BoxCount, MinBoxCount, MaxBoxCount)
	s.SpinSpeed = mathutil.Clamp(s.SpinSpeed, MinSpinSpeed, MaxSpinSpeed)
	s.OuterThickness = mathutil.Clamp(s.OuterThickness, MinLineThickness, MaxLineThickness)
	s.OuterScale = mathutil.Clamp(s.OuterScale, MinOuterScale, MaxOuterScale)
	s.InnerThickness = mathutil.Clamp(s.InnerThickness, MinLineThickness, MaxLineThickness)
}

// Clamp pulls the camera parameters into range.
func (c *Camera) Clamp() {
	for i := range c.Position {
		c.Position[i] = mathutil.Clamp(c.Position[i], MinCameraPosition, MaxCameraPosition)
	}
	c.RotationSpeed = mathutil.Clamp(c.RotationSpeed, MinRotationSpeed, MaxRotationSpeed)
	c.Smoothing = mathutil.Clamp(c.Smoothing, 0, 1)
	c.Near = mathutil.Clamp(c.Near, MinClipNear, MaxClipNear)
	c.Far = mathutil.Clamp(c.Far, MinClipFar, MaxClipFar)
}
