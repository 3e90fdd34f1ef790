// Package panel builds the settings window from the current tunables and
// returns the edited copy plus the actions the user requested.
package panel

import (
	"fmt"

	"cubetest/internal/config"
	"cubetest/internal/ui/widget"
)

// Title is the window title of the settings panel.
const Title = "OpenGL"

// Tab labels in display order.
var Tabs = []string{"Window", "Scene Settings", "Camera Settings"}

// Tunables is everything the panel may edit.
type Tunables struct {
	Window    config.Window
	Scene     config.Scene
	Camera    config.Camera
	SpinAngle float32
}

// Stats are the read-only values shown in the header.
type Stats struct {
	FPS            float64
	MillisPerFrame float64
}

// Build lays out the panel on ctx. The input t is not modified.
func Build(ctx *widget.Context, t Tunables, s Stats) (Tunables, Action) {
	var act Action

	ctx.Begin(Title)
	if ctx.Button("Exit") {
		act |= ActionExit
	}
	ctx.Text(fmt.Sprintf("FPS: %d fps", int(s.FPS)))
	ctx.Text(fmt.Sprintf("Frame Time: %.3fms", s.MillisPerFrame))
	ctx.Separator()

	switch ctx.TabBar("Tab Bar", Tabs...) {
	case 0:
		act |= windowTab(ctx, &t.Window)
	case 1:
		sceneTab(ctx, &t)
	case 2:
		cameraTab(ctx, &t.Camera)
	}
	ctx.End()

	return t, act
}

func windowTab(ctx *widget.Context, w *config.Window) Action {
	var act Action

	ctx.Text(fmt.Sprintf("Resolution: %dx%d", w.Width, w.Height))
	ctx.Separator()

	if ctx.TreeNode("Framerate") {
		if ctx.Checkbox("Vsync", &w.VsyncEnabled) {
			act |= ActionSwapInterval
		}
		if w.VsyncEnabled {
			if ctx.TreeNode("Vsync Limit") {
				mode := int(w.Vsync)
				for _, m := range config.VsyncModes {
					if ctx.RadioButton(m.String(), &mode, int(m)) {
						act |= ActionSwapInterval
					}
				}
				w.Vsync = config.VsyncMode(mode)
				ctx.TreePop()
			}
		} else {
			ctx.Checkbox("Unlimited", &w.Unlimited)
			if !w.Unlimited {
				ctx.SliderInt("Max Framerate", &w.MaxFramerate, config.MinFramerateCap, config.MaxFramerateCap, "%d fps")
			}
		}
		ctx.TreePop()
	}

	if ctx.TreeNode("Resolution") {
		if ctx.Checkbox("Fullscreen", &w.Fullscreen) {
			act |= ActionResolution
		}
		ctx.TreePop()
	}
	return act
}

func sceneTab(ctx *widget.Context, t *Tunables) {
	sc := &t.Scene
	if ctx.SliderFloat("Box Spin Speed", &sc.SpinSpeed, config.MinSpinSpeed, config.MaxSpinSpeed, "%.2f") {
		t.SpinAngle = 0
	}

	format := "%d boxes"
	if sc.BoxCount == 1 {
		format = "%d box"
	}
	ctx.SliderInt("Box Count", &sc.BoxCount, config.MinBoxCount, config.MaxBoxCount, format)

	ctx.Checkbox("Enable Outer Wireframe Boxes", &sc.OuterWireframe)
	if sc.OuterWireframe {
		ctx.SliderFloat("Outer Wireframe Thickness", &sc.OuterThickness, config.MinLineThickness, config.MaxLineThickness, "%.1f")
		ctx.SliderFloat("Outer Wireframe Scale", &sc.OuterScale, config.MinOuterScale, config.MaxOuterScale, "%.2f")
	}

	ctx.Checkbox("Use Inner Wireframe Boxes", &sc.InnerWireframe)
	if sc.InnerWireframe {
		ctx.SliderFloat("Inner Wireframe Thickness", &sc.InnerThickness, config.MinLineThickness, config.MaxLineThickness, "%.1f")
	}

	ctx.Checkbox("Use Rave Shader", &sc.RaveShader)
}

func cameraTab(ctx *widget.Context, c *config.Camera) {
	ctx.SliderFloat("Camera Rotation Amount", &c.RotationSpeed, config.MinRotationSpeed, config.MaxRotationSpeed, "%.1f")
	ctx.SliderFloat("Camera Clip Near", &c.Near, config.MinClipNear, config.MaxClipNear, "%.2f")
	ctx.SliderFloat("Camera Clip Far", &c.Far, config.MinClipFar, config.MaxClipFar, "%.0f")
	ctx.SliderFloat3("Camera Position", &c.Position, config.MinCameraPosition, config.MaxCameraPosition, "%.3f")
}
