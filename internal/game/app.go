package game

import (
	"log"
	"sync/atomic"
	"time"

	"cubetest/internal/camera"
	"cubetest/internal/config"
	"cubetest/internal/graphics/renderables/boxes"
	"cubetest/internal/graphics/renderables/ui"
	"cubetest/internal/graphics/renderer"
	standardInput "cubetest/internal/input"
	"cubetest/internal/profiling"
	"cubetest/internal/scene"
	"cubetest/internal/ui/panel"
	"cubetest/internal/ui/widget"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// App owns the window and everything drawn into it.
type App struct {
	window       *glfw.Window
	settings     *config.Settings
	inputManager *standardInput.InputManager
	profiler     *profiling.Profiler

	camera     *camera.Camera
	controller *camera.Controller
	renderer   *renderer.Renderer
	boxes      *boxes.Boxes
	ui         *ui.UI
	widgets    *widget.State
	display    WindowSystem

	spin       scene.State
	governor   *Governor
	frameTimer profiling.FrameTimer

	frames atomic.Int64
	closed bool
}

// NewApp builds the renderer on the window's current context and applies the
// initial resolution. settings is owned by the app from here on.
func NewApp(window *glfw.Window, settings *config.Settings) (*App, error) {
	profiler := profiling.New()

	im := standardInput.NewInputManager()
	im.Attach(window)

	cam := camera.New(&settings.Camera)
	boxesRenderer := boxes.NewBoxes(settings.Assets, profiler)
	uiRenderer := ui.NewUI(settings.Assets.ShaderDir, profiler)

	width, height := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(cam, width, height, boxesRenderer, uiRenderer)
	if err != nil {
		return nil, err
	}

	a := &App{
		window:       window,
		settings:     settings,
		inputManager: im,
		profiler:     profiler,
		camera:       cam,
		controller:   camera.NewController(cam),
		renderer:     r,
		boxes:        boxesRenderer,
		ui:           uiRenderer,
		widgets:      widget.NewState(widget.Padding, widget.Padding),
		display:      newGLFWDisplay(window, r.UpdateViewport),
		governor:     NewGovernor(),
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		OnFramebufferResize(&a.settings.Window, width, height, a.renderer.UpdateViewport)
	})
	ApplyResolution(a.display, &a.settings.Window)

	return a, nil
}

// Frames returns the number of frames produced so far. Safe from any goroutine.
func (a *App) Frames() int64 {
	return a.frames.Load()
}

// Run drives the frame loop until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		now := glfw.GetTime()
		if !a.governor.ShouldRender(now, a.settings.Window) {
			Pace(a.governor.Remaining(now, a.settings.Window))
			continue
		}
		a.tick(now)
		a.frameTimer.Tick(glfw.GetTime())
	}
}

func (a *App) tick(now float64) {
	a.profiler.ResetFrame()
	startTick := time.Now() // Measure pure processing time

	if a.controller.Update(a.inputManager) {
		a.window.SetShouldClose(true)
	}

	a.renderer.Render(renderer.RenderContext{
		Scene:    a.settings.Scene,
		Rotation: a.controller.Rotation(),
		Spin:     &a.spin,
		Time:     now,
	})

	a.updatePanel()
	a.ui.Flush()

	// Check if frame took too long; the swap blocks on vsync and is left out
	processingDuration := time.Since(startTick)
	if processingDuration > slowFrame {
		log.Printf("Slow frame: %v (%d box draws). Top tasks: %s",
			processingDuration, a.boxes.DrawCalls(), a.profiler.TopN(5))
	}

	a.window.SwapBuffers()
	a.frames.Add(1)

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	glfw.PollEvents()
}

// updatePanel lays out the settings panel and applies what the user changed.
func (a *App) updatePanel() {
	defer a.profiler.Track("panel.Build")()

	ctx := widget.NewContext(a.ui, a.widgets, a.pointer())
	in := panel.Tunables{
		Window:    a.settings.Window,
		Scene:     a.settings.Scene,
		Camera:    a.settings.Camera,
		SpinAngle: a.spin.SpinAngle,
	}
	out, action := panel.Build(ctx, in, panel.Stats{
		FPS:            a.frameTimer.FPS,
		MillisPerFrame: a.frameTimer.MillisPerFrame,
	})
	ctx.DrawPointer()

	a.settings.Window = out.Window
	a.settings.Scene = out.Scene
	a.settings.Camera = out.Camera
	a.spin.SpinAngle = out.SpinAngle

	if action.Has(panel.ActionExit) {
		a.window.SetShouldClose(true)
	}
	if action.Has(panel.ActionSwapInterval) {
		a.display.SwapInterval(a.settings.Window.SwapInterval())
	}
	if action.Has(panel.ActionResolution) {
		ApplyResolution(a.display, &a.settings.Window)
	}
}

// pointer samples the cursor in framebuffer pixels.
func (a *App) pointer() widget.Pointer {
	x, y := a.window.GetCursorPos()
	winW, winH := a.window.GetSize()
	fbW, fbH := a.window.GetFramebufferSize()
	if winW > 0 && winH > 0 {
		x *= float64(fbW) / float64(winW)
		y *= float64(fbH) / float64(winH)
	}
	return widget.Pointer{
		X:       float32(x),
		Y:       float32(y),
		Down:    a.inputManager.IsActive(standardInput.ActionMouseLeft),
		Pressed: a.inputManager.JustPressed(standardInput.ActionMouseLeft),
	}
}

// Close releases GPU resources. It must run on the thread owning the context
// and is safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.renderer.Dispose()
}
