package game

import (
	"cubetest/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSystem is the part of the windowing layer a resolution change drives.
type WindowSystem interface {
	// NativeMode returns the primary monitor's current video mode size.
	NativeMode() (width, height int)
	// Fullscreen binds the window to the primary monitor at the given size.
	Fullscreen(width, height int)
	// Windowed detaches the window from any monitor and places it.
	Windowed(x, y, width, height int)
	SwapInterval(interval int)
	Viewport(width, height int)
}

// WindowedRect is the windowed placement for a native mode: two thirds of the
// native size, offset by a quarter of that size from the origin.
func WindowedRect(nativeW, nativeH int) (x, y, w, h int) {
	w = int(float32(nativeW) / 1.5)
	h = int(float32(nativeH) / 1.5)
	return w / 4, h / 4, w, h
}

// ApplyResolution re-queries the native mode and moves the window into or out
// of fullscreen according to win.Fullscreen, then re-applies the swap interval
// and the viewport. win.Width and win.Height track the new size.
func ApplyResolution(sys WindowSystem, win *config.Window) {
	nw, nh := sys.NativeMode()
	if win.Fullscreen {
		win.Width, win.Height = nw, nh
		sys.Fullscreen(nw, nh)
	} else {
		x, y, w, h := WindowedRect(nw, nh)
		win.Width, win.Height = w, h
		sys.Windowed(x, y, w, h)
	}
	sys.SwapInterval(win.SwapInterval())
	sys.Viewport(win.Width, win.Height)
}

// OnFramebufferResize records an OS resize and updates the viewport. Non-positive
// sizes are ignored.
func OnFramebufferResize(win *config.Window, width, height int, viewport func(w, h int)) {
	if win.Resize(width, height) {
		viewport(width, height)
	}
}

// glfwDisplay drives the real window.
type glfwDisplay struct {
	window   *glfw.Window
	viewport func(w, h int)
}

func newGLFWDisplay(window *glfw.Window, viewport func(w, h int)) *glfwDisplay {
	return &glfwDisplay{window: window, viewport: viewport}
}

func (d *glfwDisplay) NativeMode() (int, int) {
	mode := glfw.GetPrimaryMonitor().GetVideoMode()
	return mode.Width, mode.Height
}

func (d *glfwDisplay) Fullscreen(width, height int) {
	d.window.SetMonitor(glfw.GetPrimaryMonitor(), 0, 0, width, height, glfw.DontCare)
}

func (d *glfwDisplay) Windowed(x, y, width, height int) {
	d.window.SetMonitor(nil, x, y, width, height, glfw.DontCare)
}

func (d *glfwDisplay) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (d *glfwDisplay) Viewport(width, height int) {
	d.viewport(width, height)
}
