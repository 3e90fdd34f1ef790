package game

import (
	"fmt"

	"cubetest/internal/config"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowTitle is the title of the demo window.
const WindowTitle = "OpenGL"

// SetupWindow creates the window with an OpenGL 3.3 core context, makes it
// current and loads the GL bindings. glfw.Init must have been called.
func SetupWindow(w config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(w.Width, w.Height, WindowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init OpenGL: %w", err)
	}

	glfw.SwapInterval(1)
	// The settings panel draws its own pointer
	window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)

	return window, nil
}
