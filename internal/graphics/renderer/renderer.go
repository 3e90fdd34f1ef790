package renderer

import (
	"cubetest/internal/camera"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Camera

	width  int
	height int
}

// NewRenderer initializes every renderable in order. On failure the ones
// already initialized are disposed.
func NewRenderer(cam *camera.Camera, width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)

	renderer := &Renderer{
		renderables: rs,
		camera:      cam,
	}

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}
	renderer.UpdateViewport(width, height)

	return renderer, nil
}

// Render clears to black, fills in the view and projection and runs every renderable.
func (r *Renderer) Render(ctx RenderContext) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx.Camera = r.camera
	ctx.View = r.camera.View()
	ctx.Proj = r.camera.Projection(r.Aspect())

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// Aspect returns width/height of the current viewport.
func (r *Renderer) Aspect() float32 {
	if r.height <= 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// UpdateViewport resizes the GL viewport and forwards the size to every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
