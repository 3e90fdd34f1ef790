package ui

import (
	"path/filepath"

	"cubetest/internal/graphics"
	renderer "cubetest/internal/graphics/renderer"
	"cubetest/internal/profiling"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader file names under <assets>/ui
const (
	UIVertShader = "ui.vert"
	UIFragShader = "ui.frag"
)

type itemKind int

const (
	itemRect itemKind = iota
	itemText
)

type item struct {
	kind       itemKind
	x, y, w, h float32
	color      mgl32.Vec3
	alpha      float32
	text       string
	scale      float32
}

// UI queues screen-space rectangles and text during the frame and draws them
// in submission order on Flush.
type UI struct {
	shaderDir string
	profiler  *profiling.Profiler

	shader *graphics.Shader
	font   *graphics.FontRenderer
	vao    uint32
	vbo    uint32

	width  int
	height int
	queue  []item
}

// NewUI creates a new UI renderable
func NewUI(shaderDir string, profiler *profiling.Profiler) *UI {
	return &UI{shaderDir: filepath.Join(shaderDir, "ui"), profiler: profiler, width: 1, height: 1}
}

// Init compiles the rect shader, bakes the font and sets up the quad buffer
func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.NewShader(filepath.Join(u.shaderDir, UIVertShader), filepath.Join(u.shaderDir, UIFragShader))
	if err != nil {
		return err
	}

	atlas, err := graphics.BuildFontAtlas(16)
	if err != nil {
		u.shader.Delete()
		return err
	}
	u.font, err = graphics.NewFontRenderer(atlas, u.shaderDir, u.width, u.height)
	if err != nil {
		gl.DeleteTextures(1, &atlas.Texture)
		u.shader.Delete()
		return err
	}

	// Setup VAO and VBO
	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render does nothing; the panel is composited after the scene through Flush
func (u *UI) Render(ctx renderer.RenderContext) {}

// SetViewport updates the pixel size used for NDC conversion and text projection
func (u *UI) SetViewport(width, height int) {
	u.width, u.height = width, height
	if u.font != nil {
		u.font.SetViewport(width, height)
	}
}

// DrawFilledRect queues a screen-space rectangle (pixels, top-left origin)
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	u.queue = append(u.queue, item{kind: itemRect, x: x, y: y, w: w, h: h, color: color, alpha: alpha})
}

// DrawText queues text with its top-left corner at (x, y)
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	u.queue = append(u.queue, item{kind: itemText, x: x, y: y, text: text, scale: scale, color: color})
}

// MeasureText returns the pixel width and line height of text
func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	return u.font.Measure(text, scale)
}

// Flush draws and clears the queue
func (u *UI) Flush() {
	defer u.profiler.Track("ui.Flush")()

	gl.Disable(gl.DEPTH_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	for _, it := range u.queue {
		switch it.kind {
		case itemRect:
			u.drawRect(it)
		case itemText:
			u.font.Render(it.text, it.x, it.y, it.scale, it.color)
		}
	}
	u.queue = u.queue[:0]
	gl.Enable(gl.DEPTH_TEST)
}

func (u *UI) drawRect(it item) {
	// Convert to NDC [-1,1]
	fw, fh := float32(u.width), float32(u.height)
	x0 := (it.x/fw)*2 - 1
	y0 := 1 - (it.y/fh)*2
	x1 := ((it.x+it.w)/fw)*2 - 1
	y1 := 1 - ((it.y+it.h)/fh)*2
	verts := []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	u.shader.SetVector4("uColor", it.color.Vec4(it.alpha))

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
		gl.DeleteBuffers(1, &u.vbo)
		u.vao, u.vbo = 0, 0
	}
	if u.font != nil {
		u.font.Dispose()
		u.font = nil
	}
	if u.shader != nil {
		u.shader.Delete()
		u.shader = nil
	}
	u.queue = nil
}
