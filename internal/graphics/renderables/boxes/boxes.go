package boxes

import (
	"image"
	"image/color"
	"path/filepath"

	"cubetest/internal/config"
	"cubetest/internal/graphics"
	renderer "cubetest/internal/graphics/renderer"
	"cubetest/internal/profiling"
	"cubetest/internal/scene"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Shader file names under <assets>/cube
const (
	SimpleVertShader = "SimpleVertex.vert"
	RaveVertShader   = "RaveVertex.vert"
	FragShader       = "SimpleFragment.frag"
)

// Boxes draws the chained cube column
type Boxes struct {
	assets   config.Assets
	profiler *profiling.Profiler

	simple   *graphics.Shader
	rave     *graphics.Shader
	mesh     *graphics.CubeMesh
	textures *graphics.TextureSet

	drawCalls int
}

// NewBoxes creates a new boxes renderable
func NewBoxes(assets config.Assets, profiler *profiling.Profiler) *Boxes {
	return &Boxes{assets: assets, profiler: profiler}
}

// Init compiles both cube programs, uploads the mesh and the two textures
func (b *Boxes) Init() error {
	dir := filepath.Join(b.assets.ShaderDir, "cube")
	frag := filepath.Join(dir, FragShader)

	var err error
	b.simple, err = graphics.NewShader(filepath.Join(dir, SimpleVertShader), frag)
	if err != nil {
		return err
	}
	b.rave, err = graphics.NewShader(filepath.Join(dir, RaveVertShader), frag)
	if err != nil {
		b.simple.Delete()
		return err
	}

	b.mesh = graphics.NewCubeMesh()

	b.textures = graphics.NewTextureSet()
	fallbacks := []func() *image.RGBA{
		func() *image.RGBA {
			return graphics.CheckerImage(graphics.TextureSize, 32,
				color.RGBA{200, 200, 200, 255}, color.RGBA{60, 60, 60, 255})
		},
		func() *image.RGBA { return graphics.GradientImage(graphics.TextureSize) },
	}
	for i, path := range b.assets.Textures {
		if err := b.textures.Add(path, textureKey(i), fallbacks[i]); err != nil {
			b.Dispose()
			return err
		}
	}
	return nil
}

func textureKey(unit int) string {
	if unit == 0 {
		return "checker"
	}
	return "gradient"
}

// Render plans the box chain from the context and issues one draw per planned cube
func (b *Boxes) Render(ctx renderer.RenderContext) {
	defer b.profiler.Track("boxes.Render")()

	b.textures.Bind()

	shader := b.simple
	if ctx.Scene.RaveShader {
		shader = b.rave
	}
	shader.Use()

	model := scene.BaseModel(ctx.Rotation)
	shader.SetMatrix4("model", model)
	shader.SetMatrix4("view", ctx.View)
	shader.SetMatrix4("projection", ctx.Proj)
	shader.SetFloat("time", float32(ctx.Time))
	shader.SetInt("texture1", 0)
	shader.SetInt("texture2", 1)

	draws, spin := scene.ChainBoxes(model, ctx.Scene, ctx.Spin.SpinAngle, ctx.Time)
	ctx.Spin.SpinAngle = spin

	gl.Enable(gl.DEPTH_TEST)
	b.mesh.Bind()
	for _, d := range draws {
		b.draw(shader, d)
	}
	b.drawCalls = len(draws)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.LineWidth(1)
	gl.BindVertexArray(0)
}

func (b *Boxes) draw(shader *graphics.Shader, d scene.Draw) {
	if d.Lines {
		gl.LineWidth(d.LineWidth)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	shader.SetVector3("colorAdd", d.Color)
	shader.SetMatrix4("model", d.Model)
	b.mesh.Draw()
}

// DrawCalls returns how many cube draws the last frame issued
func (b *Boxes) DrawCalls() int {
	return b.drawCalls
}

// SetViewport is a no-op; the projection comes from the render context
func (b *Boxes) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (b *Boxes) Dispose() {
	if b.mesh != nil {
		b.mesh.Delete()
		b.mesh = nil
	}
	if b.textures != nil {
		b.textures.Delete()
		b.textures = nil
	}
	for _, s := range []*graphics.Shader{b.simple, b.rave} {
		if s != nil {
			s.Delete()
		}
	}
	b.simple, b.rave = nil, nil
}
