package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"path/filepath"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range baked into the atlas.
const (
	firstGlyph = rune(32)
	lastGlyph  = rune(126)
	atlasWidth = 512
	glyphGap   = 1
)

// Glyph locates one baked character in the atlas, all values in pixels.
type Glyph struct {
	X, Y, W, H float32
	// BearingX/BearingY offset the bitmap from the pen position on the baseline.
	BearingX, BearingY float32
	Advance            float32
}

// FontAtlas is a baked face: the texture (0 until uploaded) plus glyph metrics.
type FontAtlas struct {
	Texture    uint32
	Width      int
	Height     int
	Ascent     float32
	LineHeight float32
	Glyphs     map[rune]Glyph
}

// shelfPacker places rectangles left to right, opening a new row when one overflows.
type shelfPacker struct {
	width      int
	x, y, rowH int
}

func (p *shelfPacker) place(w, h int) (int, int) {
	if p.x+w > p.width {
		p.x = 0
		p.y += p.rowH + glyphGap
		p.rowH = 0
	}
	x, y := p.x, p.y
	p.x += w + glyphGap
	p.rowH = max(p.rowH, h)
	return x, y
}

func (p *shelfPacker) height() int {
	return max(p.y+p.rowH, 1)
}

// BakeFontAtlas rasterizes the printable ASCII set of an OpenType font into a
// single-channel image. It does not touch GL.
func BakeFontAtlas(fontBytes []byte, fontPixels int) (*image.Alpha, *FontAtlas, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	m := face.Metrics()
	atlas := &FontAtlas{
		Width:      atlasWidth,
		Ascent:     float32(m.Ascent.Ceil()),
		LineHeight: float32(m.Height.Ceil()),
		Glyphs:     make(map[rune]Glyph),
	}

	type bitmap struct {
		dst   image.Rectangle
		mask  image.Image
		maskp image.Point
	}
	var bitmaps []bitmap
	packer := shelfPacker{width: atlasWidth}

	for r := firstGlyph; r <= lastGlyph; r++ {
		bounds, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		g := Glyph{
			BearingX: float32(bounds.Min.X),
			BearingY: float32(-bounds.Min.Y),
			Advance:  float32(advance.Round()),
		}
		if w, h := bounds.Dx(), bounds.Dy(); mask != nil && w > 0 && h > 0 {
			x, y := packer.place(w, h)
			g.X, g.Y, g.W, g.H = float32(x), float32(y), float32(w), float32(h)
			bitmaps = append(bitmaps, bitmap{dst: image.Rect(x, y, x+w, y+h), mask: mask, maskp: maskp})
		}
		atlas.Glyphs[r] = g
	}

	atlas.Height = packer.height()
	img := image.NewAlpha(image.Rect(0, 0, atlas.Width, atlas.Height))
	for _, b := range bitmaps {
		draw.Draw(img, b.dst, b.mask, b.maskp, draw.Src)
	}
	return img, atlas, nil
}

// BuildFontAtlas bakes the embedded Go Regular face and uploads it as a GL_RED texture.
func BuildFontAtlas(fontPixels int) (*FontAtlas, error) {
	img, atlas, err := BakeFontAtlas(goregular.TTF, fontPixels)
	if err != nil {
		return nil, err
	}

	gl.GenTextures(1, &atlas.Texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, atlas.Texture)
	// rows of a single-channel image are not 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(atlas.Width), int32(atlas.Height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	for _, p := range [][2]int32{
		{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_MIN_FILTER, gl.LINEAR},
		{gl.TEXTURE_MAG_FILTER, gl.LINEAR},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, uint32(p[0]), p[1])
	}
	return atlas, nil
}

// FontRenderer draws strings from a baked atlas in pixel space.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer loads font.vert/font.frag from shaderDir and takes ownership of atlas.
func NewFontRenderer(atlas *FontAtlas, shaderDir string, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("font atlas has no glyphs")
	}
	shader, err := NewShader(filepath.Join(shaderDir, "font.vert"), filepath.Join(shaderDir, "font.frag"))
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.SetViewport(width, height)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return fr, nil
}

// SetViewport updates the pixel-space orthographic projection (top-left origin).
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// glyph returns the metrics for r; unknown runes advance like a space and draw nothing.
func (fr *FontRenderer) glyph(r rune) Glyph {
	if g, ok := fr.atlas.Glyphs[r]; ok {
		return g
	}
	return Glyph{Advance: fr.atlas.Glyphs[' '].Advance}
}

// Render draws text with its top-left corner at (x, y) in pixels. Depth
// testing is left disabled.
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	verts := fr.buildVertices(text, x, y+fr.atlas.Ascent*scale, scale)
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.Texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// orphan, then fill
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

// Measure returns the pixel width and line height of text at the given scale.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	var width float32
	for _, r := range text {
		width += fr.glyph(r).Advance * scale
	}
	return width, fr.atlas.LineHeight * scale
}

// Dispose releases the atlas texture, buffers and program.
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
		gl.DeleteBuffers(1, &fr.vbo)
		fr.vao, fr.vbo = 0, 0
	}
	if fr.atlas.Texture != 0 {
		gl.DeleteTextures(1, &fr.atlas.Texture)
		fr.atlas.Texture = 0
	}
	if fr.shader != nil {
		fr.shader.Delete()
		fr.shader = nil
	}
}

// quadCorners are the two triangles of a glyph quad as (right, bottom) flags.
var quadCorners = [6][2]float32{{0, 1}, {0, 0}, {1, 0}, {0, 1}, {1, 0}, {1, 1}}

// buildVertices lays out glyph quads as (x, y, u, v) with the pen on baseline y.
func (fr *FontRenderer) buildVertices(text string, x, baseline, scale float32) []float32 {
	aw, ah := float32(fr.atlas.Width), float32(fr.atlas.Height)
	verts := make([]float32, 0, len(text)*len(quadCorners)*4)
	for _, r := range text {
		g := fr.glyph(r)
		if g.W > 0 && g.H > 0 {
			left := x + g.BearingX*scale
			top := baseline - g.BearingY*scale
			for _, c := range quadCorners {
				verts = append(verts,
					left+c[0]*g.W*scale, top+c[1]*g.H*scale,
					(g.X+c[0]*g.W)/aw, (g.Y+c[1]*g.H)/ah,
				)
			}
		}
		x += g.Advance * scale
	}
	return verts
}
