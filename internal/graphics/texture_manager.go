package graphics

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// TextureSet owns the textures bound to the cube's sampler units, keyed by
// source so a path used for both units is uploaded once.
type TextureSet struct {
	cache map[string]uint32
	units []uint32
}

// NewTextureSet creates an empty set.
func NewTextureSet() *TextureSet {
	return &TextureSet{cache: make(map[string]uint32)}
}

// Add appends the next texture unit. A non-empty path is loaded from disk;
// otherwise fallback is uploaded under key.
func (ts *TextureSet) Add(path, key string, fallback func() *image.RGBA) error {
	name := "file:" + path
	if path == "" {
		name = "gen:" + key
	}
	if tex, ok := ts.cache[name]; ok {
		ts.units = append(ts.units, tex)
		return nil
	}

	var tex uint32
	if path != "" {
		var err error
		if tex, err = LoadTexture(path); err != nil {
			return err
		}
	} else {
		tex = NewTextureFromImage(fallback())
	}
	ts.cache[name] = tex
	ts.units = append(ts.units, tex)
	return nil
}

// Bind binds each texture to its unit, starting at TEXTURE0.
func (ts *TextureSet) Bind() {
	for i, tex := range ts.units {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// Delete releases every uploaded texture.
func (ts *TextureSet) Delete() {
	for name, tex := range ts.cache {
		gl.DeleteTextures(1, &tex)
		delete(ts.cache, name)
	}
	ts.units = nil
}
