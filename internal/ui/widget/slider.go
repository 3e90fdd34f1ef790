package widget

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// track draws a slider track at r with the thumb at t in [0,1] and applies
// pointer drag capture. It returns the new position and whether the pointer
// moved it this frame. steps > 1 snaps to that many evenly spaced positions.
func (c *Context) track(id string, r Rect, t float32, steps int, valueText string) (float32, bool) {
	driven := false
	if c.state.ActiveID == id && c.ptr.Down {
		driven = true
	} else if c.clicked(r) {
		// Begin drag
		c.state.ActiveID = id
		driven = true
	}

	if driven {
		v := (c.ptr.X - r.X) / r.W
		t = snap(clamp01(v), steps)
	}

	c.rect(r, TrackColor, 0.8)
	thumbW := min(float32(ThumbWidth), r.W/4)
	c.rect(Rect{X: r.X + (r.W-thumbW)*t, Y: r.Y, W: thumbW, H: r.H}, ThumbColor, 0.9)
	tw := c.textWidth(valueText)
	c.text(valueText, r.X+(r.W-tw)/2, r.Y+(r.H-c.line)/2, TextColor)

	return t, driven
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func snap(v float32, steps int) float32 {
	if steps <= 1 {
		return v
	}
	denom := float32(steps - 1)
	return float32(int(v*denom+0.5)) / denom
}

func (c *Context) sliderLabel(label string, r Rect) {
	x := r.X + r.W + ItemSpacing
	c.text(label, x, r.Y+(r.H-c.line)/2, TextColor)
	c.place("", Rect{X: x, Y: r.Y, W: c.textWidth(label), H: r.H})
}

// SliderFloat edits *v in [lo, hi]. format renders the value, e.g. "%.2f".
func (c *Context) SliderFloat(label string, v *float32, lo, hi float32, format string) bool {
	r := c.next(label, SliderWidth, c.line+4)
	c.sliderLabel(label, r)

	t := float32(0)
	if hi > lo {
		t = clamp01((*v - lo) / (hi - lo))
	}
	t, driven := c.track(c.id(label), r, t, 0, fmt.Sprintf(format, *v))
	if !driven {
		return false
	}
	nv := lo + t*(hi-lo)
	if nv == *v {
		return false
	}
	*v = nv
	return true
}

// SliderInt edits *v in [lo, hi], snapping to whole numbers.
func (c *Context) SliderInt(label string, v *int, lo, hi int, format string) bool {
	r := c.next(label, SliderWidth, c.line+4)
	c.sliderLabel(label, r)

	t := float32(0)
	if hi > lo {
		t = clamp01(float32(*v-lo) / float32(hi-lo))
	}
	t, driven := c.track(c.id(label), r, t, hi-lo+1, fmt.Sprintf(format, *v))
	if !driven {
		return false
	}
	nv := lo + int(math.Round(float64(t)*float64(hi-lo)))
	if nv == *v {
		return false
	}
	*v = nv
	return true
}

// SliderFloat3 edits the three components of *v side by side, each in [lo, hi].
func (c *Context) SliderFloat3(label string, v *mgl32.Vec3, lo, hi float32, format string) bool {
	partW := float32(SliderWidth-2*ItemSpacing) / 3
	h := c.line + 4
	row := c.next(label, SliderWidth, h)
	c.sliderLabel(label, row)

	changed := false
	prev := Rect{X: row.X - ItemSpacing, Y: row.Y}
	for i := 0; i < 3; i++ {
		part := fmt.Sprintf("%s[%d]", label, i)
		r := c.nextInRow(part, prev, partW, h)
		prev = r

		t := float32(0)
		if hi > lo {
			t = clamp01((v[i] - lo) / (hi - lo))
		}
		t, driven := c.track(c.id(part), r, t, 0, fmt.Sprintf(format, v[i]))
		if !driven {
			continue
		}
		if nv := lo + t*(hi-lo); nv != v[i] {
			v[i] = nv
			changed = true
		}
	}
	return changed
}
