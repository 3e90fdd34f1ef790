package widget

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeCanvas struct {
	rects []Rect
	texts []string
}

func (f *fakeCanvas) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	f.rects = append(f.rects, Rect{x, y, w, h})
}

func (f *fakeCanvas) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	f.texts = append(f.texts, text)
}

func (f *fakeCanvas) MeasureText(text string, scale float32) (float32, float32) {
	return float32(len(text)) * 7 * scale, 13 * scale
}

// frame runs build inside one window with the given pointer.
func frame(st *State, ptr Pointer, build func(c *Context)) *fakeCanvas {
	fc := &fakeCanvas{}
	c := NewContext(fc, st, ptr)
	c.Begin("Test")
	build(c)
	c.End()
	return fc
}

// clickOn lays out once with the pointer away, then presses at the item's center.
func clickOn(t *testing.T, st *State, label string, build func(c *Context)) {
	t.Helper()
	frame(st, Pointer{X: -100, Y: -100}, build)
	r, ok := st.ItemRect(label)
	if !ok {
		t.Fatalf("item %q was not laid out", label)
	}
	x, y := r.Center()
	frame(st, Pointer{X: x, Y: y, Down: true, Pressed: true}, build)
}

func TestButtonClick(t *testing.T) {
	st := NewState(10, 10)
	clicks := 0
	build := func(c *Context) {
		if c.Button("Exit") {
			clicks++
		}
	}
	clickOn(t, st, "Exit", build)
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}

	// held without a new press edge is not a click
	r, _ := st.ItemRect("Exit")
	x, y := r.Center()
	frame(st, Pointer{X: x, Y: y, Down: true}, build)
	if clicks != 1 {
		t.Errorf("held pointer clicked again: %d", clicks)
	}
}

func TestCheckboxToggles(t *testing.T) {
	st := NewState(0, 0)
	v := false
	changes := 0
	build := func(c *Context) {
		if c.Checkbox("Vsync", &v) {
			changes++
		}
	}
	clickOn(t, st, "Vsync", build)
	if !v || changes != 1 {
		t.Fatalf("after click v=%v changes=%d, want true/1", v, changes)
	}
	clickOn(t, st, "Vsync", build)
	if v || changes != 2 {
		t.Errorf("after second click v=%v changes=%d, want false/2", v, changes)
	}
}

func TestRadioButtonSelects(t *testing.T) {
	st := NewState(0, 0)
	mode := 1
	build := func(c *Context) {
		c.RadioButton("Full", &mode, 1)
		c.RadioButton("Half", &mode, 2)
		c.RadioButton("Quarter", &mode, 4)
	}
	clickOn(t, st, "Quarter", build)
	if mode != 4 {
		t.Errorf("mode = %d, want 4", mode)
	}
	clickOn(t, st, "Half", build)
	if mode != 2 {
		t.Errorf("mode = %d, want 2", mode)
	}
}

func TestSliderIntDragCapture(t *testing.T) {
	st := NewState(0, 0)
	v := 1
	build := func(c *Context) {
		c.SliderInt("Box Count", &v, 1, 30, "%d")
		c.SliderInt("Other", new(int), 0, 10, "%d")
	}
	frame(st, Pointer{X: -100, Y: -100}, build)
	r, _ := st.ItemRect("Box Count")

	// press at the far right end
	frame(st, Pointer{X: r.X + r.W, Y: r.Y + 1, Down: true, Pressed: true}, build)
	if v != 30 {
		t.Fatalf("v = %d after pressing the right end, want 30", v)
	}
	if st.ActiveID != "Box Count" {
		t.Fatalf("ActiveID = %q, want Box Count", st.ActiveID)
	}

	// drag far outside the track, still captured and clamped
	frame(st, Pointer{X: r.X - 500, Y: r.Y + 300, Down: true}, build)
	if v != 1 {
		t.Errorf("v = %d after dragging left past the track, want 1", v)
	}

	// release ends the capture
	frame(st, Pointer{X: r.X + r.W, Y: r.Y + 1}, build)
	if st.ActiveID != "" {
		t.Errorf("ActiveID = %q after release, want empty", st.ActiveID)
	}
	if v != 1 {
		t.Errorf("v changed without capture: %d", v)
	}
}

func TestSliderIntSnapsToSteps(t *testing.T) {
	st := NewState(0, 0)
	v := 0
	build := func(c *Context) { c.SliderInt("N", &v, 0, 4, "%d") }
	frame(st, Pointer{X: -100, Y: -100}, build)
	r, _ := st.ItemRect("N")
	// 40% along lands on step 2 of 0..4 (rounding 1.6)
	frame(st, Pointer{X: r.X + 0.4*r.W, Y: r.Y + 1, Down: true, Pressed: true}, build)
	if v != 2 {
		t.Errorf("v = %d, want 2", v)
	}
}

func TestSliderFloatReportsOnlyChanges(t *testing.T) {
	st := NewState(0, 0)
	v := float32(0)
	changes := 0
	build := func(c *Context) {
		if c.SliderFloat("Speed", &v, 0, 1000, "%.2f") {
			changes++
		}
	}
	frame(st, Pointer{X: -100, Y: -100}, build)
	r, _ := st.ItemRect("Speed")
	x, y := r.Center()
	frame(st, Pointer{X: x, Y: y, Down: true, Pressed: true}, build)
	if changes != 1 || v != 500 {
		t.Fatalf("changes=%d v=%v, want 1 and 500", changes, v)
	}
	// pointer held still: no change reported
	frame(st, Pointer{X: x, Y: y, Down: true}, build)
	if changes != 1 {
		t.Errorf("stationary drag reported a change")
	}
}

func TestSliderFloat3(t *testing.T) {
	st := NewState(0, 0)
	v := mgl32.Vec3{0, 0, 0}
	build := func(c *Context) { c.SliderFloat3("Camera Position", &v, -50, 50, "%.1f") }
	frame(st, Pointer{X: -100, Y: -100}, build)
	r, ok := st.ItemRect("Camera Position[2]")
	if !ok {
		t.Fatalf("z component not laid out")
	}
	frame(st, Pointer{X: r.X + r.W, Y: r.Y + 1, Down: true, Pressed: true}, build)
	if v != (mgl32.Vec3{0, 0, 50}) {
		t.Errorf("v = %v, want [0 0 50]", v)
	}
}

func TestTreeNodeOpensAndScopesIDs(t *testing.T) {
	st := NewState(0, 0)
	var inner bool
	build := func(c *Context) {
		if c.TreeNode("Framerate") {
			c.Checkbox("Unlimited", &inner)
			c.TreePop()
		}
	}
	frame(st, Pointer{X: -100, Y: -100}, build)
	if _, ok := st.ItemRect("Unlimited"); ok {
		t.Fatalf("child laid out while node closed")
	}
	clickOn(t, st, "Framerate", build)
	frame(st, Pointer{X: -100, Y: -100}, build)
	child, ok := st.ItemRect("Unlimited")
	if !ok {
		t.Fatalf("child not laid out after opening")
	}
	node, _ := st.ItemRect("Framerate")
	if child.X != node.X+Indent {
		t.Errorf("child x = %v, want indented to %v", child.X, node.X+Indent)
	}
}

func TestTabBar(t *testing.T) {
	st := NewState(0, 0)
	var active int
	build := func(c *Context) { active = c.TabBar("tabs", "Window", "Scene", "Camera") }
	frame(st, Pointer{X: -100, Y: -100}, build)
	if active != 0 {
		t.Fatalf("default tab = %d, want 0", active)
	}
	clickOn(t, st, "Camera", build)
	if active != 2 {
		t.Errorf("active = %d after clicking Camera, want 2", active)
	}
	frame(st, Pointer{X: -100, Y: -100}, build)
	if active != 2 {
		t.Errorf("tab selection not remembered: %d", active)
	}
}

func TestWindowAutoSizes(t *testing.T) {
	st := NewState(5, 5)
	fc := frame(st, Pointer{}, func(c *Context) {
		c.Text("short")
		c.Text("a much longer line of text")
	})
	if len(fc.rects) < 2 {
		t.Fatalf("window background not drawn")
	}
	bg := fc.rects[0]
	wantW := float32(Padding + len("a much longer line of text")*7 + Padding)
	if bg.W != wantW {
		t.Errorf("window width = %v, want %v", bg.W, wantW)
	}
	wantH := float32(TitleHeight + Padding + 13 + ItemSpacing + 13 + Padding)
	if bg.H != wantH {
		t.Errorf("window height = %v, want %v", bg.H, wantH)
	}
}

func TestDrawOrder(t *testing.T) {
	st := NewState(0, 0)
	fc := frame(st, Pointer{}, func(c *Context) {
		c.Text("one")
		c.Text("two")
	})
	want := []string{"Test", "one", "two"}
	if len(fc.texts) != len(want) {
		t.Fatalf("texts = %v, want %v", fc.texts, want)
	}
	for i := range want {
		if fc.texts[i] != want[i] {
			t.Errorf("text %d = %q, want %q", i, fc.texts[i], want[i])
		}
	}
}
