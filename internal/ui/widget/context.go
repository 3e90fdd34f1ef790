package widget

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout in pixels
const (
	Padding     = 8
	ItemSpacing = 4
	Indent      = 14
	SliderWidth = 200
	ThumbWidth  = 20
	TextScale   = 1.0
	TitleHeight = 22
)

var (
	WindowColor = mgl32.Vec3{0.1, 0.1, 0.1}
	TitleColor  = mgl32.Vec3{0.16, 0.29, 0.48}
	TextColor   = mgl32.Vec3{1, 1, 1}
	DimColor    = mgl32.Vec3{0.6, 0.6, 0.6}
	ButtonColor = mgl32.Vec3{0.3, 0.3, 0.3}
	HoverColor  = mgl32.Vec3{0.4, 0.4, 0.4}
	OnColor     = mgl32.Vec3{0.2, 0.5, 0.2}
	OffColor    = mgl32.Vec3{0.5, 0.2, 0.2}
	TrackColor  = mgl32.Vec3{0.3, 0.3, 0.3}
	ThumbColor  = mgl32.Vec3{0.6, 0.6, 0.6}
)

// Canvas is where widgets draw. Coordinates are pixels, top-left origin.
type Canvas interface {
	DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32)
	DrawText(text string, x, y, scale float32, color mgl32.Vec3)
	MeasureText(text string, scale float32) (w, h float32)
}

// Pointer is the mouse as sampled for this frame. Pressed is the down edge.
type Pointer struct {
	X, Y    float32
	Down    bool
	Pressed bool
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// State is the widget memory that outlives a frame.
type State struct {
	// ActiveID is the slider that captured the pointer, "" when none.
	ActiveID string
	// X, Y place the window's top-left corner.
	X, Y float32

	open  map[string]bool
	tabs  map[string]int
	rects map[string]Rect
}

// NewState creates widget memory with the window at (x, y).
func NewState(x, y float32) *State {
	return &State{
		X:     x,
		Y:     y,
		open:  make(map[string]bool),
		tabs:  make(map[string]int),
		rects: make(map[string]Rect),
	}
}

// ItemRect returns where the widget with the given label was laid out last frame.
func (s *State) ItemRect(label string) (Rect, bool) {
	r, ok := s.rects[label]
	return r, ok
}

// SetOpen forces a tree node open or closed. path is the slash-joined label path.
func (s *State) SetOpen(path string, open bool) {
	s.open[path] = open
}

// SetTab selects a tab of the named tab bar.
func (s *State) SetTab(bar string, index int) {
	s.tabs[bar] = index
}

type cmdKind int

const (
	cmdRect cmdKind = iota
	cmdText
	cmdSeparator
)

type command struct {
	kind  cmdKind
	rect  Rect
	color mgl32.Vec3
	alpha float32
	text  string
}

// Context composes one window per Begin/End pair. Build a new one every frame.
type Context struct {
	canvas Canvas
	state  *State
	ptr    Pointer

	title   string
	ids     []string
	indent  float32
	cursorY float32
	right   float32
	line    float32
	cmds    []command
}

// NewContext starts a frame of widgets drawing to canvas.
func NewContext(canvas Canvas, state *State, ptr Pointer) *Context {
	_, h := canvas.MeasureText("Ag", TextScale)
	return &Context{canvas: canvas, state: state, ptr: ptr, line: h}
}

// Begin opens an auto-sized window. Widgets stack vertically below the title.
func (c *Context) Begin(title string) {
	c.title = title
	c.ids = c.ids[:0]
	c.cmds = c.cmds[:0]
	c.indent = 0
	c.cursorY = c.state.Y + TitleHeight + Padding
	tw, _ := c.canvas.MeasureText(title, TextScale)
	c.right = c.state.X + Padding + tw
	c.releaseIfUp()
}

// End sizes the window around its content and emits everything to the canvas.
func (c *Context) End() {
	s := c.state
	w := c.right + Padding - s.X
	h := c.cursorY - ItemSpacing + Padding - s.Y

	c.canvas.DrawFilledRect(s.X, s.Y, w, h, WindowColor, 0.9)
	c.canvas.DrawFilledRect(s.X, s.Y, w, TitleHeight, TitleColor, 1)
	c.canvas.DrawText(c.title, s.X+Padding, s.Y+(TitleHeight-c.line)/2, TextScale, TextColor)

	for _, cmd := range c.cmds {
		switch cmd.kind {
		case cmdRect:
			c.canvas.DrawFilledRect(cmd.rect.X, cmd.rect.Y, cmd.rect.W, cmd.rect.H, cmd.color, cmd.alpha)
		case cmdText:
			c.canvas.DrawText(cmd.text, cmd.rect.X, cmd.rect.Y, TextScale, cmd.color)
		case cmdSeparator:
			c.canvas.DrawFilledRect(cmd.rect.X, cmd.rect.Y, s.X+w-Padding-cmd.rect.X, 1, cmd.color, cmd.alpha)
		}
	}
	c.cmds = c.cmds[:0]
}

// DrawPointer draws a small marker at the pointer; the OS cursor is hidden.
func (c *Context) DrawPointer() {
	c.canvas.DrawFilledRect(c.ptr.X-1, c.ptr.Y-1, 3, 3, TextColor, 1)
}

// id scopes label under the open tree nodes.
func (c *Context) id(label string) string {
	if len(c.ids) == 0 {
		return label
	}
	return strings.Join(c.ids, "/") + "/" + label
}

// next reserves a w x h item at the current layout position.
func (c *Context) next(label string, w, h float32) Rect {
	r := Rect{X: c.state.X + Padding + c.indent, Y: c.cursorY, W: w, H: h}
	c.place(label, r)
	c.cursorY += h + ItemSpacing
	return r
}

// nextInRow places an item right of prev on the same row.
func (c *Context) nextInRow(label string, prev Rect, w, h float32) Rect {
	r := Rect{X: prev.X + prev.W + ItemSpacing, Y: prev.Y, W: w, H: h}
	c.place(label, r)
	return r
}

func (c *Context) place(label string, r Rect) {
	if label != "" {
		c.state.rects[label] = r
	}
	if r.X+r.W > c.right {
		c.right = r.X + r.W
	}
}

func (c *Context) rect(r Rect, color mgl32.Vec3, alpha float32) {
	c.cmds = append(c.cmds, command{kind: cmdRect, rect: r, color: color, alpha: alpha})
}

func (c *Context) text(s string, x, y float32, color mgl32.Vec3) {
	c.cmds = append(c.cmds, command{kind: cmdText, rect: Rect{X: x, Y: y}, color: color, text: s})
}

func (c *Context) hovered(r Rect) bool {
	return r.Contains(c.ptr.X, c.ptr.Y)
}

func (c *Context) clicked(r Rect) bool {
	return c.ptr.Pressed && c.state.ActiveID == "" && c.hovered(r)
}

func (c *Context) releaseIfUp() {
	if !c.ptr.Down {
		c.state.ActiveID = ""
	}
}

func (c *Context) textWidth(s string) float32 {
	w, _ := c.canvas.MeasureText(s, TextScale)
	return w
}
