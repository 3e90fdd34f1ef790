// Package input maps GLFW keys and mouse buttons onto demo actions and keeps
// per-frame held state with press edges.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical control, independent of the physical key bound to it.
type Action int

const (
	ActionPitchUp Action = iota
	ActionPitchDown
	ActionYawLeft
	ActionYawRight
	ActionZoomOut
	ActionZoomIn
	ActionQuit
	ActionMouseLeft
	ActionCount
)

func (a Action) valid() bool {
	return a >= 0 && a < ActionCount
}

// InputManager holds bindings and action state. GLFW delivers events on the
// main thread inside PollEvents, so there is no locking.
type InputManager struct {
	keys    map[glfw.Key][]Action
	buttons map[glfw.MouseButton][]Action

	held    [ActionCount]bool
	pressed [ActionCount]bool
}

// NewInputManager returns a manager with the demo's bindings: W/S pitch, A/D yaw,
// Left Control and Left Shift zoom, Escape quits, left mouse drives the panel.
func NewInputManager() *InputManager {
	im := &InputManager{
		keys:    make(map[glfw.Key][]Action),
		buttons: make(map[glfw.MouseButton][]Action),
	}
	for key, action := range map[glfw.Key]Action{
		glfw.KeyW:           ActionPitchUp,
		glfw.KeyS:           ActionPitchDown,
		glfw.KeyA:           ActionYawLeft,
		glfw.KeyD:           ActionYawRight,
		glfw.KeyLeftControl: ActionZoomOut,
		glfw.KeyLeftShift:   ActionZoomIn,
		glfw.KeyEscape:      ActionQuit,
	} {
		im.BindKey(key, action)
	}
	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)
	return im
}

// BindKey adds action to key. A key may drive several actions.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action.valid() {
		im.keys[key] = append(im.keys[key], action)
	}
}

// BindMouseButton adds action to button.
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action.valid() {
		im.buttons[button] = append(im.buttons[button], action)
	}
}

// HandleKeyEvent applies a key event. Repeat counts as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.set(im.keys[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent applies a mouse button event.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.set(im.buttons[button], action == glfw.Press)
}

func (im *InputManager) set(actions []Action, down bool) {
	for _, a := range actions {
		if !a.valid() {
			continue
		}
		if down && !im.held[a] {
			im.pressed[a] = true
		}
		im.held[a] = down
	}
}

// Attach installs the key and mouse button callbacks on window.
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}

// PostUpdate clears the press edges. Call once per frame before polling events.
func (im *InputManager) PostUpdate() {
	im.pressed = [ActionCount]bool{}
}

// IsActive reports whether action is held.
func (im *InputManager) IsActive(action Action) bool {
	return action.valid() && im.held[action]
}

// JustPressed reports a press edge since the last PostUpdate.
func (im *InputManager) JustPressed(action Action) bool {
	return action.valid() && im.pressed[action]
}
