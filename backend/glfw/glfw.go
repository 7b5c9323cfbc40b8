//go:build cgo

// Package glfw adapts GLFW windows to the forms input and clipboard
// contracts. The host still owns layout and drawing; it supplies a hit
// test so pointer events can be attributed to field and button entities.
package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/forms"
)

// HitTest maps a cursor position in window coordinates to the entity under
// it, or forms.EntityNone for empty space.
type HitTest func(x, y float64) forms.Entity

// InputAdapter translates GLFW input callbacks into a forms.InputState.
type InputAdapter struct {
	window  *glfw.Window
	input   *forms.InputState
	hitTest HitTest

	pointerDown bool
	pointerOn   forms.Entity
}

// NewInputAdapter creates an adapter and installs its callbacks on the
// window.
func NewInputAdapter(window *glfw.Window, hitTest HitTest) *InputAdapter {
	a := &InputAdapter{
		window:  window,
		input:   forms.NewInputState(),
		hitTest: hitTest,
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)

	return a
}

// Update refreshes the input state for a new frame. Call it after
// glfw.PollEvents and pass the result to World.Update.
func (a *InputAdapter) Update() *forms.InputState {
	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	if a.hitTest != nil {
		x, y := a.window.GetCursorPos()
		under := a.hitTest(x, y)
		if under != a.pointerOn && a.pointerOn != forms.EntityNone {
			a.input.SetInteraction(a.pointerOn, forms.InteractionNone)
		}
		a.pointerOn = under
		if under != forms.EntityNone {
			state := forms.InteractionHovered
			if a.pointerDown {
				state = forms.InteractionPressed
			}
			a.input.SetInteraction(under, state)
		}
	}

	return a.input
}

// Input returns the adapter's input state.
func (a *InputAdapter) Input() *forms.InputState {
	return a.input
}

// Reset clears per-frame input. Call it once the frame's events have been
// consumed.
func (a *InputAdapter) Reset() {
	a.input.Reset()
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := translateKey(key)
	if k == forms.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		a.input.RepeatKey(k)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *InputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	switch action {
	case glfw.Press:
		a.pointerDown = true
		a.input.SetPointerPressed()
	case glfw.Release:
		a.pointerDown = false
	}
}

// translateKey maps GLFW keys to forms keys. Space is deliberately absent:
// the char callback already delivers ' ', and forwarding the key as well
// would insert every space twice.
func translateKey(key glfw.Key) forms.Key {
	switch key {
	case glfw.KeyTab:
		return forms.KeyTab
	case glfw.KeyLeft:
		return forms.KeyLeft
	case glfw.KeyRight:
		return forms.KeyRight
	case glfw.KeyDelete:
		return forms.KeyDelete
	case glfw.KeyBackspace:
		return forms.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return forms.KeyEnter
	case glfw.KeyEscape:
		return forms.KeyEscape
	case glfw.KeyInsert:
		return forms.KeyInsert
	case glfw.KeyC:
		return forms.KeyC
	case glfw.KeyV:
		return forms.KeyV
	default:
		return forms.KeyNone
	}
}
