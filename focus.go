package forms

import (
	"log/slog"
	"os"
)

// formsLogLevel controls the log level for forms debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var formsLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the forms
// systems. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		formsLogLevel.Set(slog.LevelDebug)
	} else {
		formsLogLevel.Set(slog.LevelInfo)
	}
}

// focusLogger is the logger for focus arbitration debugging.
var focusLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: formsLogLevel}))

// resolveFocus transfers the focus token. Exactly two triggers change focus:
// a pointer press, and a tab-key release while a form has focus context.
// The token is held by at most one field; assignment is a single atomic
// replace within one pass, so no other phase can observe zero or two
// focused fields.
func (w *World) resolveFocus(input *InputState) {
	w.resolvePointerFocus(input)
	w.resolveTabFocus(input)
}

// resolvePointerFocus handles presses: a press on a field's hit region
// focuses that field; a press outside every field's hit region defocuses
// all fields.
func (w *World) resolvePointerFocus(input *InputState) {
	if !input.PointerPressed() {
		return
	}

	pressed := EntityNone
	held := false
	for _, e := range w.fieldOrder {
		f := w.fields[e]
		now := input.InteractionOf(e)
		was := f.interaction
		f.interaction = now
		if now != InteractionPressed {
			continue
		}
		if was == InteractionPressed {
			held = true
		} else if pressed == EntityNone {
			pressed = e
		}
	}

	if pressed != EntityNone {
		focusLogger.Debug("pointer focus", "field", pressed, "name", w.fields[pressed].name)
		w.setFocus(pressed)
		return
	}
	if held {
		// A press still held from an earlier pass is not a new press.
		return
	}

	focusLogger.Debug("pointer press outside all fields, clearing focus")
	w.ClearFocus()
}

// resolveTabFocus advances focus by declared order on a tab-key release.
// Only fields carrying an explicit order participate. The next field is the
// one with the smallest order strictly greater than the current order
// (default 0 when nothing is focused); with none greater, focus wraps to
// the globally smallest order.
func (w *World) resolveTabFocus(input *InputState) {
	if !input.KeyReleased(KeyTab) {
		return
	}

	form := w.focusContextForm()
	if form == nil {
		return
	}

	current := 0
	if f := w.field(w.focused); f != nil && f.hasOrder {
		current = f.order
	}

	next := EntityNone
	nextOrder := 0
	first := EntityNone
	firstOrder := 0

	for _, child := range form.children {
		f := w.fields[child]
		if f == nil || !f.hasOrder {
			continue
		}
		if first == EntityNone || f.order < firstOrder {
			first = child
			firstOrder = f.order
		}
		if f.order > current && (next == EntityNone || f.order < nextOrder) {
			next = child
			nextOrder = f.order
		}
	}

	target := next
	if target == EntityNone {
		target = first
	}
	if target == EntityNone {
		return
	}

	focusLogger.Debug("tab focus", "from", w.focused, "to", target)
	w.setFocus(target)
}

// focusContextForm returns the form providing keyboard focus context:
// the form owning the focused field, or the first spawned form when no
// field holds focus.
func (w *World) focusContextForm() *Form {
	if f := w.field(w.focused); f != nil {
		if form := w.forms[f.form]; form != nil {
			return form
		}
	}
	if len(w.formOrder) == 0 {
		return nil
	}
	return w.forms[w.formOrder[0]]
}

// setFocus atomically moves the focus token to e. The losing field goes
// inactive and the gaining field goes active with its cursor forced visible.
func (w *World) setFocus(e Entity) {
	if w.focused == e {
		return
	}
	if old := w.field(w.focused); old != nil {
		old.active = false
	}
	w.focused = e
	if f := w.field(e); f != nil {
		f.active = true
		f.timer.forceReset = true
	}
}

// ClearFocus removes the focus token from every field.
func (w *World) ClearFocus() {
	if old := w.field(w.focused); old != nil {
		old.active = false
	}
	w.focused = EntityNone
}

// Focused returns the field currently holding the focus token,
// or EntityNone.
func (w *World) Focused() Entity {
	return w.focused
}

// SetFocus programmatically moves the focus token to the given field.
func (w *World) SetFocus(e Entity) error {
	if w.field(e) == nil {
		return &InvariantError{Op: "set focus", Key: entityKey(e)}
	}
	w.setFocus(e)
	return nil
}
