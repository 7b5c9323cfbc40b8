package forms

import "strings"

// Cursor glyphs follow the cursor-font convention: the bar renders as a thin
// full-height line, while the end-of-text glyph collapses to nothing so the
// trailing cursor adds no width.
const (
	// CursorGlyphBar is the cursor glyph drawn between characters.
	CursorGlyphBar = '|'
	// CursorGlyphEnd is the zero-width cursor glyph drawn at end-of-text.
	CursorGlyphEnd = '​'
)

// cursorBlinkInterval is the half-period of the cursor blink, in seconds.
const cursorBlinkInterval float32 = 0.5

// cursorTimer drives cursor blinking. Any edit or navigation sets forceReset
// so the cursor reappears immediately instead of waiting for the next toggle.
type cursorTimer struct {
	elapsed    float32
	visible    bool
	forceReset bool
}

// TextSegments is the display-ready split of a field's text around the
// cursor: characters before the cursor, the cursor glyph, and characters
// from the cursor onward. Masking has already been applied.
type TextSegments struct {
	Pre           string
	Cursor        string
	Post          string
	CursorVisible bool
}

// Field is a single-line text input unit within a form.
// All offsets are character (rune) counts, never byte offsets.
type Field struct {
	entity Entity
	form   Entity
	name   string
	id     uint64

	value  string
	cursor int

	// Settings configures masking and submit behaviour.
	Settings TextInputSettings
	// Label is the display label, defaulting to the placeholder text.
	Label string
	// Placeholder is shown while the field is empty and inactive.
	Placeholder string
	// Optional marks the field as allowed to stay empty.
	Optional bool

	order       int
	hasOrder    bool
	active      bool
	interaction Interaction

	validity Validity
	cause    FieldError
	touched  bool
	dirty    bool

	// Per-pass mutation tracking. Value and cursor mutations are tracked
	// independently so programmatic writes and user cursor repositioning
	// can coexist without one silently overriding the other.
	needsValidation bool
	valueWritten    bool
	cursorWritten   bool
	edited          bool

	timer           cursorTimer
	showPlaceholder bool
	segments        TextSegments
}

// Entity returns the field's handle.
func (f *Field) Entity() Entity { return f.entity }

// Form returns the handle of the owning form.
func (f *Field) Form() Entity { return f.form }

// Name returns the logical field name, or "" for anonymous fields.
func (f *Field) Name() string { return f.name }

// ID returns the stable field id derived from the form-qualified name,
// or 0 for anonymous fields.
func (f *Field) ID() uint64 { return f.id }

// Value returns the current unmasked text.
func (f *Field) Value() string { return f.value }

// Cursor returns the cursor offset in characters.
func (f *Field) Cursor() int { return f.cursor }

// Active reports whether this field is the routed-input field.
func (f *Field) Active() bool { return f.active }

// Touched reports whether the field has ever held focus.
func (f *Field) Touched() bool { return f.touched }

// Dirty reports whether the value has ever changed.
func (f *Field) Dirty() bool { return f.dirty }

// Validity returns the field's current validation status.
func (f *Field) Validity() Validity { return f.validity }

// Cause returns the validation error when the field is invalid.
func (f *Field) Cause() (FieldError, bool) {
	if f.validity != ValidityInvalid {
		return FieldError{}, false
	}
	return f.cause, true
}

// Order returns the declared tab order; ok is false when the field does not
// participate in tab navigation.
func (f *Field) Order() (order int, ok bool) {
	return f.order, f.hasOrder
}

// Segments returns the display-ready text split around the cursor.
func (f *Field) Segments() TextSegments { return f.segments }

// PlaceholderVisible reports whether the placeholder should be shown.
func (f *Field) PlaceholderVisible() bool { return f.showPlaceholder }

// SetValue programmatically replaces the field's text. Unless the cursor is
// also set in the same pass, it moves to end-of-text on the next update.
func (f *Field) SetValue(value string) {
	f.value = value
	f.valueWritten = true
}

// SetCursor programmatically moves the cursor. The position is clamped to
// the text length on the next update.
func (f *Field) SetCursor(pos int) {
	f.cursor = pos
	f.cursorWritten = true
}

// runeLen returns the value length in characters.
func (f *Field) runeLen() int {
	return len([]rune(f.value))
}

// markEdited flags an edit-engine mutation: the value and cursor are already
// consistent, validation must rerun, and the cursor blink restarts visible.
func (f *Field) markEdited() {
	f.edited = true
	f.dirty = true
	f.needsValidation = true
	f.timer.forceReset = true
}

// insertRune inserts a character at the cursor and advances it by one.
func (f *Field) insertRune(ch rune) {
	runes := []rune(f.value)
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > len(runes) {
		f.cursor = len(runes)
	}
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:f.cursor]...)
	out = append(out, ch)
	out = append(out, runes[f.cursor:]...)
	f.value = string(out)
	f.cursor++
	f.markEdited()
}

// deleteBefore removes the character immediately before the cursor.
func (f *Field) deleteBefore() {
	if f.cursor <= 0 {
		return
	}
	runes := []rune(f.value)
	if f.cursor > len(runes) {
		f.cursor = len(runes)
	}
	if f.cursor == 0 {
		return
	}
	f.value = string(runes[:f.cursor-1]) + string(runes[f.cursor:])
	f.cursor--
	f.markEdited()
}

// deleteAt removes the character at the cursor. The cursor itself is already
// up to date, so reconciliation must not reset it to end-of-text.
func (f *Field) deleteAt() {
	runes := []rune(f.value)
	if f.cursor < 0 || f.cursor >= len(runes) {
		return
	}
	f.value = string(runes[:f.cursor]) + string(runes[f.cursor+1:])
	f.markEdited()
}

// editFocused routes this pass's keyboard events to the focused field.
// The control modifier reserves the entire batch for clipboard shortcuts;
// the bypass is checked once per batch, not per key.
func (w *World) editFocused(input *InputState) {
	f := w.field(w.focused)
	if f == nil {
		return
	}
	if input.ModCtrl {
		return
	}

	for _, ev := range input.Events() {
		if ev.State == KeyStateReleased {
			continue
		}
		if ev.Rune != 0 {
			f.insertRune(ev.Rune)
			continue
		}
		switch ev.Key {
		case KeyLeft:
			if f.cursor > 0 {
				f.cursor--
			}
			f.timer.forceReset = true
		case KeyRight:
			if f.cursor < f.runeLen() {
				f.cursor++
			}
			f.timer.forceReset = true
		case KeyBackspace:
			f.deleteBefore()
		case KeyDelete:
			f.deleteAt()
		case KeySpace:
			f.insertRune(' ')
		case KeyEnter:
			w.submitField(f)
		}
	}
}

// submitField emits the field-level submit notification. Without
// retain-on-submit the field is cleared and the cursor reset; the emitted
// value is always the value at submit time.
func (w *World) submitField(f *Field) {
	value := f.value
	if !f.Settings.RetainOnSubmit {
		f.value = ""
		f.cursor = 0
		f.markEdited()
	}
	w.emit(TextInputSubmitEvent{Field: f.entity, Value: value})
}

// applyPaste inserts completed paste results into the focused field.
// Newlines are stripped before insertion; this is a single-line input.
func (w *World) applyPaste() {
	if len(w.pasteInbox) == 0 {
		return
	}
	texts := w.pasteInbox
	w.pasteInbox = w.pasteInbox[:0]

	f := w.field(w.focused)
	if f == nil {
		// No consumer: results are silently dropped.
		return
	}
	for _, text := range texts {
		clean := strings.NewReplacer("\r", "", "\n", "").Replace(text)
		for _, ch := range clean {
			f.insertRune(ch)
		}
	}
}

// reconcileFields applies the external-write rules after all edits:
// a value written from outside moves the cursor to end-of-text unless the
// cursor was independently written in the same pass, in which case the
// written position is clamped to the new length instead. The cursor is
// clamped after every mutation regardless of source.
func (w *World) reconcileFields() {
	for _, e := range w.fieldOrder {
		f := w.fields[e]
		n := f.runeLen()

		if f.valueWritten && !f.edited {
			if f.cursorWritten {
				// Keep the externally written position, clamped below.
			} else {
				f.cursor = n
			}
			f.dirty = true
			f.needsValidation = true
		}

		if f.cursor > n {
			f.cursor = n
		}
		if f.cursor < 0 {
			f.cursor = 0
		}

		f.valueWritten = false
		f.cursorWritten = false
		f.edited = false
	}
}

// tickCursors advances the blink timer for the active field. ForceReset
// makes the cursor visible immediately and restarts the interval.
func (w *World) tickCursors(dt float32) {
	for _, e := range w.fieldOrder {
		f := w.fields[e]
		if !f.active {
			f.timer.visible = false
			f.timer.elapsed = 0
			f.timer.forceReset = false
			continue
		}
		if f.timer.forceReset {
			f.timer.visible = true
			f.timer.elapsed = 0
			f.timer.forceReset = false
			continue
		}
		f.timer.elapsed += dt
		for f.timer.elapsed >= cursorBlinkInterval {
			f.timer.elapsed -= cursorBlinkInterval
			f.timer.visible = !f.timer.visible
		}
	}
}

// updatePlaceholders recomputes placeholder visibility.
func (w *World) updatePlaceholders() {
	for _, e := range w.fieldOrder {
		f := w.fields[e]
		f.showPlaceholder = f.value == "" && !f.active
	}
}

// deriveSegments recomputes the display segments for every field.
func (w *World) deriveSegments() {
	for _, e := range w.fieldOrder {
		w.fields[e].deriveSegments()
	}
}

// deriveSegments recomputes this field's display segments. Masking applies
// only here; the edit engine always sees the true value.
func (f *Field) deriveSegments() {
	runes := []rune(f.value)

	display := runes
	if f.Settings.MaskCharacter != 0 {
		display = make([]rune, len(runes))
		for i := range display {
			display[i] = f.Settings.MaskCharacter
		}
	}

	cur := f.cursor
	if cur > len(display) {
		cur = len(display)
	}
	if cur < 0 {
		cur = 0
	}

	glyph := CursorGlyphBar
	if cur == len(display) {
		glyph = CursorGlyphEnd
	}

	f.segments = TextSegments{
		Pre:           string(display[:cur]),
		Cursor:        string(glyph),
		Post:          string(display[cur:]),
		CursorVisible: f.active && f.timer.visible,
	}
}
