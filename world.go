package forms

import "strconv"

// World owns every form, field, and button, and runs the pass scheduler.
// All mutation happens on a single goroutine inside Update; only clipboard
// reads run in the background, surfacing through a polled channel.
//
// Child-to-parent references are plain entity fields; parent-to-children
// are ordered entity slices. Despawning a form cascades to its children.
type World struct {
	clipboard ClipboardProvider

	next Entity

	fields     map[Entity]*Field
	fieldOrder []Entity

	forms     map[Entity]*Form
	formOrder []Entity

	buttons     map[Entity]*Button
	buttonOrder []Entity

	// focused is the process-wide focus token slot: at most one field,
	// mutated only by the focus arbiter.
	focused Entity

	pendingPaste []chan string
	pasteInbox   []string

	events      []Event
	buttonQueue []ButtonPressEvent
}

// WorldOption configures a World at construction.
type WorldOption func(*World)

// WithClipboard installs a clipboard provider at construction.
func WithClipboard(cp ClipboardProvider) WorldOption {
	return func(w *World) {
		w.clipboard = cp
	}
}

// NewWorld creates an empty World.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		fields:  make(map[Entity]*Field),
		forms:   make(map[Entity]*Form),
		buttons: make(map[Entity]*Button),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Update runs one pass. Phase order is the correctness contract, not entity
// enumeration order:
//
//	button intake → focus resolution → touched marking → clipboard →
//	text edit (keys, then paste) → value/cursor reconciliation →
//	validation → form keyboard + button handling → cursor blink →
//	placeholder and segment derivation.
//
// Events produced during the pass are returned in arrival order.
func (w *World) Update(input *InputState, dt float32) []Event {
	w.observeButtons(input)
	w.resolveFocus(input)
	w.markTouched()
	w.clipboardKeyboard(input)
	w.pollClipboard()
	w.editFocused(input)
	w.applyPaste()
	w.reconcileFields()
	w.validateFields()
	w.formKeyboard(input)
	w.drainButtonPresses()
	w.tickCursors(dt)
	w.updatePlaceholders()
	w.deriveSegments()

	events := w.events
	w.events = nil
	return events
}

// emit queues an event for the host. Queue order is arrival order.
func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

func (w *World) allocEntity() Entity {
	w.next++
	return w.next
}

// SpawnForm creates an empty form. Its validity starts unknown: valid is an
// assertion the caller (usually the builder) makes once setup is complete.
func (w *World) SpawnForm(name string) Entity {
	e := w.allocEntity()
	w.forms[e] = &Form{entity: e, name: name}
	w.formOrder = append(w.formOrder, e)
	return e
}

// SpawnField creates a field under a form. With WithActive the new field
// immediately takes the focus token; declaring more than one active field
// is the builder's responsibility to reject.
func (w *World) SpawnField(form Entity, name string, opts ...Option) (Entity, error) {
	parent := w.forms[form]
	if parent == nil {
		return EntityNone, &InvariantError{Op: "spawn field", Key: entityKey(form)}
	}

	o := applyOptions(opts)
	e := w.allocEntity()
	f := &Field{
		entity:      e,
		form:        form,
		name:        name,
		value:       GetOpt(o, OptValue),
		Label:       GetOpt(o, OptLabel),
		Placeholder: GetOpt(o, OptPlaceholder),
		Optional:    GetOpt(o, OptOptional),
		Settings: TextInputSettings{
			MaskCharacter:  GetOpt(o, OptMask),
			RetainOnSubmit: GetOpt(o, OptRetain),
		},
		// Fields are validated once on creation, then edge-triggered.
		needsValidation: true,
	}
	if f.Label == "" {
		f.Label = f.Placeholder
	}
	if HasOpt(o, OptOrder) {
		f.order = GetOpt(o, OptOrder)
		f.hasOrder = true
	}
	f.cursor = f.runeLen()

	w.fields[e] = f
	w.fieldOrder = append(w.fieldOrder, e)
	parent.children = append(parent.children, e)

	if GetOpt(o, OptActive) {
		w.setFocus(e)
	}

	f.showPlaceholder = f.value == "" && !f.active
	f.deriveSegments()
	return e, nil
}

// SpawnButton creates an action button referencing its owning form.
func (w *World) SpawnButton(form Entity, text string, role ButtonRole) (Entity, error) {
	return w.SpawnActionButton(form, text, role, -1)
}

// SpawnActionButton creates a button carrying a numeric action id, as
// produced for typed action enums.
func (w *World) SpawnActionButton(form Entity, text string, role ButtonRole, actionID int) (Entity, error) {
	parent := w.forms[form]
	if parent == nil {
		return EntityNone, &InvariantError{Op: "spawn button", Key: entityKey(form)}
	}

	e := w.allocEntity()
	w.buttons[e] = &Button{
		entity:   e,
		form:     form,
		Text:     text,
		Role:     role,
		ActionID: actionID,
	}
	w.buttonOrder = append(w.buttonOrder, e)
	parent.buttons = append(parent.buttons, e)
	return e, nil
}

// DespawnForm removes a form and cascades to its fields and buttons.
// The focus token is cleared if a despawned field held it.
func (w *World) DespawnForm(form Entity) error {
	fm := w.forms[form]
	if fm == nil {
		return &InvariantError{Op: "despawn form", Key: entityKey(form)}
	}

	for _, child := range fm.children {
		if w.focused == child {
			w.ClearFocus()
		}
		delete(w.fields, child)
		w.fieldOrder = removeEntity(w.fieldOrder, child)
	}
	for _, btn := range fm.buttons {
		delete(w.buttons, btn)
		w.buttonOrder = removeEntity(w.buttonOrder, btn)
	}
	delete(w.forms, form)
	w.formOrder = removeEntity(w.formOrder, form)
	return nil
}

// Field returns the field for a handle, or nil.
func (w *World) Field(e Entity) *Field {
	return w.fields[e]
}

// Form returns the form for a handle, or nil.
func (w *World) Form(e Entity) *Form {
	return w.forms[e]
}

// Button returns the button for a handle, or nil.
func (w *World) Button(e Entity) *Button {
	return w.buttons[e]
}

// FieldValue reads a field's value through its handle. Generated wiring
// relies on this to fail loudly, not silently, when the mapping is stale.
func (w *World) FieldValue(e Entity) (string, error) {
	f := w.fields[e]
	if f == nil {
		return "", &InvariantError{Op: "field value", Key: entityKey(e)}
	}
	return f.value, nil
}

// field is the nil-safe internal lookup, tolerating EntityNone.
func (w *World) field(e Entity) *Field {
	if e == EntityNone {
		return nil
	}
	return w.fields[e]
}

func removeEntity(s []Entity, e Entity) []Entity {
	for i, v := range s {
		if v == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func entityKey(e Entity) string {
	return strconv.FormatUint(uint64(e), 10)
}
