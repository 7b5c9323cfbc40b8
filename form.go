package forms

// Form is the aggregate of fields and action buttons with a combined
// validity state. The error list is ordered by validation-event arrival.
type Form struct {
	entity   Entity
	name     string
	children []Entity
	buttons  []Entity

	errors   []FieldError
	validity Validity

	// OnApply is the reserved emission hook for apply-role buttons.
	// Apply presses are routed here and never auto-emit a form event.
	OnApply func(form Entity)
}

// Entity returns the form's handle.
func (f *Form) Entity() Entity { return f.entity }

// Name returns the logical form name, or "" for anonymous forms.
func (f *Form) Name() string { return f.name }

// Children returns the form's field handles in declaration order.
func (f *Form) Children() []Entity {
	out := make([]Entity, len(f.children))
	copy(out, f.children)
	return out
}

// Buttons returns the form's button handles in declaration order.
func (f *Form) Buttons() []Entity {
	out := make([]Entity, len(f.buttons))
	copy(out, f.buttons)
	return out
}

// Validity returns the form's aggregate status. The invalid marker is
// present exactly when the error list is non-empty; valid is an assertion
// made at setup or when the last error clears, never a derived absence.
func (f *Form) Validity() Validity { return f.validity }

// Errors returns a copy of the aggregate error list in arrival order.
func (f *Form) Errors() []FieldError {
	out := make([]FieldError, len(f.errors))
	copy(out, f.errors)
	return out
}

// FormDirty reports whether any child field's value has ever changed.
func (w *World) FormDirty(form Entity) bool {
	fm := w.forms[form]
	if fm == nil {
		return false
	}
	for _, child := range fm.children {
		if f := w.fields[child]; f != nil && f.dirty {
			return true
		}
	}
	return false
}

// MarkFormValid asserts the form valid. It is a no-op while the form still
// carries errors: the invalid marker gates the valid marker, never both.
func (w *World) MarkFormValid(form Entity) error {
	fm := w.forms[form]
	if fm == nil {
		return &InvariantError{Op: "mark form valid", Key: entityKey(form)}
	}
	if len(fm.errors) > 0 {
		return nil
	}
	fm.validity = ValidityValid
	return nil
}

// formKeyboard reacts to the focused form's shortcuts: Enter released with
// no invalid marker present submits, Escape released cancels
// unconditionally.
func (w *World) formKeyboard(input *InputState) {
	form := w.focusContextForm()
	if form == nil {
		return
	}

	if input.KeyReleased(KeyEnter) && form.validity != ValidityInvalid {
		w.emit(FormEvent{Kind: FormSubmit, Form: form.entity})
	}
	if input.KeyReleased(KeyEscape) {
		w.emit(FormEvent{Kind: FormCancel, Form: form.entity})
	}
}

// drainButtonPresses handles queued button presses to completion, in
// arrival order, within the pass they were read. Each press is scoped to
// the button's owning form; presses referencing a despawned form are
// dropped.
func (w *World) drainButtonPresses() {
	if len(w.buttonQueue) == 0 {
		return
	}
	queue := w.buttonQueue
	w.buttonQueue = w.buttonQueue[:0]

	for _, ev := range queue {
		form := w.forms[ev.Form]
		if form == nil {
			continue
		}

		switch ev.Role.Kind {
		case RoleSubmit:
			// Field data is only re-derived and emitted while the
			// aggregate is currently valid.
			if form.validity == ValidityValid {
				w.emit(FormEvent{Kind: FormSubmit, Form: form.entity})
			}
		case RoleCancel:
			w.emit(FormEvent{Kind: FormCancel, Form: form.entity})
		case RoleApply:
			if form.OnApply != nil {
				form.OnApply(form.entity)
			}
		case RoleCustom:
			// Best effort: custom events fire even while invalid.
			w.emit(FormEvent{Kind: FormCustom, Form: form.entity, Name: ev.Role.Name})
		}
	}
}
