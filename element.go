package forms

// markTouched marks the focused field as touched. Touched is set once focus
// is gained and never cleared. This runs strictly after focus resolution so
// a freshly focused field is visible as both active and touched before
// validation reads it.
func (w *World) markTouched() {
	f := w.field(w.focused)
	if f == nil || f.touched {
		return
	}
	f.touched = true
}

// validateFields derives each changed field's status and reconciles the
// owning form. Transitions are edge-triggered: a field is only revalidated
// when its value changed, so the form's error list never accumulates
// duplicate entries for the same cause.
func (w *World) validateFields() {
	for _, e := range w.fieldOrder {
		f := w.fields[e]
		if !f.needsValidation {
			continue
		}
		f.needsValidation = false

		if f.value == "" && !f.Optional {
			w.applyFieldStatus(f, ValidityInvalid, FieldError{Field: f.entity, Kind: ErrorRequired})
		} else {
			w.applyFieldStatus(f, ValidityValid, FieldError{})
		}
	}
}

// MarkFieldInvalid marks a field invalid with an application-supplied cause,
// reconciling the owning form's error list. The mark holds until the next
// value change re-derives the field's status.
func (w *World) MarkFieldInvalid(e Entity, kind ErrorKind, message string) error {
	f := w.field(e)
	if f == nil {
		return &InvariantError{Op: "mark field invalid", Key: entityKey(e)}
	}
	w.applyFieldStatus(f, ValidityInvalid, FieldError{Field: e, Kind: kind, Message: message})
	return nil
}

// MarkFieldValid marks a field valid, removing its causes from the owning
// form's error list.
func (w *World) MarkFieldValid(e Entity) error {
	f := w.field(e)
	if f == nil {
		return &InvariantError{Op: "mark field valid", Key: entityKey(e)}
	}
	w.applyFieldStatus(f, ValidityValid, FieldError{})
	return nil
}

// applyFieldStatus applies a status transition to a field and keeps the
// parent form's aggregate in step. No-op when the status is unchanged.
func (w *World) applyFieldStatus(f *Field, v Validity, cause FieldError) {
	if f.validity == v && f.cause == cause {
		return
	}

	wasInvalid := f.validity == ValidityInvalid
	f.validity = v
	f.cause = cause

	form := w.forms[f.form]
	if form == nil {
		return
	}

	switch v {
	case ValidityInvalid:
		if wasInvalid {
			// Cause changed while already invalid: replace in place so the
			// error keeps its arrival position.
			for i := range form.errors {
				if form.errors[i].Field == f.entity {
					form.errors[i] = cause
					return
				}
			}
		}
		form.errors = append(form.errors, cause)
		form.validity = ValidityInvalid

	case ValidityValid:
		if !wasInvalid {
			return
		}
		// Remove every prior cause referencing this field's handle,
		// regardless of cause variant.
		kept := form.errors[:0]
		for _, err := range form.errors {
			if err.Field != f.entity {
				kept = append(kept, err)
			}
		}
		form.errors = kept
		if len(form.errors) == 0 {
			form.validity = ValidityValid
		}
	}
}
