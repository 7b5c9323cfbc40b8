package forms

import "testing"

func formEvents(events []Event) []FormEvent {
	var out []FormEvent
	for _, ev := range events {
		if fe, ok := ev.(FormEvent); ok {
			out = append(out, fe)
		}
	}
	return out
}

// pressButton simulates a press transition on a button entity.
func pressButton(w *World, e Entity) []Event {
	in := NewInputState()
	in.SetInteraction(e, InteractionPressed)
	return w.Update(in, 0.016)
}

func TestFormKeyboard_EnterSubmitsWhenNotInvalid(t *testing.T) {
	w := NewWorld()
	// Retain on submit: the field-level enter would otherwise clear the
	// field and re-derive a required error before the release arrives.
	form, _ := newTestForm(t, w, WithRetainOnSubmit())
	typeString(w, "value")

	events := formEvents(tapKey(w, KeyEnter))
	var submit *FormEvent
	for i, fe := range events {
		if fe.Kind == FormSubmit {
			submit = &events[i]
		}
	}
	if submit == nil {
		t.Fatal("expected a submit event on enter release")
	}
	if submit.Form != form {
		t.Fatalf("submit form=%d, want %d", submit.Form, form)
	}
}

func TestFormKeyboard_EnterBlockedWhileInvalid(t *testing.T) {
	w := NewWorld()
	newTestForm(t, w)
	// First pass derives the required error for the empty field.
	w.Update(NewInputState(), 0.016)

	for _, fe := range formEvents(tapKey(w, KeyEnter)) {
		if fe.Kind == FormSubmit {
			t.Fatal("an invalid form must not submit on enter")
		}
	}
}

func TestFormKeyboard_EscapeCancelsUnconditionally(t *testing.T) {
	w := NewWorld()
	form, _ := newTestForm(t, w)
	w.Update(NewInputState(), 0.016) // form is invalid: field empty

	events := formEvents(tapKey(w, KeyEscape))
	if len(events) != 1 || events[0].Kind != FormCancel || events[0].Form != form {
		t.Fatalf("events=%v, want one cancel for form %d", events, form)
	}
}

func TestFormKeyboard_ActsOnReleaseOnly(t *testing.T) {
	w := NewWorld()
	newTestForm(t, w)
	typeString(w, "value")

	in := NewInputState()
	in.SetKey(KeyEnter, true)
	// Enter press reaches the edit engine (field submit) but not the form.
	for _, fe := range formEvents(w.Update(in, 0.016)) {
		if fe.Kind == FormSubmit {
			t.Fatal("enter press alone must not submit the form")
		}
	}
}

func TestFormKeyboard_ScopedToFocusContext(t *testing.T) {
	w := NewWorld()
	first := w.SpawnForm("first")
	w.SpawnField(first, "a", WithValue("x"))
	second := w.SpawnForm("second")
	focused, _ := w.SpawnField(second, "b", WithValue("y"), WithActive(), WithRetainOnSubmit())
	_ = focused
	w.Update(NewInputState(), 0.016)

	events := formEvents(tapKey(w, KeyEnter))
	if len(events) != 1 || events[0].Form != second {
		t.Fatalf("events=%v, want submit scoped to the focused field's form", events)
	}
}

func TestButtons_SubmitGatedOnValid(t *testing.T) {
	w := NewWorld()
	form, _ := newTestForm(t, w)
	btn, _ := w.SpawnButton(form, "OK", ButtonRole{Kind: RoleSubmit})
	w.Update(NewInputState(), 0.016) // invalid: required field empty

	for _, fe := range formEvents(pressButton(w, btn)) {
		if fe.Kind == FormSubmit {
			t.Fatal("submit button must be inert while the form is invalid")
		}
	}

	typeString(w, "value")
	// Release the press so the next press is a fresh transition.
	w.Update(NewInputState(), 0.016)

	found := false
	for _, fe := range formEvents(pressButton(w, btn)) {
		if fe.Kind == FormSubmit && fe.Form == form {
			found = true
		}
	}
	if !found {
		t.Fatal("submit button should emit once the form is valid")
	}
}

func TestButtons_CancelAlwaysEmits(t *testing.T) {
	w := NewWorld()
	form, _ := newTestForm(t, w)
	btn, _ := w.SpawnButton(form, "Back", ButtonRole{Kind: RoleCancel})
	w.Update(NewInputState(), 0.016) // invalid

	events := formEvents(pressButton(w, btn))
	if len(events) != 1 || events[0].Kind != FormCancel {
		t.Fatalf("events=%v, want one cancel despite invalid form", events)
	}
}

func TestButtons_CustomEmitsNameWhileInvalid(t *testing.T) {
	w := NewWorld()
	form, _ := newTestForm(t, w)
	btn, _ := w.SpawnButton(form, "Help", ButtonRole{Kind: RoleCustom, Name: "help"})
	w.Update(NewInputState(), 0.016) // invalid

	events := formEvents(pressButton(w, btn))
	if len(events) != 1 || events[0].Kind != FormCustom || events[0].Name != "help" {
		t.Fatalf("events=%v, want custom %q event", events, "help")
	}
	if events[0].Form != form {
		t.Fatalf("custom event form=%d, want %d", events[0].Form, form)
	}
}

func TestButtons_ApplyRoutesToHookOnly(t *testing.T) {
	w := NewWorld()
	form, _ := newTestForm(t, w)
	typeString(w, "value")
	btn, _ := w.SpawnButton(form, "Apply", ButtonRole{Kind: RoleApply})

	applied := EntityNone
	w.Form(form).OnApply = func(e Entity) { applied = e }

	events := formEvents(pressButton(w, btn))
	if len(events) != 0 {
		t.Fatalf("events=%v, apply must not auto-emit form events", events)
	}
	if applied != form {
		t.Fatalf("applied=%d, want hook called with form %d", applied, form)
	}
}

func TestButtons_ApplyWithoutHookIsNoop(t *testing.T) {
	w := NewWorld()
	form, _ := newTestForm(t, w)
	btn, _ := w.SpawnButton(form, "Apply", ButtonRole{Kind: RoleApply})

	if events := formEvents(pressButton(w, btn)); len(events) != 0 {
		t.Fatalf("events=%v, want none", events)
	}
}

func TestButtons_PressEventAlwaysNotified(t *testing.T) {
	w := NewWorld()
	form, _ := newTestForm(t, w)
	btn, _ := w.SpawnButton(form, "OK", ButtonRole{Kind: RoleSubmit})
	w.Update(NewInputState(), 0.016) // invalid

	// Even a gated submit press is observable as a raw press event.
	found := false
	for _, ev := range pressButton(w, btn) {
		if pe, ok := ev.(ButtonPressEvent); ok && pe.Button == btn {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a ButtonPressEvent for the press")
	}
}

func TestFormDirty_TracksChildEdits(t *testing.T) {
	w := NewWorld()
	form, _ := newTestForm(t, w)
	if w.FormDirty(form) {
		t.Fatal("a fresh form is not dirty")
	}

	typeString(w, "x")
	if !w.FormDirty(form) {
		t.Fatal("editing a child should dirty the form")
	}
}
