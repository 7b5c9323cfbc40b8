// Package forms provides retained single-line text inputs, buttons, and
// form aggregation for host UIs that drive their own event loop.
//
// The package owns no window and draws nothing. A host feeds keyboard,
// character, and pointer input into an InputState, calls World.Update once
// per frame, and renders each field from its Segments snapshot. Everything
// between those two calls - focus arbitration, text editing, clipboard
// paste, validation, and button handling - happens inside Update, in a
// fixed pass order, so observers always see a consistent frame.
//
// A minimal session:
//
//	world := forms.NewWorld(forms.WithClipboard(clip))
//	handle, err := world.BuildForm(forms.FormSpec{
//		Name:   "login",
//		Submit: "Sign in",
//		Cancel: "Back",
//		Fields: []forms.FieldSpec{
//			forms.NewField("username", forms.WithActive()),
//			forms.NewField("password", forms.WithMask('*')),
//		},
//	})
//	...
//	for running {
//		input.Reset()
//		// feed backend events into input
//		for _, ev := range world.Update(input, dt) {
//			switch ev := ev.(type) {
//			case forms.FormEvent:
//				// submit / cancel / custom actions
//			case forms.TextInputSubmitEvent:
//				// per-field enter
//			}
//		}
//	}
//
// At most one field holds focus at a time, across all forms. Clicking a
// field takes focus, clicking empty space drops it, and Tab walks fields
// of the focused form in declaration (or explicit WithOrder) order.
//
// Validation is cooperative: the package only enforces that non-optional
// fields must be non-empty. Everything else is the host's job, reported
// through MarkFieldInvalid and MarkFieldValid; the form's error list and
// validity follow automatically. An invalid form still edits and cancels
// normally but will not submit.
//
// The gen subpackage and the formsgen command generate typed form wiring
// from a YAML schema on top of BuildForm.
package forms
