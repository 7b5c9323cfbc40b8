package forms

// Button is an action button owned by a form.
type Button struct {
	entity Entity
	form   Entity

	// Text is the button's display text.
	Text string
	// Role is the part the button plays in its form.
	Role ButtonRole
	// ActionID is the numeric action id for buttons generated from a typed
	// action enum, or -1.
	ActionID int

	interaction Interaction
}

// Entity returns the button's handle.
func (b *Button) Entity() Entity { return b.entity }

// Form returns the handle of the owning form.
func (b *Button) Form() Entity { return b.form }

// Interaction returns the last observed press-interaction snapshot.
func (b *Button) Interaction() Interaction { return b.interaction }

// observeButtons updates every button's interaction snapshot and turns
// transitions into pressed into press events: one emitted to the host, one
// queued for the form aggregate to drain later in the same pass.
func (w *World) observeButtons(input *InputState) {
	for _, e := range w.buttonOrder {
		b := w.buttons[e]
		now := input.InteractionOf(e)
		was := b.interaction
		b.interaction = now

		if now != InteractionPressed || was == InteractionPressed {
			continue
		}

		ev := ButtonPressEvent{
			Button:      e,
			Form:        b.form,
			Role:        b.Role,
			ActionID:    b.ActionID,
			Interaction: now,
		}
		w.emit(ev)
		w.buttonQueue = append(w.buttonQueue, ev)
	}
}
