package forms

// Event is implemented by every event a World emits from Update.
// Events are drained in arrival order, once, by the host's frame loop.
type Event interface {
	event()
}

// FormEventKind names the generic form event variants.
type FormEventKind uint8

const (
	FormSubmit FormEventKind = iota
	FormCancel
	FormApply
	FormCustom
)

// String returns a human-readable name for a form event kind.
func (k FormEventKind) String() string {
	switch k {
	case FormSubmit:
		return "submit"
	case FormCancel:
		return "cancel"
	case FormApply:
		return "apply"
	default:
		return "custom"
	}
}

// FormEvent is the generic submit/cancel/apply/custom event for a form.
// Name is set only for FormCustom. Typed wiring layers translate these
// into application-specific payloads by reading field values through
// their own field mapping.
type FormEvent struct {
	Kind FormEventKind
	Form Entity
	Name string
}

func (FormEvent) event() {}

// TextInputSubmitEvent is emitted when Enter is pressed inside a field.
// Value is the field's value at submit time, before any clearing.
type TextInputSubmitEvent struct {
	Field Entity
	Value string
}

func (TextInputSubmitEvent) event() {}

// ButtonPressEvent is emitted when a button's interaction transitions into
// pressed. ActionID is -1 unless the button was generated from a typed
// action enum.
type ButtonPressEvent struct {
	Button      Entity
	Form        Entity
	Role        ButtonRole
	ActionID    int
	Interaction Interaction
}

func (ButtonPressEvent) event() {}

// ClipboardCopyEvent notifies that the user requested a copy.
// This is a placeholder: it only notifies, it does not carry data.
type ClipboardCopyEvent struct{}

func (ClipboardCopyEvent) event() {}

// ClipboardPasteEvent notifies that a paste request completed. Text is the
// raw clipboard content; newline stripping happens at insertion, not here.
type ClipboardPasteEvent struct {
	Text string
}

func (ClipboardPasteEvent) event() {}
