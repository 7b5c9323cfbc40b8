package forms

// Entity is an opaque handle to a field, form, or button owned by a World.
// Entities are plain arena indices: cheap to copy, comparable, and stable for
// the lifetime of the entity. The zero value means "no entity".
type Entity uint32

// EntityNone is the absent entity handle.
const EntityNone Entity = 0

// Interaction is the three-state pointer interaction observed for a
// hit-testable entity. Only transitions into InteractionPressed are acted on.
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

// String returns a human-readable name for an interaction state.
func (i Interaction) String() string {
	switch i {
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	default:
		return "none"
	}
}

// Validity is the derived valid/invalid status of a field or a form.
// ValidityUnknown is the initial state: "valid" is an assertion, not the
// absence of "invalid", so nothing is valid until explicitly marked so.
type Validity uint8

const (
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

// String returns a human-readable name for a validity state.
func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ErrorKind classifies a field validation error.
type ErrorKind uint8

const (
	// ErrorRequired marks a non-optional field with an empty value.
	ErrorRequired ErrorKind = iota
	// ErrorInvalid marks a field whose value failed validation.
	ErrorInvalid
	// ErrorCustom marks a field error with an application-supplied message.
	ErrorCustom
)

// FieldError is a validation error scoped to the owning field's handle.
// Message is set only for ErrorCustom.
type FieldError struct {
	Field   Entity
	Kind    ErrorKind
	Message string
}

// TextInputSettings configures editing behaviour for a single field.
type TextInputSettings struct {
	// MaskCharacter, when non-zero, replaces every rendered character.
	// Editing always operates on the true unmasked value.
	MaskCharacter rune

	// RetainOnSubmit keeps the value in the field after an Enter submit.
	// When false, the field is cleared and the cursor reset to 0.
	RetainOnSubmit bool
}

// ButtonRoleKind is the role a button plays in a form.
type ButtonRoleKind uint8

const (
	RoleSubmit ButtonRoleKind = iota
	RoleCancel
	RoleApply
	RoleCustom
)

// ButtonRole pairs a role kind with the custom role name.
// Name is set only for RoleCustom.
type ButtonRole struct {
	Kind ButtonRoleKind
	Name string
}

// ButtonRoleFrom parses a role from its string form. Unrecognized strings
// become custom roles carrying the original string as the role name.
func ButtonRoleFrom(s string) ButtonRole {
	switch s {
	case "submit":
		return ButtonRole{Kind: RoleSubmit}
	case "cancel":
		return ButtonRole{Kind: RoleCancel}
	case "apply":
		return ButtonRole{Kind: RoleApply}
	default:
		return ButtonRole{Kind: RoleCustom, Name: s}
	}
}

// String returns the canonical string form of the role.
func (r ButtonRole) String() string {
	switch r.Kind {
	case RoleSubmit:
		return "submit"
	case RoleCancel:
		return "cancel"
	case RoleApply:
		return "apply"
	default:
		return r.Name
	}
}
