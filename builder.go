package forms

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// FieldID returns the stable id for a form-qualified field name. Unlike an
// Entity it survives across worlds and processes, so generated wiring can
// bake ids in as constants.
func FieldID(form, field string) uint64 {
	return xxhash.Sum64String(form + "." + field)
}

// FieldSpec declares one field of a form.
type FieldSpec struct {
	Name string
	Opts []Option
}

// NewField declares a field with the given logical name and options.
func NewField(name string, opts ...Option) FieldSpec {
	return FieldSpec{Name: name, Opts: opts}
}

// ActionSpec declares one action button. Buttons built from a FormSpec's
// Actions list carry their declaration index as the numeric action id.
type ActionSpec struct {
	Text string
	Role ButtonRole
}

// FormSpec declares a complete form: ordered fields plus action buttons.
// Submit and Cancel, when non-empty, add plain submit/cancel buttons with
// the given display text.
type FormSpec struct {
	Name    string
	Submit  string
	Cancel  string
	Fields  []FieldSpec
	Actions []ActionSpec
}

// FormHandle is the wiring produced by BuildForm: the form entity plus the
// mapping from logical field name to entity handle. Generated submit
// handlers read field entities only through this mapping.
type FormHandle struct {
	Form    Entity
	Fields  map[string]Entity
	Buttons []Entity

	name string
	byID map[uint64]Entity
}

// BuildForm validates a FormSpec and spawns its form, fields, and buttons.
// Declaration errors (no fields, duplicate or empty names, more than one
// active field) reject the whole spec before anything is spawned.
// The new form starts explicitly valid; the first pass re-derives child
// statuses and may flip it.
func (w *World) BuildForm(spec FormSpec) (*FormHandle, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("build form: form name is required")
	}
	if len(spec.Fields) == 0 {
		return nil, fmt.Errorf("build form %q: at least one field is required", spec.Name)
	}

	seen := make(map[string]bool, len(spec.Fields))
	activeCount := 0
	for _, fs := range spec.Fields {
		if fs.Name == "" {
			return nil, fmt.Errorf("build form %q: field name is required", spec.Name)
		}
		if seen[fs.Name] {
			return nil, fmt.Errorf("build form %q: duplicate field %q", spec.Name, fs.Name)
		}
		seen[fs.Name] = true
		if GetOpt(applyOptions(fs.Opts), OptActive) {
			activeCount++
		}
	}
	if activeCount > 1 {
		return nil, fmt.Errorf("build form %q: at most one field may be active", spec.Name)
	}

	form := w.SpawnForm(spec.Name)
	handle := &FormHandle{
		Form:   form,
		Fields: make(map[string]Entity, len(spec.Fields)),
		name:   spec.Name,
		byID:   make(map[uint64]Entity, len(spec.Fields)),
	}

	for i, fs := range spec.Fields {
		opts := fs.Opts
		if !HasOpt(applyOptions(fs.Opts), OptOrder) {
			// Declaration order doubles as the default tab order.
			opts = append(append([]Option(nil), fs.Opts...), WithOrder(i))
		}
		field, err := w.SpawnField(form, fs.Name, opts...)
		if err != nil {
			return nil, err
		}
		w.fields[field].id = FieldID(spec.Name, fs.Name)
		handle.Fields[fs.Name] = field
		handle.byID[FieldID(spec.Name, fs.Name)] = field
	}

	if spec.Cancel != "" {
		btn, err := w.SpawnButton(form, spec.Cancel, ButtonRole{Kind: RoleCancel})
		if err != nil {
			return nil, err
		}
		handle.Buttons = append(handle.Buttons, btn)
	}
	if spec.Submit != "" {
		btn, err := w.SpawnButton(form, spec.Submit, ButtonRole{Kind: RoleSubmit})
		if err != nil {
			return nil, err
		}
		handle.Buttons = append(handle.Buttons, btn)
	}
	for i, action := range spec.Actions {
		btn, err := w.SpawnActionButton(form, action.Text, action.Role, i)
		if err != nil {
			return nil, err
		}
		handle.Buttons = append(handle.Buttons, btn)
	}

	// Valid is asserted at setup, not derived.
	if err := w.MarkFormValid(form); err != nil {
		return nil, err
	}
	return handle, nil
}

// FieldByName resolves a logical field name to its entity handle.
func (h *FormHandle) FieldByName(name string) (Entity, error) {
	e, ok := h.byID[FieldID(h.name, name)]
	if !ok {
		return EntityNone, &InvariantError{Op: "field lookup", Key: name}
	}
	return e, nil
}

// Values re-derives the form's field data through the name mapping.
// A missing field entity is an invariant violation, not a silent skip.
func (h *FormHandle) Values(w *World) (map[string]string, error) {
	out := make(map[string]string, len(h.Fields))
	for name, e := range h.Fields {
		value, err := w.FieldValue(e)
		if err != nil {
			return nil, &InvariantError{Op: "form values", Key: name}
		}
		out[name] = value
	}
	return out, nil
}
