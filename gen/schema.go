// Package gen turns declarative form schemas into Go wiring code on top of
// the forms builder API. Schemas are YAML documents validated up front:
// generation never emits code for a schema it cannot fully check.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Schema is a parsed and validated schema document.
type Schema struct {
	Forms []FormDef `yaml:"forms"`
}

// FormDef declares one form.
type FormDef struct {
	Name    string      `yaml:"name"`
	Submit  string      `yaml:"submit"`
	Cancel  string      `yaml:"cancel"`
	Fields  []FieldDef  `yaml:"fields"`
	Actions []ActionDef `yaml:"actions"`
}

// FieldDef declares one text field of a form. Label falls back to the
// placeholder text when unset.
type FieldDef struct {
	Name        string `yaml:"name"`
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Value       string `yaml:"value"`
	Mask        string `yaml:"mask"`
	Optional    bool   `yaml:"optional"`
	Active      bool   `yaml:"active"`
	Order       *int   `yaml:"order"`
	Retain      bool   `yaml:"retain_on_submit"`
}

// ActionDef declares one action button. Role is one of submit, cancel,
// apply, or custom; custom actions need a distinct Name.
type ActionDef struct {
	Text string `yaml:"text"`
	Role string `yaml:"role"`
	Name string `yaml:"name"`
}

// LoadFile reads and validates a schema document from disk.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gen: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a schema document. Unknown keys are
// declaration errors: a typoed attribute must halt generation, not
// silently drop the setting.
func Parse(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("gen: parse schema: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schema) validate() error {
	if len(s.Forms) == 0 {
		return fmt.Errorf("gen: schema declares no forms")
	}

	formNames := make(map[string]bool, len(s.Forms))
	for _, f := range s.Forms {
		if err := f.validate(); err != nil {
			return err
		}
		if formNames[f.Name] {
			return fmt.Errorf("gen: duplicate form %q", f.Name)
		}
		formNames[f.Name] = true
	}
	return nil
}

func (f *FormDef) validate() error {
	if !isExportedIdent(f.Name) {
		return fmt.Errorf("gen: form name %q must be an exported Go identifier", f.Name)
	}
	if len(f.Fields) == 0 {
		return fmt.Errorf("gen: form %q declares no fields", f.Name)
	}

	fieldNames := make(map[string]bool, len(f.Fields))
	activeCount := 0
	for _, fd := range f.Fields {
		if !isIdentLike(fd.Name) {
			return fmt.Errorf("gen: form %q: field name %q must be a Go identifier (underscores allowed)", f.Name, fd.Name)
		}
		if fieldNames[fd.Name] {
			return fmt.Errorf("gen: form %q: duplicate field %q", f.Name, fd.Name)
		}
		fieldNames[fd.Name] = true
		if fd.Active {
			activeCount++
		}
		if fd.Mask != "" && utf8.RuneCountInString(fd.Mask) != 1 {
			return fmt.Errorf("gen: form %q: field %q: mask %q must be a single character", f.Name, fd.Name, fd.Mask)
		}
	}
	if activeCount > 1 {
		return fmt.Errorf("gen: form %q: at most one field may be active", f.Name)
	}

	actionNames := make(map[string]bool, len(f.Actions))
	for _, a := range f.Actions {
		switch a.Role {
		case "submit", "cancel", "apply":
			if a.Name != "" {
				return fmt.Errorf("gen: form %q: %s action must not carry a name", f.Name, a.Role)
			}
		case "custom":
			if !isIdentLike(a.Name) {
				return fmt.Errorf("gen: form %q: custom action needs an identifier name, got %q", f.Name, a.Name)
			}
			if actionNames[a.Name] {
				return fmt.Errorf("gen: form %q: duplicate action %q", f.Name, a.Name)
			}
			actionNames[a.Name] = true
		default:
			return fmt.Errorf("gen: form %q: unknown action role %q", f.Name, a.Role)
		}
		if a.Text == "" {
			return fmt.Errorf("gen: form %q: action with role %q has no text", f.Name, a.Role)
		}
	}
	return nil
}

// isExportedIdent reports whether s is a Go identifier starting with an
// upper-case letter.
func isExportedIdent(s string) bool {
	if !isIdentLike(s) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(first)
}

// isIdentLike reports whether s is usable as an identifier component:
// letters, digits, and underscores, not starting with a digit.
func isIdentLike(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case unicode.IsDigit(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
