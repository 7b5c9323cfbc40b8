package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Generate renders Go wiring for every form in the schema into a single
// source file for the given package. The output is gofmt-formatted.
func Generate(s *Schema, pkg string) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("gen: package name is required")
	}

	view := fileView{Package: pkg}
	for _, f := range s.Forms {
		view.Forms = append(view.Forms, buildFormView(f))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("gen: render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Formatting failures are generator bugs; surface the raw source.
		return nil, fmt.Errorf("gen: format output: %w\n%s", err, buf.String())
	}
	return src, nil
}

type fileView struct {
	Package string
	Forms   []formView
}

type formView struct {
	Name    string
	Submit  string
	Cancel  string
	Fields  []fieldView
	Actions []actionView
}

type fieldView struct {
	GoName   string
	Name     string
	Opts     string
	Optional bool
}

type actionView struct {
	Text     string
	RoleExpr string
}

func buildFormView(f FormDef) formView {
	v := formView{Name: f.Name, Submit: f.Submit, Cancel: f.Cancel}
	for _, fd := range f.Fields {
		v.Fields = append(v.Fields, fieldView{
			GoName:   exportName(fd.Name),
			Name:     fd.Name,
			Opts:     fieldOpts(fd),
			Optional: fd.Optional,
		})
	}
	for _, a := range f.Actions {
		v.Actions = append(v.Actions, actionView{Text: a.Text, RoleExpr: roleExpr(a)})
	}
	return v
}

// fieldOpts renders the option list for one field declaration.
func fieldOpts(fd FieldDef) string {
	var opts []string
	if fd.Label != "" {
		opts = append(opts, fmt.Sprintf("forms.WithLabel(%q)", fd.Label))
	}
	if fd.Placeholder != "" {
		opts = append(opts, fmt.Sprintf("forms.WithPlaceholder(%q)", fd.Placeholder))
	}
	if fd.Value != "" {
		opts = append(opts, fmt.Sprintf("forms.WithValue(%q)", fd.Value))
	}
	if fd.Mask != "" {
		r, _ := utf8.DecodeRuneInString(fd.Mask)
		opts = append(opts, fmt.Sprintf("forms.WithMask(%q)", r))
	}
	if fd.Optional {
		opts = append(opts, "forms.WithOptional()")
	}
	if fd.Active {
		opts = append(opts, "forms.WithActive()")
	}
	if fd.Order != nil {
		opts = append(opts, fmt.Sprintf("forms.WithOrder(%d)", *fd.Order))
	}
	if fd.Retain {
		opts = append(opts, "forms.WithRetainOnSubmit()")
	}
	if len(opts) == 0 {
		return ""
	}
	return ", " + strings.Join(opts, ", ")
}

func roleExpr(a ActionDef) string {
	switch a.Role {
	case "submit":
		return "forms.ButtonRole{Kind: forms.RoleSubmit}"
	case "cancel":
		return "forms.ButtonRole{Kind: forms.RoleCancel}"
	case "apply":
		return "forms.ButtonRole{Kind: forms.RoleApply}"
	default:
		return fmt.Sprintf("forms.ButtonRole{Kind: forms.RoleCustom, Name: %q}", a.Name)
	}
}

// exportName converts a schema field name like "first_name" to an exported
// Go identifier like "FirstName".
func exportName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var fileTemplate = template.Must(template.New("forms").Parse(`// Code generated by formsgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/go-theft-auto/forms"
)
{{range $form := .Forms}}
// {{.Name}}Data holds the captured field values of a {{.Name}} form.
// Optional fields are nil while empty.
type {{.Name}}Data struct {
{{- range .Fields}}
	{{.GoName}} {{if .Optional}}*string{{else}}string{{end}}
{{- end}}
}

// {{.Name}}Form wires a spawned {{.Name}} form to typed accessors.
type {{.Name}}Form struct {
	handle *forms.FormHandle
}

// Spawn{{.Name}}Form builds the {{.Name}} form in w.
func Spawn{{.Name}}Form(w *forms.World) (*{{.Name}}Form, error) {
	handle, err := w.BuildForm(forms.FormSpec{
		Name:   {{printf "%q" .Name}},
		Submit: {{printf "%q" .Submit}},
		Cancel: {{printf "%q" .Cancel}},
		Fields: []forms.FieldSpec{
{{- range .Fields}}
			forms.NewField({{printf "%q" .Name}}{{.Opts}}),
{{- end}}
		},
{{- if .Actions}}
		Actions: []forms.ActionSpec{
{{- range .Actions}}
			{Text: {{printf "%q" .Text}}, Role: {{.RoleExpr}}},
{{- end}}
		},
{{- end}}
	})
	if err != nil {
		return nil, err
	}
	return &{{.Name}}Form{handle: handle}, nil
}

// Handle exposes the underlying form wiring.
func (f *{{.Name}}Form) Handle() *forms.FormHandle { return f.handle }

// Entity returns the form entity.
func (f *{{.Name}}Form) Entity() forms.Entity { return f.handle.Form }
{{range .Fields}}
// {{.GoName}}Field returns the entity of the {{.Name}} field.
func (f *{{$form.Name}}Form) {{.GoName}}Field() forms.Entity { return f.handle.Fields[{{printf "%q" .Name}}] }
{{end}}
// Data reads the current field values through the form's field mapping.
func (f *{{.Name}}Form) Data(w *forms.World) ({{.Name}}Data, error) {
	var d {{.Name}}Data
	values, err := f.handle.Values(w)
	if err != nil {
		return d, err
	}
{{- range .Fields}}
{{- if .Optional}}
	if v := values[{{printf "%q" .Name}}]; v != "" {
		d.{{.GoName}} = &v
	}
{{- else}}
	d.{{.GoName}} = values[{{printf "%q" .Name}}]
{{- end}}
{{- end}}
	return d, nil
}

// {{.Name}}Event is a form event translated for this form. Data is
// populated for submit events, and best-effort for custom actions.
type {{.Name}}Event struct {
	Kind   forms.FormEventKind
	Action string
	Data   {{.Name}}Data
}

// Events filters a frame's events down to this form and attaches captured
// data. Submits fail loudly on a broken field mapping; custom actions may
// fire while the form is invalid, so their data is attached best-effort.
func (f *{{.Name}}Form) Events(w *forms.World, events []forms.Event) ([]{{.Name}}Event, error) {
	var out []{{.Name}}Event
	for _, ev := range events {
		fe, ok := ev.(forms.FormEvent)
		if !ok || fe.Form != f.handle.Form {
			continue
		}
		te := {{.Name}}Event{Kind: fe.Kind, Action: fe.Name}
		switch fe.Kind {
		case forms.FormSubmit:
			data, err := f.Data(w)
			if err != nil {
				return nil, err
			}
			te.Data = data
		case forms.FormCustom:
			if data, err := f.Data(w); err == nil {
				te.Data = data
			}
		}
		out = append(out, te)
	}
	return out, nil
}
{{end -}}
`))
