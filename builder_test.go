package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func signUpSpec() FormSpec {
	return FormSpec{
		Name:   "SignUp",
		Submit: "Create",
		Cancel: "Back",
		Fields: []FieldSpec{
			NewField("username", WithActive()),
			NewField("email"),
			NewField("referral", WithOptional()),
		},
	}
}

func TestBuildForm_WiresEverything(t *testing.T) {
	w := NewWorld()
	handle, err := w.BuildForm(signUpSpec())
	if err != nil {
		t.Fatalf("BuildForm: %v", err)
	}

	form := w.Form(handle.Form)
	if form == nil || form.Name() != "SignUp" {
		t.Fatal("expected the form to be spawned with its name")
	}
	if len(handle.Fields) != 3 {
		t.Fatalf("fields=%d, want 3", len(handle.Fields))
	}
	if len(handle.Buttons) != 2 {
		t.Fatalf("buttons=%d, want cancel and submit", len(handle.Buttons))
	}

	// Cancel is spawned before submit.
	first := w.Button(handle.Buttons[0])
	second := w.Button(handle.Buttons[1])
	if first.Role.Kind != RoleCancel || second.Role.Kind != RoleSubmit {
		t.Fatalf("button roles = %v, %v; want cancel then submit", first.Role, second.Role)
	}

	if w.Focused() != handle.Fields["username"] {
		t.Fatal("the active field should hold focus after building")
	}

	// Valid is asserted at setup time.
	if form.Validity() != ValidityValid {
		t.Fatalf("validity=%v, want asserted valid", form.Validity())
	}
}

func TestBuildForm_DeclarationOrderIsTabOrder(t *testing.T) {
	w := NewWorld()
	handle, err := w.BuildForm(signUpSpec())
	if err != nil {
		t.Fatalf("BuildForm: %v", err)
	}

	w.Update(NewInputState(), 0.016)
	tapKey(w, KeyTab)
	if w.Focused() != handle.Fields["email"] {
		t.Fatal("tab from username should land on email")
	}
	tapKey(w, KeyTab)
	if w.Focused() != handle.Fields["referral"] {
		t.Fatal("tab from email should land on referral")
	}
	tapKey(w, KeyTab)
	if w.Focused() != handle.Fields["username"] {
		t.Fatal("tab should wrap to the first declared field")
	}
}

func TestBuildForm_ExplicitOrderWins(t *testing.T) {
	w := NewWorld()
	handle, err := w.BuildForm(FormSpec{
		Name: "Ordered",
		Fields: []FieldSpec{
			NewField("a", WithOrder(5), WithActive()),
			NewField("b", WithOrder(1)),
		},
	})
	if err != nil {
		t.Fatalf("BuildForm: %v", err)
	}

	// From order 5 nothing is greater: wrap to the smallest.
	tapKey(w, KeyTab)
	if w.Focused() != handle.Fields["b"] {
		t.Fatal("explicit orders should override declaration positions")
	}
}

func TestBuildForm_RejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name string
		spec FormSpec
	}{
		{"no name", FormSpec{Fields: []FieldSpec{NewField("a")}}},
		{"no fields", FormSpec{Name: "Empty"}},
		{"empty field name", FormSpec{Name: "F", Fields: []FieldSpec{NewField("")}}},
		{"duplicate field", FormSpec{Name: "F", Fields: []FieldSpec{NewField("a"), NewField("a")}}},
		{"two active fields", FormSpec{Name: "F", Fields: []FieldSpec{
			NewField("a", WithActive()), NewField("b", WithActive()),
		}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			if _, err := w.BuildForm(tc.spec); err == nil {
				t.Fatal("expected the spec to be rejected")
			}
		})
	}
}

func TestBuildForm_ActionButtonsCarryIndices(t *testing.T) {
	w := NewWorld()
	handle, err := w.BuildForm(FormSpec{
		Name:   "Editor",
		Fields: []FieldSpec{NewField("body")},
		Actions: []ActionSpec{
			{Text: "Preview", Role: ButtonRole{Kind: RoleCustom, Name: "preview"}},
			{Text: "Save draft", Role: ButtonRole{Kind: RoleCustom, Name: "draft"}},
		},
	})
	if err != nil {
		t.Fatalf("BuildForm: %v", err)
	}

	for i, e := range handle.Buttons {
		if got := w.Button(e).ActionID; got != i {
			t.Fatalf("button %d action id = %d, want declaration index", i, got)
		}
	}
}

func TestFormHandle_FieldByNameAndValues(t *testing.T) {
	w := NewWorld()
	handle, err := w.BuildForm(signUpSpec())
	if err != nil {
		t.Fatalf("BuildForm: %v", err)
	}

	field, err := handle.FieldByName("email")
	if err != nil {
		t.Fatalf("FieldByName: %v", err)
	}
	w.Field(field).SetValue("a@b.c")
	w.Update(NewInputState(), 0.016)

	values, err := handle.Values(w)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	want := map[string]string{"username": "", "email": "a@b.c", "referral": ""}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	if _, err := handle.FieldByName("missing"); err == nil {
		t.Fatal("expected an error for an unmapped name")
	}
}

func TestFieldID_StableAndQualified(t *testing.T) {
	if FieldID("SignUp", "email") != FieldID("SignUp", "email") {
		t.Fatal("ids must be deterministic")
	}
	if FieldID("SignUp", "email") == FieldID("Login", "email") {
		t.Fatal("ids must be form-qualified")
	}

	w := NewWorld()
	handle, err := w.BuildForm(signUpSpec())
	if err != nil {
		t.Fatalf("BuildForm: %v", err)
	}
	f := w.Field(handle.Fields["email"])
	if f.ID() != FieldID("SignUp", "email") {
		t.Fatal("spawned fields should carry their stable id")
	}
}
