package main

import (
	"testing"

	"github.com/go-theft-auto/forms"
)

func TestErrorText(t *testing.T) {
	m, err := newModel()
	if err != nil {
		t.Fatal(err)
	}
	username, err := m.handle.FieldByName("username")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		fe   forms.FieldError
		want string
	}{
		{
			"required uses label",
			forms.FieldError{Field: username, Kind: forms.ErrorRequired},
			"pick a name is required",
		},
		{
			"invalid with message",
			forms.FieldError{Field: username, Kind: forms.ErrorInvalid, Message: "too short"},
			"pick a name: too short",
		},
		{
			"invalid without message",
			forms.FieldError{Field: username, Kind: forms.ErrorInvalid},
			"pick a name is invalid",
		},
		{
			"unknown field falls back",
			forms.FieldError{Field: forms.Entity(9999), Kind: forms.ErrorRequired},
			"field is required",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.errorText(tc.fe); got != tc.want {
				t.Errorf("errorText() = %q, want %q", got, tc.want)
			}
		})
	}
}
