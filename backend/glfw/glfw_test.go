//go:build cgo

package glfw

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/forms"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		in   glfw.Key
		want forms.Key
	}{
		{glfw.KeyTab, forms.KeyTab},
		{glfw.KeyLeft, forms.KeyLeft},
		{glfw.KeyRight, forms.KeyRight},
		{glfw.KeyDelete, forms.KeyDelete},
		{glfw.KeyBackspace, forms.KeyBackspace},
		{glfw.KeyEnter, forms.KeyEnter},
		{glfw.KeyKPEnter, forms.KeyEnter},
		{glfw.KeyEscape, forms.KeyEscape},
		{glfw.KeyInsert, forms.KeyInsert},
		{glfw.KeyC, forms.KeyC},
		{glfw.KeyV, forms.KeyV},
		{glfw.KeyA, forms.KeyNone},
		{glfw.KeyF1, forms.KeyNone},
	}
	for _, tc := range cases {
		if got := translateKey(tc.in); got != tc.want {
			t.Errorf("translateKey(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// Space arrives through the char callback as ' '; forwarding the key as
// well would make a single keystroke insert two spaces.
func TestTranslateKey_SpaceLeftToCharCallback(t *testing.T) {
	if got := translateKey(glfw.KeySpace); got != forms.KeyNone {
		t.Fatalf("translateKey(KeySpace) = %v, want KeyNone", got)
	}
}
