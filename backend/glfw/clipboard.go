//go:build cgo

package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/forms"
)

// Clipboard exposes a GLFW window's clipboard as a forms.ClipboardProvider.
type Clipboard struct {
	window *glfw.Window
}

// NewClipboard wraps the window's clipboard.
func NewClipboard(window *glfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

var _ forms.ClipboardProvider = (*Clipboard)(nil)

// GetText retrieves text from the system clipboard. GLFW returns an empty
// string for empty or non-text clipboard contents.
func (c *Clipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText copies text to the system clipboard.
func (c *Clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
