package forms

import (
	"testing"
	"time"
)

// stubClipboard serves canned text, optionally blocking until released.
type stubClipboard struct {
	text    string
	set     string
	release chan struct{}
}

func (c *stubClipboard) GetText() string {
	if c.release != nil {
		<-c.release
	}
	return c.text
}

func (c *stubClipboard) SetText(text string) { c.set = text }

// updateUntil runs empty passes until cond holds or the attempt budget runs
// out. Paste results arrive from a goroutine, so completion needs polling.
func updateUntil(t *testing.T, w *World, cond func() bool) {
	t.Helper()
	for i := 0; i < 100; i++ {
		w.Update(NewInputState(), 0.016)
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached after 100 passes")
}

func TestPaste_InsertsAtCursorStrippingNewlines(t *testing.T) {
	w := NewWorld()
	_, field := newTestForm(t, w)
	typeString(w, "ab")

	w.SetClipboard(&stubClipboard{text: "cd\nef"})

	in := NewInputState()
	in.ModCtrl = true
	in.SetKey(KeyV, true)
	w.Update(in, 0.016)

	f := w.Field(field)
	updateUntil(t, w, func() bool { return f.Value() != "ab" })

	if f.Value() != "abcdef" {
		t.Fatalf("value=%q, want newline-stripped %q", f.Value(), "abcdef")
	}
	if f.Cursor() != 6 {
		t.Fatalf("cursor=%d, want 6", f.Cursor())
	}
}

func TestPaste_MidFieldAdvancesCursorByInsertedRunes(t *testing.T) {
	w := NewWorld()
	_, field := newTestForm(t, w)
	typeString(w, "xy")
	tapKey(w, KeyLeft) // cursor between x and y

	w.SetClipboard(&stubClipboard{text: "foo\nbar"})
	w.RequestPaste()

	f := w.Field(field)
	updateUntil(t, w, func() bool { return f.Value() != "xy" })

	if f.Value() != "xfoobary" {
		t.Fatalf("value=%q, want %q", f.Value(), "xfoobary")
	}
	if f.Cursor() != 7 {
		t.Fatalf("cursor=%d, want advanced by the 6 inserted runes", f.Cursor())
	}
}

func TestPaste_InsertKeyTriggersToo(t *testing.T) {
	w := NewWorld()
	_, field := newTestForm(t, w)
	w.SetClipboard(&stubClipboard{text: "x"})

	in := NewInputState()
	in.SetKey(KeyInsert, true)
	w.Update(in, 0.016)

	f := w.Field(field)
	updateUntil(t, w, func() bool { return f.Value() == "x" })
}

func TestPaste_NilProviderCompletesEmpty(t *testing.T) {
	w := NewWorld()
	_, field := newTestForm(t, w)
	typeString(w, "ab")

	in := NewInputState()
	in.SetKey(KeyInsert, true)
	w.Update(in, 0.016)

	// The request completed immediately with "" and must not fail.
	events := w.Update(NewInputState(), 0.016)
	found := false
	for _, ev := range events {
		if pe, ok := ev.(ClipboardPasteEvent); ok {
			found = true
			if pe.Text != "" {
				t.Fatalf("paste text=%q, want empty", pe.Text)
			}
		}
	}
	if !found {
		t.Fatal("expected a ClipboardPasteEvent")
	}
	if got := w.Field(field).Value(); got != "ab" {
		t.Fatalf("value=%q, want unchanged", got)
	}
}

func TestPaste_UnfinishedRequestStaysPending(t *testing.T) {
	w := NewWorld()
	newTestForm(t, w)

	clip := &stubClipboard{text: "late", release: make(chan struct{})}
	w.SetClipboard(clip)
	w.RequestPaste()

	// The read is blocked: passes keep the request pending, no timeout.
	for i := 0; i < 5; i++ {
		w.Update(NewInputState(), 0.016)
	}
	if len(w.pendingPaste) != 1 {
		t.Fatalf("pending=%d, want the blocked request kept", len(w.pendingPaste))
	}

	close(clip.release)
	updateUntil(t, w, func() bool { return len(w.pendingPaste) == 0 })
}

func TestPaste_DroppedWithoutFocusedField(t *testing.T) {
	w := NewWorld()
	form := w.SpawnForm("test")
	field, _ := w.SpawnField(form, "input")

	w.SetClipboard(&stubClipboard{text: "orphan"})
	w.RequestPaste()

	updateUntil(t, w, func() bool {
		return len(w.pendingPaste) == 0 && len(w.pasteInbox) == 0
	})

	if got := w.Field(field).Value(); got != "" {
		t.Fatalf("value=%q, want paste dropped with no focused field", got)
	}
}

func TestCopy_EmitsNotification(t *testing.T) {
	w := NewWorld()
	newTestForm(t, w)

	in := NewInputState()
	in.ModCtrl = true
	in.SetKey(KeyC, true)
	events := w.Update(in, 0.016)

	found := false
	for _, ev := range events {
		if _, ok := ev.(ClipboardCopyEvent); ok {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a ClipboardCopyEvent")
	}
}
