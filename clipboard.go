package forms

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs.
//
// For GLFW, see the backend/glfw package. GetText may block: the World
// always calls it from a background goroutine and picks the result up on a
// later pass through a polled completion channel, so the contract is
// non-blocking on every platform.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// SetClipboard installs the clipboard provider for this world.
// A nil provider keeps paste working with empty-string results.
func (w *World) SetClipboard(cp ClipboardProvider) {
	w.clipboard = cp
}

// RequestPaste starts an asynchronous clipboard read. The result arrives
// via the completion channel polled at the start of a later pass and is
// inserted into the then-focused field. With no provider configured the
// request completes immediately with an empty string: clipboard
// unavailability is never surfaced as a failure.
func (w *World) RequestPaste() {
	ch := make(chan string, 1)
	if w.clipboard == nil {
		ch <- ""
	} else {
		cp := w.clipboard
		go func() {
			ch <- cp.GetText()
		}()
	}
	w.pendingPaste = append(w.pendingPaste, ch)
}

// clipboardKeyboard turns clipboard key chords into requests: the platform
// Copy key or Ctrl+C notifies copy (a placeholder that carries no data),
// Insert or Ctrl+V starts a paste request.
func (w *World) clipboardKeyboard(input *InputState) {
	if input.KeyPressed(KeyCopy) || (input.ModCtrl && input.KeyPressed(KeyC)) {
		w.emit(ClipboardCopyEvent{})
	}
	if input.KeyPressed(KeyInsert) || (input.ModCtrl && input.KeyPressed(KeyV)) {
		w.RequestPaste()
	}
}

// pollClipboard collects completed paste requests without blocking.
// Completed text is queued for insertion later in the same pass and
// notified to the host. Unfinished requests stay pending; there is no
// timeout.
func (w *World) pollClipboard() {
	if len(w.pendingPaste) == 0 {
		return
	}
	kept := w.pendingPaste[:0]
	for _, ch := range w.pendingPaste {
		select {
		case text := <-ch:
			w.pasteInbox = append(w.pasteInbox, text)
			w.emit(ClipboardPasteEvent{Text: text})
		default:
			kept = append(kept, ch)
		}
	}
	w.pendingPaste = kept
}
