package forms

// Key represents a recognized control key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyInsert
	KeyCopy
	KeyC
	KeyV
	KeyCount
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:      "--",
		KeyTab:       "Tab",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyDelete:    "Del",
		KeyBackspace: "Backspace",
		KeySpace:     "Space",
		KeyEnter:     "Enter",
		KeyEscape:    "Esc",
		KeyInsert:    "Ins",
		KeyCopy:      "Copy",
		KeyC:         "C",
		KeyV:         "V",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

// KeyEventState distinguishes press, release, and auto-repeat events.
type KeyEventState uint8

const (
	KeyStatePressed KeyEventState = iota
	KeyStateReleased
	KeyStateRepeated
)

// KeyEvent is one discrete keyboard event. Printable keys carry the logical
// character in Rune with Key set to KeyNone.
type KeyEvent struct {
	Key   Key
	Rune  rune
	State KeyEventState
}

// InputState holds the intake for one pass: the ordered keyboard event
// stream, modifier state, and per-entity pointer interactions.
// It is typically populated by the application from GLFW or similar,
// then handed to World.Update and Reset before the next pass.
type InputState struct {
	// Ordered keyboard events for this pass.
	events []KeyEvent

	// Edge and level state derived from events, for cheap queries.
	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool // true on the pass the key went down
	keyReleased [KeyCount]bool // true on the pass the key went up

	// Modifiers. ModCtrl reserves the whole batch for clipboard/shortcuts.
	ModCtrl  bool
	ModShift bool

	// Pointer interactions observed this pass, keyed by entity.
	pointer map[Entity]Interaction

	// pointerPressed is true when a primary-button press happened anywhere
	// this pass, including outside every hit region.
	pointerPressed bool
}

// NewInputState creates an empty InputState.
func NewInputState() *InputState {
	return &InputState{
		events:  make([]KeyEvent, 0, 16),
		pointer: make(map[Entity]Interaction),
	}
}

// Reset clears per-pass state. Held-key level state survives so release
// edges can still be derived; call this before collecting the next pass.
func (s *InputState) Reset() {
	s.events = s.events[:0]
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyReleased {
		s.keyReleased[i] = false
	}
	for k := range s.pointer {
		delete(s.pointer, k)
	}
	s.pointerPressed = false
}

// SetKey records a key-down or key-up event.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.events = append(s.events, KeyEvent{Key: key, State: KeyStatePressed})
	}
	if !down && wasDown {
		s.keyReleased[key] = true
		s.events = append(s.events, KeyEvent{Key: key, State: KeyStateReleased})
	}
}

// RepeatKey records an auto-repeat event for a held key.
func (s *InputState) RepeatKey(key Key) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.events = append(s.events, KeyEvent{Key: key, State: KeyStateRepeated})
}

// AddInputChar records a typed printable character.
func (s *InputState) AddInputChar(ch rune) {
	s.events = append(s.events, KeyEvent{Rune: ch, State: KeyStatePressed})
}

// SetInteraction records the pointer interaction observed for an entity.
// A pressed interaction also counts as a press for SetPointerPressed.
func (s *InputState) SetInteraction(e Entity, i Interaction) {
	s.pointer[e] = i
	if i == InteractionPressed {
		s.pointerPressed = true
	}
}

// SetPointerPressed records that a primary-button press happened this pass,
// regardless of whether it landed on any entity's hit region.
func (s *InputState) SetPointerPressed() {
	s.pointerPressed = true
}

// PointerPressed reports whether a press happened anywhere this pass.
func (s *InputState) PointerPressed() bool {
	return s.pointerPressed
}

// InteractionOf returns the interaction observed for an entity this pass.
func (s *InputState) InteractionOf(e Entity) Interaction {
	return s.pointer[e]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key went down this pass.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key went up this pass.
func (s *InputState) KeyReleased(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyReleased[key]
}

// Events returns the ordered keyboard events for this pass.
func (s *InputState) Events() []KeyEvent {
	return s.events
}
