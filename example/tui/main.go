// Command tui runs a sign-up form in the terminal. It drives a forms.World
// from bubbletea key messages: Tab moves between fields, Enter submits,
// Escape cancels.
//
// Terminals report key presses only, so each key is released on the frame
// after its press to produce the release edges the form keyboard acts on.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/forms"
)

const frameInterval = time.Second / 30

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(10)
	fieldStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(32)
	focusedStyle = fieldStyle.BorderForeground(lipgloss.Color("12"))
	invalidStyle = fieldStyle.BorderForeground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type tickMsg time.Time

type model struct {
	world  *forms.World
	input  *forms.InputState
	handle *forms.FormHandle

	// Field names in declaration order; the handle's map is unordered.
	fieldOrder []string

	// Keys pressed this frame, released on the next.
	pressed []forms.Key

	status   string
	quitting bool
}

func newModel() (*model, error) {
	world := forms.NewWorld()
	handle, err := world.BuildForm(forms.FormSpec{
		Name:   "SignUp",
		Submit: "Create account",
		Cancel: "Back",
		Fields: []forms.FieldSpec{
			forms.NewField("username", forms.WithPlaceholder("pick a name"), forms.WithActive()),
			forms.NewField("email", forms.WithPlaceholder("you@example.com")),
			forms.NewField("password", forms.WithMask('*')),
			forms.NewField("referral", forms.WithPlaceholder("optional"), forms.WithOptional()),
		},
	})
	if err != nil {
		return nil, err
	}
	return &model{
		world:      world,
		input:      forms.NewInputState(),
		handle:     handle,
		fieldOrder: []string{"username", "email", "password", "referral"},
	}, nil
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		events := m.world.Update(m.input, float32(frameInterval.Seconds()))
		m.releasePressed()
		for _, ev := range events {
			switch ev := ev.(type) {
			case forms.FormEvent:
				switch ev.Kind {
				case forms.FormSubmit:
					values, err := m.handle.Values(m.world)
					if err != nil {
						m.status = err.Error()
						break
					}
					m.status = fmt.Sprintf("submitted: %s <%s>", values["username"], values["email"])
				case forms.FormCancel:
					m.quitting = true
					return m, tea.Quit
				}
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
	case tea.KeyTab:
		m.press(forms.KeyTab)
	case tea.KeyLeft:
		m.press(forms.KeyLeft)
	case tea.KeyRight:
		m.press(forms.KeyRight)
	case tea.KeyBackspace:
		m.press(forms.KeyBackspace)
	case tea.KeyDelete:
		m.press(forms.KeyDelete)
	case tea.KeyEnter:
		m.press(forms.KeyEnter)
	case tea.KeyEsc:
		m.press(forms.KeyEscape)
	case tea.KeySpace:
		m.press(forms.KeySpace)
	case tea.KeyCtrlV:
		m.press(forms.KeyInsert)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.input.AddInputChar(r)
		}
	}
}

func (m *model) press(k forms.Key) {
	m.input.SetKey(k, true)
	m.pressed = append(m.pressed, k)
}

// releasePressed emits the release edge for last frame's presses.
func (m *model) releasePressed() {
	m.input.Reset()
	for _, k := range m.pressed {
		m.input.SetKey(k, false)
	}
	m.pressed = m.pressed[:0]
}

func (m *model) View() string {
	if m.quitting {
		return "bye\n"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("sign up") + "\n\n")

	for _, name := range m.fieldOrder {
		e := m.handle.Fields[name]
		field := m.world.Field(e)
		if field == nil {
			continue
		}

		box := fieldStyle
		if field.Active() {
			box = focusedStyle
		} else if field.Validity() == forms.ValidityInvalid {
			box = invalidStyle
		}

		var content string
		if field.PlaceholderVisible() {
			content = dimStyle.Render(field.Placeholder)
		} else {
			seg := field.Segments()
			content = seg.Pre
			if seg.CursorVisible {
				content += seg.Cursor
			}
			content += seg.Post
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Render(name), box.Render(content)))
		b.WriteString("\n")
	}

	form := m.world.Form(m.handle.Form)
	if form != nil {
		for _, fe := range form.Errors() {
			b.WriteString(errorStyle.Render("  * "+m.errorText(fe)) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(dimStyle.Render("\ntab: next field  enter: submit  esc: cancel") + "\n")
	return b.String()
}

// errorText renders a field error for display. Required and invalid causes
// carry no message of their own, so the field name supplies the context.
func (m *model) errorText(fe forms.FieldError) string {
	name := "field"
	if f := m.world.Field(fe.Field); f != nil {
		if f.Label != "" {
			name = f.Label
		} else if f.Name() != "" {
			name = f.Name()
		}
	}
	switch fe.Kind {
	case forms.ErrorRequired:
		return name + " is required"
	case forms.ErrorInvalid:
		if fe.Message != "" {
			return name + ": " + fe.Message
		}
		return name + " is invalid"
	default:
		return fe.Message
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	m, err := newModel()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
