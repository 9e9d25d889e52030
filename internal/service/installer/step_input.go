package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/reachout/internal/service/ui"
)

// inputStep asks for one value. skip is checked when the step is entered, set
// stores the value and may reject it.
type inputStep struct {
	input    textinput.Model
	title    string
	optional bool
	skip     func(*InstallState) bool
	set      func(*InstallState, string) error
	err      error
	entered  bool
}

type inputOption func(*inputStep)

func secret() inputOption {
	return func(s *inputStep) {
		s.input.EchoMode = textinput.EchoPassword
		s.input.EchoCharacter = '•'
	}
}

func optional() inputOption {
	return func(s *inputStep) { s.optional = true }
}

func skipWhen(fn func(*InstallState) bool) inputOption {
	return func(s *inputStep) { s.skip = fn }
}

func newInputStep(title, placeholder string, set func(*InstallState, string) error, opts ...inputOption) *inputStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 50
	ti.Placeholder = placeholder

	s := &inputStep{input: ti, title: title, set: set}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *inputStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *inputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !s.entered {
		s.entered = true
		if s.skip != nil && s.skip(state) {
			return nil, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" && !s.optional {
			s.err = fmt.Errorf("%s is required", strings.ToLower(s.title))
			return s, cmd
		}
		if val != "" {
			if err := s.set(state, val); err != nil {
				s.err = err
				return s, cmd
			}
		}
		return nil, nil
	}
	return s, cmd
}

func (s *inputStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Enter %s:\n\n%s\n\n", s.title, s.input.View()))
	if s.err != nil {
		b.WriteString(ui.ErrorStyle.Render(s.err.Error()) + "\n\n")
	}
	if s.optional {
		b.WriteString(ui.HintStyle.Render("(optional, press enter to skip)") + "\n")
	} else {
		b.WriteString("(press enter to confirm)\n")
	}
	return b.String()
}
