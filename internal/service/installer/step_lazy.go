package installer

import tea "github.com/charmbracelet/bubbletea"

// lazyStep builds its step from the answers given so far, once it is reached.
type lazyStep struct {
	build func(*InstallState) Step
	step  Step
}

func (s *lazyStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *lazyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.step == nil {
		s.step = s.build(state)
		if s.step == nil {
			return nil, nil
		}
		return s, s.step.Init()
	}

	next, cmd := s.step.Update(msg, state, width, height)
	if next == nil {
		return nil, cmd
	}
	s.step = next
	return s, cmd
}

func (s *lazyStep) View(state *InstallState) string {
	if s.step == nil {
		return "Loading...\n"
	}
	return s.step.View(state)
}
