package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/service/ui"
)

// choiceStep selects one entry from a fixed list.
type choiceStep struct {
	title   string
	choices []string
	cursor  int
	choose  func(*InstallState, string)
}

func newChoiceStep(title string, choices []string, choose func(*InstallState, string)) *choiceStep {
	return &choiceStep{title: title, choices: choices, choose: choose}
}

func NewProviderStep() Step {
	return newChoiceStep("Select your LLM provider", []string{
		config.ProviderGroq,
		config.ProviderOpenAI,
		config.ProviderAnthropic,
		config.ProviderOpenRouter,
		config.ProviderOllama,
		config.ProviderCustom,
	}, func(state *InstallState, choice string) {
		state.App.Provider = choice
	})
}

func NewChannelStep() Step {
	return newChoiceStep("How will you use it besides the command line?", []string{
		ChannelCLI,
		ChannelTelegram,
		ChannelMCP,
	}, func(state *InstallState, choice string) {
		state.Channel = choice
		state.App.EnableTelegram = choice == ChannelTelegram
		state.App.EnableMCP = choice == ChannelMCP
	})
}

func (s *choiceStep) Init() tea.Cmd {
	return nil
}

func (s *choiceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			s.choose(state, s.choices[s.cursor])
			return nil, nil
		}
	}
	return s, nil
}

func (s *choiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.title + ":\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(ui.SelectedStyle.Render(fmt.Sprintf("❯ %s", choice)) + "\n")
		} else {
			b.WriteString(ui.ItemStyle.Render(fmt.Sprintf("  %s", choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
