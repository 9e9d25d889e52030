package installer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/reachout/internal/config"
)

// FinalizationStep drops answers that do not apply to the chosen setup.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	finalize(state)
	return nil, nil
}

func finalize(state *InstallState) {
	if state.Channel != ChannelTelegram {
		state.Telegram = config.TelegramConfig{}
	}
	if state.App.Provider != config.ProviderOllama {
		state.App.OllamaBaseURL = ""
	}
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
