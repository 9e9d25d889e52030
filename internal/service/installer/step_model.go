package installer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/service/ui"
)

var suggestedModels = map[string][]item{
	config.ProviderGroq: {
		{id: "llama-3.3-70b-versatile", title: "Llama 3.3 70B", desc: "Default, good quality at Groq speed"},
		{id: "llama-3.1-8b-instant", title: "Llama 3.1 8B", desc: "Fastest, higher free tier limits"},
		{id: "openai/gpt-oss-120b", title: "GPT-OSS 120B", desc: "Open weights model served by Groq"},
	},
	config.ProviderOpenAI: {
		{id: "gpt-4o-mini", title: "GPT-4o mini", desc: "Default, cheap and fast"},
		{id: "gpt-4.1-mini", title: "GPT-4.1 mini", desc: "Better instruction following"},
		{id: "gpt-4o", title: "GPT-4o", desc: "Highest quality"},
	},
	config.ProviderAnthropic: {
		{id: "claude-haiku-4-5-20251001", title: "Claude Haiku 4.5", desc: "Default, fast"},
		{id: "claude-sonnet-4-5-20250929", title: "Claude Sonnet 4.5", desc: "Higher quality"},
	},
	config.ProviderOpenRouter: {
		{id: "google/gemma-3-27b-it:free", title: "Gemma 3 27B (free)", desc: "Default"},
		{id: "meta-llama/llama-3.3-70b-instruct:free", title: "Llama 3.3 70B (free)", desc: "Free tier"},
	},
	config.ProviderOllama: {
		{id: "llama3.2", title: "Llama 3.2", desc: "Default, runs on a laptop"},
		{id: "qwen2.5:7b", title: "Qwen 2.5 7B", desc: "Good multilingual output"},
	},
}

// NewModelStep offers known models for the provider. Providers without
// suggestions get a free text input.
func NewModelStep() Step {
	return &lazyStep{build: func(state *InstallState) Step {
		items := suggestedModels[state.App.Provider]
		if len(items) == 0 {
			return newInputStep("the model name", "model-id", func(state *InstallState, val string) error {
				state.App.Model = val
				return nil
			})
		}

		listItems := make([]list.Item, 0, len(items))
		for _, it := range items {
			listItems = append(listItems, item{id: it.id, title: it.title, desc: fmt.Sprintf("%s | %s", it.id, it.desc)})
		}
		l := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
		l.Title = "Select the model"
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(true)
		l.Styles.Title = ui.HeaderStyle
		return &ModelStep{list: l}
	}}
}

type ModelStep struct {
	list list.Model
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if width > 0 && height > 4 {
		s.list.SetSize(width, height-4)
	}

	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		wasFiltering := s.list.FilterState() == list.Filtering
		s.list, cmd = s.list.Update(msg)
		if wasFiltering || s.list.FilterState() == list.Filtering {
			return s, cmd
		}

		if i, ok := s.list.SelectedItem().(item); ok {
			// the default needs no entry in .env
			if i.id != config.DefaultModel(state.App.Provider) {
				state.App.Model = i.id
			}
			return nil, nil
		}
		return s, cmd
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	return s.list.View()
}
