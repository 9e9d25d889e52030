package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/reachout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drive feeds msgs to step until it completes and reports whether it did.
func drive(step Step, state *InstallState, msgs ...tea.Msg) bool {
	for _, msg := range msgs {
		next, _ := step.Update(msg, state, 80, 24)
		if next == nil {
			return true
		}
		step = next
	}
	return false
}

func TestProviderStep(t *testing.T) {
	state := NewInstallState()
	down := tea.KeyMsg{Type: tea.KeyDown}

	done := drive(NewProviderStep(), state, down, down, enter)
	require.True(t, done)
	assert.Equal(t, config.ProviderAnthropic, state.App.Provider)
}

func TestAPIKeyStep(t *testing.T) {
	t.Run("required key", func(t *testing.T) {
		state := NewInstallState()
		state.App.Provider = config.ProviderGroq

		step := NewAPIKeyStep()
		assert.False(t, drive(step, state, nextMsg{}, enter), "empty key must be rejected")
		assert.True(t, drive(step, state, typeText("gsk_abc"), enter))
		assert.Equal(t, "gsk_abc", state.App.GroqAPIKey)
	})

	t.Run("optional for ollama", func(t *testing.T) {
		state := NewInstallState()
		state.App.Provider = config.ProviderOllama

		assert.True(t, drive(NewAPIKeyStep(), state, nextMsg{}, enter))
		assert.Empty(t, state.App.OllamaAPIKey)
	})
}

func TestURLSteps(t *testing.T) {
	state := NewInstallState()
	state.App.Provider = config.ProviderGroq
	assert.True(t, drive(NewCustomURLStep(), state, nextMsg{}), "skipped for other providers")

	state.App.Provider = config.ProviderCustom
	step := NewCustomURLStep()
	assert.False(t, drive(step, state, nextMsg{}, typeText("not a url"), enter))
	assert.Empty(t, state.App.CustomOpenAIBaseURL)

	step = NewCustomURLStep()
	assert.True(t, drive(step, state, nextMsg{}, typeText("https://llm.internal"), enter))
	assert.Equal(t, "https://llm.internal", state.App.CustomOpenAIBaseURL)
}

func TestModelStep(t *testing.T) {
	t.Run("default model is not written", func(t *testing.T) {
		state := NewInstallState()
		state.App.Provider = config.ProviderGroq
		assert.True(t, drive(NewModelStep(), state, nextMsg{}, enter))
		assert.Empty(t, state.App.Model)
	})

	t.Run("other model", func(t *testing.T) {
		state := NewInstallState()
		state.App.Provider = config.ProviderGroq
		assert.True(t, drive(NewModelStep(), state, nextMsg{}, tea.KeyMsg{Type: tea.KeyDown}, enter))
		assert.Equal(t, "llama-3.1-8b-instant", state.App.Model)
	})

	t.Run("custom provider types the name", func(t *testing.T) {
		state := NewInstallState()
		state.App.Provider = config.ProviderCustom
		assert.True(t, drive(NewModelStep(), state, nextMsg{}, typeText("mistral-small"), enter))
		assert.Equal(t, "mistral-small", state.App.Model)
	})
}

func TestTelegramSteps(t *testing.T) {
	state := NewInstallState()
	assert.True(t, drive(NewTelegramTokenStep(), state, nextMsg{}), "skipped without telegram")

	require.True(t, drive(NewChannelStep(), state, tea.KeyMsg{Type: tea.KeyDown}, enter))
	assert.True(t, state.App.EnableTelegram)

	owner := NewTelegramOwnerStep()
	assert.False(t, drive(owner, state, nextMsg{}, typeText("me"), enter))
	assert.True(t, drive(owner, state, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, typeText("42"), enter))
	assert.Equal(t, int64(42), state.Telegram.OwnerID)
}

func TestRenderEnv(t *testing.T) {
	state := NewInstallState()
	state.App.Provider = config.ProviderGroq
	state.App.GroqAPIKey = "gsk_abc"
	state.App.OllamaBaseURL = "http://localhost:11434"
	state.Search.TavilyAPIKey = "tvly-1"
	state.Telegram.Token = "1:abc"
	finalize(state)

	out, err := state.RenderEnv()
	require.NoError(t, err)
	assert.Contains(t, out, "REACH_LLM_PROVIDER=groq\n")
	assert.Contains(t, out, "GROQ_API_KEY=gsk_abc\n")
	assert.Contains(t, out, "TAVILY_API_KEY=tvly-1\n")
	assert.NotContains(t, out, "OLLAMA_BASE_URL")
	assert.NotContains(t, out, "TELEGRAM_TOKEN")
}

func TestSaveEnvAndDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reach")
	state := NewInstallState()
	state.App.Provider = config.ProviderOpenAI
	state.App.OpenAIAPIKey = "sk-1"

	require.NoError(t, saveEnv(dir, state))
	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "OPENAI_API_KEY=sk-1")

	assert.Error(t, saveEnv(dir, state), "existing .env is not overwritten")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte("min_length: 150\n"), 0644))
	require.NoError(t, writeDefaults(dir))

	rules, err := os.ReadFile(filepath.Join(dir, "rules.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "min_length: 150\n", string(rules))
	_, err = os.Stat(filepath.Join(dir, "prompt.tmpl"))
	assert.NoError(t, err)
}
