package installer

import (
	"fmt"
	"net/url"

	"github.com/sandevgo/reachout/internal/config"
)

var keyPlaceholders = map[string]string{
	config.ProviderGroq:       "gsk_...",
	config.ProviderOpenAI:     "sk-...",
	config.ProviderAnthropic:  "sk-ant-...",
	config.ProviderOpenRouter: "sk-or-v1-...",
	config.ProviderCustom:     "optional",
	config.ProviderOllama:     "optional",
}

func providerIs(names ...string) func(*InstallState) bool {
	return func(state *InstallState) bool {
		for _, n := range names {
			if state.App.Provider == n {
				return true
			}
		}
		return false
	}
}

func providerIsNot(names ...string) func(*InstallState) bool {
	is := providerIs(names...)
	return func(state *InstallState) bool { return !is(state) }
}

func parseBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%q is not an absolute URL", raw)
	}
	return raw, nil
}

func NewCustomURLStep() Step {
	return newInputStep("the base URL of the OpenAI compatible API", "https://api.example.com", func(state *InstallState, val string) error {
		u, err := parseBaseURL(val)
		if err != nil {
			return err
		}
		state.App.CustomOpenAIBaseURL = u
		return nil
	}, skipWhen(providerIsNot(config.ProviderCustom)))
}

func NewOllamaURLStep() Step {
	return newInputStep("the Ollama base URL", "http://localhost:11434", func(state *InstallState, val string) error {
		u, err := parseBaseURL(val)
		if err != nil {
			return err
		}
		state.App.OllamaBaseURL = u
		return nil
	}, optional(), skipWhen(providerIsNot(config.ProviderOllama)))
}

// NewAPIKeyStep asks for the key of the selected provider. Local and custom
// endpoints may not need one.
func NewAPIKeyStep() Step {
	return &lazyStep{build: func(state *InstallState) Step {
		p := state.App.Provider
		opts := []inputOption{secret()}
		if p == config.ProviderOllama || p == config.ProviderCustom {
			opts = append(opts, optional())
		}
		return newInputStep(p+" API key", keyPlaceholders[p], func(state *InstallState, val string) error {
			return setAPIKey(&state.App, val)
		}, opts...)
	}}
}

func setAPIKey(c *config.AppConfig, key string) error {
	switch c.Provider {
	case config.ProviderGroq:
		c.GroqAPIKey = key
	case config.ProviderOpenAI:
		c.OpenAIAPIKey = key
	case config.ProviderAnthropic:
		c.AnthropicAPIKey = key
	case config.ProviderOpenRouter:
		c.OpenRouterAPIKey = key
	case config.ProviderOllama:
		c.OllamaAPIKey = key
	case config.ProviderCustom:
		c.CustomOpenAIAPIKey = key
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}
