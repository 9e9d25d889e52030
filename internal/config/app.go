package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/reachout/pkg/log"
)

const (
	ProviderGroq       = "groq"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderCustom     = "custom"
)

var defaultModels = map[string]string{
	ProviderGroq:       "llama-3.3-70b-versatile",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderAnthropic:  "claude-haiku-4-5-20251001",
	ProviderOpenRouter: "google/gemma-3-27b-it:free",
	ProviderOllama:     "llama3.2",
}

type AppConfig struct {
	RuntimePath string

	Provider string `env:"REACH_LLM_PROVIDER" envDefault:"groq"`
	Model    string `env:"REACH_LLM_MODEL"`

	GroqAPIKey          string `env:"GROQ_API_KEY"`
	OpenAIAPIKey        string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey     string `env:"ANTHROPIC_API_KEY"`
	OpenRouterAPIKey    string `env:"OPENROUTER_API_KEY"`
	OllamaAPIKey        string `env:"OLLAMA_API_KEY"`
	OllamaBaseURL       string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY"`

	LLMTimeout          time.Duration `env:"REACH_LLM_TIMEOUT" envDefault:"60s"`
	MaxTokens           int           `env:"REACH_MAX_TOKENS" envDefault:"150"`
	Temperature         float32       `env:"REACH_TEMPERATURE" envDefault:"0.7"`
	PromptContextTokens int           `env:"REACH_PROMPT_CONTEXT_TOKENS" envDefault:"400"`
	LLMUsageLimit       int           `env:"REACH_LLM_USAGE_LIMIT" envDefault:"1000"`

	// Transport flags
	EnableTelegram bool `env:"REACH_ENABLE_TELEGRAM" envDefault:"false"`
	EnableMCP      bool `env:"REACH_ENABLE_MCP" envDefault:"false"`
}

func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{RuntimePath: GetRuntimePath()}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := LoadAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetRulesPath() string {
	return filepath.Join(c.RuntimePath, "rules.yaml")
}

func (c AppConfig) GetPromptPath() string {
	return filepath.Join(c.RuntimePath, "prompt.tmpl")
}

func (c AppConfig) GetInputHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetProvider() string {
	return c.Provider
}

func (c AppConfig) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel(c.Provider)
}

// DefaultModel is the model used for provider when REACH_LLM_MODEL is unset.
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

func (c AppConfig) GetAPIKey() string {
	switch c.Provider {
	case ProviderGroq:
		return c.GroqAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	case ProviderOpenRouter:
		return c.OpenRouterAPIKey
	case ProviderOllama:
		return c.OllamaAPIKey
	case ProviderCustom:
		return c.CustomOpenAIAPIKey
	}
	return ""
}

func (c AppConfig) GetBaseURL() string {
	switch c.Provider {
	case ProviderOllama:
		return c.OllamaBaseURL
	case ProviderCustom:
		return c.CustomOpenAIBaseURL
	}
	return ""
}

func (c AppConfig) GetTimeout() time.Duration {
	return c.LLMTimeout
}
