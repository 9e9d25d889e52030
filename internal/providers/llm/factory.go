package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/pkg/log"
)

// NewProvider creates the appropriate AIProvider based on configuration.
func NewProvider(ctx context.Context, cfg core.ProviderConfig) (core.AIProvider, error) {
	provider, model, timeout := cfg.GetProvider(), cfg.GetModel(), cfg.GetTimeout()

	log.FromCtx(ctx).Info().
		Str("provider", provider).
		Str("model", model).
		Msg("starting llm provider")

	switch provider {
	case config.ProviderGroq:
		return NewGroq(cfg.GetAPIKey(), model, timeout), nil
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.GetAPIKey(), model, timeout), nil
	case config.ProviderAnthropic:
		return NewAnthropic(cfg.GetAPIKey(), model, timeout), nil
	case config.ProviderOpenRouter:
		return NewOpenRouter(cfg.GetAPIKey(), model, timeout), nil
	case config.ProviderOllama:
		return NewOllama(cfg.GetBaseURL(), cfg.GetAPIKey(), model, timeout), nil
	case config.ProviderCustom:
		if cfg.GetBaseURL() == "" {
			return nil, fmt.Errorf("custom llm provider requires a base url")
		}
		return NewCustomOpenAI(cfg.GetBaseURL(), cfg.GetAPIKey(), model, timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
