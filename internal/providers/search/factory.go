package search

import (
	"context"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/pkg/log"
)

// NewSearchers returns the configured providers in fallback order. Providers
// without a key are left out.
func NewSearchers(ctx context.Context, cfg *config.SearchConfig) []core.Searcher {
	var searchers []core.Searcher
	if cfg.NewsAPIKey != "" {
		searchers = append(searchers, NewNewsAPI(cfg.NewsAPIKey, cfg.Timeout))
	}
	if cfg.NewsdataAPIKey != "" {
		searchers = append(searchers, NewNewsdata(cfg.NewsdataAPIKey, cfg.Timeout))
	}
	if cfg.GNewsAPIKey != "" {
		searchers = append(searchers, NewGNews(cfg.GNewsAPIKey, cfg.Timeout))
	}
	if cfg.TavilyAPIKey != "" {
		searchers = append(searchers, NewTavily(cfg.TavilyAPIKey, cfg.Timeout))
	}
	if cfg.EnableGoogleNews {
		searchers = append(searchers, NewGoogleNews(cfg.Timeout))
	}

	names := make([]string, 0, len(searchers))
	for _, s := range searchers {
		names = append(names, s.Name())
	}
	log.FromCtx(ctx).Info().Strs("providers", names).Msg("search providers configured")

	return searchers
}
