package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/pkg/log"
)

type SearchConfig struct {
	NewsAPIKey       string `env:"NEWS_API_KEY"`
	NewsdataAPIKey   string `env:"NEWSDATA_API_KEY"`
	GNewsAPIKey      string `env:"GNEWS_API_KEY"`
	TavilyAPIKey     string `env:"TAVILY_API_KEY"`
	EnableGoogleNews bool   `env:"REACH_ENABLE_GOOGLE_NEWS" envDefault:"true"`

	Timeout           time.Duration `env:"REACH_SEARCH_TIMEOUT" envDefault:"10s"`
	MaxResults        int           `env:"REACH_SEARCH_MAX_RESULTS" envDefault:"5"`
	AuthorRecencyDays int           `env:"REACH_AUTHOR_RECENCY_DAYS" envDefault:"30"`

	CacheTTL        time.Duration `env:"REACH_CACHE_TTL" envDefault:"1h"`
	CacheMaxEntries int           `env:"REACH_CACHE_MAX_ENTRIES" envDefault:"512"`

	// Soft limits, a warning is logged once a counter goes past them
	NewsAPILimit    int `env:"REACH_NEWSAPI_LIMIT" envDefault:"900"`
	NewsdataLimit   int `env:"REACH_NEWSDATA_LIMIT" envDefault:"180"`
	GNewsLimit      int `env:"REACH_GNEWS_LIMIT" envDefault:"90"`
	TavilyLimit     int `env:"REACH_TAVILY_LIMIT" envDefault:"100"`
	GoogleNewsLimit int `env:"REACH_GOOGLE_NEWS_LIMIT" envDefault:"500"`
}

func LoadSearchConfig() (*SearchConfig, error) {
	c := &SearchConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func NewSearchConfig(ctx context.Context) *SearchConfig {
	c, err := LoadSearchConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Search config")
	}
	return c
}

func (c SearchConfig) UsageLimits() map[string]int {
	return map[string]int{
		core.ServiceNewsAPI:    c.NewsAPILimit,
		core.ServiceNewsdata:   c.NewsdataLimit,
		core.ServiceGNews:      c.GNewsLimit,
		core.ServiceTavily:     c.TavilyLimit,
		core.ServiceGoogleNews: c.GoogleNewsLimit,
	}
}
