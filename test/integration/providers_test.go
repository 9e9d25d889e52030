//go:build integration

package integration

import (
	"testing"
	"time"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/internal/providers/llm"
	"github.com/sandevgo/reachout/internal/providers/search"
	"github.com/sandevgo/reachout/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProviders(t *testing.T) {
	ctx := test.LoadEnv(t)

	cfg, err := config.LoadSearchConfig()
	require.NoError(t, err)

	for _, s := range search.NewSearchers(ctx, cfg) {
		t.Run(s.Name(), func(t *testing.T) {
			records, err := s.Search(ctx, core.SearchQuery{Text: "OpenAI", MaxResults: 3, RecencyDays: 30})
			require.NoError(t, err)
			assert.NotEmpty(t, records)
			for _, r := range records {
				assert.NotEmpty(t, r.Title)
			}
		})
	}
}

func TestLLMProvider(t *testing.T) {
	ctx := test.LoadEnv(t)

	cfg, err := config.LoadAppConfig()
	require.NoError(t, err)
	if cfg.GetAPIKey() == "" && cfg.GetProvider() != config.ProviderOllama {
		t.Skipf("no API key for %s", cfg.GetProvider())
	}
	cfg.LLMTimeout = 30 * time.Second

	ai, err := llm.NewProvider(ctx, cfg)
	require.NoError(t, err)

	msg, err := ai.Chat(ctx, []core.Message{{Role: core.RoleUser, Content: "Reply with the single word: ready"}},
		core.ChatOptions{MaxTokens: 10, Temperature: 0})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.Content)
}
