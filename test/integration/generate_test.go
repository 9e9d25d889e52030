//go:build integration

package integration

import (
	"testing"
	"unicode/utf8"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/internal/providers/llm"
	"github.com/sandevgo/reachout/internal/providers/search"
	"github.com/sandevgo/reachout/internal/service/content"
	"github.com/sandevgo/reachout/internal/service/enforcer"
	"github.com/sandevgo/reachout/internal/service/outreach"
	"github.com/sandevgo/reachout/internal/storage/sqlite"
	"github.com/sandevgo/reachout/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEndToEnd(t *testing.T) {
	ctx := test.LoadEnv(t)
	test.RequireEnv(t, "REACH_LLM_PROVIDER")

	appCfg, err := config.LoadAppConfig()
	require.NoError(t, err)
	searchCfg, err := config.LoadSearchConfig()
	require.NoError(t, err)

	rules, err := config.DefaultRules()
	require.NoError(t, err)
	tmpl, err := config.LoadPromptTemplate("")
	require.NoError(t, err)
	prompt, err := outreach.NewPromptBuilder(tmpl, rules, appCfg.PromptContextTokens, nil)
	require.NoError(t, err)

	db, err := sqlite.NewDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ai, err := llm.NewProvider(ctx, appCfg)
	require.NoError(t, err)

	svc := outreach.NewService(
		search.NewSearchers(ctx, searchCfg),
		ai,
		enforcer.New(rules, nil),
		prompt,
		outreach.NewSession(content.NewCache(0, 0), outreach.NewUsage(nil), sqlite.NewHistoryRepo(db)),
		outreach.Options{MaxResults: 5, AuthorRecencyDays: 30, Chat: core.ChatOptions{MaxTokens: 150, Temperature: 0.7}},
	)

	rs, msg, err := svc.Generate(ctx, core.Person{Name: "Sam Altman", Company: "OpenAI"}, nil)
	require.NoError(t, err)
	t.Logf("%d items, notices %v\n%s", rs.Len(), rs.Notices, msg.Text)

	n := utf8.RuneCountInString(msg.Text)
	assert.LessOrEqual(t, n, rules.MaxLength)
	assert.NotContains(t, msg.Text, "OpenAI")

	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
