package outreach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/internal/service/content"
	"github.com/sandevgo/reachout/internal/service/enforcer"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	name    string
	mu      sync.Mutex
	queries []core.SearchQuery
	respond func(q core.SearchQuery) ([]core.RawRecord, error)
}

func (f *fakeSearcher) Name() string { return f.name }

func (f *fakeSearcher) Search(_ context.Context, q core.SearchQuery) ([]core.RawRecord, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if f.respond == nil {
		return nil, nil
	}
	return f.respond(q)
}

func (f *fakeSearcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

type fakeProvider struct {
	draft   string
	err     error
	prompts []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Chat(_ context.Context, history []core.Message, _ core.ChatOptions) (core.Message, error) {
	var sb strings.Builder
	for _, m := range history {
		sb.WriteString(m.Content)
	}
	f.prompts = append(f.prompts, sb.String())
	if f.err != nil {
		return core.Message{}, f.err
	}
	return core.Message{Role: core.RoleAssistant, Content: f.draft}, nil
}

func (f *fakeProvider) lastPrompt() string {
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

type memHistory struct {
	mu       sync.Mutex
	messages []core.GeneratedMessage
}

func (h *memHistory) Append(_ context.Context, msg core.GeneratedMessage) (core.GeneratedMessage, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	msg.Index = len(h.messages)
	msg.ID = fmt.Sprintf("msg-%d", msg.Index)
	h.messages = append(h.messages, msg)
	return msg, nil
}

func (h *memHistory) At(_ context.Context, index int) (core.GeneratedMessage, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index >= len(h.messages) {
		return core.GeneratedMessage{}, core.ErrHistoryIndex
	}
	return h.messages[index], nil
}

func (h *memHistory) List(_ context.Context) ([]core.GeneratedMessage, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]core.GeneratedMessage(nil), h.messages...), nil
}

func (h *memHistory) Count(_ context.Context) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages), nil
}

func (h *memHistory) Clear(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
	return nil
}

type fixedPicker struct{}

func (fixedPicker) IntN(int) int { return 0 }

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	svc      *Service
	provider *fakeProvider
	history  *memHistory
	session  *Session
	clock    *testClock
}

func newFixture(t *testing.T, searchers ...core.Searcher) *fixture {
	t.Helper()

	rules, err := config.DefaultRules()
	require.NoError(t, err)
	text, err := config.LoadPromptTemplate("")
	require.NoError(t, err)
	prompt, err := NewPromptBuilder(text, rules, 0, nil)
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	history := &memHistory{}
	session := NewSession(
		content.NewCache(time.Hour, 16, content.WithClock(clock.Now)),
		NewUsage(map[string]int{"news": 1, core.ServiceLLM: 1000}),
		history,
	)
	provider := &fakeProvider{draft: "Hi Jane, loved your talk. Would love to connect."}

	svc := NewService(searchers, provider, enforcer.New(rules, fixedPicker{}), prompt, session, Options{
		MaxResults:        5,
		AuthorRecencyDays: 30,
		Chat:              core.ChatOptions{MaxTokens: 150, Temperature: 0.7},
	})
	svc.now = clock.Now

	return &fixture{svc: svc, provider: provider, history: history, session: session, clock: clock}
}

func records(name string, urls ...string) func(core.SearchQuery) ([]core.RawRecord, error) {
	return func(core.SearchQuery) ([]core.RawRecord, error) {
		out := make([]core.RawRecord, 0, len(urls))
		for i, u := range urls {
			out = append(out, core.RawRecord{
				Title:  fmt.Sprintf("%s story %d", name, i),
				Body:   "body",
				URL:    u,
				Source: "test",
			})
		}
		return out, nil
	}
}

func failing(msg string) func(core.SearchQuery) ([]core.RawRecord, error) {
	return func(core.SearchQuery) ([]core.RawRecord, error) {
		return nil, errors.New(msg)
	}
}
