package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	people []core.Person
	manual *core.ResultSet
}

func (f *fakeService) SearchContent(_ context.Context, p core.Person) (*core.ResultSet, error) {
	f.people = append(f.people, p)
	return &core.ResultSet{
		Items:   []core.SourceItem{{Title: "Scaling queues", Snippet: "Notes on backpressure", SourceLabel: "NewsAPI"}},
		Query:   p.Name,
		Notices: []string{"GNews search: http 429"},
	}, nil
}

func (f *fakeService) Generate(_ context.Context, p core.Person, manual *core.ResultSet) (*core.ResultSet, *core.GeneratedMessage, error) {
	f.people = append(f.people, p)
	f.manual = manual
	rs := manual
	if rs == nil {
		rs = &core.ResultSet{Notices: []string{"no content"}}
	}
	return rs, &core.GeneratedMessage{Text: "Hi. Would love to connect."}, nil
}

func (f *fakeService) History(context.Context) ([]core.GeneratedMessage, error) { return nil, nil }

func (f *fakeService) HistoryAt(context.Context, int) (core.GeneratedMessage, error) {
	return core.GeneratedMessage{}, core.ErrHistoryIndex
}

func (f *fakeService) Usage() []core.UsageStat {
	return []core.UsageStat{{Service: core.ServiceLLM, Count: 2, Limit: 10}}
}

func (f *fakeService) Reset(context.Context) error { return nil }

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestSearchContent(t *testing.T) {
	svc := &fakeService{}
	s := NewServer(svc, "test")

	res, err := s.searchContent(context.Background(), request(map[string]any{
		"name": "  Jane Doe ", "company": "Acme",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var rs core.ResultSet
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &rs))
	assert.Len(t, rs.Items, 1)
	assert.Equal(t, []core.Person{{Name: "Jane Doe", Company: "Acme"}}, svc.people)
}

func TestSearchContent_MissingName(t *testing.T) {
	s := NewServer(&fakeService{}, "test")

	for _, args := range []map[string]any{{}, {"name": "   "}} {
		res, err := s.searchContent(context.Background(), request(args))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	}
}

func TestGenerateMessage(t *testing.T) {
	t.Run("manual content", func(t *testing.T) {
		svc := &fakeService{}
		s := NewServer(svc, "test")

		res, err := s.generateMessage(context.Background(), request(map[string]any{
			"name": "Jane", "title": "Platform teams", "snippet": "From one team to five",
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		require.NotNil(t, svc.manual)
		assert.Equal(t, core.ManualSourceLabel, svc.manual.Items[0].SourceLabel)

		var out generateResult
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
		assert.Equal(t, "Hi. Would love to connect.", out.Message.Text)
	})

	t.Run("title without snippet", func(t *testing.T) {
		s := NewServer(&fakeService{}, "test")
		res, err := s.generateMessage(context.Background(), request(map[string]any{"name": "Jane", "title": "x"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("retrieved content", func(t *testing.T) {
		svc := &fakeService{}
		s := NewServer(svc, "test")
		res, err := s.generateMessage(context.Background(), request(map[string]any{"name": "Jane"}))
		require.NoError(t, err)
		assert.Nil(t, svc.manual)
		assert.Contains(t, text(t, res), "no content")
	})
}

func TestHistoryAndUsage(t *testing.T) {
	s := NewServer(&fakeService{}, "test")

	res, err := s.messageHistory(context.Background(), request(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", text(t, res))

	res, err = s.apiUsage(context.Background(), request(nil))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), `"service": "LLM"`)
}
