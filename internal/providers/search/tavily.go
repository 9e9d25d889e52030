package search

import (
	"context"
	"time"

	"github.com/sandevgo/reachout/internal/core"
)

type Tavily struct {
	baseSearcher
}

func NewTavily(apiKey string, timeout time.Duration) *Tavily {
	return newTavily("https://api.tavily.com", apiKey, timeout)
}

func newTavily(baseURL, apiKey string, timeout time.Duration) *Tavily {
	return &Tavily{baseSearcher: newBaseSearcher(core.ServiceTavily, baseURL, apiKey, timeout)}
}

func (t *Tavily) Search(ctx context.Context, q core.SearchQuery) ([]core.RawRecord, error) {
	body := map[string]any{
		"query":       q.Text,
		"max_results": limit(q.MaxResults),
	}
	if q.RecencyDays > 0 {
		body["topic"] = "news"
		body["days"] = q.RecencyDays
	}

	var resp struct {
		Results []struct {
			Title         string  `json:"title"`
			URL           string  `json:"url"`
			Content       string  `json:"content"`
			PublishedDate string  `json:"published_date"`
			Score         float64 `json:"score"`
		} `json:"results"`
	}
	headers := map[string]string{"Authorization": "Bearer " + t.apiKey}
	if err := t.postJSON(ctx, "/search", body, headers, &resp); err != nil {
		return nil, t.fail(q, err)
	}

	records := make([]core.RawRecord, 0, len(resp.Results))
	for _, r := range resp.Results {
		records = append(records, core.RawRecord{
			Title:         cleanText(r.Title),
			Body:          cleanText(r.Content),
			URL:           r.URL,
			PublishedDate: r.PublishedDate,
			Source:        core.ServiceTavily,
		})
		if len(records) == limit(q.MaxResults) {
			break
		}
	}
	return records, nil
}
