package search

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/reachout/internal/core"
)

type GNews struct {
	baseSearcher
}

func NewGNews(apiKey string, timeout time.Duration) *GNews {
	return newGNews("https://gnews.io", apiKey, timeout)
}

func newGNews(baseURL, apiKey string, timeout time.Duration) *GNews {
	return &GNews{baseSearcher: newBaseSearcher(core.ServiceGNews, baseURL, apiKey, timeout)}
}

func (g *GNews) Search(ctx context.Context, q core.SearchQuery) ([]core.RawRecord, error) {
	params := url.Values{
		"q":      {q.Text},
		"max":    {strconv.Itoa(limit(q.MaxResults))},
		"lang":   {"en"},
		"apikey": {g.apiKey},
	}
	if q.RecencyDays > 0 {
		params.Set("from", since(q.RecencyDays).Format(time.RFC3339))
	}

	var resp struct {
		Errors        []string `json:"errors"`
		TotalArticles int      `json:"totalArticles"`
		Articles      []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := g.getJSON(ctx, "/api/v4/search", params, &resp); err != nil {
		return nil, g.fail(q, err)
	}
	if len(resp.Errors) > 0 {
		return nil, g.fail(q, errors.New(strings.Join(resp.Errors, "; ")))
	}

	records := make([]core.RawRecord, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		records = append(records, core.RawRecord{
			Title:         cleanText(a.Title),
			Body:          cleanText(a.Description),
			URL:           a.URL,
			PublishedDate: a.PublishedAt,
			Source:        a.Source.Name,
		})
	}
	return records, nil
}
