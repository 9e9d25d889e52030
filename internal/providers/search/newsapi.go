package search

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/sandevgo/reachout/internal/core"
)

type NewsAPI struct {
	baseSearcher
}

func NewNewsAPI(apiKey string, timeout time.Duration) *NewsAPI {
	return newNewsAPI("https://newsapi.org", apiKey, timeout)
}

func newNewsAPI(baseURL, apiKey string, timeout time.Duration) *NewsAPI {
	return &NewsAPI{baseSearcher: newBaseSearcher(core.ServiceNewsAPI, baseURL, apiKey, timeout)}
}

func (n *NewsAPI) Search(ctx context.Context, q core.SearchQuery) ([]core.RawRecord, error) {
	params := url.Values{
		"q":        {q.Text},
		"pageSize": {strconv.Itoa(limit(q.MaxResults))},
		"sortBy":   {"publishedAt"},
		"apiKey":   {n.apiKey},
	}
	if q.RecencyDays > 0 {
		params.Set("from", since(q.RecencyDays).Format(time.DateOnly))
	}

	var resp struct {
		Status       string `json:"status"`
		Message      string `json:"message"`
		TotalResults int    `json:"totalResults"`
		Articles     []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := n.getJSON(ctx, "/v2/everything", params, &resp); err != nil {
		return nil, n.fail(q, err)
	}
	if resp.Status != "ok" {
		return nil, n.fail(q, errors.New(resp.Message))
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
