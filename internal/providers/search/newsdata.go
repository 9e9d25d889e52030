package search

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sandevgo/reachout/internal/core"
)

// Newsdata queries the newsdata.io latest news endpoint. It has no date filter on
// the free tier, so the recency window is applied to the results.
type Newsdata struct {
	baseSearcher
}

func NewNewsdata(apiKey string, timeout time.Duration) *Newsdata {
	return newNewsdata("https://newsdata.io", apiKey, timeout)
}

func newNewsdata(baseURL, apiKey string, timeout time.Duration) *Newsdata {
	return &Newsdata{baseSearcher: newBaseSearcher(core.ServiceNewsdata, baseURL, apiKey, timeout)}
}

func (n *Newsdata) Search(ctx context.Context, q core.SearchQuery) ([]core.RawRecord, error) {
	params := url.Values{
		"q":        {q.Text},
		"language": {"en"},
		"apikey":   {n.apiKey},
	}

	var resp struct {
		Status       string `json:"status"`
		TotalResults int    `json:"totalResults"`
		Results      []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Link        string `json:"link"`
			PubDate     string `json:"pubDate"`
			SourceID    string `json:"source_id"`
		} `json:"results"`
	}
	if err := n.getJSON(ctx, "/api/1/news", params, &resp); err != nil {
		return nil, n.fail(q, err)
	}
	if resp.Status != "success" {
		return nil, n.fail(q, fmt.Errorf("status %q", resp.Status))
	}

	records := make([]core.RawRecord, 0, len(resp.Results))
	for _, a := range resp.Results {
		if !recent(a.PubDate, q.RecencyDays) {
			continue
		}
		records = append(records, core.RawRecord{
			Title:         cleanText(a.Title),
			Body:          cleanText(a.Description),
			URL:           a.Link,
			PublishedDate: a.PubDate,
			Source:        a.SourceID,
		})
		if len(records) == limit(q.MaxResults) {
			break
		}
	}
	return records, nil
}
