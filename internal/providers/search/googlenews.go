package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/inbucket/html2text"
	"github.com/mmcdole/gofeed"
	"github.com/sandevgo/reachout/internal/core"
)

// GoogleNews reads the public Google News RSS search feed. It needs no key and is
// the last provider tried.
type GoogleNews struct {
	baseSearcher
	parser *gofeed.Parser
}

func NewGoogleNews(timeout time.Duration) *GoogleNews {
	return newGoogleNews("https://news.google.com", timeout)
}

func newGoogleNews(baseURL string, timeout time.Duration) *GoogleNews {
	g := &GoogleNews{
		baseSearcher: newBaseSearcher(core.ServiceGoogleNews, baseURL, "", timeout),
		parser:       gofeed.NewParser(),
	}
	g.parser.Client = g.client
	g.parser.UserAgent = core.AppUserAgent
	return g
}

func (g *GoogleNews) Search(ctx context.Context, q core.SearchQuery) ([]core.RawRecord, error) {
	text := q.Text
	if q.RecencyDays > 0 {
		text = fmt.Sprintf("%s when:%dd", text, q.RecencyDays)
	}
	params := url.Values{
		"q":    {text},
		"hl":   {"en-US"},
		"gl":   {"US"},
		"ceid": {"US:en"},
	}

	feed, err := g.parser.ParseURLWithContext(g.baseURL+"/rss/search?"+params.Encode(), ctx)
	if err != nil {
		return nil, g.fail(q, err)
	}

	records := make([]core.RawRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		var published string
		if item.PublishedParsed != nil {
			if !recent(item.PublishedParsed.Format(time.RFC3339), q.RecencyDays) {
				continue
			}
			published = item.PublishedParsed.UTC().Format(time.RFC3339)
		}

		title, source := splitPublisher(item.Title)
		records = append(records, core.RawRecord{
			Title:         title,
			Body:          feedText(item.Description),
			URL:           item.Link,
			PublishedDate: published,
			Source:        source,
		})
		if len(records) == limit(q.MaxResults) {
			break
		}
	}
	return records, nil
}

func feedText(description string) string {
	text, err := html2text.FromString(description, html2text.Options{OmitLinks: true})
	if err != nil {
		return cleanText(description)
	}
	return strings.Join(strings.Fields(text), " ")
}

// splitPublisher splits the "Headline - Publisher" titles used by the feed.
func splitPublisher(title string) (string, string) {
	title = strings.TrimSpace(title)
	if i := strings.LastIndex(title, " - "); i > 0 {
		return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+3:])
	}
	return title, core.ServiceGoogleNews
}
