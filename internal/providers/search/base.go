package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sandevgo/reachout/internal/core"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 2 << 20
)

var (
	textPolicy = bluemonday.StrictPolicy()
	now        = time.Now
)

type baseSearcher struct {
	client  *http.Client
	name    string
	baseURL string
	apiKey  string
}

func newBaseSearcher(name, baseURL, apiKey string, timeout time.Duration) baseSearcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return baseSearcher{
		client:  &http.Client{Timeout: timeout},
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (b *baseSearcher) Name() string {
	return b.name
}

func (b *baseSearcher) fail(q core.SearchQuery, err error) error {
	return &core.RetrievalError{Provider: b.name, Query: q.Text, Err: err}
}

func (b *baseSearcher) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := b.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return b.do(req, out)
}

func (b *baseSearcher) postJSON(ctx context.Context, path string, body any, headers map[string]string, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return b.do(req, out)
}

func (b *baseSearcher) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", core.AppUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http %d: %s", resp.StatusCode, truncate(string(data), 200))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// cleanText strips markup from API supplied titles and descriptions.
func cleanText(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(textPolicy.Sanitize(s))), " ")
}

// recent reports whether published falls inside the last days days. Unparseable
// or missing dates are kept.
func recent(published string, days int) bool {
	if days <= 0 || published == "" {
		return true
	}
	for _, layout := range []string{time.RFC3339, time.DateTime, time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, published); err == nil {
			return !t.Before(now().AddDate(0, 0, -days))
		}
	}
	return true
}

func since(days int) time.Time {
	return now().AddDate(0, 0, -days).UTC()
}

func limit(n int) int {
	if n <= 0 {
		return 5
	}
	return n
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
