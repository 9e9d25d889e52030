package core

import (
	"strings"
	"time"
)

// ManualSourceLabel marks items typed in by the user instead of retrieved.
const ManualSourceLabel = "Manual Input"

// Person identifies who a message is written for. Company and Designation are optional.
type Person struct {
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Designation string `json:"designation,omitempty"`
}

func (p Person) Normalized() Person {
	return Person{
		Name:        strings.TrimSpace(p.Name),
		Company:     strings.TrimSpace(p.Company),
		Designation: strings.TrimSpace(p.Designation),
	}
}

// SearchQuery is one sub-query sent to a retrieval provider.
type SearchQuery struct {
	Text        string
	MaxResults  int
	RecencyDays int // 0 means no recency window
}

// RawRecord is a retrieved record before relevance filtering.
type RawRecord struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
}

// SourceItem is one piece of content that can be referenced by a message.
type SourceItem struct {
	Title         string `json:"title"`
	Snippet       string `json:"snippet"`
	URL           string `json:"url,omitempty"`
	PublishedDate string `json:"published_date,omitempty"`
	SourceLabel   string `json:"source_label,omitempty"`
}

// ResultSet keeps items in retrieval order. It is shared by pointer between the
// cache and its callers and must not be modified after it is built.
type ResultSet struct {
	Items       []SourceItem `json:"items"`
	Query       string       `json:"query"`
	Fingerprint string       `json:"fingerprint"`
	FetchedAt   time.Time    `json:"fetched_at"`
	Notices     []string     `json:"notices,omitempty"`
}

func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

func (r *ResultSet) Empty() bool {
	return r.Len() == 0
}

// NewManualResultSet wraps user-supplied content into a single-item result set.
func NewManualResultSet(title, snippet string) *ResultSet {
	return &ResultSet{
		Items: []SourceItem{{
			Title:       strings.TrimSpace(title),
			Snippet:     strings.TrimSpace(snippet),
			SourceLabel: ManualSourceLabel,
		}},
		Query:     "manual",
		FetchedAt: time.Now(),
	}
}

type GeneratedMessage struct {
	ID            string    `json:"id"`
	Index         int       `json:"index"`
	Text          string    `json:"text"`
	SourceTitle   string    `json:"source_title,omitempty"`
	SourceSnippet string    `json:"source_snippet,omitempty"`
	SourceURL     string    `json:"source_url,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// UsageStat is the number of successful calls made to one external service.
type UsageStat struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
	Limit   int    `json:"limit,omitempty"`
}

func (u UsageStat) OverLimit() bool {
	return u.Limit > 0 && u.Count > u.Limit
}
