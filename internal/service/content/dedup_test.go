package content

import (
	"testing"

	"github.com/sandevgo/reachout/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name      string
		person    string
		records   []core.RawRecord
		wantTitle []string
	}{
		{
			name:      "empty_input",
			person:    "Jane Doe",
			wantTitle: []string{},
		},
		{
			name:   "first_url_wins",
			person: "Jane Doe",
			records: []core.RawRecord{
				{Title: "Jane Doe on pricing", URL: "https://a.example/1"},
				{Title: "Jane Doe again", URL: "https://a.example/1"},
				{Title: "Jane Doe elsewhere", URL: "https://b.example/2"},
			},
			wantTitle: []string{"Jane Doe on pricing", "Jane Doe elsewhere"},
		},
		{
			name:   "empty_urls_never_collide",
			person: "Jane Doe",
			records: []core.RawRecord{
				{Title: "Jane Doe one"},
				{Title: "Jane Doe two"},
			},
			wantTitle: []string{"Jane Doe one", "Jane Doe two"},
		},
		{
			name:   "relevance_by_title_or_body",
			person: "jane doe",
			records: []core.RawRecord{
				{Title: "Unrelated", Body: "nothing here", URL: "https://a.example/1"},
				{Title: "Quarterly notes", Body: "An interview with JANE DOE", URL: "https://a.example/2"},
				{Title: "Jane Doe talks", URL: "https://a.example/3"},
			},
			wantTitle: []string{"Quarterly notes", "Jane Doe talks"},
		},
		{
			name:   "irrelevant_record_does_not_claim_url",
			person: "Jane Doe",
			records: []core.RawRecord{
				{Title: "Other person", URL: "https://a.example/1"},
				{Title: "Jane Doe", URL: "https://a.example/1"},
			},
			wantTitle: []string{"Jane Doe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Dedupe(tt.person, tt.records)

			titles := make([]string, 0, len(items))
			for _, it := range items {
				titles = append(titles, it.Title)
			}
			assert.Equal(t, tt.wantTitle, titles)
		})
	}
}

func TestDedupe_CopiesFields(t *testing.T) {
	items := Dedupe("Ada", []core.RawRecord{{
		Title:         "Ada ships",
		Body:          "body",
		URL:           "https://a.example",
		PublishedDate: "2026-01-02",
		Source:        "GNews",
	}})

	assert.Equal(t, []core.SourceItem{{
		Title:         "Ada ships",
		Snippet:       "body",
		URL:           "https://a.example",
		PublishedDate: "2026-01-02",
		SourceLabel:   "GNews",
	}}, items)
}
