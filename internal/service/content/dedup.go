package content

import (
	"strings"

	"github.com/sandevgo/reachout/internal/core"
)

// Dedupe keeps, in arrival order, the records that mention personName in their
// title or body, dropping any record whose non-empty URL was already seen.
// Records without a URL are never treated as duplicates of each other.
func Dedupe(personName string, records []core.RawRecord) []core.SourceItem {
	name := strings.ToLower(personName)
	seen := make(map[string]struct{}, len(records))
	items := make([]core.SourceItem, 0, len(records))

	for _, r := range records {
		if !strings.Contains(strings.ToLower(r.Title), name) && !strings.Contains(strings.ToLower(r.Body), name) {
			continue
		}
		if r.URL != "" {
			if _, dup := seen[r.URL]; dup {
				continue
			}
			seen[r.URL] = struct{}{}
		}
		items = append(items, core.SourceItem{
			Title:         r.Title,
			Snippet:       r.Body,
			URL:           r.URL,
			PublishedDate: r.PublishedDate,
			SourceLabel:   r.Source,
		})
	}
	return items
}
