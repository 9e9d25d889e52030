package content

import (
	"strings"

	"github.com/sandevgo/reachout/internal/core"
)

// Search modes, used as fingerprint prefixes.
const (
	TagBroad  = "broad"
	TagAuthor = "author"
)

// Fingerprint is the cache key of one search for p in the given mode.
func Fingerprint(tag string, p core.Person) string {
	return strings.Join([]string{
		tag,
		normalize(p.Name),
		normalize(p.Company),
		normalize(p.Designation),
	}, "|")
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
