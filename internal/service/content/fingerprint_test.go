package content

import (
	"testing"

	"github.com/sandevgo/reachout/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	p := core.Person{Name: "  Jane   DOE ", Company: "Acme", Designation: "CTO"}

	assert.Equal(t, "broad|jane doe|acme|cto", Fingerprint(TagBroad, p))
	assert.Equal(t, Fingerprint(TagBroad, p), Fingerprint(TagBroad, core.Person{Name: "jane doe", Company: "ACME", Designation: "cto"}))
	assert.NotEqual(t, Fingerprint(TagBroad, p), Fingerprint(TagAuthor, p))
	assert.Equal(t, "author|jane doe||", Fingerprint(TagAuthor, core.Person{Name: "Jane Doe"}))
}
