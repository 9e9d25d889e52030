package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCommand(t *testing.T) {
	assert.Equal(t, "/usage", toCommand(" /usage "))
	assert.Equal(t, "/generate Jane Doe | Acme", toCommand("Jane Doe | Acme"))
	assert.Equal(t, "", toCommand("   "))
}

func TestSplitHTML(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		assert.Equal(t, []string{"hello"}, splitHTML("hello", 10))
	})

	t.Run("splits at newline", func(t *testing.T) {
		text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 8)
		assert.Equal(t, []string{strings.Repeat("a", 8), strings.Repeat("b", 8)}, splitHTML(text, 10))
	})

	t.Run("hard split without newline", func(t *testing.T) {
		chunks := splitHTML(strings.Repeat("x", 25), 10)
		assert.Equal(t, []string{strings.Repeat("x", 10), strings.Repeat("x", 10), strings.Repeat("x", 5)}, chunks)
	})
}
