package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	r, err := DefaultRules()
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	assert.Equal(t, 200, r.MinLength)
	assert.Equal(t, 270, r.MaxLength)
	assert.Equal(t, 240, r.MaxMainLength)
	assert.Equal(t, "Would love to connect.", r.CanonicalClosing)
	assert.Contains(t, r.BannedPhrases, "Impressive")
	assert.Len(t, r.ConnectPhrases, 4)
	assert.NotEmpty(t, r.Fillers)
	assert.NotEmpty(t, r.Examples)
}

func TestLoadRules_MissingFileUsesDefaults(t *testing.T) {
	r, err := LoadRules(filepath.Join(t.TempDir(), "rules.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Would love to connect.", r.CanonicalClosing)
}

func TestLoadRules_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "sender_names:\n  - Jordan\nbanned_phrases:\n  - synergy\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jordan"}, r.SenderNames)
	assert.Equal(t, []string{"synergy"}, r.BannedPhrases)
	// untouched keys keep their defaults
	assert.Equal(t, 270, r.MaxLength)
	assert.Len(t, r.ConnectPhrases, 4)
}

func TestLoadRules_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "inverted window",
			content: "min_length: 300\n",
			wantErr: "invalid length window",
		},
		{
			name:    "filler with banned phrase",
			content: "fillers:\n  - Truly impressive work.\n",
			wantErr: "contains banned phrase",
		},
		{
			name:    "banned connect",
			content: "banned_phrases:\n  - connect\n",
			wantErr: "call to action",
		},
		{
			name:    "closing without phrase",
			content: "canonical_closing: Cheers.\n",
			wantErr: "must contain a connect phrase",
		},
		{
			name:    "broken yaml",
			content: "fillers: [\n",
			wantErr: "parsing rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadRules(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRules_HasConnectPhrase(t *testing.T) {
	r, err := DefaultRules()
	require.NoError(t, err)

	assert.True(t, r.HasConnectPhrase("Hi, LET'S CONNECT soon"))
	assert.True(t, r.HasConnectPhrase("I'd love to connect."))
	assert.False(t, r.HasConnectPhrase("Hope we can connect"))
}

func TestLoadPromptTemplate(t *testing.T) {
	dir := t.TempDir()

	embedded, err := LoadPromptTemplate(filepath.Join(dir, "prompt.tmpl"))
	require.NoError(t, err)
	assert.Contains(t, embedded, "{{.Name}}")

	path := filepath.Join(dir, "custom.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("Write to {{.Name}}"), 0o644))
	custom, err := LoadPromptTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "Write to {{.Name}}", custom)
}
