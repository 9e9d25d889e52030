package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCommand(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/help", "/help"},
		{"/generate Jane Doe | Acme", "/generate Jane Doe | Acme"},
		{"Jane Doe", "/generate Jane Doe"},
		{"Jane Doe | Acme | CTO", "/generate Jane Doe | Acme | CTO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toCommand(tt.in))
	}
}
