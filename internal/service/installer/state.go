package installer

import (
	"fmt"
	"strings"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/pkg/env"
)

const (
	ChannelCLI      = "Command line only"
	ChannelTelegram = "Telegram"
	ChannelMCP      = "MCP (stdio)"
)

// InstallState collects the answers. Only non-zero fields end up in .env.
type InstallState struct {
	App      config.AppConfig
	Search   config.SearchConfig
	Telegram config.TelegramConfig
	Channel  string
}

func NewInstallState() *InstallState {
	return &InstallState{Channel: ChannelCLI}
}

// RenderEnv produces the .env content for the collected answers.
func (s *InstallState) RenderEnv() (string, error) {
	var parts []string
	for _, section := range []any{&s.App, &s.Search, &s.Telegram} {
		out, err := env.MarshalEnv(section)
		if err != nil {
			return "", fmt.Errorf("rendering env: %w", err)
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n"), nil
}
