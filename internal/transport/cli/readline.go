package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/pkg/conv"
	"github.com/sandevgo/reachout/pkg/log"
)

const defaultSessionID = "cli-local"

type ReadLine struct {
	cfg    *config.AppConfig
	router core.CmdRouter
	rl     *readline.Instance
}

func NewReadLine(router core.CmdRouter, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "reach> ",
		HistoryFile:     cfg.GetInputHistoryPath(),
		AutoComplete:    completer(router),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		router: router,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	fmt.Fprintln(r.rl.Stdout(), "Type a name to write a message, /help for commands, 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}

		out, ok := r.router.Execute(ctx, defaultSessionID, toCommand(line))
		if !ok {
			logger.Warn().Str("input", line).Msg("input not routed")
			continue
		}
		fmt.Fprintln(r.rl.Stdout(), conv.MarkdownToText(out))
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// toCommand treats a line that is not a command as "name [| company [| designation]]".
func toCommand(line string) string {
	if strings.HasPrefix(line, "/") {
		return line
	}
	return "/generate " + line
}

func completer(router core.CmdRouter) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range router.ListCommands() {
		items = append(items, readline.PcItem("/"+cmd.Name()))
	}
	return readline.NewPrefixCompleter(items...)
}
