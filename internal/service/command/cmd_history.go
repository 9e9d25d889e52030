package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sandevgo/reachout/internal/core"
)

type HistoryCommand struct {
	svc       core.OutreachService
	formatter *ResponseFormatter
}

func NewHistoryCommand(svc core.OutreachService) *HistoryCommand {
	return &HistoryCommand{
		svc:       svc,
		formatter: NewResponseFormatter(),
	}
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "List messages generated in this session"
}

func (c *HistoryCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	list, err := c.svc.History(ctx)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return c.formatter.Info("No messages generated yet"), nil
	}

	lines := make([]string, 0, len(list))
	for _, m := range list {
		lines = append(lines, fmt.Sprintf("#%d %s", m.Index+1, preview(m.Text)))
	}
	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("%d messages", len(list))),
		c.formatter.List(lines),
		c.formatter.Tip("/show <n> prints a message with its source"),
	), nil
}

type ShowCommand struct {
	svc       core.OutreachService
	formatter *ResponseFormatter
}

func NewShowCommand(svc core.OutreachService) *ShowCommand {
	return &ShowCommand{
		svc:       svc,
		formatter: NewResponseFormatter(),
	}
}

func (c *ShowCommand) Name() string {
	return "show"
}

func (c *ShowCommand) Description() string {
	return "Show a previous message"
}

func (c *ShowCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	n, err := strconv.Atoi(firstArg(args))
	if err != nil {
		return c.formatter.Usage("/show <n>"), nil
	}

	// numbered from 1 for people
	msg, err := c.svc.HistoryAt(ctx, n-1)
	if errors.Is(err, core.ErrHistoryIndex) {
		return c.formatter.Info(fmt.Sprintf("No message #%d", n)), nil
	}
	if err != nil {
		return "", err
	}

	return c.formatter.Combine(
		c.formatter.Message(msg),
		c.formatter.Source(msg.SourceTitle, msg.SourceSnippet, msg.SourceURL, ""),
	), nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
