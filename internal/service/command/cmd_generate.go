package command

import (
	"context"
	"errors"

	"github.com/sandevgo/reachout/internal/core"
)

type GenerateCommand struct {
	svc       core.OutreachService
	manual    *ManualStore
	formatter *ResponseFormatter
}

func NewGenerateCommand(svc core.OutreachService, manual *ManualStore) *GenerateCommand {
	return &GenerateCommand{
		svc:       svc,
		manual:    manual,
		formatter: NewResponseFormatter(),
	}
}

func (c *GenerateCommand) Name() string {
	return "generate"
}

func (c *GenerateCommand) Description() string {
	return "Write an outreach message for a person"
}

func (c *GenerateCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	p, err := parsePerson(args)
	if err != nil {
		return c.formatter.Combine(
			c.formatter.Usage("/generate <name> [| company [| designation]]"),
			c.formatter.Examples([]string{"/generate Jane Doe", "/generate Jane Doe | Acme | CTO"}),
		), nil
	}

	rs, msg, err := c.svc.Generate(ctx, p, c.manual.Take(sessionID))
	if err != nil {
		var ge *core.GenerationError
		if errors.As(err, &ge) {
			return c.formatter.Combine(
				c.formatter.Error(err),
				c.formatter.Tip("check the API key of your LLM provider"),
			), nil
		}
		return "", err
	}

	source := c.formatter.Source(msg.SourceTitle, msg.SourceSnippet, msg.SourceURL, sourceLabel(rs, msg))
	return c.formatter.Combine(
		c.formatter.Message(*msg),
		source,
		c.formatter.Notices(rs.Notices),
	), nil
}

func sourceLabel(rs *core.ResultSet, msg *core.GeneratedMessage) string {
	for _, it := range rs.Items {
		if it.Title == msg.SourceTitle && it.URL == msg.SourceURL {
			return it.SourceLabel
		}
	}
	return ""
}

type ManualCommand struct {
	manual    *ManualStore
	formatter *ResponseFormatter
}

func NewManualCommand(manual *ManualStore) *ManualCommand {
	return &ManualCommand{
		manual:    manual,
		formatter: NewResponseFormatter(),
	}
}

func (c *ManualCommand) Name() string {
	return "manual"
}

func (c *ManualCommand) Description() string {
	return "Provide content for the next /generate"
}

func (c *ManualCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	parts := splitArgs(args)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return c.formatter.Combine(
			c.formatter.Usage("/manual <title> | <snippet>"),
			c.formatter.Examples([]string{"/manual Scaling platform teams | Jane wrote about moving from one team to five"}),
		), nil
	}

	c.manual.Set(sessionID, core.NewManualResultSet(parts[0], parts[1]))
	return c.formatter.Success("Manual content saved, it will be used by the next /generate"), nil
}
