package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/reachout/internal/core"
)

type SearchCommand struct {
	svc       core.OutreachService
	formatter *ResponseFormatter
}

func NewSearchCommand(svc core.OutreachService) *SearchCommand {
	return &SearchCommand{
		svc:       svc,
		formatter: NewResponseFormatter(),
	}
}

func (c *SearchCommand) Name() string {
	return "search"
}

func (c *SearchCommand) Description() string {
	return "Find recent content about a person"
}

func (c *SearchCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	p, err := parsePerson(args)
	if err != nil {
		return c.formatter.Combine(
			c.formatter.Usage("/search <name> [| company [| designation]]"),
			c.formatter.Examples([]string{"/search Jane Doe | Acme | CTO"}),
		), nil
	}

	rs, err := c.svc.SearchContent(ctx, p)
	if err != nil {
		return "", err
	}

	if rs.Empty() {
		return c.formatter.Combine(
			c.formatter.Info(fmt.Sprintf("No recent content found for %s", p.Name)),
			c.formatter.Notices(rs.Notices),
			c.formatter.Tip("use /manual <title> | <snippet> to provide content yourself"),
		), nil
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("Found %d items for %s", rs.Len(), p.Name)),
		c.formatter.Items(rs),
		c.formatter.Notices(rs.Notices),
	), nil
}
