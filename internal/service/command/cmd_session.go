package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/reachout/internal/core"
)

type UsageCommand struct {
	svc       core.OutreachService
	formatter *ResponseFormatter
}

func NewUsageCommand(svc core.OutreachService) *UsageCommand {
	return &UsageCommand{
		svc:       svc,
		formatter: NewResponseFormatter(),
	}
}

func (c *UsageCommand) Name() string {
	return "usage"
}

func (c *UsageCommand) Description() string {
	return "Show API calls made in this session"
}

func (c *UsageCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	sections := []string{c.formatter.Info("API usage")}
	for _, s := range c.svc.Usage() {
		value := fmt.Sprint(s.Count)
		if s.Limit > 0 {
			value = fmt.Sprintf("%d / %d", s.Count, s.Limit)
		}
		if s.OverLimit() {
			value += " (over limit)"
		}
		sections = append(sections, c.formatter.Label(s.Service, value))
	}
	return c.formatter.Combine(sections...), nil
}

type ResetCommand struct {
	svc       core.OutreachService
	manual    *ManualStore
	formatter *ResponseFormatter
}

func NewResetCommand(svc core.OutreachService, manual *ManualStore) *ResetCommand {
	return &ResetCommand{
		svc:       svc,
		manual:    manual,
		formatter: NewResponseFormatter(),
	}
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Clear cache, history and counters"
}

func (c *ResetCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if err := c.svc.Reset(ctx); err != nil {
		return "", err
	}
	c.manual.Clear()
	return c.formatter.Success("Session cleared"), nil
}
