package core

import "context"

// OutreachService is what the front ends need from the message generator.
type OutreachService interface {
	SearchContent(ctx context.Context, p Person) (*ResultSet, error)
	Generate(ctx context.Context, p Person, manual *ResultSet) (*ResultSet, *GeneratedMessage, error)
	History(ctx context.Context) ([]GeneratedMessage, error)
	HistoryAt(ctx context.Context, index int) (GeneratedMessage, error)
	Usage() []UsageStat
	Reset(ctx context.Context) error
}
