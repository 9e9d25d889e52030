package core

import "context"

type HistoryRepository interface {
	Append(ctx context.Context, msg GeneratedMessage) (GeneratedMessage, error)
	At(ctx context.Context, index int) (GeneratedMessage, error)
	List(ctx context.Context) ([]GeneratedMessage, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
