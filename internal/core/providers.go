package core

import "context"

type AIProvider interface {
	Name() string
	Chat(ctx context.Context, history []Message, opts ChatOptions) (Message, error)
}

type Searcher interface {
	Name() string
	Search(ctx context.Context, q SearchQuery) ([]RawRecord, error)
}
