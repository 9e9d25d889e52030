package outreach

import (
	"context"
	"fmt"

	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/internal/service/content"
)

// Session is the state shared by every request of one process: search cache,
// rotation counter, usage counters and message history.
type Session struct {
	Cache    *content.Cache
	Rotation *content.Rotation
	Usage    *Usage
	History  core.HistoryRepository
}

func NewSession(cache *content.Cache, usage *Usage, history core.HistoryRepository) *Session {
	return &Session{
		Cache:    cache,
		Rotation: content.NewRotation(),
		Usage:    usage,
		History:  history,
	}
}

// Reset clears all session state.
func (s *Session) Reset(ctx context.Context) error {
	s.Cache.Purge()
	s.Rotation.Reset()
	s.Usage.Reset()
	if err := s.History.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	return nil
}
