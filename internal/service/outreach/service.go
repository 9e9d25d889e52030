package outreach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/internal/service/content"
	"github.com/sandevgo/reachout/internal/service/enforcer"
	"github.com/sandevgo/reachout/pkg/log"
)

type Options struct {
	MaxResults        int
	AuthorRecencyDays int
	Chat              core.ChatOptions
}

// Service finds recent content about a person and turns it into an outreach
// message.
type Service struct {
	searchers []core.Searcher
	ai        core.AIProvider
	enforcer  *enforcer.Enforcer
	prompt    *PromptBuilder
	session   *Session
	opts      Options
	now       func() time.Time
}

func NewService(
	searchers []core.Searcher,
	ai core.AIProvider,
	enf *enforcer.Enforcer,
	prompt *PromptBuilder,
	session *Session,
	opts Options,
) *Service {
	return &Service{
		searchers: searchers,
		ai:        ai,
		enforcer:  enf,
		prompt:    prompt,
		session:   session,
		opts:      opts,
		now:       time.Now,
	}
}

// SearchContent runs a broad search for p and falls back to an author search
// with a recency window when it finds nothing. Provider failures end up in the
// result's notices; the only error is an empty name.
func (s *Service) SearchContent(ctx context.Context, p core.Person) (*core.ResultSet, error) {
	p = p.Normalized()
	if p.Name == "" {
		return nil, core.ErrEmptyPerson
	}

	rs := s.search(ctx, content.TagBroad, p, broadQueries(p), 0)
	if !rs.Empty() {
		return rs, nil
	}
	return s.search(ctx, content.TagAuthor, p, authorQueries(p), s.opts.AuthorRecencyDays), nil
}

func (s *Service) search(ctx context.Context, tag string, p core.Person, queries []string, recencyDays int) *core.ResultSet {
	logger := log.FromCtx(ctx)
	fp := content.Fingerprint(tag, p)

	if rs, ok := s.session.Cache.Get(fp); ok {
		logger.Debug().Str("fingerprint", fp).Int("items", rs.Len()).Msg("search cache hit")
		return rs
	}

	var records []core.RawRecord
	var notices []string
	for _, text := range queries {
		recs, errs := s.fetch(ctx, core.SearchQuery{
			Text:        text,
			MaxResults:  s.opts.MaxResults,
			RecencyDays: recencyDays,
		})
		records = append(records, recs...)
		for _, err := range errs {
			notices = append(notices, err.Error())
		}
	}

	rs := &core.ResultSet{
		Items:       content.Dedupe(p.Name, records),
		Query:       strings.Join(queries, " | "),
		Fingerprint: fp,
		FetchedAt:   s.now(),
		Notices:     notices,
	}
	s.session.Cache.Put(fp, rs)

	logger.Info().
		Str("mode", tag).
		Int("records", len(records)).
		Int("items", rs.Len()).
		Msg("content search finished")
	return rs
}

// fetch asks each provider in turn and stops at the first one with results.
func (s *Service) fetch(ctx context.Context, q core.SearchQuery) ([]core.RawRecord, []error) {
	logger := log.FromCtx(ctx)

	var errs []error
	for _, searcher := range s.searchers {
		records, err := searcher.Search(ctx, q)
		if err != nil {
			var re *core.RetrievalError
			if !errors.As(err, &re) {
				err = &core.RetrievalError{Provider: searcher.Name(), Query: q.Text, Err: err}
			}
			logger.Warn().Err(err).Str("provider", searcher.Name()).Msg("search provider failed")
			errs = append(errs, err)
			continue
		}

		s.session.Usage.Track(ctx, searcher.Name())
		if len(records) > 0 {
			logger.Debug().Str("provider", searcher.Name()).Int("records", len(records)).Msg("search provider answered")
			return records, errs
		}
	}
	return nil, errs
}

func broadQueries(p core.Person) []string {
	parts := []string{p.Name}
	for _, v := range []string{p.Company, p.Designation} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return []string{strings.Join(parts, " ")}
}

func authorQueries(p core.Person) []string {
	name := `"` + p.Name + `"`
	var queries []string
	for _, v := range []string{p.Company, p.Designation} {
		if v != "" {
			queries = append(queries, name+" "+v)
		}
	}
	if len(queries) == 0 {
		queries = append(queries, name)
	}
	return queries
}

// GenerateMessage drafts a message about the next item of rs in rotation and
// enforces the message rules on it. An empty or nil rs produces a general message.
func (s *Service) GenerateMessage(ctx context.Context, p core.Person, rs *core.ResultSet) (*core.GeneratedMessage, error) {
	logger := log.FromCtx(ctx)

	p = p.Normalized()
	if p.Name == "" {
		return nil, core.ErrEmptyPerson
	}

	var item *core.SourceItem
	if selected, ok := s.session.Rotation.Select(rs); ok {
		item = &selected
	}

	prompt, err := s.prompt.Build(p, item)
	if err != nil {
		return nil, err
	}

	draft, err := s.ai.Chat(ctx, prompt, s.opts.Chat)
	if err != nil {
		logger.Error().Err(err).Str("provider", s.ai.Name()).Msg("message generation failed")
		return nil, &core.GenerationError{Provider: s.ai.Name(), Err: err}
	}
	s.session.Usage.Track(ctx, core.ServiceLLM)

	if banned := s.enforcer.Audit(draft.Content); len(banned) > 0 {
		logger.Debug().Strs("phrases", banned).Msg("draft used banned phrases")
	}

	msg := core.GeneratedMessage{
		Text:        s.enforcer.Enforce(draft.Content, p.Company, p.Designation),
		GeneratedAt: s.now(),
	}
	if item != nil {
		msg.SourceTitle = item.Title
		msg.SourceSnippet = item.Snippet
		msg.SourceURL = item.URL
	}

	saved, err := s.session.History.Append(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	logger.Info().Int("index", saved.Index).Int("length", len([]rune(saved.Text))).Msg("message generated")
	return &saved, nil
}

// Generate searches for p, or uses manual when it is not nil, and generates a
// message from the result.
func (s *Service) Generate(ctx context.Context, p core.Person, manual *core.ResultSet) (*core.ResultSet, *core.GeneratedMessage, error) {
	rs := manual
	if rs == nil {
		var err error
		if rs, err = s.SearchContent(ctx, p); err != nil {
			return nil, nil, err
		}
	}

	msg, err := s.GenerateMessage(ctx, p, rs)
	if err != nil {
		return rs, nil, err
	}
	return rs, msg, nil
}

func (s *Service) Usage() []core.UsageStat {
	return s.session.Usage.Stats()
}

func (s *Service) History(ctx context.Context) ([]core.GeneratedMessage, error) {
	return s.session.History.List(ctx)
}

func (s *Service) HistoryAt(ctx context.Context, index int) (core.GeneratedMessage, error) {
	return s.session.History.At(ctx, index)
}

func (s *Service) Reset(ctx context.Context) error {
	if err := s.session.Reset(ctx); err != nil {
		return err
	}
	log.FromCtx(ctx).Info().Msg("session reset")
	return nil
}
