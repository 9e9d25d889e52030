package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/pkg/log"
)

// HistoryRepo is the append-only list of generated messages of one session.
type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Append stores msg at the next index. ID, Index and a zero GeneratedAt are
// filled in.
func (r *HistoryRepo) Append(ctx context.Context, msg core.GeneratedMessage) (core.GeneratedMessage, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.GeneratedMessage{}, err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM generated_messages`).Scan(&msg.Index); err != nil {
		return core.GeneratedMessage{}, fmt.Errorf("failed to count messages: %w", err)
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.GeneratedAt.IsZero() {
		msg.GeneratedAt = time.Now()
	}
	msg.GeneratedAt = msg.GeneratedAt.UTC()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO generated_messages (id, idx, text, source_title, source_snippet, source_url, generated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Index, msg.Text, msg.SourceTitle, msg.SourceSnippet, msg.SourceURL, msg.GeneratedAt,
	)
	if err != nil {
		return core.GeneratedMessage{}, fmt.Errorf("failed to insert message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return core.GeneratedMessage{}, err
	}

	log.FromCtx(ctx).Debug().Int("index", msg.Index).Str("id", msg.ID).Msg("message saved to history")
	return msg, nil
}

// At returns the message at a 0-based index.
func (r *HistoryRepo) At(ctx context.Context, index int) (core.GeneratedMessage, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, idx, text, source_title, source_snippet, source_url, generated_at
		 FROM generated_messages WHERE idx = ?`, index)

	msg, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.GeneratedMessage{}, fmt.Errorf("%w: %d", core.ErrHistoryIndex, index)
	}
	return msg, err
}

// List returns every message in generation order.
func (r *HistoryRepo) List(ctx context.Context) ([]core.GeneratedMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, idx, text, source_title, source_snippet, source_url, generated_at
		 FROM generated_messages ORDER BY idx ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []core.GeneratedMessage
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *HistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM generated_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}

func (r *HistoryRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM generated_messages`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(s scanner) (core.GeneratedMessage, error) {
	var msg core.GeneratedMessage
	err := s.Scan(&msg.ID, &msg.Index, &msg.Text, &msg.SourceTitle, &msg.SourceSnippet, &msg.SourceURL, &msg.GeneratedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return msg, err
		}
		return msg, fmt.Errorf("failed to scan message: %w", err)
	}
	return msg, nil
}
