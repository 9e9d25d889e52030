package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPerson   = errors.New("person name is required")
	ErrHistoryIndex  = errors.New("history index out of range")
	ErrNoSearchQuery = errors.New("empty search query")
)

// RetrievalError is a failed content search. It is recovered by the caller and
// reported as a notice, never as a fatal error.
type RetrievalError struct {
	Provider string
	Query    string
	Err      error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s search %q: %v", e.Provider, e.Query, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// GenerationError is a failed completion call. It ends the request.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate message (%s): %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
