package memory

import (
	"context"
	"sync/atomic"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

// Store is an in-memory, copy-on-write implementation of repositories.Store.
// Committed state is an immutable snapshot behind an atomic pointer: readers load it
// without locking, and a single writer at a time works on a private clone that is
// swapped in on commit.
type Store struct {
	current atomic.Pointer[state]
	// writer is a one-slot semaphore so that waiting for the write turn honors ctx.
	writer chan struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{writer: make(chan struct{}, 1)}
	s.current.Store(newState())
	return s
}

var _ repositories.Store = (*Store)(nil)

// Reader returns repositories over the last committed snapshot.
func (s *Store) Reader() repositories.ReadRepositories {
	return &reader{st: s.current.Load()}
}

// ReadSnapshot runs fn over the snapshot current at the call. Later commits are not visible to fn.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, repos repositories.ReadRepositories) error) error {
	if err := alive(ctx); err != nil {
		return err
	}
	return fn(ctx, s.Reader())
}

// WithinTx runs fn against a private copy of the committed state and publishes the copy
// only if fn succeeds and ctx is still live.
func (s *Store) WithinTx(ctx context.Context, companyID string, fn func(ctx context.Context, repos repositories.Repositories) error) error {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return apperrors.Unavailable("memory store: waiting for write transaction", ctx.Err())
	}
	defer func() { <-s.writer }()

	next := s.current.Load().clone()
	tx := &writer{reader: reader{st: next}}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperrors.Unavailable("memory store: commit", err)
	}
	s.current.Store(next)
	return nil
}

// Close is a no-op for the memory store.
func (s *Store) Close() {}

// reader serves reads from one snapshot.
type reader struct {
	st *state
}

// writer serves reads and writes against an uncommitted clone.
type writer struct {
	reader
}

var (
	_ repositories.ReadRepositories = (*reader)(nil)
	_ repositories.Repositories     = (*writer)(nil)
)
