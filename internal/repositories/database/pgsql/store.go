package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the PostgreSQL implementation of repositories.Store.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps an open pool. The schema must already be migrated.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

var _ repositories.Store = (*Store)(nil)

// repos runs every repository method against one querier.
type repos struct {
	q querier
}

var _ repositories.Repositories = (*repos)(nil)

// Reader returns repositories over the pool. Reads see committed data only.
func (s *Store) Reader() repositories.ReadRepositories {
	return &repos{q: s.pool}
}

// snapshotTx is the read-only transaction behind ReadSnapshot. REPEATABLE READ pins one
// snapshot for the whole transaction.
var snapshotTx = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// ReadSnapshot runs fn in a read-only REPEATABLE READ transaction. No lock is taken.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, repos repositories.ReadRepositories) error) error {
	tx, err := s.pool.BeginTx(ctx, snapshotTx)
	if err != nil {
		return apperrors.Unavailable("pgsql store: begin read transaction", err)
	}
	defer s.rollback(ctx, tx)

	if err := fn(ctx, &repos{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.Unavailable("pgsql store: commit read transaction", err)
	}
	return nil
}

// WithinTx runs fn in one database transaction. A transaction-scoped advisory lock keyed by
// company serializes writers of the same company across processes.
func (s *Store) WithinTx(ctx context.Context, companyID string, fn func(ctx context.Context, repos repositories.Repositories) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return apperrors.Unavailable("pgsql store: begin transaction", err)
	}
	defer s.rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, companyID); err != nil {
		return translate(err, "pgsql store: company lock")
	}
	if err := fn(ctx, &repos{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.Unavailable("pgsql store: commit", err)
	}
	return nil
}

// rollback ends an unfinished transaction. After Commit it returns pgx.ErrTxClosed, which is ignored.
func (s *Store) rollback(ctx context.Context, tx pgx.Tx) {
	// ctx may already be done; the rollback must still reach the server.
	_ = tx.Rollback(context.WithoutCancel(ctx))
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
