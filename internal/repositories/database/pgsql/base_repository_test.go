package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	w := &whereBuilder{}
	assert.Equal(t, "", w.String())

	w.add("company_id = $%d", "c1")
	w.raw("NOT is_deleted")
	w.add("voucher_date >= $%d", "2024-01-01")
	limit := w.next(10)

	assert.Equal(t, " WHERE company_id = $1 AND NOT is_deleted AND voucher_date >= $2", w.String())
	assert.Equal(t, "$3", limit)
	assert.Equal(t, []any{"c1", "2024-01-01", 10}, w.args)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperrors.ErrNotFound},
		{"canceled", context.Canceled, apperrors.ErrUnavailable},
		{"deadline", context.DeadlineExceeded, apperrors.ErrUnavailable},
		{"unique", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_accounts_company_code"}, apperrors.ErrDuplicate},
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrValidation},
		{"check", &pgconn.PgError{Code: pgCheckViolation}, apperrors.ErrValidation},
		{"other pg error", &pgconn.PgError{Code: "57P01"}, apperrors.ErrUnavailable},
		{"connection", errors.New("connection refused"), apperrors.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translate(tt.err, "op"), tt.want)
		})
	}
	assert.NoError(t, translate(nil, "op"))
}

func TestConstraintOf(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_approvals_level"})
	assert.Equal(t, "uq_approvals_level", constraintOf(err))
	assert.Equal(t, "", constraintOf(errors.New("boom")))
}

func TestExpectOne(t *testing.T) {
	assert.NoError(t, expectOne(pgconn.NewCommandTag("UPDATE 1"), nil, "op"))
	assert.ErrorIs(t, expectOne(pgconn.NewCommandTag("UPDATE 0"), nil, "op"), apperrors.ErrNotFound)
	assert.ErrorIs(t, expectOne(pgconn.CommandTag{}, context.Canceled, "op"), apperrors.ErrUnavailable)
}

func TestSoftDeleteTable(t *testing.T) {
	table, column, err := softDeleteTable(domain.EntityInventoryBatch)
	assert.NoError(t, err)
	assert.Equal(t, "inventory_batches", table)
	assert.Equal(t, "batch_id", column)

	table, column, err = softDeleteTable(domain.EntityProduct)
	assert.NoError(t, err)
	assert.Equal(t, "products", table)
	assert.Equal(t, "product_id", column)

	table, _, err = softDeleteTable(domain.EntityCustomer)
	assert.NoError(t, err)
	assert.Equal(t, "customers", table)

	for _, kind := range []domain.EntityKind{domain.EntityCurrency, domain.EntityApproval, "WIDGET"} {
		_, _, err := softDeleteTable(kind)
		assert.ErrorIs(t, err, apperrors.ErrValidation, kind)
	}
}

func TestSnapshotTxIsReadOnlyRepeatableRead(t *testing.T) {
	assert.Equal(t, pgx.RepeatableRead, snapshotTx.IsoLevel)
	assert.Equal(t, pgx.ReadOnly, snapshotTx.AccessMode)
}
