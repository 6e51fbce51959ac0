package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditActions(t *testing.T, f *fixture, kind domain.EntityKind, id string) []domain.AuditAction {
	t.Helper()
	logs, _, err := f.svc.Audit.List(f.ctx, f.readOnly, portsrepo.AuditFilter{EntityKind: kind, EntityID: id}, nil)
	require.NoError(t, err)
	actions := make([]domain.AuditAction, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		actions = append(actions, logs[i].Action)
	}
	return actions
}

func TestLifecycle_AccountRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	id := f.account(t, "1000", domain.Asset)

	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityAccount, id))
	acc, err := f.svc.Account.GetAccountByID(f.ctx, f.readOnly, id)
	require.NoError(t, err)
	assert.True(t, acc.IsDeleted)
	require.NotNil(t, acc.DeletedAt)
	assert.Equal(t, adminUserID, acc.DeletedBy)

	err = f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityAccount, id)
	assert.ErrorIs(t, err, apperrors.ErrState)

	live, err := f.svc.Account.ListAccounts(f.ctx, f.readOnly, false)
	require.NoError(t, err)
	assert.Empty(t, live)

	require.NoError(t, f.svc.Lifecycle.Restore(f.ctx, f.admin, domain.EntityAccount, id))
	acc, err = f.svc.Account.GetAccountByID(f.ctx, f.readOnly, id)
	require.NoError(t, err)
	assert.False(t, acc.IsDeleted)
	assert.Nil(t, acc.DeletedAt)

	err = f.svc.Lifecycle.Restore(f.ctx, f.admin, domain.EntityAccount, id)
	assert.ErrorIs(t, err, apperrors.ErrState)

	assert.Equal(t,
		[]domain.AuditAction{domain.AuditCreate, domain.AuditDelete, domain.AuditRestore},
		auditActions(t, f, domain.EntityAccount, id))
}

func TestLifecycle_VoucherInClosedYear(t *testing.T) {
	f := newFixture(t, nil)
	fyID := f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")
	cash := f.account(t, "1000", domain.Asset)
	sales := f.account(t, "4000", domain.Revenue)
	v := f.post(t, "2024-06-01", dr(cash, "10"), cr(sales, "10"))

	_, err := f.svc.FiscalYear.CloseFiscalYear(f.ctx, f.admin, fyID)
	require.NoError(t, err)

	err = f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityVoucher, v.VoucherID)
	var closed *apperrors.ClosedPeriodError
	require.ErrorAs(t, err, &closed)
	assert.Equal(t, fyID, closed.FiscalYearID)

	got, err := f.svc.Ledger.GetVoucher(f.ctx, f.readOnly, v.VoucherID)
	require.NoError(t, err)
	assert.False(t, got.IsDeleted)
}

func TestLifecycle_VoucherRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")
	cash := f.account(t, "1000", domain.Asset)
	sales := f.account(t, "4000", domain.Revenue)
	v := f.post(t, "2024-06-01", dr(cash, "10"), cr(sales, "10"))

	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityVoucher, v.VoucherID))
	live, err := f.svc.Ledger.ListVouchers(f.ctx, f.readOnly, portsrepo.VoucherFilter{})
	require.NoError(t, err)
	assert.Empty(t, live)

	require.NoError(t, f.svc.Lifecycle.Restore(f.ctx, f.admin, domain.EntityVoucher, v.VoucherID))
	live, err = f.svc.Ledger.ListVouchers(f.ctx, f.readOnly, portsrepo.VoucherFilter{})
	require.NoError(t, err)
	assert.Len(t, live, 1)
}

func TestLifecycle_FiscalYearGuards(t *testing.T) {
	f := newFixture(t, nil)
	fy2024 := f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")
	cash := f.account(t, "1000", domain.Asset)
	sales := f.account(t, "4000", domain.Revenue)
	v := f.post(t, "2024-06-01", dr(cash, "10"), cr(sales, "10"))

	err := f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityFiscalYear, fy2024)
	assert.ErrorIs(t, err, apperrors.ErrState, "a year with live vouchers stays")

	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityVoucher, v.VoucherID))
	err = f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityFiscalYear, fy2024)
	assert.ErrorIs(t, err, apperrors.ErrState, "a year with deleted vouchers stays too")

	fy, err := f.svc.FiscalYear.GetActiveFiscalYear(f.ctx, f.readOnly)
	require.NoError(t, err)
	require.NotNil(t, fy)
	assert.Equal(t, fy2024, fy.FiscalYearID)
}

func TestLifecycle_RestoreFiscalYearKeepsSingleOpenYear(t *testing.T) {
	f := newFixture(t, nil)
	fy2024 := f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")
	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityFiscalYear, fy2024))

	f.fiscalYear(t, "FY2025", "2025-01-01", "2025-12-31")
	err := f.svc.Lifecycle.Restore(f.ctx, f.admin, domain.EntityFiscalYear, fy2024)
	assert.ErrorIs(t, err, apperrors.ErrState, "restoring would leave two open years")
}

func TestLifecycle_VoucherRestoreIntoDeletedYear(t *testing.T) {
	f := newFixture(t, nil)
	fyID := f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")
	cash := f.account(t, "1000", domain.Asset)
	sales := f.account(t, "4000", domain.Revenue)
	v := f.post(t, "2024-06-01", dr(cash, "100"), cr(sales, "100"))
	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityVoucher, v.VoucherID))

	// Force the year into the deleted state underneath the services.
	require.NoError(t, f.store.WithinTx(f.ctx, f.company.CompanyID, func(ctx context.Context, repos portsrepo.Repositories) error {
		return repos.SetDeleted(ctx, domain.EntityFiscalYear, f.company.CompanyID, fyID, true, adminUserID, time.Now())
	}))

	err := f.svc.Lifecycle.Restore(f.ctx, f.admin, domain.EntityVoucher, v.VoucherID)
	assert.ErrorIs(t, err, apperrors.ErrState)

	got, err := f.svc.Ledger.GetVoucher(f.ctx, f.readOnly, v.VoucherID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	tb, err := f.svc.Reporting.TrialBalance(f.ctx, f.readOnly, domain.ReportQuery{})
	require.NoError(t, err)
	assertDecimal(t, "0", tb.TotalDebit)
}

func TestLifecycle_InventoryBatch(t *testing.T) {
	f := newFixture(t, nil)
	sku1 := f.product(t, "SKU-1")
	batch := receive(t, f, sku1, "B1", "10", "2")

	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityInventoryBatch, batch.BatchID))
	onHand, err := f.svc.Inventory.ReconcileProduct(f.ctx, f.readOnly, sku1)
	require.NoError(t, err)
	assertDecimal(t, "0", onHand)

	require.NoError(t, f.svc.Lifecycle.Restore(f.ctx, f.admin, domain.EntityInventoryBatch, batch.BatchID))
	onHand, err = f.svc.Inventory.ReconcileProduct(f.ctx, f.readOnly, sku1)
	require.NoError(t, err)
	assertDecimal(t, "10", onHand)
}

func TestLifecycle_Errors(t *testing.T) {
	f := newFixture(t, nil)
	id := f.account(t, "1000", domain.Asset)
	_, err := f.svc.Currency.CreateCurrency(f.ctx, f.admin, dto.CreateCurrencyRequest{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		rc      domain.RequestContext
		kind    domain.EntityKind
		id      string
		wantErr error
	}{
		{"currency is not soft-deletable", f.admin, domain.EntityCurrency, "EUR", apperrors.ErrValidation},
		{"approval is not soft-deletable", f.admin, domain.EntityApproval, "x", apperrors.ErrValidation},
		{"member cannot delete", f.member, domain.EntityAccount, id, apperrors.ErrForbidden},
		{"read-only cannot delete", f.readOnly, domain.EntityAccount, id, apperrors.ErrForbidden},
		{"missing account", f.admin, domain.EntityAccount, "nope", apperrors.ErrNotFound},
		{"missing voucher", f.admin, domain.EntityVoucher, "nope", apperrors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.Lifecycle.SoftDelete(f.ctx, tt.rc, tt.kind, tt.id)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	err = f.svc.Lifecycle.Restore(f.ctx, f.member, domain.EntityAccount, id)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
