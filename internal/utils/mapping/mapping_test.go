package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountNullableColumns(t *testing.T) {
	top := ToModelAccount(domain.Account{AccountID: "a1", Code: "1000", AccountType: domain.Asset})
	assert.Nil(t, top.ParentAccountID)
	assert.Nil(t, top.DeletedBy)
	assert.Nil(t, top.DeletedAt)

	deletedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	child := ToModelAccount(domain.Account{
		AccountID:       "a2",
		ParentAccountID: "a1",
		SoftDelete:      domain.SoftDelete{IsDeleted: true, DeletedAt: &deletedAt, DeletedBy: "u1"},
	})
	require.NotNil(t, child.ParentAccountID)
	assert.Equal(t, "a1", *child.ParentAccountID)
	require.NotNil(t, child.DeletedBy)
	assert.Equal(t, "u1", *child.DeletedBy)

	back := ToDomainAccount(child)
	assert.Equal(t, "a1", back.ParentAccountID)
	assert.True(t, back.IsDeleted)
	assert.Equal(t, "u1", back.DeletedBy)
	assert.Equal(t, domain.Asset, ToDomainAccount(top).AccountType)
}

func TestFiscalYearDatesAreTruncated(t *testing.T) {
	m := ToModelFiscalYear(domain.FiscalYear{
		StartDate: time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
	})
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), m.StartDate)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), m.EndDate)
	assert.Nil(t, m.ClosedBy)
}

func TestToDomainVoucherKeepsLineOrder(t *testing.T) {
	header := ToModelVoucher(domain.Voucher{VoucherID: "v1", ExchangeRate: decimal.RequireFromString("1.08")})
	entries := []domain.JournalEntry{
		{EntryID: "e1", LineNo: 1, Debit: decimal.NewFromInt(10), Credit: decimal.Zero},
		{EntryID: "e2", LineNo: 2, Debit: decimal.Zero, Credit: decimal.NewFromInt(10)},
	}
	v := ToDomainVoucher(header, []models.JournalEntry{ToModelJournalEntry(entries[0]), ToModelJournalEntry(entries[1])})
	require.Len(t, v.Entries, 2)
	assert.Equal(t, "e1", v.Entries[0].EntryID)
	assert.Equal(t, 2, v.Entries[1].LineNo)
	assert.True(t, v.ExchangeRate.Equal(decimal.RequireFromString("1.08")))
}
