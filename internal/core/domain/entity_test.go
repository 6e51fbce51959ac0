package domain_test

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityKind_SoftDeletable(t *testing.T) {
	deletable := map[domain.EntityKind]bool{
		domain.EntityAccount:        true,
		domain.EntityVoucher:        true,
		domain.EntityFiscalYear:     true,
		domain.EntityInventoryBatch: true,
		domain.EntityProduct:        true,
		domain.EntityCustomer:       true,
	}
	for _, k := range domain.AllEntityKinds() {
		assert.Equal(t, deletable[k], k.SoftDeletable(), string(k))
		assert.NotEqual(t, string(k), k.Label(), "kind %s should have a label", k)
	}
}

func TestParseEntityKind(t *testing.T) {
	k, err := domain.ParseEntityKind("VOUCHER")
	require.NoError(t, err)
	assert.Equal(t, domain.EntityVoucher, k)

	_, err = domain.ParseEntityKind("voucher")
	assert.Error(t, err)
}

func TestRequestContext_Validate(t *testing.T) {
	assert.NoError(t, domain.RequestContext{CompanyID: "c1", ActorID: "u1", Role: domain.RoleMember}.Validate())
	assert.Error(t, domain.RequestContext{ActorID: "u1", Role: domain.RoleMember}.Validate())
	assert.Error(t, domain.RequestContext{CompanyID: "c1", Role: domain.RoleMember}.Validate())
	assert.Error(t, domain.RequestContext{CompanyID: "c1", ActorID: "u1", Role: "OWNER"}.Validate())
}

func TestVoucher_Totals(t *testing.T) {
	v := domain.Voucher{Entries: []domain.JournalEntry{
		{Debit: decimal.RequireFromString("100.10"), Credit: decimal.Zero},
		{Debit: decimal.Zero, Credit: decimal.RequireFromString("60.05")},
		{Debit: decimal.Zero, Credit: decimal.RequireFromString("40.05")},
	}}
	dr, cr := v.Totals()
	assert.True(t, dr.Equal(decimal.RequireFromString("100.10")))
	assert.True(t, cr.Equal(decimal.RequireFromString("100.10")))
}

func TestLedgerLine_BaseAmounts(t *testing.T) {
	l := domain.LedgerLine{
		Debit:        decimal.NewFromInt(100),
		Credit:       decimal.Zero,
		ExchangeRate: decimal.RequireFromString("1.08"),
	}
	assert.True(t, l.BaseDebit().Equal(decimal.NewFromInt(108)))
	assert.True(t, l.BaseCredit().IsZero())
}
