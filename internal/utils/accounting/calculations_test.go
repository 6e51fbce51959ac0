package accounting

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSignedBalance(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		debit       string
		credit      string
		want        string
	}{
		{"asset grows with debit", domain.Asset, "100", "30", "70"},
		{"expense grows with debit", domain.Expense, "10", "0", "10"},
		{"liability grows with credit", domain.Liability, "20", "50", "30"},
		{"revenue grows with credit", domain.Revenue, "0", "100", "100"},
		{"equity debit balance is negative", domain.Equity, "40", "10", "-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SignedBalance(d(tt.debit), d(tt.credit), tt.accountType)
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}

	_, err := SignedBalance(d("1"), d("0"), "INCOME")
	assert.Error(t, err)
}

func TestValidateLineShape(t *testing.T) {
	line := func(dr, cr string) domain.DraftLine {
		return domain.DraftLine{AccountID: "a", Debit: d(dr), Credit: d(cr)}
	}

	tests := []struct {
		name    string
		lines   []domain.DraftLine
		badLine int // -1 for no line-level error
		wantErr bool
	}{
		{"valid pair", []domain.DraftLine{line("100", "0"), line("0", "100")}, -1, false},
		{"both sides", []domain.DraftLine{line("100", "5"), line("0", "100")}, 0, true},
		{"zero line", []domain.DraftLine{line("100", "0"), line("0", "0")}, 1, true},
		{"negative", []domain.DraftLine{line("100", "0"), line("-1", "0")}, 1, true},
		{"single line", []domain.DraftLine{line("100", "0")}, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLineShape(tt.lines)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			var lineErr *apperrors.InvalidLineError
			if tt.badLine >= 0 {
				require.ErrorAs(t, err, &lineErr)
				assert.Equal(t, tt.badLine, lineErr.Line)
			}
		})
	}
}

func TestValidateBalance(t *testing.T) {
	balanced := []domain.DraftLine{
		{Debit: d("0.10"), Credit: decimal.Zero},
		{Debit: d("0.20"), Credit: decimal.Zero},
		{Debit: decimal.Zero, Credit: d("0.30")},
	}
	assert.NoError(t, ValidateBalance(balanced), "decimal sums must not drift like floats")

	unbalanced := []domain.DraftLine{
		{Debit: d("100"), Credit: decimal.Zero},
		{Debit: decimal.Zero, Credit: d("90")},
	}
	err := ValidateBalance(unbalanced)
	var ub *apperrors.UnbalancedEntryError
	require.ErrorAs(t, err, &ub)
	assert.True(t, ub.TotalDebit.Equal(d("100")))
	assert.True(t, ub.TotalCredit.Equal(d("90")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
