package accounting

import (
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedBalance nets debit and credit on an account's normal side.
// This is used in both services and repositories to ensure consistent accounting logic.
func SignedBalance(debit, credit decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// ValidateLineShape checks that there are at least two lines and that every line carries
// exactly one strictly positive side.
func ValidateLineShape(lines []domain.DraftLine) error {
	for i, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return &apperrors.InvalidLineError{Line: i, Reason: "amounts must not be negative"}
		}
		hasDebit, hasCredit := l.Debit.IsPositive(), l.Credit.IsPositive()
		if hasDebit && hasCredit {
			return &apperrors.InvalidLineError{Line: i, Reason: "a line must carry either a debit or a credit, not both"}
		}
		if !hasDebit && !hasCredit {
			return &apperrors.InvalidLineError{Line: i, Reason: "a line must carry a non-zero debit or credit"}
		}
	}
	if len(lines) < 2 {
		return fmt.Errorf("%w: voucher must have at least two lines", apperrors.ErrValidation)
	}
	return nil
}

// SumLines totals the debit and credit sides.
func SumLines(lines []domain.DraftLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// ValidateBalance compares total debits and credits exactly.
func ValidateBalance(lines []domain.DraftLine) error {
	debit, credit := SumLines(lines)
	if !debit.Equal(credit) {
		return &apperrors.UnbalancedEntryError{TotalDebit: debit, TotalCredit: credit}
	}
	return nil
}
