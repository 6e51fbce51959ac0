package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a dated, balanced group of journal lines posted to the ledger.
type Voucher struct {
	VoucherID    string          `json:"voucherID"`
	CompanyID    string          `json:"companyID"`
	Reference    string          `json:"reference"`
	Description  string          `json:"description"`
	VoucherDate  time.Time       `json:"voucherDate"`
	FiscalYearID string          `json:"fiscalYearID"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Frozen at posting time
	Entries      []JournalEntry  `json:"entries"`
	AuditFields
	SoftDelete
}

// JournalEntry is a single debit or credit line owned by a Voucher.
// Amounts are in the voucher currency.
type JournalEntry struct {
	EntryID   string          `json:"entryID"`
	VoucherID string          `json:"voucherID"`
	LineNo    int             `json:"lineNo"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Notes     string          `json:"notes,omitempty"`
}

// Totals returns the sum of debits and credits across the voucher's lines.
func (v Voucher) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range v.Entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// VoucherDraft is the posting request. FiscalYearID and CurrencyCode default to the
// active fiscal year and the base currency when empty.
type VoucherDraft struct {
	Reference    string
	Description  string
	VoucherDate  time.Time
	FiscalYearID string
	CurrencyCode string
	Lines        []DraftLine
}

// DraftLine is one requested line of a VoucherDraft.
type DraftLine struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Notes     string
}

// LedgerLine is a denormalized journal line joined with its voucher header, the unit
// reports are derived from.
type LedgerLine struct {
	VoucherID      string
	VoucherDate    time.Time
	FiscalYearID   string
	AccountID      string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	ExchangeRate   decimal.Decimal
	VoucherDeleted bool
}

// BaseDebit is the debit restated in base currency.
func (l LedgerLine) BaseDebit() decimal.Decimal {
	return l.Debit.Mul(l.ExchangeRate)
}

// BaseCredit is the credit restated in base currency.
func (l LedgerLine) BaseCredit() decimal.Decimal {
	return l.Credit.Mul(l.ExchangeRate)
}
