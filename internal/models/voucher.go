package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is the vouchers row.
type Voucher struct {
	VoucherID    string          `db:"voucher_id"`
	CompanyID    string          `db:"company_id"`
	Reference    string          `db:"reference"`
	Description  string          `db:"description"`
	VoucherDate  time.Time       `db:"voucher_date"`
	FiscalYearID string          `db:"fiscal_year_id"`
	CurrencyCode string          `db:"currency_code"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	AuditFields
	SoftDelete
}

// JournalEntry is the journal_entries row.
type JournalEntry struct {
	EntryID   string          `db:"entry_id"`
	VoucherID string          `db:"voucher_id"`
	LineNo    int             `db:"line_no"`
	AccountID string          `db:"account_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	Notes     string          `db:"notes"`
}
