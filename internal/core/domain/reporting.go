package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportQuery scopes a report. Zero From/To leave that side of the range open.
type ReportQuery struct {
	From         time.Time
	To           time.Time
	FiscalYearID string
	// IncludeDeleted adds soft-deleted vouchers (audit view).
	IncludeDeleted bool
}

// TrialBalanceRow represents a single row in a trial balance report.
// Amounts are in base currency.
type TrialBalanceRow struct {
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	AccountType    AccountType     `json:"accountType"`
	AccountDeleted bool            `json:"accountDeleted"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	// Balance is signed by the account's normal side.
	Balance decimal.Decimal `json:"balance"`
}

// TrialBalanceReport is the per-account summary with computed totals.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report
type PAndLReport struct {
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"` // Total revenue minus total expenses
}

// CurrentEarningsAccountID labels the derived equity line on the balance sheet.
const CurrentEarningsAccountID = "CURRENT_EARNINGS"

// BalanceSheetReport represents a balance sheet report
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	// Discrepancy is assets minus liabilities plus equity. Non-zero means the ledger is broken.
	Discrepancy decimal.Decimal `json:"discrepancy"`
	IsBalanced  bool            `json:"isBalanced"`
}

// LedgerSummary holds the headline totals per account type.
type LedgerSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	VoucherCount     int             `json:"voucherCount"`
	BaseCurrency     string          `json:"baseCurrency"`
}
