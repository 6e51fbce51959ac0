package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportParams defines the query parameters shared by the period reports.
type ReportParams struct {
	From           string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To             string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	FiscalYearID   string `form:"fiscalYearID"`
	IncludeDeleted bool   `form:"includeDeleted,default=false"`
}

// ToReportQuery converts the params into a domain query.
func (p ReportParams) ToReportQuery() (domain.ReportQuery, error) {
	from, err := ParseDate("from", p.From)
	if err != nil {
		return domain.ReportQuery{}, err
	}
	to, err := ParseDate("to", p.To)
	if err != nil {
		return domain.ReportQuery{}, err
	}
	return domain.ReportQuery{From: from, To: to, FiscalYearID: p.FiscalYearID, IncludeDeleted: p.IncludeDeleted}, nil
}

// BalanceSheetParams defines the balance sheet query parameters.
type BalanceSheetParams struct {
	AsOf         string `form:"asOf" binding:"required,datetime=2006-01-02"`
	FiscalYearID string `form:"fiscalYearID"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	AccountType    string          `json:"accountType"`
	AccountDeleted bool            `json:"accountDeleted"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Balance        decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	From       string                    `json:"from,omitempty"`
	To         string                    `json:"to,omitempty"`
	Rows       []TrialBalanceRowResponse `json:"rows"`
	IsBalanced bool                      `json:"isBalanced"`
	Totals     struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate string                  `json:"fromDate,omitempty"`
	ToDate   string                  `json:"toDate,omitempty"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetProfit     decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		Discrepancy      decimal.Decimal `json:"discrepancy"`
		IsBalanced       bool            `json:"isBalanced"`
	} `json:"summary"`
}

func toAccountAmounts(in []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(in))
	for i, a := range in {
		out[i] = AccountAmountResponse{AccountID: a.AccountID, Code: a.Code, Name: a.Name, Amount: a.NetAmount}
	}
	return out
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport, from, to time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		From:       FormatDate(from),
		To:         FormatDate(to),
		Rows:       make([]TrialBalanceRowResponse, len(report.Rows)),
		IsBalanced: report.IsBalanced,
	}
	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:      row.AccountID,
			AccountCode:    row.AccountCode,
			AccountName:    row.AccountName,
			AccountType:    string(row.AccountType),
			AccountDeleted: row.AccountDeleted,
			Debit:          row.Debit,
			Credit:         row.Credit,
			Balance:        row.Balance,
		}
	}
	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit
	return response
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.PAndLReport, from, to time.Time) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		FromDate: FormatDate(from),
		ToDate:   FormatDate(to),
		Revenue:  toAccountAmounts(report.Revenue),
		Expenses: toAccountAmounts(report.Expenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetProfit = report.NetProfit
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        FormatDate(report.AsOf),
		Assets:      toAccountAmounts(report.Assets),
		Liabilities: toAccountAmounts(report.Liabilities),
		Equity:      toAccountAmounts(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.Discrepancy = report.Discrepancy
	response.Summary.IsBalanced = report.IsBalanced
	return response
}

// InsightResponse carries advisory text. It is never a source of financial truth.
type InsightResponse struct {
	Summary  domain.LedgerSummary `json:"summary"`
	Insights string               `json:"insights"`
}
