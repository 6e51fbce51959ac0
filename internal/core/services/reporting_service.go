package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
}

// NewReportingService creates a new reporting service.
func NewReportingService(base BaseService) portssvc.ReportingService {
	return &reportingService{BaseService: base}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// accountActivity is the base-currency movement of one account.
type accountActivity struct {
	account domain.Account
	known   bool
	debit   decimal.Decimal
	credit  decimal.Decimal
}

func (a accountActivity) net() decimal.Decimal {
	if !a.known {
		return a.debit.Sub(a.credit)
	}
	n, err := accounting.SignedBalance(a.debit, a.credit, a.account.AccountType)
	if err != nil {
		return a.debit.Sub(a.credit)
	}
	return n
}

// collectActivity aggregates ledger lines per account in base currency. Deleted accounts
// keep their history; the result is ordered by account code.
func collectActivity(ctx context.Context, repos portsrepo.ReadRepositories, companyID string, query domain.ReportQuery) ([]accountActivity, error) {
	lines, err := repos.ListLedgerLines(ctx, companyID, query)
	if err != nil {
		return nil, err
	}
	accounts, err := repos.ListAccounts(ctx, companyID, portsrepo.ListOptions{IncludeDeleted: true})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.AccountID] = a
	}

	activity := make(map[string]*accountActivity)
	for _, l := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		act, ok := activity[l.AccountID]
		if !ok {
			acc, known := byID[l.AccountID]
			if !known {
				acc = domain.Account{AccountID: l.AccountID, Code: l.AccountID}
			}
			act = &accountActivity{account: acc, known: known, debit: decimal.Zero, credit: decimal.Zero}
			activity[l.AccountID] = act
		}
		act.debit = act.debit.Add(l.BaseDebit())
		act.credit = act.credit.Add(l.BaseCredit())
	}

	out := make([]accountActivity, 0, len(activity))
	for _, act := range activity {
		out = append(out, *act)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].account.Code != out[j].account.Code {
			return out[i].account.Code < out[j].account.Code
		}
		return out[i].account.AccountID < out[j].account.AccountID
	})
	return out, nil
}

func toAccountAmount(a accountActivity) domain.AccountAmount {
	return domain.AccountAmount{
		AccountID: a.account.AccountID,
		Code:      a.account.Code,
		Name:      a.account.Name,
		NetAmount: a.net(),
	}
}

func sumAmounts(amounts []domain.AccountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.NetAmount)
	}
	return total
}

func validateQuery(q domain.ReportQuery) error {
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return apperrors.NewValidationError("'to' date is before 'from' date")
	}
	return nil
}

// TrialBalance lists debit, credit and signed balance per account with activity in the query range.
func (s *reportingService) TrialBalance(ctx context.Context, rc domain.RequestContext, query domain.ReportQuery) (*domain.TrialBalanceReport, error) {
	if err := s.Authorize(ctx, rc, domain.ActionViewReports); err != nil {
		return nil, err
	}
	if err := validateQuery(query); err != nil {
		return nil, err
	}

	var activity []accountActivity
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		activity, err = collectActivity(ctx, repos, rc.CompanyID, query)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data")
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		Rows:        make([]domain.TrialBalanceRow, 0, len(activity)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, a := range activity {
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:      a.account.AccountID,
			AccountCode:    a.account.Code,
			AccountName:    a.account.Name,
			AccountType:    a.account.AccountType,
			AccountDeleted: a.account.IsDeleted,
			Debit:          a.debit,
			Credit:         a.credit,
			Balance:        a.net(),
		})
		report.TotalDebit = report.TotalDebit.Add(a.debit)
		report.TotalCredit = report.TotalCredit.Add(a.credit)
	}
	report.IsBalanced = report.TotalDebit.Equal(report.TotalCredit)

	if !report.IsBalanced {
		s.GetLogger(ctx).Warn("Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	s.LogInfo(ctx, "Trial balance report generated successfully", slog.Int("row_count", len(report.Rows)))
	return report, nil
}

// ProfitAndLoss generates a profit and loss report for the query range
func (s *reportingService) ProfitAndLoss(ctx context.Context, rc domain.RequestContext, query domain.ReportQuery) (*domain.PAndLReport, error) {
	if err := s.Authorize(ctx, rc, domain.ActionViewReports); err != nil {
		return nil, err
	}
	if err := validateQuery(query); err != nil {
		return nil, err
	}

	var activity []accountActivity
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		activity, err = collectActivity(ctx, repos, rc.CompanyID, query)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve profit and loss data")
		return nil, err
	}

	report := &domain.PAndLReport{Revenue: []domain.AccountAmount{}, Expenses: []domain.AccountAmount{}}
	for _, a := range activity {
		switch a.account.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, toAccountAmount(a))
		case domain.Expense:
			report.Expenses = append(report.Expenses, toAccountAmount(a))
		}
	}
	report.TotalRevenue = sumAmounts(report.Revenue)
	report.TotalExpenses = sumAmounts(report.Expenses)
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return report, nil
}

// BalanceSheet reports positions as of asOf. Revenue minus expense to date appears as a
// derived current-earnings equity line, and any residual shows up in Discrepancy.
func (s *reportingService) BalanceSheet(ctx context.Context, rc domain.RequestContext, asOf time.Time, fiscalYearID string) (*domain.BalanceSheetReport, error) {
	if err := s.Authorize(ctx, rc, domain.ActionViewReports); err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = s.Now()
	}
	asOf = domain.DateOnly(asOf)

	var activity []accountActivity
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		activity, err = collectActivity(ctx, repos, rc.CompanyID, domain.ReportQuery{To: asOf, FiscalYearID: fiscalYearID})
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data", slog.String("asOf", asOf.Format(time.DateOnly)))
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:        asOf,
		Assets:      []domain.AccountAmount{},
		Liabilities: []domain.AccountAmount{},
		Equity:      []domain.AccountAmount{},
	}
	earnings := decimal.Zero
	for _, a := range activity {
		switch a.account.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, toAccountAmount(a))
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, toAccountAmount(a))
		case domain.Equity:
			report.Equity = append(report.Equity, toAccountAmount(a))
		case domain.Revenue:
			earnings = earnings.Add(a.net())
		case domain.Expense:
			earnings = earnings.Sub(a.net())
		default:
			// Lines on accounts missing from the chart count as assets so the gap surfaces.
			report.Assets = append(report.Assets, toAccountAmount(a))
		}
	}
	report.Equity = append(report.Equity, domain.AccountAmount{
		AccountID: domain.CurrentEarningsAccountID,
		Code:      domain.CurrentEarningsAccountID,
		Name:      "Current Earnings",
		NetAmount: earnings,
	})

	report.TotalAssets = sumAmounts(report.Assets)
	report.TotalLiabilities = sumAmounts(report.Liabilities)
	report.TotalEquity = sumAmounts(report.Equity)
	report.Discrepancy = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	report.IsBalanced = report.Discrepancy.IsZero()

	if !report.IsBalanced {
		s.GetLogger(ctx).Warn("Balance sheet discrepancy detected", slog.String("discrepancy", report.Discrepancy.String()))
	}
	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	return report, nil
}

// LedgerSummary totals every live voucher by account type.
func (s *reportingService) LedgerSummary(ctx context.Context, rc domain.RequestContext) (*domain.LedgerSummary, error) {
	if err := s.Authorize(ctx, rc, domain.ActionViewReports); err != nil {
		return nil, err
	}
	summary := &domain.LedgerSummary{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
		TotalRevenue:     decimal.Zero,
		TotalExpenses:    decimal.Zero,
	}
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		activity, err := collectActivity(ctx, repos, rc.CompanyID, domain.ReportQuery{})
		if err != nil {
			return err
		}
		for _, a := range activity {
			switch a.account.AccountType {
			case domain.Asset:
				summary.TotalAssets = summary.TotalAssets.Add(a.net())
			case domain.Liability:
				summary.TotalLiabilities = summary.TotalLiabilities.Add(a.net())
			case domain.Equity:
				summary.TotalEquity = summary.TotalEquity.Add(a.net())
			case domain.Revenue:
				summary.TotalRevenue = summary.TotalRevenue.Add(a.net())
			case domain.Expense:
				summary.TotalExpenses = summary.TotalExpenses.Add(a.net())
			}
		}
		summary.VoucherCount, err = repos.CountVouchers(ctx, rc.CompanyID, portsrepo.VoucherFilter{})
		if err != nil {
			return err
		}
		base, err := repos.FindBaseCurrency(ctx, rc.CompanyID)
		switch {
		case err == nil:
			summary.BaseCurrency = base.CurrencyCode
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build ledger summary")
		return nil, err
	}
	return summary, nil
}
