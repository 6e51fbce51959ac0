package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Every report is derived from the last committed ledger state on each call.
type ReportingService interface {
	TrialBalance(ctx context.Context, rc domain.RequestContext, query domain.ReportQuery) (*domain.TrialBalanceReport, error)
	ProfitAndLoss(ctx context.Context, rc domain.RequestContext, query domain.ReportQuery) (*domain.PAndLReport, error)
	BalanceSheet(ctx context.Context, rc domain.RequestContext, asOf time.Time, fiscalYearID string) (*domain.BalanceSheetReport, error)
	LedgerSummary(ctx context.Context, rc domain.RequestContext) (*domain.LedgerSummary, error)
}

// AdvisoryService asks the external advisor for commentary on the ledger.
type AdvisoryService interface {
	Insights(ctx context.Context, rc domain.RequestContext) (*domain.LedgerSummary, string, error)
}
