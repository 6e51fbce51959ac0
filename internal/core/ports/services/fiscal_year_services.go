package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// FiscalYearReaderSvc defines read operations for fiscal years
type FiscalYearReaderSvc interface {
	ListFiscalYears(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.FiscalYear, error)

	// GetActiveFiscalYear returns the single open fiscal year, or nil when none is open.
	GetActiveFiscalYear(ctx context.Context, rc domain.RequestContext) (*domain.FiscalYear, error)

	// AssertOpen fails with ClosedPeriodError or OutOfRangeError unless date may be posted to fiscalYearID.
	AssertOpen(ctx context.Context, rc domain.RequestContext, fiscalYearID string, date time.Time) error
}

// FiscalYearWriterSvc defines write operations for fiscal years
type FiscalYearWriterSvc interface {
	CreateFiscalYear(ctx context.Context, rc domain.RequestContext, req dto.CreateFiscalYearRequest) (*domain.FiscalYear, error)

	// CloseFiscalYear closes the year. Closing is terminal.
	CloseFiscalYear(ctx context.Context, rc domain.RequestContext, fiscalYearID string) (*domain.FiscalYear, error)
}

// FiscalYearSvcFacade combines all fiscal-year service interfaces
type FiscalYearSvcFacade interface {
	FiscalYearReaderSvc
	FiscalYearWriterSvc
}
