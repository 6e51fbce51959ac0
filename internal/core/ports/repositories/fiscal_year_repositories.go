package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// FiscalYearReader defines read operations for fiscal year data
type FiscalYearReader interface {
	// FindFiscalYearByID retrieves a fiscal year, deleted or not.
	FindFiscalYearByID(ctx context.Context, companyID, fiscalYearID string) (*domain.FiscalYear, error)

	// ListFiscalYears retrieves fiscal years ordered by start date.
	ListFiscalYears(ctx context.Context, companyID string, opts ListOptions) ([]domain.FiscalYear, error)
}

// FiscalYearWriter defines write operations for fiscal year data
type FiscalYearWriter interface {
	// SaveFiscalYear persists a new fiscal year.
	SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error

	// LockFiscalYear reads a fiscal year and holds it against concurrent closing until the
	// transaction ends.
	LockFiscalYear(ctx context.Context, companyID, fiscalYearID string) (*domain.FiscalYear, error)

	// CloseFiscalYear marks the fiscal year closed.
	CloseFiscalYear(ctx context.Context, fy domain.FiscalYear) error
}
