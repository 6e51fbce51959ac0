package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

func (r *reader) FindFiscalYearByID(ctx context.Context, companyID, fiscalYearID string) (*domain.FiscalYear, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	fy, ok := r.st.fiscalYears[fiscalYearID]
	if !ok || fy.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &fy, nil
}

func (r *reader) ListFiscalYears(ctx context.Context, companyID string, opts repositories.ListOptions) ([]domain.FiscalYear, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.FiscalYear{}
	for _, fy := range r.st.fiscalYears {
		if fy.CompanyID != companyID || (fy.IsDeleted && !opts.IncludeDeleted) {
			continue
		}
		out = append(out, fy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (w *writer) SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	if err := alive(ctx); err != nil {
		return err
	}
	if _, exists := w.st.fiscalYears[fy.FiscalYearID]; exists {
		return apperrors.ErrDuplicate
	}
	w.st.fiscalYears[fy.FiscalYearID] = fy
	return nil
}

// LockFiscalYear is a plain read: the single-writer transaction already excludes other writers.
func (w *writer) LockFiscalYear(ctx context.Context, companyID, fiscalYearID string) (*domain.FiscalYear, error) {
	return w.FindFiscalYearByID(ctx, companyID, fiscalYearID)
}

func (w *writer) CloseFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	if err := alive(ctx); err != nil {
		return err
	}
	existing, ok := w.st.fiscalYears[fy.FiscalYearID]
	if !ok || existing.CompanyID != fy.CompanyID {
		return apperrors.ErrNotFound
	}
	existing.IsClosed = true
	existing.ClosedAt = fy.ClosedAt
	existing.ClosedBy = fy.ClosedBy
	existing.LastUpdatedAt = fy.LastUpdatedAt
	existing.LastUpdatedBy = fy.LastUpdatedBy
	w.st.fiscalYears[fy.FiscalYearID] = existing
	return nil
}
