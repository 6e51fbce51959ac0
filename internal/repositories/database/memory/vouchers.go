package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

func copyVoucher(v domain.Voucher) domain.Voucher {
	v.Entries = slices.Clone(v.Entries)
	return v
}

func matchesVoucher(v domain.Voucher, f repositories.VoucherFilter) bool {
	if v.IsDeleted && !f.IncludeDeleted {
		return false
	}
	if f.FiscalYearID != "" && v.FiscalYearID != f.FiscalYearID {
		return false
	}
	if f.CurrencyCode != "" && v.CurrencyCode != f.CurrencyCode {
		return false
	}
	d := domain.DateOnly(v.VoucherDate)
	if !f.From.IsZero() && d.Before(domain.DateOnly(f.From)) {
		return false
	}
	if !f.To.IsZero() && d.After(domain.DateOnly(f.To)) {
		return false
	}
	return true
}

func (r *reader) FindVoucherByID(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	v, ok := r.st.vouchers[voucherID]
	if !ok || v.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	v = copyVoucher(v)
	return &v, nil
}

func (r *reader) ListVouchers(ctx context.Context, companyID string, filter repositories.VoucherFilter) ([]domain.Voucher, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.Voucher{}
	for _, v := range r.st.vouchers {
		if v.CompanyID == companyID && matchesVoucher(v, filter) {
			out = append(out, copyVoucher(v))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].VoucherDate.Equal(out[j].VoucherDate) {
			return out[i].VoucherDate.Before(out[j].VoucherDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].VoucherID < out[j].VoucherID
	})
	return out, nil
}

func (r *reader) CountVouchers(ctx context.Context, companyID string, filter repositories.VoucherFilter) (int, error) {
	if err := alive(ctx); err != nil {
		return 0, err
	}
	n := 0
	for _, v := range r.st.vouchers {
		if v.CompanyID == companyID && matchesVoucher(v, filter) {
			n++
		}
	}
	return n, nil
}

func (r *reader) ListLedgerLines(ctx context.Context, companyID string, query domain.ReportQuery) ([]domain.LedgerLine, error) {
	filter := repositories.VoucherFilter{
		From:         query.From,
		To:           query.To,
		FiscalYearID: query.FiscalYearID,
		ListOptions:  repositories.ListOptions{IncludeDeleted: query.IncludeDeleted},
	}
	vouchers, err := r.ListVouchers(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	var lines []domain.LedgerLine
	for _, v := range vouchers {
		for _, e := range v.Entries {
			lines = append(lines, domain.LedgerLine{
				VoucherID:      v.VoucherID,
				VoucherDate:    v.VoucherDate,
				FiscalYearID:   v.FiscalYearID,
				AccountID:      e.AccountID,
				Debit:          e.Debit,
				Credit:         e.Credit,
				ExchangeRate:   v.ExchangeRate,
				VoucherDeleted: v.IsDeleted,
			})
		}
	}
	return lines, nil
}

func (w *writer) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	if err := alive(ctx); err != nil {
		return err
	}
	if _, exists := w.st.vouchers[voucher.VoucherID]; exists {
		return apperrors.ErrDuplicate
	}
	w.st.vouchers[voucher.VoucherID] = copyVoucher(voucher)
	return nil
}
