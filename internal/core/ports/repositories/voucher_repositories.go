package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// VoucherFilter narrows voucher listings. Zero values leave that dimension unfiltered.
type VoucherFilter struct {
	From         time.Time
	To           time.Time
	FiscalYearID string
	CurrencyCode string
	ListOptions
}

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher with its lines, deleted or not.
	FindVoucherByID(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves vouchers with their lines ordered by date then creation time.
	ListVouchers(ctx context.Context, companyID string, filter VoucherFilter) ([]domain.Voucher, error)

	// CountVouchers counts vouchers matching filter.
	CountVouchers(ctx context.Context, companyID string, filter VoucherFilter) (int, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// SaveVoucher persists a voucher and all of its lines.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
}

// LedgerReader feeds the reporting engine.
type LedgerReader interface {
	// ListLedgerLines returns journal lines joined with their voucher header, scoped by query.
	// Soft-deleted vouchers are included only when query.IncludeDeleted is set.
	ListLedgerLines(ctx context.Context, companyID string, query domain.ReportQuery) ([]domain.LedgerLine, error)
}
