package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

// LedgerReaderSvc defines read operations for posted vouchers
type LedgerReaderSvc interface {
	GetVoucher(ctx context.Context, rc domain.RequestContext, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, rc domain.RequestContext, filter repositories.VoucherFilter) ([]domain.Voucher, error)
}

// LedgerPosterSvc validates and commits vouchers
type LedgerPosterSvc interface {
	// PostVoucher validates the draft and persists it atomically with its audit entry.
	PostVoucher(ctx context.Context, rc domain.RequestContext, draft domain.VoucherDraft) (*domain.Voucher, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerPosterSvc
}
