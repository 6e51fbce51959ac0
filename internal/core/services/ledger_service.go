package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
)

// ledgerService is the posting engine: it validates vouchers and commits them with their lines.
type ledgerService struct {
	BaseService
}

// NewLedgerService creates a new ledger posting engine.
func NewLedgerService(base BaseService) portssvc.LedgerSvcFacade {
	return &ledgerService{BaseService: base}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostVoucher validates and persists a voucher. Checks run in a fixed order inside the company
// critical section: fiscal period, accounts, line shape, balance, exchange rate.
func (s *ledgerService) PostVoucher(ctx context.Context, rc domain.RequestContext, draft domain.VoucherDraft) (*domain.Voucher, error) {
	if err := s.Authorize(ctx, rc, domain.ActionPostVoucher); err != nil {
		return nil, err
	}
	if draft.VoucherDate.IsZero() {
		return nil, apperrors.NewValidationError("voucher date is required")
	}
	voucherDate := domain.DateOnly(draft.VoucherDate)

	logger := s.GetLogger(ctx).With(slog.String("reference", draft.Reference))

	var posted domain.Voucher
	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		// 1. Fiscal period. Holding the row keeps a concurrent close out until commit.
		fiscalYearID := draft.FiscalYearID
		if fiscalYearID == "" {
			active, err := activeFiscalYear(ctx, repos, rc.CompanyID)
			if err != nil {
				return err
			}
			if active == nil {
				return apperrors.NewStateError("no open fiscal year")
			}
			fiscalYearID = active.FiscalYearID
		}
		fy, err := repos.LockFiscalYear(ctx, rc.CompanyID, fiscalYearID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError(fmt.Sprintf("fiscal year %s does not exist", fiscalYearID))
		}
		if err != nil {
			return err
		}
		if err := checkPostable(fy, voucherDate); err != nil {
			return err
		}

		// 2. Accounts.
		if err := checkAccounts(ctx, repos, rc.CompanyID, draft.Lines); err != nil {
			return err
		}

		// 3. Line shape and balance.
		if err := accounting.ValidateLineShape(draft.Lines); err != nil {
			return err
		}
		if err := accounting.ValidateBalance(draft.Lines); err != nil {
			return err
		}

		// 4. Rate, frozen on the voucher.
		currencyCode := draft.CurrencyCode
		if currencyCode == "" {
			base, err := repos.FindBaseCurrency(ctx, rc.CompanyID)
			if err != nil {
				return fmt.Errorf("failed to find base currency: %w", err)
			}
			currencyCode = base.CurrencyCode
		}
		rate, err := resolveRate(ctx, repos, rc.CompanyID, currencyCode, voucherDate)
		if err != nil {
			return err
		}

		// 5. Persist with its audit entry.
		posted = domain.Voucher{
			VoucherID:    s.NewID(),
			CompanyID:    rc.CompanyID,
			Reference:    draft.Reference,
			Description:  draft.Description,
			VoucherDate:  voucherDate,
			FiscalYearID: fy.FiscalYearID,
			CurrencyCode: currencyCode,
			ExchangeRate: rate,
			Entries:      make([]domain.JournalEntry, len(draft.Lines)),
			AuditFields:  s.auditFields(rc.ActorID),
		}
		for i, l := range draft.Lines {
			posted.Entries[i] = domain.JournalEntry{
				EntryID:   s.NewID(),
				VoucherID: posted.VoucherID,
				LineNo:    i + 1,
				AccountID: l.AccountID,
				Debit:     l.Debit,
				Credit:    l.Credit,
				Notes:     l.Notes,
			}
		}
		if err := repos.SaveVoucher(ctx, posted); err != nil {
			return err
		}
		total, _ := posted.Totals()
		return s.Audit(ctx, repos, rc, domain.AuditPost, domain.EntityVoucher, posted.VoucherID,
			fmt.Sprintf("%s %s %s", draft.Reference, currencyCode, total.String()))
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrState) {
			logger.Warn("Voucher rejected", slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to post voucher", slog.String("reference", draft.Reference))
		}
		return nil, err
	}

	logger.Info("Voucher posted",
		slog.String("voucher_id", posted.VoucherID),
		slog.String("fiscal_year_id", posted.FiscalYearID),
		slog.String("exchange_rate", posted.ExchangeRate.String()))
	return &posted, nil
}

// checkAccounts fails with UnknownAccountError for the first line whose account is missing or deleted.
func checkAccounts(ctx context.Context, repos portsrepo.ReadRepositories, companyID string, lines []domain.DraftLine) error {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.AccountID != "" {
			ids = append(ids, l.AccountID)
		}
	}
	accounts, err := repos.FindAccountsByIDs(ctx, companyID, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for i, l := range lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			return &apperrors.UnknownAccountError{Line: i, AccountID: l.AccountID}
		}
		if acc.IsDeleted {
			return &apperrors.UnknownAccountError{Line: i, AccountID: l.AccountID, Deleted: true}
		}
	}
	return nil
}

func (s *ledgerService) GetVoucher(ctx context.Context, rc domain.RequestContext, voucherID string) (*domain.Voucher, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var voucher *domain.Voucher
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		voucher, err = repos.FindVoucherByID(ctx, rc.CompanyID, voucherID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return voucher, nil
}

func (s *ledgerService) ListVouchers(ctx context.Context, rc domain.RequestContext, filter portsrepo.VoucherFilter) ([]domain.Voucher, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, apperrors.NewValidationError("'to' date is before 'from' date")
	}
	var vouchers []domain.Voucher
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		vouchers, err = repos.ListVouchers(ctx, rc.CompanyID, filter)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers")
		return nil, err
	}
	return vouchers, nil
}
