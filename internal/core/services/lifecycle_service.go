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
)

// lifecycleService soft-deletes and restores entities of every soft-deletable kind.
type lifecycleService struct {
	BaseService
}

// NewLifecycleService creates a new lifecycle service.
func NewLifecycleService(base BaseService) portssvc.LifecycleService {
	return &lifecycleService{BaseService: base}
}

var _ portssvc.LifecycleService = (*lifecycleService)(nil)

func (s *lifecycleService) SoftDelete(ctx context.Context, rc domain.RequestContext, kind domain.EntityKind, entityID string) error {
	if err := s.Authorize(ctx, rc, domain.ActionDelete); err != nil {
		return err
	}
	return s.setDeleted(ctx, rc, kind, entityID, true)
}

func (s *lifecycleService) Restore(ctx context.Context, rc domain.RequestContext, kind domain.EntityKind, entityID string) error {
	if err := s.Authorize(ctx, rc, domain.ActionRestore); err != nil {
		return err
	}
	return s.setDeleted(ctx, rc, kind, entityID, false)
}

func (s *lifecycleService) setDeleted(ctx context.Context, rc domain.RequestContext, kind domain.EntityKind, entityID string, deleted bool) error {
	if !kind.SoftDeletable() {
		return apperrors.NewValidationError(fmt.Sprintf("%s cannot be deleted or restored", kind.Label()))
	}
	action := domain.AuditRestore
	if deleted {
		action = domain.AuditDelete
	}

	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		if err := s.guard(ctx, repos, rc.CompanyID, kind, entityID, deleted); err != nil {
			return err
		}
		if err := repos.SetDeleted(ctx, kind, rc.CompanyID, entityID, deleted, rc.ActorID, s.Now()); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, action, kind, entityID, "")
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrState) {
			s.LogError(ctx, err, "Failed to change deletion state",
				slog.String("entity_kind", string(kind)), slog.String("entity_id", entityID))
		}
		return err
	}

	s.LogInfo(ctx, "Deletion state changed",
		slog.String("entity_kind", string(kind)),
		slog.String("entity_id", entityID),
		slog.Bool("deleted", deleted))
	return nil
}

// guard loads the entity and enforces the kind-specific rules for the transition.
func (s *lifecycleService) guard(ctx context.Context, repos portsrepo.Repositories, companyID string, kind domain.EntityKind, entityID string, deleted bool) error {
	var current domain.SoftDelete
	switch kind {
	case domain.EntityAccount:
		acc, err := repos.FindAccountByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		current = acc.SoftDelete

	case domain.EntityVoucher:
		v, err := repos.FindVoucherByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		fy, err := repos.LockFiscalYear(ctx, companyID, v.FiscalYearID)
		if err != nil {
			return err
		}
		if fy.IsClosed {
			return &apperrors.ClosedPeriodError{FiscalYearID: fy.FiscalYearID, Date: v.VoucherDate}
		}
		if !deleted && fy.IsDeleted {
			return apperrors.NewStateError(fmt.Sprintf("fiscal year %s of voucher %s is deleted", fy.FiscalYearID, entityID))
		}
		current = v.SoftDelete

	case domain.EntityFiscalYear:
		fy, err := repos.LockFiscalYear(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		current = fy.SoftDelete
		if err := guardFiscalYear(ctx, repos, fy, deleted); err != nil {
			return err
		}

	case domain.EntityInventoryBatch:
		b, err := repos.FindBatchByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		if !deleted {
			if _, err := stockedProduct(ctx, repos, companyID, b.ProductID); err != nil {
				return err
			}
		}
		current = b.SoftDelete

	case domain.EntityProduct:
		p, err := repos.FindProductByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		current = p.SoftDelete
		if deleted {
			if err := guardProductStock(ctx, repos, p); err != nil {
				return err
			}
		}

	case domain.EntityCustomer:
		c, err := repos.FindCustomerByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		current = c.SoftDelete

	case domain.EntityCurrency, domain.EntityExchangeRate, domain.EntityApproval:
		return apperrors.NewValidationError(fmt.Sprintf("%s cannot be deleted or restored", kind.Label()))

	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown entity kind %q", kind))
	}

	if deleted && current.IsDeleted {
		return apperrors.NewStateError(fmt.Sprintf("%s %s is already deleted", kind.Label(), entityID))
	}
	if !deleted && !current.IsDeleted {
		return apperrors.NewStateError(fmt.Sprintf("%s %s is not deleted", kind.Label(), entityID))
	}
	return nil
}

func guardFiscalYear(ctx context.Context, repos portsrepo.ReadRepositories, fy *domain.FiscalYear, deleted bool) error {
	if deleted {
		if fy.IsClosed {
			return apperrors.NewStateError(fmt.Sprintf("fiscal year %s is closed", fy.FiscalYearID))
		}
		// Soft-deleted vouchers still belong to the year and may be restored into it.
		n, err := repos.CountVouchers(ctx, fy.CompanyID, portsrepo.VoucherFilter{
			FiscalYearID: fy.FiscalYearID,
			ListOptions:  portsrepo.ListOptions{IncludeDeleted: true},
		})
		if err != nil {
			return err
		}
		if n > 0 {
			return apperrors.NewStateError(fmt.Sprintf("fiscal year %s has %d voucher(s)", fy.FiscalYearID, n))
		}
		return nil
	}

	// A restored year must not break the one-open-year and no-overlap rules.
	years, err := repos.ListFiscalYears(ctx, fy.CompanyID, portsrepo.ListOptions{})
	if err != nil {
		return err
	}
	for _, other := range years {
		if other.FiscalYearID == fy.FiscalYearID {
			continue
		}
		if !fy.IsClosed && !other.IsClosed {
			return apperrors.NewStateError(fmt.Sprintf("fiscal year %s is already open", other.Name))
		}
		if other.Overlaps(*fy) {
			return apperrors.NewStateError(fmt.Sprintf("fiscal year overlaps %s", other.Name))
		}
	}
	return nil
}

// guardProductStock refuses to retire a product while live batches still hold it.
func guardProductStock(ctx context.Context, repos portsrepo.ReadRepositories, p *domain.Product) error {
	batches, err := repos.ListBatches(ctx, p.CompanyID, p.ProductID, portsrepo.ListOptions{})
	if err != nil {
		return err
	}
	for _, b := range batches {
		if b.Remaining.IsPositive() {
			return apperrors.NewStateError(fmt.Sprintf("product %s has stock in batch %s", p.ProductID, b.BatchID))
		}
	}
	return nil
}
