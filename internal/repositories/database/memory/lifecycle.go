package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

func applySoftDelete(sd *domain.SoftDelete, deleted bool, actorID string, at time.Time) {
	if deleted {
		sd.IsDeleted = true
		sd.DeletedAt = &at
		sd.DeletedBy = actorID
		return
	}
	*sd = domain.SoftDelete{}
}

func (w *writer) SetDeleted(ctx context.Context, kind domain.EntityKind, companyID, entityID string, deleted bool, actorID string, at time.Time) error {
	if err := alive(ctx); err != nil {
		return err
	}
	switch kind {
	case domain.EntityAccount:
		a, ok := w.st.accounts[entityID]
		if !ok || a.CompanyID != companyID {
			return apperrors.ErrNotFound
		}
		applySoftDelete(&a.SoftDelete, deleted, actorID, at)
		w.st.accounts[entityID] = a
	case domain.EntityVoucher:
		v, ok := w.st.vouchers[entityID]
		if !ok || v.CompanyID != companyID {
			return apperrors.ErrNotFound
		}
		applySoftDelete(&v.SoftDelete, deleted, actorID, at)
		w.st.vouchers[entityID] = v
	case domain.EntityFiscalYear:
		fy, ok := w.st.fiscalYears[entityID]
		if !ok || fy.CompanyID != companyID {
			return apperrors.ErrNotFound
		}
		applySoftDelete(&fy.SoftDelete, deleted, actorID, at)
		w.st.fiscalYears[entityID] = fy
	case domain.EntityInventoryBatch:
		b, ok := w.st.batches[entityID]
		if !ok || b.CompanyID != companyID {
			return apperrors.ErrNotFound
		}
		applySoftDelete(&b.SoftDelete, deleted, actorID, at)
		w.st.batches[entityID] = b
	case domain.EntityProduct:
		p, ok := w.st.products[entityID]
		if !ok || p.CompanyID != companyID {
			return apperrors.ErrNotFound
		}
		applySoftDelete(&p.SoftDelete, deleted, actorID, at)
		w.st.products[entityID] = p
	case domain.EntityCustomer:
		c, ok := w.st.customers[entityID]
		if !ok || c.CompanyID != companyID {
			return apperrors.ErrNotFound
		}
		applySoftDelete(&c.SoftDelete, deleted, actorID, at)
		w.st.customers[entityID] = c
	case domain.EntityCurrency, domain.EntityExchangeRate, domain.EntityApproval:
		return fmt.Errorf("%w: %s cannot be soft-deleted", apperrors.ErrValidation, kind.Label())
	default:
		return fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, kind)
	}
	return nil
}
