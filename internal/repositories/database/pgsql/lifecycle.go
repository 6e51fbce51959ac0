package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
)

// softDeleteTable returns the table and key column holding entities of kind.
func softDeleteTable(kind domain.EntityKind) (table, idColumn string, err error) {
	switch kind {
	case domain.EntityAccount:
		return "accounts", "account_id", nil
	case domain.EntityVoucher:
		return "vouchers", "voucher_id", nil
	case domain.EntityFiscalYear:
		return "fiscal_years", "fiscal_year_id", nil
	case domain.EntityInventoryBatch:
		return "inventory_batches", "batch_id", nil
	case domain.EntityProduct:
		return "products", "product_id", nil
	case domain.EntityCustomer:
		return "customers", "customer_id", nil
	case domain.EntityCurrency, domain.EntityExchangeRate, domain.EntityApproval:
		return "", "", fmt.Errorf("%w: %s cannot be soft-deleted", apperrors.ErrValidation, kind.Label())
	}
	return "", "", fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, kind)
}

func (r *repos) SetDeleted(ctx context.Context, kind domain.EntityKind, companyID, entityID string, deleted bool, actorID string, at time.Time) error {
	table, idColumn, err := softDeleteTable(kind)
	if err != nil {
		return err
	}
	var deletedAt *time.Time
	var deletedBy *string
	if deleted {
		deletedAt = &at
		deletedBy = mapping.NullableString(actorID)
	}
	// table and idColumn come from the fixed switch above, never from input.
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = $3, deleted_at = $4, deleted_by = $5
		WHERE company_id = $1 AND %s = $2`, table, idColumn)
	tag, err := r.q.Exec(ctx, query, companyID, entityID, deleted, deletedAt, deletedBy)
	return expectOne(tag, err, "set deleted "+kind.Label())
}
