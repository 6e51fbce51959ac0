package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const batchColumns = `batch_id, company_id, product_id, product_name, batch_number, expiry_date, quantity, remaining,
	unit_cost, warehouse_id, warehouse_name, sequence, created_at, created_by, last_updated_at, last_updated_by,
	is_deleted, deleted_at, deleted_by`

const inventoryTxnColumns = `transaction_id, company_id, product_id, batch_id, quantity, unit_cost, type, reference, created_at, created_by`

func scanBatch(row pgx.Row) (domain.InventoryBatch, error) {
	var m models.InventoryBatch
	err := row.Scan(
		&m.BatchID, &m.CompanyID, &m.ProductID, &m.ProductName, &m.BatchNumber, &m.ExpiryDate, &m.Quantity, &m.Remaining,
		&m.UnitCost, &m.WarehouseID, &m.WarehouseName, &m.Sequence, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.IsDeleted, &m.DeletedAt, &m.DeletedBy,
	)
	return mapping.ToDomainInventoryBatch(m), err
}

func scanInventoryTxn(row pgx.Row) (domain.InventoryTransaction, error) {
	var m models.InventoryTransaction
	err := row.Scan(&m.TransactionID, &m.CompanyID, &m.ProductID, &m.BatchID, &m.Quantity, &m.UnitCost,
		&m.Type, &m.Reference, &m.CreatedAt, &m.CreatedBy)
	return mapping.ToDomainInventoryTransaction(m), err
}

func (r *repos) FindBatchByID(ctx context.Context, companyID, batchID string) (*domain.InventoryBatch, error) {
	b, err := scanBatch(r.q.QueryRow(ctx,
		`SELECT `+batchColumns+` FROM inventory_batches WHERE company_id = $1 AND batch_id = $2`, companyID, batchID))
	if err != nil {
		return nil, translate(err, "find batch")
	}
	return &b, nil
}

func (r *repos) ListBatches(ctx context.Context, companyID, productID string, opts repositories.ListOptions) ([]domain.InventoryBatch, error) {
	w := &whereBuilder{}
	w.add("company_id = $%d", companyID)
	if productID != "" {
		w.add("product_id = $%d", productID)
	}
	if !opts.IncludeDeleted {
		w.raw("NOT is_deleted")
	}
	rows, err := r.q.Query(ctx, `SELECT `+batchColumns+` FROM inventory_batches`+w.String()+` ORDER BY sequence`, w.args...)
	if err != nil {
		return nil, translate(err, "list batches")
	}
	batches, err := collect(rows, scanBatch)
	return batches, translate(err, "list batches")
}

func (r *repos) ListInventoryTransactions(ctx context.Context, companyID, productID string) ([]domain.InventoryTransaction, error) {
	w := &whereBuilder{}
	w.add("company_id = $%d", companyID)
	if productID != "" {
		w.add("product_id = $%d", productID)
	}
	rows, err := r.q.Query(ctx, `SELECT `+inventoryTxnColumns+` FROM inventory_transactions`+w.String()+` ORDER BY sequence`, w.args...)
	if err != nil {
		return nil, translate(err, "list inventory transactions")
	}
	txns, err := collect(rows, scanInventoryTxn)
	return txns, translate(err, "list inventory transactions")
}

func (r *repos) SaveBatch(ctx context.Context, batch domain.InventoryBatch) (*domain.InventoryBatch, error) {
	m := mapping.ToModelInventoryBatch(batch)
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory_batches (batch_id, company_id, product_id, product_name, batch_number, expiry_date,
			quantity, remaining, unit_cost, warehouse_id, warehouse_name, created_at, created_by,
			last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING sequence`,
		m.BatchID, m.CompanyID, m.ProductID, m.ProductName, m.BatchNumber, m.ExpiryDate,
		m.Quantity, m.Remaining, m.UnitCost, m.WarehouseID, m.WarehouseName, m.CreatedAt, m.CreatedBy,
		m.LastUpdatedAt, m.LastUpdatedBy, m.IsDeleted, m.DeletedAt, m.DeletedBy).Scan(&m.Sequence)
	if err != nil {
		return nil, translate(err, "save batch")
	}
	saved := mapping.ToDomainInventoryBatch(m)
	return &saved, nil
}

func (r *repos) UpdateBatchRemaining(ctx context.Context, batch domain.InventoryBatch) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE inventory_batches
		SET remaining = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND batch_id = $2`,
		batch.CompanyID, batch.BatchID, batch.Remaining, batch.LastUpdatedAt, batch.LastUpdatedBy)
	return expectOne(tag, err, "update batch")
}

func (r *repos) SaveInventoryTransaction(ctx context.Context, txn domain.InventoryTransaction) error {
	m := mapping.ToModelInventoryTransaction(txn)
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_transactions (transaction_id, company_id, product_id, batch_id, quantity, unit_cost,
			type, reference, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.TransactionID, m.CompanyID, m.ProductID, m.BatchID, m.Quantity, m.UnitCost,
		m.Type, m.Reference, m.CreatedAt, m.CreatedBy)
	return translate(err, "save inventory transaction")
}
