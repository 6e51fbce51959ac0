package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// InventoryReader defines read operations for inventory data
type InventoryReader interface {
	// FindBatchByID retrieves a batch, deleted or not.
	FindBatchByID(ctx context.Context, companyID, batchID string) (*domain.InventoryBatch, error)

	// ListBatches retrieves batches in receipt order. An empty productID lists every product.
	ListBatches(ctx context.Context, companyID, productID string, opts ListOptions) ([]domain.InventoryBatch, error)

	// ListInventoryTransactions retrieves stock movements in creation order. An empty productID lists every product.
	ListInventoryTransactions(ctx context.Context, companyID, productID string) ([]domain.InventoryTransaction, error)
}

// InventoryWriter defines write operations for inventory data
type InventoryWriter interface {
	// SaveBatch persists a new batch and returns it with its receipt sequence.
	SaveBatch(ctx context.Context, batch domain.InventoryBatch) (*domain.InventoryBatch, error)

	// UpdateBatchRemaining sets the remaining quantity of a batch.
	UpdateBatchRemaining(ctx context.Context, batch domain.InventoryBatch) error

	// SaveInventoryTransaction appends a stock movement.
	SaveInventoryTransaction(ctx context.Context, txn domain.InventoryTransaction) error
}
