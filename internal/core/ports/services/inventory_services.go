package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// InventoryReaderSvc defines read operations for stock
type InventoryReaderSvc interface {
	ListBatches(ctx context.Context, rc domain.RequestContext, productID string, includeDeleted bool) ([]domain.InventoryBatch, error)
	ListTransactions(ctx context.Context, rc domain.RequestContext, productID string) ([]domain.InventoryTransaction, error)

	// ReconcileProduct sums the remaining quantity over live batches of a product.
	ReconcileProduct(ctx context.Context, rc domain.RequestContext, productID string) (decimal.Decimal, error)
}

// InventoryWriterSvc defines stock movements
type InventoryWriterSvc interface {
	ReceiveBatch(ctx context.Context, rc domain.RequestContext, req dto.ReceiveBatchRequest) (*domain.InventoryBatch, error)
	Consume(ctx context.Context, rc domain.RequestContext, req dto.ConsumeRequest) (*domain.ConsumptionResult, error)
	Adjust(ctx context.Context, rc domain.RequestContext, req dto.AdjustRequest) (*domain.InventoryBatch, error)
}

// InventorySvcFacade combines all inventory service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
