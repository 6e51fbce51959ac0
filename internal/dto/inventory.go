package dto

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiveBatchRequest records a PURCHASE into a new batch.
type ReceiveBatchRequest struct {
	ProductID     string          `json:"productID" binding:"required"`
	ProductName   string          `json:"productName"` // Defaults to the product's name
	BatchNumber   string          `json:"batchNumber" binding:"required"`
	ExpiryDate    string          `json:"expiryDate" binding:"omitempty,datetime=2006-01-02"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	WarehouseID   string          `json:"warehouseID" binding:"required"`
	WarehouseName string          `json:"warehouseName"`
	Reference     string          `json:"reference"`
}

// ConsumeRequest records a SALE. Without BatchID the oldest batches are drawn first.
type ConsumeRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	BatchID   string          `json:"batchID"`
	Reference string          `json:"reference"`
}

// AdjustRequest records an ADJUSTMENT. Quantity is signed.
type AdjustRequest struct {
	BatchID   string          `json:"batchID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reference string          `json:"reference"`
}

// ListBatchesParams filters batch listings.
type ListBatchesParams struct {
	ProductID      string `form:"productID"`
	IncludeDeleted bool   `form:"includeDeleted,default=false"`
}

// ReconcileResponse is the on-hand quantity of a product.
type ReconcileResponse struct {
	ProductID string          `json:"productID"`
	OnHand    decimal.Decimal `json:"onHand"`
}

// BatchesResponse wraps a list of batches.
type BatchesResponse struct {
	Batches []domain.InventoryBatch `json:"batches"`
}

// InventoryTransactionsResponse wraps a list of stock movements.
type InventoryTransactionsResponse struct {
	Transactions []domain.InventoryTransaction `json:"transactions"`
}
