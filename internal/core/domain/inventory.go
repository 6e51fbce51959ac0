package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryType classifies stock movements.
type InventoryType string

const (
	InventoryPurchase   InventoryType = "PURCHASE"
	InventorySale       InventoryType = "SALE"
	InventoryAdjustment InventoryType = "ADJUSTMENT"
)

// InventoryBatch is a stock lot with its own cost basis.
type InventoryBatch struct {
	BatchID       string          `json:"batchID"`
	CompanyID     string          `json:"companyID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName"`
	BatchNumber   string          `json:"batchNumber"`
	ExpiryDate    *time.Time      `json:"expiryDate,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Remaining     decimal.Decimal `json:"remaining"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	WarehouseID   string          `json:"warehouseID"`
	WarehouseName string          `json:"warehouseName"`
	// Sequence orders batches by receipt for FIFO consumption.
	Sequence int64 `json:"sequence"`
	AuditFields
	SoftDelete
}

// InventoryTransaction records a stock movement. Quantity is signed: positive adds stock.
type InventoryTransaction struct {
	TransactionID string          `json:"transactionID"`
	CompanyID     string          `json:"companyID"`
	ProductID     string          `json:"productID"`
	BatchID       string          `json:"batchID"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	Type          InventoryType   `json:"type"`
	Reference     string          `json:"reference,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// BatchConsumption is the portion of a sale drawn from one batch.
type BatchConsumption struct {
	BatchID  string          `json:"batchID"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// ConsumptionResult summarizes a SALE across the batches it drew from.
type ConsumptionResult struct {
	ProductID    string                 `json:"productID"`
	Quantity     decimal.Decimal        `json:"quantity"`
	CostOfGoods  decimal.Decimal        `json:"costOfGoods"`
	Consumptions []BatchConsumption     `json:"consumptions"`
	Transactions []InventoryTransaction `json:"transactions"`
}
