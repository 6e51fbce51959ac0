package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryBatch is the inventory_batches row.
type InventoryBatch struct {
	BatchID       string          `db:"batch_id"`
	CompanyID     string          `db:"company_id"`
	ProductID     string          `db:"product_id"`
	ProductName   string          `db:"product_name"`
	BatchNumber   string          `db:"batch_number"`
	ExpiryDate    *time.Time      `db:"expiry_date"`
	Quantity      decimal.Decimal `db:"quantity"`
	Remaining     decimal.Decimal `db:"remaining"`
	UnitCost      decimal.Decimal `db:"unit_cost"`
	WarehouseID   string          `db:"warehouse_id"`
	WarehouseName string          `db:"warehouse_name"`
	Sequence      int64           `db:"sequence"`
	AuditFields
	SoftDelete
}

// InventoryTransaction is the inventory_transactions row.
type InventoryTransaction struct {
	TransactionID string          `db:"transaction_id"`
	CompanyID     string          `db:"company_id"`
	ProductID     string          `db:"product_id"`
	BatchID       string          `db:"batch_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitCost      decimal.Decimal `db:"unit_cost"`
	Type          string          `db:"type"`
	Reference     string          `db:"reference"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
