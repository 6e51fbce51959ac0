package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelInventoryBatch converts a domain InventoryBatch to a model InventoryBatch
func ToModelInventoryBatch(d domain.InventoryBatch) models.InventoryBatch {
	return models.InventoryBatch{
		BatchID:       d.BatchID,
		CompanyID:     d.CompanyID,
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,
		BatchNumber:   d.BatchNumber,
		ExpiryDate:    d.ExpiryDate,
		Quantity:      d.Quantity,
		Remaining:     d.Remaining,
		UnitCost:      d.UnitCost,
		WarehouseID:   d.WarehouseID,
		WarehouseName: d.WarehouseName,
		Sequence:      d.Sequence,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		SoftDelete:    ToModelSoftDelete(d.SoftDelete),
	}
}

// ToDomainInventoryBatch converts a model InventoryBatch to a domain InventoryBatch
func ToDomainInventoryBatch(m models.InventoryBatch) domain.InventoryBatch {
	return domain.InventoryBatch{
		BatchID:       m.BatchID,
		CompanyID:     m.CompanyID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		BatchNumber:   m.BatchNumber,
		ExpiryDate:    m.ExpiryDate,
		Quantity:      m.Quantity,
		Remaining:     m.Remaining,
		UnitCost:      m.UnitCost,
		WarehouseID:   m.WarehouseID,
		WarehouseName: m.WarehouseName,
		Sequence:      m.Sequence,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		SoftDelete:    ToDomainSoftDelete(m.SoftDelete),
	}
}

// ToModelInventoryTransaction converts a domain InventoryTransaction to a model InventoryTransaction
func ToModelInventoryTransaction(d domain.InventoryTransaction) models.InventoryTransaction {
	return models.InventoryTransaction{
		TransactionID: d.TransactionID,
		CompanyID:     d.CompanyID,
		ProductID:     d.ProductID,
		BatchID:       d.BatchID,
		Quantity:      d.Quantity,
		UnitCost:      d.UnitCost,
		Type:          string(d.Type),
		Reference:     d.Reference,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainInventoryTransaction converts a model InventoryTransaction to a domain InventoryTransaction
func ToDomainInventoryTransaction(m models.InventoryTransaction) domain.InventoryTransaction {
	return domain.InventoryTransaction{
		TransactionID: m.TransactionID,
		CompanyID:     m.CompanyID,
		ProductID:     m.ProductID,
		BatchID:       m.BatchID,
		Quantity:      m.Quantity,
		UnitCost:      m.UnitCost,
		Type:          domain.InventoryType(m.Type),
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
