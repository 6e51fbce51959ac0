package services_test

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, f *fixture, productID, batchNumber, qty, cost string) *domain.InventoryBatch {
	t.Helper()
	b, err := f.svc.Inventory.ReceiveBatch(f.ctx, f.member, dto.ReceiveBatchRequest{
		ProductID:   productID,
		ProductName: productID + " widget",
		BatchNumber: batchNumber,
		Quantity:    decimal.RequireFromString(qty),
		UnitCost:    decimal.RequireFromString(cost),
		WarehouseID: "WH-1",
	})
	require.NoError(t, err)
	return b
}

func TestInventory_ConsumeFIFO(t *testing.T) {
	f := newFixture(t, nil)
	sku1 := f.product(t, "SKU-1")
	first := receive(t, f, sku1, "B1", "10", "2")
	second := receive(t, f, sku1, "B2", "10", "3")

	res, err := f.svc.Inventory.Consume(f.ctx, f.member, dto.ConsumeRequest{ProductID: sku1, Quantity: decimal.NewFromInt(15)})
	require.NoError(t, err)
	assertDecimal(t, "35", res.CostOfGoods)
	require.Len(t, res.Consumptions, 2)
	assert.Equal(t, first.BatchID, res.Consumptions[0].BatchID)
	assertDecimal(t, "10", res.Consumptions[0].Quantity)
	assert.Equal(t, second.BatchID, res.Consumptions[1].BatchID)
	assertDecimal(t, "5", res.Consumptions[1].Quantity)
	for _, txn := range res.Transactions {
		assert.Equal(t, domain.InventorySale, txn.Type)
		assert.True(t, txn.Quantity.IsNegative())
	}

	onHand, err := f.svc.Inventory.ReconcileProduct(f.ctx, f.readOnly, sku1)
	require.NoError(t, err)
	assertDecimal(t, "5", onHand)

	txns, err := f.svc.Inventory.ListTransactions(f.ctx, f.readOnly, sku1)
	require.NoError(t, err)
	assert.Len(t, txns, 4)
}

func TestInventory_ConsumeNamedBatch(t *testing.T) {
	f := newFixture(t, nil)
	sku1 := f.product(t, "SKU-1")
	sku2 := f.product(t, "SKU-2")
	receive(t, f, sku1, "B1", "10", "2")
	second := receive(t, f, sku1, "B2", "10", "3")
	other := receive(t, f, sku2, "C1", "4", "1")

	res, err := f.svc.Inventory.Consume(f.ctx, f.member, dto.ConsumeRequest{ProductID: sku1, BatchID: second.BatchID, Quantity: decimal.NewFromInt(4)})
	require.NoError(t, err)
	assertDecimal(t, "12", res.CostOfGoods)

	batches, err := f.svc.Inventory.ListBatches(f.ctx, f.readOnly, sku1, false)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assertDecimal(t, "10", batches[0].Remaining)
	assertDecimal(t, "6", batches[1].Remaining)

	_, err = f.svc.Inventory.Consume(f.ctx, f.member, dto.ConsumeRequest{ProductID: sku1, BatchID: other.BatchID, Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "batch holds another product")

	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityInventoryBatch, second.BatchID))
	_, err = f.svc.Inventory.Consume(f.ctx, f.member, dto.ConsumeRequest{ProductID: sku1, BatchID: second.BatchID, Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, apperrors.ErrState)
}

func TestInventory_InsufficientStockDrawsNothing(t *testing.T) {
	f := newFixture(t, nil)
	sku1 := f.product(t, "SKU-1")
	receive(t, f, sku1, "B1", "10", "2")
	receive(t, f, sku1, "B2", "5", "3")

	_, err := f.svc.Inventory.Consume(f.ctx, f.member, dto.ConsumeRequest{ProductID: sku1, Quantity: decimal.NewFromInt(16)})
	require.ErrorIs(t, err, apperrors.ErrValidation)

	onHand, err := f.svc.Inventory.ReconcileProduct(f.ctx, f.readOnly, sku1)
	require.NoError(t, err)
	assertDecimal(t, "15", onHand)
}

func TestInventory_DeletedBatchIsNotDrawn(t *testing.T) {
	f := newFixture(t, nil)
	sku1 := f.product(t, "SKU-1")
	first := receive(t, f, sku1, "B1", "10", "2")
	receive(t, f, sku1, "B2", "10", "3")
	require.NoError(t, f.svc.Lifecycle.SoftDelete(f.ctx, f.admin, domain.EntityInventoryBatch, first.BatchID))

	res, err := f.svc.Inventory.Consume(f.ctx, f.member, dto.ConsumeRequest{ProductID: sku1, Quantity: decimal.NewFromInt(2)})
	require.NoError(t, err)
	assertDecimal(t, "6", res.CostOfGoods)

	all, err := f.svc.Inventory.ListBatches(f.ctx, f.readOnly, sku1, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInventory_Adjust(t *testing.T) {
	f := newFixture(t, nil)
	sku1 := f.product(t, "SKU-1")
	b := receive(t, f, sku1, "B1", "10", "2")

	adjusted, err := f.svc.Inventory.Adjust(f.ctx, f.member, dto.AdjustRequest{BatchID: b.BatchID, Quantity: decimal.NewFromInt(-3), Reference: "stocktake"})
	require.NoError(t, err)
	assertDecimal(t, "7", adjusted.Remaining)
	assertDecimal(t, "10", adjusted.Quantity)

	tests := []struct {
		name    string
		req     dto.AdjustRequest
		wantErr error
	}{
		{"zero", dto.AdjustRequest{BatchID: b.BatchID, Quantity: decimal.Zero}, apperrors.ErrValidation},
		{"below zero", dto.AdjustRequest{BatchID: b.BatchID, Quantity: decimal.NewFromInt(-8)}, apperrors.ErrValidation},
		{"missing batch", dto.AdjustRequest{BatchID: "nope", Quantity: decimal.NewFromInt(1)}, apperrors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Inventory.Adjust(f.ctx, f.member, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInventory_ReceiveValidation(t *testing.T) {
	f := newFixture(t, nil)
	sku1 := f.product(t, "SKU-1")
	base := dto.ReceiveBatchRequest{ProductID: sku1, ProductName: "Widget", BatchNumber: "B1", WarehouseID: "WH-1"}

	zeroQty := base
	zeroQty.Quantity = decimal.Zero
	zeroQty.UnitCost = decimal.NewFromInt(1)
	_, err := f.svc.Inventory.ReceiveBatch(f.ctx, f.member, zeroQty)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	negCost := base
	negCost.Quantity = decimal.NewFromInt(1)
	negCost.UnitCost = decimal.NewFromInt(-1)
	_, err = f.svc.Inventory.ReceiveBatch(f.ctx, f.member, negCost)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	ok := base
	ok.Quantity = decimal.NewFromInt(1)
	ok.UnitCost = decimal.Zero
	_, err = f.svc.Inventory.ReceiveBatch(f.ctx, f.readOnly, ok)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
