package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// inventoryService tracks stock by batch.
type inventoryService struct {
	BaseService
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(base BaseService) portssvc.InventorySvcFacade {
	return &inventoryService{BaseService: base}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) ReceiveBatch(ctx context.Context, rc domain.RequestContext, req dto.ReceiveBatchRequest) (*domain.InventoryBatch, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageInventory); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationError("quantity must be positive")
	}
	if req.UnitCost.IsNegative() {
		return nil, apperrors.NewValidationError("unit cost must not be negative")
	}
	expiry, err := dto.ParseDate("expiryDate", req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	batch := domain.InventoryBatch{
		BatchID:       s.NewID(),
		CompanyID:     rc.CompanyID,
		ProductID:     req.ProductID,
		ProductName:   req.ProductName,
		BatchNumber:   req.BatchNumber,
		Quantity:      req.Quantity,
		Remaining:     req.Quantity,
		UnitCost:      req.UnitCost,
		WarehouseID:   req.WarehouseID,
		WarehouseName: req.WarehouseName,
		AuditFields:   s.auditFields(rc.ActorID),
	}
	if !expiry.IsZero() {
		batch.ExpiryDate = &expiry
	}

	var saved *domain.InventoryBatch
	err = s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		product, err := stockedProduct(ctx, repos, rc.CompanyID, req.ProductID)
		if err != nil {
			return err
		}
		if batch.ProductName == "" {
			batch.ProductName = product.Name
		}
		saved, err = repos.SaveBatch(ctx, batch)
		if err != nil {
			return err
		}
		if err := repos.SaveInventoryTransaction(ctx, domain.InventoryTransaction{
			TransactionID: s.NewID(),
			CompanyID:     rc.CompanyID,
			ProductID:     batch.ProductID,
			BatchID:       batch.BatchID,
			Quantity:      batch.Quantity,
			UnitCost:      batch.UnitCost,
			Type:          domain.InventoryPurchase,
			Reference:     req.Reference,
			CreatedAt:     batch.CreatedAt,
			CreatedBy:     rc.ActorID,
		}); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityInventoryBatch, batch.BatchID,
			fmt.Sprintf("received %s of %s", batch.Quantity.String(), batch.ProductID))
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrState) {
			s.LogError(ctx, err, "Failed to receive batch", slog.String("product_id", req.ProductID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Batch received", slog.String("batch_id", saved.BatchID), slog.String("product_id", saved.ProductID))
	return saved, nil
}

// Consume draws stock for a sale from the named batch, or from the oldest batches first.
// Either the whole quantity is drawn or nothing is.
func (s *inventoryService) Consume(ctx context.Context, rc domain.RequestContext, req dto.ConsumeRequest) (*domain.ConsumptionResult, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageInventory); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationError("quantity must be positive")
	}

	result := &domain.ConsumptionResult{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		CostOfGoods:  decimal.Zero,
		Consumptions: []domain.BatchConsumption{},
		Transactions: []domain.InventoryTransaction{},
	}

	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		if _, err := stockedProduct(ctx, repos, rc.CompanyID, req.ProductID); err != nil {
			return err
		}
		batches, err := s.sourceBatches(ctx, repos, rc.CompanyID, req)
		if err != nil {
			return err
		}

		available := decimal.Zero
		for _, b := range batches {
			available = available.Add(b.Remaining)
		}
		if available.LessThan(req.Quantity) {
			return apperrors.NewValidationError(fmt.Sprintf("insufficient stock for %s: requested %s, available %s",
				req.ProductID, req.Quantity.String(), available.String()))
		}

		now := s.Now()
		outstanding := req.Quantity
		for _, b := range batches {
			if !outstanding.IsPositive() {
				break
			}
			if !b.Remaining.IsPositive() {
				continue
			}
			take := decimal.Min(outstanding, b.Remaining)
			outstanding = outstanding.Sub(take)

			b.Remaining = b.Remaining.Sub(take)
			b.LastUpdatedAt = now
			b.LastUpdatedBy = rc.ActorID
			if err := repos.UpdateBatchRemaining(ctx, b); err != nil {
				return err
			}
			txn := domain.InventoryTransaction{
				TransactionID: s.NewID(),
				CompanyID:     rc.CompanyID,
				ProductID:     b.ProductID,
				BatchID:       b.BatchID,
				Quantity:      take.Neg(),
				UnitCost:      b.UnitCost,
				Type:          domain.InventorySale,
				Reference:     req.Reference,
				CreatedAt:     now,
				CreatedBy:     rc.ActorID,
			}
			if err := repos.SaveInventoryTransaction(ctx, txn); err != nil {
				return err
			}
			if err := s.Audit(ctx, repos, rc, domain.AuditUpdate, domain.EntityInventoryBatch, b.BatchID,
				"sold "+take.String()); err != nil {
				return err
			}

			result.Consumptions = append(result.Consumptions, domain.BatchConsumption{BatchID: b.BatchID, Quantity: take, UnitCost: b.UnitCost})
			result.Transactions = append(result.Transactions, txn)
			result.CostOfGoods = result.CostOfGoods.Add(take.Mul(b.UnitCost))
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrState) {
			s.LogError(ctx, err, "Failed to consume stock", slog.String("product_id", req.ProductID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Stock consumed",
		slog.String("product_id", req.ProductID),
		slog.String("quantity", req.Quantity.String()),
		slog.Int("batches", len(result.Consumptions)))
	return result, nil
}

// sourceBatches returns the batches a sale may draw from, in draw order.
func (s *inventoryService) sourceBatches(ctx context.Context, repos portsrepo.ReadRepositories, companyID string, req dto.ConsumeRequest) ([]domain.InventoryBatch, error) {
	if req.BatchID == "" {
		return repos.ListBatches(ctx, companyID, req.ProductID, portsrepo.ListOptions{})
	}
	b, err := repos.FindBatchByID(ctx, companyID, req.BatchID)
	if err != nil {
		return nil, err
	}
	if b.IsDeleted {
		return nil, apperrors.NewStateError(fmt.Sprintf("batch %s is deleted", b.BatchID))
	}
	if b.ProductID != req.ProductID {
		return nil, apperrors.NewValidationError(fmt.Sprintf("batch %s does not hold product %s", b.BatchID, req.ProductID))
	}
	return []domain.InventoryBatch{*b}, nil
}

// Adjust corrects the remaining quantity of a batch by a signed amount.
func (s *inventoryService) Adjust(ctx context.Context, rc domain.RequestContext, req dto.AdjustRequest) (*domain.InventoryBatch, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageInventory); err != nil {
		return nil, err
	}
	if req.Quantity.IsZero() {
		return nil, apperrors.NewValidationError("adjustment quantity must not be zero")
	}

	var adjusted domain.InventoryBatch
	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		b, err := repos.FindBatchByID(ctx, rc.CompanyID, req.BatchID)
		if err != nil {
			return err
		}
		if b.IsDeleted {
			return apperrors.NewStateError(fmt.Sprintf("batch %s is deleted", b.BatchID))
		}
		remaining := b.Remaining.Add(req.Quantity)
		if remaining.IsNegative() {
			return apperrors.NewValidationError(fmt.Sprintf("adjustment would leave batch %s at %s", b.BatchID, remaining.String()))
		}

		now := s.Now()
		adjusted = *b
		adjusted.Remaining = remaining
		adjusted.LastUpdatedAt = now
		adjusted.LastUpdatedBy = rc.ActorID
		if err := repos.UpdateBatchRemaining(ctx, adjusted); err != nil {
			return err
		}
		if err := repos.SaveInventoryTransaction(ctx, domain.InventoryTransaction{
			TransactionID: s.NewID(),
			CompanyID:     rc.CompanyID,
			ProductID:     b.ProductID,
			BatchID:       b.BatchID,
			Quantity:      req.Quantity,
			UnitCost:      b.UnitCost,
			Type:          domain.InventoryAdjustment,
			Reference:     req.Reference,
			CreatedAt:     now,
			CreatedBy:     rc.ActorID,
		}); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditUpdate, domain.EntityInventoryBatch, b.BatchID, "adjusted "+req.Quantity.String())
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to adjust batch", slog.String("batch_id", req.BatchID))
		}
		return nil, err
	}
	return &adjusted, nil
}

func (s *inventoryService) ListBatches(ctx context.Context, rc domain.RequestContext, productID string, includeDeleted bool) ([]domain.InventoryBatch, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var batches []domain.InventoryBatch
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		batches, err = repos.ListBatches(ctx, rc.CompanyID, productID, portsrepo.ListOptions{IncludeDeleted: includeDeleted})
		return err
	})
	return batches, err
}

func (s *inventoryService) ListTransactions(ctx context.Context, rc domain.RequestContext, productID string) ([]domain.InventoryTransaction, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var txns []domain.InventoryTransaction
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		txns, err = repos.ListInventoryTransactions(ctx, rc.CompanyID, productID)
		return err
	})
	return txns, err
}

// ReconcileProduct returns the quantity on hand across live batches.
func (s *inventoryService) ReconcileProduct(ctx context.Context, rc domain.RequestContext, productID string) (decimal.Decimal, error) {
	batches, err := s.ListBatches(ctx, rc, productID, false)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, b := range batches {
		total = total.Add(b.Remaining)
	}
	return total, nil
}
