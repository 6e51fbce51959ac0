package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

func (r *reader) FindBatchByID(ctx context.Context, companyID, batchID string) (*domain.InventoryBatch, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	b, ok := r.st.batches[batchID]
	if !ok || b.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &b, nil
}

func (r *reader) ListBatches(ctx context.Context, companyID, productID string, opts repositories.ListOptions) ([]domain.InventoryBatch, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.InventoryBatch{}
	for _, b := range r.st.batches {
		if b.CompanyID != companyID || (productID != "" && b.ProductID != productID) {
			continue
		}
		if b.IsDeleted && !opts.IncludeDeleted {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

func (r *reader) ListInventoryTransactions(ctx context.Context, companyID, productID string) ([]domain.InventoryTransaction, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.InventoryTransaction{}
	for _, t := range r.st.invTxns {
		if t.CompanyID == companyID && (productID == "" || t.ProductID == productID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (w *writer) SaveBatch(ctx context.Context, batch domain.InventoryBatch) (*domain.InventoryBatch, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	if _, exists := w.st.batches[batch.BatchID]; exists {
		return nil, apperrors.ErrDuplicate
	}
	batch.Sequence = w.st.nextSeq()
	w.st.batches[batch.BatchID] = batch
	return &batch, nil
}

func (w *writer) UpdateBatchRemaining(ctx context.Context, batch domain.InventoryBatch) error {
	if err := alive(ctx); err != nil {
		return err
	}
	existing, ok := w.st.batches[batch.BatchID]
	if !ok || existing.CompanyID != batch.CompanyID {
		return apperrors.ErrNotFound
	}
	existing.Remaining = batch.Remaining
	existing.LastUpdatedAt = batch.LastUpdatedAt
	existing.LastUpdatedBy = batch.LastUpdatedBy
	w.st.batches[batch.BatchID] = existing
	return nil
}

func (w *writer) SaveInventoryTransaction(ctx context.Context, txn domain.InventoryTransaction) error {
	if err := alive(ctx); err != nil {
		return err
	}
	w.st.invTxns = append(w.st.invTxns, txn)
	return nil
}
