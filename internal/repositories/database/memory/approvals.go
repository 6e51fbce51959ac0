package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

func (r *reader) FindApprovalByID(ctx context.Context, companyID, approvalID string) (*domain.Approval, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	a, ok := r.st.approvals[approvalID]
	if !ok || a.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r *reader) ListApprovals(ctx context.Context, companyID string, filter repositories.ApprovalFilter) ([]domain.Approval, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.Approval{}
	for _, a := range r.st.approvals {
		if a.CompanyID != companyID {
			continue
		}
		if filter.EntityKind != "" && a.EntityKind != filter.EntityKind {
			continue
		}
		if filter.EntityID != "" && a.EntityID != filter.EntityID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntityKind != out[j].EntityKind {
			return out[i].EntityKind < out[j].EntityKind
		}
		if out[i].EntityID != out[j].EntityID {
			return out[i].EntityID < out[j].EntityID
		}
		return out[i].Level < out[j].Level
	})
	return out, nil
}

func (w *writer) SaveApproval(ctx context.Context, approval domain.Approval) error {
	if err := alive(ctx); err != nil {
		return err
	}
	if _, exists := w.st.approvals[approval.ApprovalID]; exists {
		return apperrors.ErrDuplicate
	}
	w.st.approvals[approval.ApprovalID] = approval
	return nil
}

func (w *writer) UpdateApprovalDecision(ctx context.Context, approval domain.Approval) error {
	if err := alive(ctx); err != nil {
		return err
	}
	existing, ok := w.st.approvals[approval.ApprovalID]
	if !ok || existing.CompanyID != approval.CompanyID {
		return apperrors.ErrNotFound
	}
	existing.Status = approval.Status
	existing.DecidedBy = approval.DecidedBy
	existing.DecidedAt = approval.DecidedAt
	existing.Notes = approval.Notes
	w.st.approvals[approval.ApprovalID] = existing
	return nil
}
