package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ApprovalFilter narrows approval listings.
type ApprovalFilter struct {
	EntityKind domain.EntityKind
	EntityID   string
	Status     domain.ApprovalStatus
}

// ApprovalReader defines read operations for approval data
type ApprovalReader interface {
	FindApprovalByID(ctx context.Context, companyID, approvalID string) (*domain.Approval, error)

	// ListApprovals retrieves approvals ordered by entity then level.
	ListApprovals(ctx context.Context, companyID string, filter ApprovalFilter) ([]domain.Approval, error)
}

// ApprovalWriter defines write operations for approval data
type ApprovalWriter interface {
	SaveApproval(ctx context.Context, approval domain.Approval) error

	// UpdateApprovalDecision records the status, decider and notes of an approval.
	UpdateApprovalDecision(ctx context.Context, approval domain.Approval) error
}
