package dto

import "github.com/SscSPs/erp_ledger/internal/core/domain"

// RequestApprovalRequest opens one approval level on an entity.
type RequestApprovalRequest struct {
	EntityKind domain.EntityKind `json:"entityKind" binding:"required"`
	EntityID   string            `json:"entityID" binding:"required"`
	Level      int               `json:"level" binding:"required,min=1"`
	Notes      string            `json:"notes"`
}

// DecideApprovalRequest carries optional notes for an approve or reject decision.
type DecideApprovalRequest struct {
	Notes string `json:"notes"`
}

// ListApprovalsParams filters approval listings.
type ListApprovalsParams struct {
	EntityKind string `form:"entityKind"`
	EntityID   string `form:"entityID"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// ApprovalsResponse wraps a list of approvals.
type ApprovalsResponse struct {
	Approvals []domain.Approval `json:"approvals"`
}
