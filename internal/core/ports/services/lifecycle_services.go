package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

// LifecycleService soft-deletes and restores entities of any soft-deletable kind.
type LifecycleService interface {
	SoftDelete(ctx context.Context, rc domain.RequestContext, kind domain.EntityKind, entityID string) error
	Restore(ctx context.Context, rc domain.RequestContext, kind domain.EntityKind, entityID string) error
}

// PermissionService gates every mutation.
type PermissionService interface {
	HasPermission(role domain.Role, action domain.Action) bool
	// Require returns ErrForbidden unless rc's role grants action.
	Require(rc domain.RequestContext, action domain.Action) error
}

// AuditService reads the append-only audit log.
type AuditService interface {
	// List returns a page of entries newest first and the token for the next page, if any.
	List(ctx context.Context, rc domain.RequestContext, filter repositories.AuditFilter, nextToken *string) ([]domain.AuditLog, *string, error)
}

// ApprovalService manages sequential multi-level sign-off.
type ApprovalService interface {
	Request(ctx context.Context, rc domain.RequestContext, kind domain.EntityKind, entityID string, level int, notes string) (*domain.Approval, error)
	Approve(ctx context.Context, rc domain.RequestContext, approvalID, notes string) (*domain.Approval, error)
	Reject(ctx context.Context, rc domain.RequestContext, approvalID, notes string) (*domain.Approval, error)
	List(ctx context.Context, rc domain.RequestContext, filter repositories.ApprovalFilter) ([]domain.Approval, error)
}
