package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// AuditFilter narrows audit log listings. Results are ordered newest first.
type AuditFilter struct {
	EntityKind domain.EntityKind
	EntityID   string
	// BeforeSequence returns only entries appended before this sequence; zero means from the newest.
	BeforeSequence int64
	Limit          int
}

// AuditReader defines read operations for the audit log
type AuditReader interface {
	ListAuditLogs(ctx context.Context, companyID string, filter AuditFilter) ([]domain.AuditLog, error)
}

// AuditWriter appends to the audit log. There is no update or delete.
type AuditWriter interface {
	AppendAuditLog(ctx context.Context, entry domain.AuditLog) error
}
