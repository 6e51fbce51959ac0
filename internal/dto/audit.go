package dto

import "github.com/SscSPs/erp_ledger/internal/core/domain"

// ListAuditLogsParams defines query parameters for listing audit entries.
type ListAuditLogsParams struct {
	EntityKind string  `form:"entityKind"`
	EntityID   string  `form:"entityID"`
	Limit      int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken  *string `form:"nextToken"`
}

// ListAuditLogsResponse wraps a page of audit entries.
type ListAuditLogsResponse struct {
	AuditLogs []domain.AuditLog `json:"auditLogs"`
	NextToken *string           `json:"nextToken,omitempty"`
}
