package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelApproval converts a domain Approval to a model Approval
func ToModelApproval(d domain.Approval) models.Approval {
	return models.Approval{
		ApprovalID:  d.ApprovalID,
		CompanyID:   d.CompanyID,
		EntityKind:  string(d.EntityKind),
		EntityID:    d.EntityID,
		Level:       d.Level,
		Status:      string(d.Status),
		RequestedBy: d.RequestedBy,
		RequestedAt: d.RequestedAt,
		DecidedBy:   NullableString(d.DecidedBy),
		DecidedAt:   d.DecidedAt,
		Notes:       d.Notes,
	}
}

// ToDomainApproval converts a model Approval to a domain Approval
func ToDomainApproval(m models.Approval) domain.Approval {
	return domain.Approval{
		ApprovalID:  m.ApprovalID,
		CompanyID:   m.CompanyID,
		EntityKind:  domain.EntityKind(m.EntityKind),
		EntityID:    m.EntityID,
		Level:       m.Level,
		Status:      domain.ApprovalStatus(m.Status),
		RequestedBy: m.RequestedBy,
		RequestedAt: m.RequestedAt,
		DecidedBy:   StringValue(m.DecidedBy),
		DecidedAt:   m.DecidedAt,
		Notes:       m.Notes,
	}
}

// ToModelAuditLog converts a domain AuditLog to a model AuditLog
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		Sequence:   d.Sequence,
		AuditLogID: d.AuditLogID,
		CompanyID:  d.CompanyID,
		ActorID:    d.ActorID,
		Action:     string(d.Action),
		EntityKind: string(d.EntityKind),
		EntityID:   d.EntityID,
		Details:    d.Details,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLog
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		Sequence:   m.Sequence,
		AuditLogID: m.AuditLogID,
		CompanyID:  m.CompanyID,
		ActorID:    m.ActorID,
		Action:     domain.AuditAction(m.Action),
		EntityKind: domain.EntityKind(m.EntityKind),
		EntityID:   m.EntityID,
		Details:    m.Details,
		CreatedAt:  m.CreatedAt,
	}
}
