package models

import "time"

// Approval is the approvals row.
type Approval struct {
	ApprovalID  string     `db:"approval_id"`
	CompanyID   string     `db:"company_id"`
	EntityKind  string     `db:"entity_kind"`
	EntityID    string     `db:"entity_id"`
	Level       int        `db:"level"`
	Status      string     `db:"status"`
	RequestedBy string     `db:"requested_by"`
	RequestedAt time.Time  `db:"requested_at"`
	DecidedBy   *string    `db:"decided_by"`
	DecidedAt   *time.Time `db:"decided_at"`
	Notes       string     `db:"notes"`
}

// AuditLog is the audit_logs row. The table rejects UPDATE and DELETE.
type AuditLog struct {
	Sequence   int64     `db:"sequence"`
	AuditLogID string    `db:"audit_log_id"`
	CompanyID  string    `db:"company_id"`
	ActorID    string    `db:"actor_id"`
	Action     string    `db:"action"`
	EntityKind string    `db:"entity_kind"`
	EntityID   string    `db:"entity_id"`
	Details    string    `db:"details"`
	CreatedAt  time.Time `db:"created_at"`
}
