package domain

import "time"

// AuditAction names what happened to an entity.
type AuditAction string

const (
	AuditCreate  AuditAction = "CREATE"
	AuditUpdate  AuditAction = "UPDATE"
	AuditPost    AuditAction = "POST"
	AuditDelete  AuditAction = "DELETE"
	AuditRestore AuditAction = "RESTORE"
	AuditClose   AuditAction = "CLOSE"
	AuditApprove AuditAction = "APPROVE"
	AuditReject  AuditAction = "REJECT"
)

// AuditLog is an append-only record. It is never updated or deleted.
type AuditLog struct {
	AuditLogID string      `json:"auditLogID"`
	CompanyID  string      `json:"companyID"`
	ActorID    string      `json:"actorID"`
	Action     AuditAction `json:"action"`
	EntityKind EntityKind  `json:"entityKind"`
	EntityID   string      `json:"entityID"`
	Details    string      `json:"details,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	// Sequence is the append order within the store.
	Sequence int64 `json:"sequence"`
}
