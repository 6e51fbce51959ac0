package domain

import "time"

// ApprovalStatus is the state of a single approval level.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// Approval is one level of sign-off on an arbitrary entity.
// Levels are sequential: level N is decided only after levels 1..N-1 are approved.
type Approval struct {
	ApprovalID  string         `json:"approvalID"`
	CompanyID   string         `json:"companyID"`
	EntityKind  EntityKind     `json:"entityKind"`
	EntityID    string         `json:"entityID"`
	Level       int            `json:"level"`
	Status      ApprovalStatus `json:"status"`
	RequestedBy string         `json:"requestedBy"`
	RequestedAt time.Time      `json:"requestedAt"`
	DecidedBy   string         `json:"decidedBy,omitempty"`
	DecidedAt   *time.Time     `json:"decidedAt,omitempty"`
	Notes       string         `json:"notes,omitempty"`
}

// Approved mirrors the boolean flag of the original record shape.
func (a Approval) Approved() bool { return a.Status == ApprovalApproved }

// Rejected mirrors the boolean flag of the original record shape.
func (a Approval) Rejected() bool { return a.Status == ApprovalRejected }
