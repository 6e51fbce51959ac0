package domain

import "fmt"

// Role is the caller's role within a company.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleMember   Role = "MEMBER"
	RoleReadOnly Role = "READONLY"
)

// IsValid reports whether the role is known.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleReadOnly:
		return true
	}
	return false
}

// Action is a permission-gated operation.
type Action string

const (
	ActionPostVoucher      Action = "voucher:post"
	ActionDelete           Action = "entity:delete"
	ActionRestore          Action = "entity:restore"
	ActionManageAccounts   Action = "account:manage"
	ActionManageFiscalYear Action = "fiscal_year:manage"
	ActionCloseFiscalYear  Action = "fiscal_year:close"
	ActionManageCurrencies Action = "currency:manage"
	ActionManageInventory  Action = "inventory:manage"
	ActionManageMasterData Action = "master_data:manage"
	ActionRequestApproval  Action = "approval:request"
	ActionApprove          Action = "approval:decide"
	ActionViewReports      Action = "report:view"
	ActionViewAudit        Action = "audit:view"
	ActionRequestInsights  Action = "insight:request"
)

// RequestContext identifies who is acting and for which company. It is passed
// explicitly into every core operation.
type RequestContext struct {
	CompanyID string
	ActorID   string
	Role      Role
}

// Validate checks that the context is usable.
func (rc RequestContext) Validate() error {
	if rc.CompanyID == "" {
		return fmt.Errorf("company id is required")
	}
	if rc.ActorID == "" {
		return fmt.Errorf("actor id is required")
	}
	if !rc.Role.IsValid() {
		return fmt.Errorf("invalid role %q", rc.Role)
	}
	return nil
}
