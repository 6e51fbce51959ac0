package services

import (
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// permissionService grants actions by role from a static table.
type permissionService struct {
	grants map[domain.Role]map[domain.Action]bool
}

func grant(actions ...domain.Action) map[domain.Action]bool {
	m := make(map[domain.Action]bool, len(actions))
	for _, a := range actions {
		m[a] = true
	}
	return m
}

// NewPermissionService creates the default role table.
// ADMIN may do everything; MEMBER records day-to-day activity; READONLY only reads.
func NewPermissionService() portssvc.PermissionService {
	readOnly := []domain.Action{domain.ActionViewReports, domain.ActionViewAudit, domain.ActionRequestInsights}
	member := append([]domain.Action{
		domain.ActionPostVoucher,
		domain.ActionManageInventory,
		domain.ActionManageMasterData,
		domain.ActionRequestApproval,
	}, readOnly...)
	admin := append([]domain.Action{
		domain.ActionDelete,
		domain.ActionRestore,
		domain.ActionManageAccounts,
		domain.ActionManageFiscalYear,
		domain.ActionCloseFiscalYear,
		domain.ActionManageCurrencies,
		domain.ActionApprove,
	}, member...)

	return &permissionService{grants: map[domain.Role]map[domain.Action]bool{
		domain.RoleAdmin:    grant(admin...),
		domain.RoleMember:   grant(member...),
		domain.RoleReadOnly: grant(readOnly...),
	}}
}

var _ portssvc.PermissionService = (*permissionService)(nil)

func (p *permissionService) HasPermission(role domain.Role, action domain.Action) bool {
	return p.grants[role][action]
}

func (p *permissionService) Require(rc domain.RequestContext, action domain.Action) error {
	if !p.HasPermission(rc.Role, action) {
		return fmt.Errorf("%w: role %s may not %s", apperrors.ErrForbidden, rc.Role, action)
	}
	return nil
}
