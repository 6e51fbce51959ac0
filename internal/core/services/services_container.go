package services

import (
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// A nil advisor leaves insights unavailable without affecting the ledger.
func NewServiceContainer(cfg *config.Config, store portsrepo.Store, locker portssvc.CompanyLocker, advisor portssvc.Advisor) *portssvc.ServiceContainer {
	permissions := NewPermissionService()
	base := NewBaseService(store, locker, permissions, WithStoreTimeout(cfg.StoreTimeout))

	container := &portssvc.ServiceContainer{
		Permission: permissions,
		Company:    NewCompanyService(base),
		Account:    NewAccountService(base),
		FiscalYear: NewFiscalYearService(base),
		Currency:   NewCurrencyService(base),
		Ledger:     NewLedgerService(base),
		Reporting:  NewReportingService(base),
		Lifecycle:  NewLifecycleService(base),
		Inventory:  NewInventoryService(base),
		MasterData: NewMasterDataService(base),
		Approval:   NewApprovalService(base),
		Audit:      NewAuditService(base),
	}
	container.Advisory = NewAdvisoryService(base, container.Reporting, advisor, cfg.AdvisoryTimeout)

	return container
}
