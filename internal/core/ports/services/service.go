package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Company    CompanySvcFacade
	Account    AccountSvcFacade
	FiscalYear FiscalYearSvcFacade
	Currency   CurrencySvcFacade
	Ledger     LedgerSvcFacade
	Reporting  ReportingService
	Lifecycle  LifecycleService
	Inventory  InventorySvcFacade
	MasterData MasterDataSvcFacade
	Approval   ApprovalService
	Audit      AuditService
	Permission PermissionService
	Advisory   AdvisoryService
}

// CompanyLocker provides the single-writer-per-company critical section.
type CompanyLocker interface {
	WithLock(ctx context.Context, companyID string, fn func(ctx context.Context) error) error
}

// Advisor is the external generative-AI collaborator. Its output is free text and never
// authoritative.
type Advisor interface {
	Advise(ctx context.Context, contextBlob string) (string, error)
}
