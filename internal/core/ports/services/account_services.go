package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, rc domain.RequestContext, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts.
	ListAccounts(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, rc domain.RequestContext, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's code, name or parent.
	UpdateAccount(ctx context.Context, rc domain.RequestContext, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
