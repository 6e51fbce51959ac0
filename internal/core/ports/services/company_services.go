package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// CompanyReaderSvc defines read operations for companies
type CompanyReaderSvc interface {
	// FindCompanyByID retrieves a company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListUserCompanies retrieves the companies a user belongs to.
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)

	// ListMembers retrieves the members of the caller's company.
	ListMembers(ctx context.Context, rc domain.RequestContext) ([]domain.CompanyMember, error)
}

// CompanyWriterSvc defines write operations for companies
type CompanyWriterSvc interface {
	// CreateCompany onboards a company with its base currency and makes the creator its admin.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)

	// AddMember adds a user to the caller's company or changes their role.
	AddMember(ctx context.Context, rc domain.RequestContext, req dto.AddMemberRequest) error
}

// CompanyAuthorizerSvc resolves who a user is within a company.
type CompanyAuthorizerSvc interface {
	// ResolveRequestContext builds the request context for userID acting in companyID.
	// Returns ErrNotFound when the user is not a member.
	ResolveRequestContext(ctx context.Context, userID, companyID string) (domain.RequestContext, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyAuthorizerSvc
}
