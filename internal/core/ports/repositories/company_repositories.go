package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompaniesByUserID retrieves all companies a user belongs to.
	ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error)

	// FindCompanyMember retrieves the membership of a user in a company.
	FindCompanyMember(ctx context.Context, companyID, userID string) (*domain.CompanyMember, error)

	// ListCompanyMembers retrieves every member of a company.
	ListCompanyMembers(ctx context.Context, companyID string) ([]domain.CompanyMember, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// SaveCompanyMember adds a member or replaces the role of an existing one.
	SaveCompanyMember(ctx context.Context, member domain.CompanyMember) error
}
