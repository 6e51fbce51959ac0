package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// companyService handles onboarding and memberships.
type companyService struct {
	BaseService
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(base BaseService) portssvc.CompanySvcFacade {
	return &companyService{BaseService: base}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany creates a new company, registers its base currency and makes the creator the initial admin.
// All three writes commit together.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	if creatorUserID == "" {
		return nil, apperrors.NewValidationError("creator user id is required")
	}
	if req.Name == "" || req.BaseCurrency == "" {
		return nil, apperrors.NewValidationError("company name and base currency are required")
	}

	company := domain.Company{
		CompanyID:   s.NewID(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: s.auditFields(creatorUserID),
	}
	rc := domain.RequestContext{CompanyID: company.CompanyID, ActorID: creatorUserID, Role: domain.RoleAdmin}

	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		if err := repos.SaveCompany(ctx, company); err != nil {
			return err
		}
		if err := repos.SaveCompanyMember(ctx, domain.CompanyMember{
			UserID:    creatorUserID,
			CompanyID: company.CompanyID,
			Role:      domain.RoleAdmin,
			JoinedAt:  company.CreatedAt,
		}); err != nil {
			return err
		}
		if err := repos.SaveCurrency(ctx, domain.Currency{
			CompanyID:    company.CompanyID,
			CurrencyCode: req.BaseCurrency,
			Symbol:       req.BaseCurrencySymbol,
			Name:         req.BaseCurrencyName,
			IsBase:       true,
			AuditFields:  company.AuditFields,
		}); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityCurrency, req.BaseCurrency, "base currency registered at onboarding")
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create company", slog.String("company_name", req.Name))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.LogInfo(ctx, "Company created successfully", slog.String("company_id", company.CompanyID), slog.String("creator_user_id", creatorUserID))
	return &company, nil
}

// AddMember adds a user to the caller's company with a specific role, or changes their role.
func (s *companyService) AddMember(ctx context.Context, rc domain.RequestContext, req dto.AddMemberRequest) error {
	if rc.Role != domain.RoleAdmin {
		if err := rc.Validate(); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		return fmt.Errorf("%w: only admins may manage members", apperrors.ErrForbidden)
	}
	if !req.Role.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid role %q", req.Role))
	}

	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		return repos.SaveCompanyMember(ctx, domain.CompanyMember{
			UserID:    req.UserID,
			CompanyID: rc.CompanyID,
			Role:      req.Role,
			JoinedAt:  s.Now(),
		})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add user to company", slog.String("target_user_id", req.UserID))
		return fmt.Errorf("failed to add user %s to company: %w", req.UserID, err)
	}

	s.LogInfo(ctx, "User added to company successfully", slog.String("target_user_id", req.UserID), slog.String("role", string(req.Role)))
	return nil
}

// ListUserCompanies retrieves the list of companies a given user belongs to.
func (s *companyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	var companies []domain.Company
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		companies, err = repos.ListCompaniesByUserID(ctx, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies for user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list companies for user %s: %w", userID, err)
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

// FindCompanyByID retrieves a company by its ID.
func (s *companyService) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	var company *domain.Company
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		company, err = repos.FindCompanyByID(ctx, companyID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company by ID", slog.String("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

// ListMembers retrieves every member of the caller's company.
func (s *companyService) ListMembers(ctx context.Context, rc domain.RequestContext) ([]domain.CompanyMember, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var members []domain.CompanyMember
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		members, err = repos.ListCompanyMembers(ctx, rc.CompanyID)
		return err
	})
	return members, err
}

// ResolveRequestContext looks up the user's role in the company.
// Returns apperrors.ErrNotFound if the company doesn't exist or the user is not a member.
func (s *companyService) ResolveRequestContext(ctx context.Context, userID, companyID string) (domain.RequestContext, error) {
	var member *domain.CompanyMember
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		member, err = repos.FindCompanyMember(ctx, companyID, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Authorization failed: user is not a member of the company",
				slog.String("user_id", userID), slog.String("company_id", companyID))
		}
		return domain.RequestContext{}, err
	}
	return domain.RequestContext{CompanyID: companyID, ActorID: userID, Role: member.Role}, nil
}
