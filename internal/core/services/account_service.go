package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
}

// NewAccountService creates a new account service.
func NewAccountService(base BaseService) portssvc.AccountSvcFacade {
	return &accountService{BaseService: base}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, rc domain.RequestContext, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageAccounts); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(req.Code)
	if code == "" || strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("account code and name are required")
	}
	if !req.AccountType.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid account type %q", req.AccountType))
	}

	account := domain.Account{
		AccountID:   s.NewID(),
		CompanyID:   rc.CompanyID,
		Code:        code,
		Name:        req.Name,
		AccountType: req.AccountType,
		AuditFields: s.auditFields(rc.ActorID),
	}
	if req.ParentAccountID != nil {
		account.ParentAccountID = *req.ParentAccountID
	}

	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		if err := ensureCodeFree(ctx, repos, rc.CompanyID, code, ""); err != nil {
			return err
		}
		if account.ParentAccountID != "" {
			if err := validateParent(ctx, repos, rc.CompanyID, account.AccountID, account.ParentAccountID); err != nil {
				return err
			}
		}
		if err := repos.SaveAccount(ctx, account); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityAccount, account.AccountID, "code "+code)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("account_code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_id", account.AccountID), slog.String("account_code", code))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, rc domain.RequestContext, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageAccounts); err != nil {
		return nil, err
	}

	var updated domain.Account
	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		existing, err := repos.FindAccountByID(ctx, rc.CompanyID, accountID)
		if err != nil {
			return err
		}
		if existing.IsDeleted {
			return apperrors.NewStateError(fmt.Sprintf("account %s is deleted", accountID))
		}
		updated = *existing

		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return apperrors.NewValidationError("account name cannot be empty")
			}
			updated.Name = *req.Name
		}
		if req.Code != nil {
			code := strings.TrimSpace(*req.Code)
			if code == "" {
				return apperrors.NewValidationError("account code cannot be empty")
			}
			if code != existing.Code {
				if err := ensureCodeFree(ctx, repos, rc.CompanyID, code, accountID); err != nil {
					return err
				}
			}
			updated.Code = code
		}
		if req.ParentAccountID != nil {
			parentID := *req.ParentAccountID
			if parentID != "" && parentID != existing.ParentAccountID {
				if err := validateParent(ctx, repos, rc.CompanyID, accountID, parentID); err != nil {
					return err
				}
			}
			updated.ParentAccountID = parentID
		}

		updated.LastUpdatedAt = s.Now()
		updated.LastUpdatedBy = rc.ActorID
		if err := repos.UpdateAccount(ctx, updated); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditUpdate, domain.EntityAccount, accountID, "")
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return &updated, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, rc domain.RequestContext, accountID string) (*domain.Account, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var account *domain.Account
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		account, err = repos.FindAccountByID(ctx, rc.CompanyID, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.Account, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var accounts []domain.Account
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		accounts, err = repos.ListAccounts(ctx, rc.CompanyID, portsrepo.ListOptions{IncludeDeleted: includeDeleted})
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

// ensureCodeFree fails with DuplicateCodeError if another account already uses code.
// Soft-deleted accounts keep their code reserved.
func ensureCodeFree(ctx context.Context, repos portsrepo.ReadRepositories, companyID, code, selfID string) error {
	other, err := repos.FindAccountByCode(ctx, companyID, code)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.AccountID == selfID {
		return nil
	}
	return &apperrors.DuplicateCodeError{Entity: "account", Code: code}
}

// validateParent checks that parentID exists in the company, is live, and that making it
// the parent of accountID keeps the hierarchy acyclic.
func validateParent(ctx context.Context, repos portsrepo.ReadRepositories, companyID, accountID, parentID string) error {
	if parentID == accountID {
		return apperrors.NewValidationError("an account cannot be its own parent")
	}
	visited := map[string]bool{accountID: true}
	current := parentID
	for current != "" {
		if visited[current] {
			return apperrors.NewValidationError(fmt.Sprintf("parent %s would create a cycle", parentID))
		}
		visited[current] = true

		acc, err := repos.FindAccountByID(ctx, companyID, current)
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError(fmt.Sprintf("parent account %s does not exist", current))
		}
		if err != nil {
			return err
		}
		if current == parentID && acc.IsDeleted {
			return apperrors.NewValidationError(fmt.Sprintf("parent account %s is deleted", parentID))
		}
		current = acc.ParentAccountID
	}
	return nil
}
