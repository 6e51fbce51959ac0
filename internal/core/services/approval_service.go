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
)

// approvalService manages sequential multi-level sign-off on ledger entities.
type approvalService struct {
	BaseService
}

// NewApprovalService creates a new approval service.
func NewApprovalService(base BaseService) portssvc.ApprovalService {
	return &approvalService{BaseService: base}
}

var _ portssvc.ApprovalService = (*approvalService)(nil)

// Request opens a pending approval at the given level for an entity.
func (s *approvalService) Request(ctx context.Context, rc domain.RequestContext, kind domain.EntityKind, entityID string, level int, notes string) (*domain.Approval, error) {
	if err := s.Authorize(ctx, rc, domain.ActionRequestApproval); err != nil {
		return nil, err
	}
	if level < 1 {
		return nil, apperrors.NewValidationError("approval level must be at least 1")
	}
	if entityID == "" {
		return nil, apperrors.NewValidationError("entity id is required")
	}

	approval := domain.Approval{
		ApprovalID:  s.NewID(),
		CompanyID:   rc.CompanyID,
		EntityKind:  kind,
		EntityID:    entityID,
		Level:       level,
		Status:      domain.ApprovalPending,
		RequestedBy: rc.ActorID,
		RequestedAt: s.Now(),
		Notes:       notes,
	}

	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		if err := entityExists(ctx, repos, rc.CompanyID, kind, entityID); err != nil {
			return err
		}
		existing, err := repos.ListApprovals(ctx, rc.CompanyID, portsrepo.ApprovalFilter{EntityKind: kind, EntityID: entityID})
		if err != nil {
			return err
		}
		for _, a := range existing {
			if a.Rejected() {
				return apperrors.NewStateError(fmt.Sprintf("%s %s was rejected at level %d", kind.Label(), entityID, a.Level))
			}
			if a.Level == level {
				return fmt.Errorf("%w: level %d approval already requested for %s %s", apperrors.ErrDuplicate, level, kind.Label(), entityID)
			}
		}
		if err := repos.SaveApproval(ctx, approval); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityApproval, approval.ApprovalID,
			fmt.Sprintf("level %d for %s %s", level, kind.Label(), entityID))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to request approval", slog.String("entity_id", entityID), slog.Int("level", level))
		return nil, err
	}
	return &approval, nil
}

func (s *approvalService) Approve(ctx context.Context, rc domain.RequestContext, approvalID, notes string) (*domain.Approval, error) {
	return s.decide(ctx, rc, approvalID, notes, domain.ApprovalApproved)
}

func (s *approvalService) Reject(ctx context.Context, rc domain.RequestContext, approvalID, notes string) (*domain.Approval, error) {
	return s.decide(ctx, rc, approvalID, notes, domain.ApprovalRejected)
}

// decide records a decision. A level may be decided only once every lower level of the
// same entity is approved, and nothing is decided after a rejection.
func (s *approvalService) decide(ctx context.Context, rc domain.RequestContext, approvalID, notes string, status domain.ApprovalStatus) (*domain.Approval, error) {
	if err := s.Authorize(ctx, rc, domain.ActionApprove); err != nil {
		return nil, err
	}

	var decided domain.Approval
	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		approval, err := repos.FindApprovalByID(ctx, rc.CompanyID, approvalID)
		if err != nil {
			return err
		}
		if approval.Status != domain.ApprovalPending {
			return apperrors.NewStateError(fmt.Sprintf("approval %s is already %s", approvalID, approval.Status))
		}

		siblings, err := repos.ListApprovals(ctx, rc.CompanyID, portsrepo.ApprovalFilter{
			EntityKind: approval.EntityKind,
			EntityID:   approval.EntityID,
		})
		if err != nil {
			return err
		}
		approvedBelow := make(map[int]bool)
		for _, a := range siblings {
			if a.Rejected() {
				return apperrors.NewStateError(fmt.Sprintf("level %d was rejected", a.Level))
			}
			if a.Level < approval.Level && a.Approved() {
				approvedBelow[a.Level] = true
			}
		}
		for lvl := 1; lvl < approval.Level; lvl++ {
			if !approvedBelow[lvl] {
				return apperrors.NewStateError(fmt.Sprintf("level %d must be approved before level %d", lvl, approval.Level))
			}
		}

		now := s.Now()
		decided = *approval
		decided.Status = status
		decided.DecidedBy = rc.ActorID
		decided.DecidedAt = &now
		if notes != "" {
			decided.Notes = notes
		}
		if err := repos.UpdateApprovalDecision(ctx, decided); err != nil {
			return err
		}
		action := domain.AuditApprove
		if status == domain.ApprovalRejected {
			action = domain.AuditReject
		}
		return s.Audit(ctx, repos, rc, action, domain.EntityApproval, approvalID,
			fmt.Sprintf("level %d for %s %s", decided.Level, decided.EntityKind.Label(), decided.EntityID))
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrState) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to record approval decision", slog.String("approval_id", approvalID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Approval decided", slog.String("approval_id", approvalID), slog.String("status", string(status)))
	return &decided, nil
}

func (s *approvalService) List(ctx context.Context, rc domain.RequestContext, filter portsrepo.ApprovalFilter) ([]domain.Approval, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var approvals []domain.Approval
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		approvals, err = repos.ListApprovals(ctx, rc.CompanyID, filter)
		return err
	})
	return approvals, err
}

// entityExists checks that the approval target is a live entity of the company.
func entityExists(ctx context.Context, repos portsrepo.ReadRepositories, companyID string, kind domain.EntityKind, entityID string) error {
	var deleted bool
	switch kind {
	case domain.EntityAccount:
		a, err := repos.FindAccountByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		deleted = a.IsDeleted
	case domain.EntityVoucher:
		v, err := repos.FindVoucherByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		deleted = v.IsDeleted
	case domain.EntityFiscalYear:
		fy, err := repos.FindFiscalYearByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		deleted = fy.IsDeleted
	case domain.EntityInventoryBatch:
		b, err := repos.FindBatchByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		deleted = b.IsDeleted
	case domain.EntityProduct:
		p, err := repos.FindProductByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		deleted = p.IsDeleted
	case domain.EntityCustomer:
		c, err := repos.FindCustomerByID(ctx, companyID, entityID)
		if err != nil {
			return err
		}
		deleted = c.IsDeleted
	case domain.EntityCurrency:
		if _, err := repos.FindCurrencyByCode(ctx, companyID, entityID); err != nil {
			return err
		}
	case domain.EntityExchangeRate:
		if _, err := repos.FindExchangeRateByID(ctx, companyID, entityID); err != nil {
			return err
		}
	case domain.EntityApproval:
		return apperrors.NewValidationError("approvals cannot themselves be approved")
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown entity kind %q", kind))
	}
	if deleted {
		return apperrors.NewStateError(fmt.Sprintf("%s %s is deleted", kind.Label(), entityID))
	}
	return nil
}
