package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

type fiscalYearService struct {
	BaseService
}

// NewFiscalYearService creates a new fiscal period manager.
func NewFiscalYearService(base BaseService) portssvc.FiscalYearSvcFacade {
	return &fiscalYearService{BaseService: base}
}

var _ portssvc.FiscalYearSvcFacade = (*fiscalYearService)(nil)

// checkPostable reports why date cannot be posted to fy, if it cannot.
// A closed year wins over an out-of-range date.
func checkPostable(fy *domain.FiscalYear, date time.Time) error {
	if fy.IsClosed {
		return &apperrors.ClosedPeriodError{FiscalYearID: fy.FiscalYearID, Date: date}
	}
	if fy.IsDeleted {
		return apperrors.NewStateError(fmt.Sprintf("fiscal year %s is deleted", fy.FiscalYearID))
	}
	if !fy.Contains(date) {
		return &apperrors.OutOfRangeError{FiscalYearID: fy.FiscalYearID, Date: date, Start: fy.StartDate, End: fy.EndDate}
	}
	return nil
}

// activeFiscalYear returns the open, live fiscal year or nil.
func activeFiscalYear(ctx context.Context, repos portsrepo.ReadRepositories, companyID string) (*domain.FiscalYear, error) {
	years, err := repos.ListFiscalYears(ctx, companyID, portsrepo.ListOptions{})
	if err != nil {
		return nil, err
	}
	for i := range years {
		if !years[i].IsClosed {
			return &years[i], nil
		}
	}
	return nil, nil
}

func (s *fiscalYearService) CreateFiscalYear(ctx context.Context, rc domain.RequestContext, req dto.CreateFiscalYearRequest) (*domain.FiscalYear, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageFiscalYear); err != nil {
		return nil, err
	}
	start, err := dto.ParseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dto.ParseDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if start.IsZero() || end.IsZero() {
		return nil, apperrors.NewValidationError("fiscal year start and end dates are required")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("fiscal year end date is before its start date")
	}

	fy := domain.FiscalYear{
		FiscalYearID: s.NewID(),
		CompanyID:    rc.CompanyID,
		Name:         req.Name,
		StartDate:    start,
		EndDate:      end,
		AuditFields:  s.auditFields(rc.ActorID),
	}

	err = s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		years, err := repos.ListFiscalYears(ctx, rc.CompanyID, portsrepo.ListOptions{})
		if err != nil {
			return err
		}
		for _, existing := range years {
			if !existing.IsClosed {
				return apperrors.NewStateError(fmt.Sprintf("fiscal year %s is still open", existing.Name))
			}
			if existing.Overlaps(fy) {
				return apperrors.NewStateError(fmt.Sprintf("fiscal year overlaps %s", existing.Name))
			}
		}
		if err := repos.SaveFiscalYear(ctx, fy); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityFiscalYear, fy.FiscalYearID,
			fmt.Sprintf("%s to %s", dto.FormatDate(start), dto.FormatDate(end)))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create fiscal year", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal year created", slog.String("fiscal_year_id", fy.FiscalYearID))
	return &fy, nil
}

func (s *fiscalYearService) CloseFiscalYear(ctx context.Context, rc domain.RequestContext, fiscalYearID string) (*domain.FiscalYear, error) {
	if err := s.Authorize(ctx, rc, domain.ActionCloseFiscalYear); err != nil {
		return nil, err
	}

	var closed domain.FiscalYear
	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		fy, err := repos.LockFiscalYear(ctx, rc.CompanyID, fiscalYearID)
		if err != nil {
			return err
		}
		if fy.IsDeleted {
			return apperrors.NewStateError(fmt.Sprintf("fiscal year %s is deleted", fiscalYearID))
		}
		if fy.IsClosed {
			return apperrors.NewStateError(fmt.Sprintf("fiscal year %s is already closed", fiscalYearID))
		}

		now := s.Now()
		closed = *fy
		closed.IsClosed = true
		closed.ClosedAt = &now
		closed.ClosedBy = rc.ActorID
		closed.LastUpdatedAt = now
		closed.LastUpdatedBy = rc.ActorID
		if err := repos.CloseFiscalYear(ctx, closed); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditClose, domain.EntityFiscalYear, fiscalYearID, "")
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrState) {
			s.LogError(ctx, err, "Failed to close fiscal year", slog.String("fiscal_year_id", fiscalYearID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal year closed", slog.String("fiscal_year_id", fiscalYearID))
	return &closed, nil
}

func (s *fiscalYearService) ListFiscalYears(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.FiscalYear, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var years []domain.FiscalYear
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		years, err = repos.ListFiscalYears(ctx, rc.CompanyID, portsrepo.ListOptions{IncludeDeleted: includeDeleted})
		return err
	})
	return years, err
}

func (s *fiscalYearService) GetActiveFiscalYear(ctx context.Context, rc domain.RequestContext) (*domain.FiscalYear, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var fy *domain.FiscalYear
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		fy, err = activeFiscalYear(ctx, repos, rc.CompanyID)
		return err
	})
	return fy, err
}

func (s *fiscalYearService) AssertOpen(ctx context.Context, rc domain.RequestContext, fiscalYearID string, date time.Time) error {
	if err := rc.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		fy, err := repos.FindFiscalYearByID(ctx, rc.CompanyID, fiscalYearID)
		if err != nil {
			return err
		}
		return checkPostable(fy, date)
	})
}
