package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/pagination"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

type auditService struct {
	BaseService
}

// NewAuditService creates a new audit log reader.
func NewAuditService(base BaseService) portssvc.AuditService {
	return &auditService{BaseService: base}
}

var _ portssvc.AuditService = (*auditService)(nil)

// List returns audit entries newest first using token-based pagination.
func (s *auditService) List(ctx context.Context, rc domain.RequestContext, filter portsrepo.AuditFilter, nextToken *string) ([]domain.AuditLog, *string, error) {
	if err := s.Authorize(ctx, rc, domain.ActionViewAudit); err != nil {
		return nil, nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	if nextToken != nil && *nextToken != "" {
		before, _, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			s.GetLogger(ctx).Warn("Invalid audit pagination token", slog.String("error", err.Error()))
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		filter.BeforeSequence = before
	}
	// One extra row tells whether another page exists.
	filter.Limit = limit + 1

	var logs []domain.AuditLog
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		logs, err = repos.ListAuditLogs(ctx, rc.CompanyID, filter)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit logs")
		return nil, nil, err
	}

	var next *string
	if len(logs) > limit {
		logs = logs[:limit]
		last := logs[len(logs)-1]
		token := pagination.EncodeToken(last.Sequence, last.CreatedAt)
		next = &token
	}
	return logs, next, nil
}
