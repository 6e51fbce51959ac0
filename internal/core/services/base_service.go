package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/google/uuid"
)

// DefaultStoreTimeout bounds every store call when none is configured.
const DefaultStoreTimeout = 5 * time.Second

// BaseService provides common functionality for all services
type BaseService struct {
	Store        portsrepo.Store
	Locker       portssvc.CompanyLocker
	Permissions  portssvc.PermissionService
	StoreTimeout time.Duration
	Now          func() time.Time
	NewID        func() string
}

// BaseOption configures a BaseService.
type BaseOption func(*BaseService)

// WithStoreTimeout overrides the per-operation store timeout.
func WithStoreTimeout(d time.Duration) BaseOption {
	return func(b *BaseService) {
		if d > 0 {
			b.StoreTimeout = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) BaseOption {
	return func(b *BaseService) { b.Now = now }
}

// NewBaseService wires the shared dependencies of every service.
func NewBaseService(store portsrepo.Store, locker portssvc.CompanyLocker, permissions portssvc.PermissionService, opts ...BaseOption) BaseService {
	b := BaseService{
		Store:        store,
		Locker:       locker,
		Permissions:  permissions,
		StoreTimeout: DefaultStoreTimeout,
		Now:          func() time.Time { return time.Now().UTC() },
		NewID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize checks the request context and the role's permission for action.
func (s *BaseService) Authorize(ctx context.Context, rc domain.RequestContext, action domain.Action) error {
	if err := rc.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if err := s.Permissions.Require(rc, action); err != nil {
		s.GetLogger(ctx).Warn("Permission denied",
			slog.String("actor_id", rc.ActorID),
			slog.String("role", string(rc.Role)),
			slog.String("action", string(action)))
		return err
	}
	return nil
}

// Read runs fn against one committed snapshot under the store timeout.
func (s *BaseService) Read(ctx context.Context, fn func(ctx context.Context, repos portsrepo.ReadRepositories) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.StoreTimeout)
	defer cancel()
	return asUnavailable(s.Store.ReadSnapshot(ctx, fn))
}

// Mutate runs fn inside the company critical section and a single store transaction.
// A non-nil error means nothing was committed.
func (s *BaseService) Mutate(ctx context.Context, rc domain.RequestContext, fn func(ctx context.Context, repos portsrepo.Repositories) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.StoreTimeout)
	defer cancel()
	err := s.Locker.WithLock(ctx, rc.CompanyID, func(ctx context.Context) error {
		return s.Store.WithinTx(ctx, rc.CompanyID, fn)
	})
	return asUnavailable(err)
}

// Audit appends an audit entry inside the caller's transaction.
func (s *BaseService) Audit(ctx context.Context, repos portsrepo.Repositories, rc domain.RequestContext, action domain.AuditAction, kind domain.EntityKind, entityID, details string) error {
	return repos.AppendAuditLog(ctx, domain.AuditLog{
		AuditLogID: s.NewID(),
		CompanyID:  rc.CompanyID,
		ActorID:    rc.ActorID,
		Action:     action,
		EntityKind: kind,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  s.Now(),
	})
}

func (s *BaseService) auditFields(actorID string) domain.AuditFields {
	now := s.Now()
	return domain.AuditFields{CreatedAt: now, CreatedBy: actorID, LastUpdatedAt: now, LastUpdatedBy: actorID}
}

// asUnavailable maps deadline expiry and cancellation to ErrUnavailable so they are never
// mistaken for validation failures.
func asUnavailable(err error) error {
	if err == nil || errors.Is(err, apperrors.ErrUnavailable) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Unavailable("store operation", err)
	}
	return err
}
