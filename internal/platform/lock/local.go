package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
)

// LocalLocker serializes writers per company inside one process.
// Each company gets a one-slot semaphore so waiting honors context cancellation.
type LocalLocker struct {
	mu             sync.Mutex
	slots          map[string]chan struct{}
	acquireTimeout time.Duration
	logger         *slog.Logger
}

// NewLocalLocker creates an in-process locker. A non-positive timeout uses DefaultAcquireTimeout.
func NewLocalLocker(acquireTimeout time.Duration, logger *slog.Logger) *LocalLocker {
	if acquireTimeout <= 0 {
		acquireTimeout = DefaultAcquireTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalLocker{
		slots:          make(map[string]chan struct{}),
		acquireTimeout: acquireTimeout,
		logger:         logger,
	}
}

func (l *LocalLocker) slot(companyID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[companyID]
	if !ok {
		s = make(chan struct{}, 1)
		l.slots[companyID] = s
	}
	return s
}

// WithLock runs fn while holding the company's lock.
func (l *LocalLocker) WithLock(ctx context.Context, companyID string, fn func(context.Context) error) error {
	if err := validate(companyID, fn); err != nil {
		return err
	}

	slot := l.slot(companyID)
	timer := time.NewTimer(l.acquireTimeout)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return apperrors.Unavailable("acquire company lock", ctx.Err())
	case <-timer.C:
		l.logger.Warn("Timed out waiting for company lock", slog.String("company_id", companyID))
		return apperrors.Unavailable("acquire company lock", context.DeadlineExceeded)
	}
	defer func() { <-slot }()

	return fn(ctx)
}
