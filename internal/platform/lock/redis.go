package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "erp_ledger:lock:company:"

// RedisOptions configures the distributed locker.
type RedisOptions struct {
	// Expiry is how long the lock is held before auto-expiring.
	Expiry time.Duration
	// Tries is the number of attempts to acquire the lock.
	Tries int
	// RetryDelay is the delay between attempts.
	RetryDelay time.Duration
	// AcquireTimeout bounds the whole acquisition.
	AcquireTimeout time.Duration
}

// DefaultRedisOptions returns defaults suited to ledger writes that finish within seconds.
func DefaultRedisOptions() RedisOptions {
	return RedisOptions{
		Expiry:         30 * time.Second,
		Tries:          32,
		RetryDelay:     100 * time.Millisecond,
		AcquireTimeout: DefaultAcquireTimeout,
	}
}

// RedisLocker serializes writers per company across processes using redsync.
type RedisLocker struct {
	redsync *redsync.Redsync
	opts    RedisOptions
	logger  *slog.Logger
}

// NewRedisLocker creates a distributed locker over client.
func NewRedisLocker(client redis.UniversalClient, opts RedisOptions, logger *slog.Logger) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if opts.Expiry <= 0 || opts.Tries < 1 || opts.RetryDelay < 0 {
		return nil, fmt.Errorf("invalid redis lock options: %+v", opts)
	}
	if opts.AcquireTimeout <= 0 {
		opts.AcquireTimeout = DefaultAcquireTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisLocker{
		redsync: redsync.New(goredis.NewPool(client)),
		opts:    opts,
		logger:  logger,
	}, nil
}

// WithLock runs fn while holding the company's distributed lock. The lock is released
// even if fn fails.
func (l *RedisLocker) WithLock(ctx context.Context, companyID string, fn func(context.Context) error) error {
	if err := validate(companyID, fn); err != nil {
		return err
	}

	key := keyPrefix + companyID
	mutex := l.redsync.NewMutex(
		key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
	)

	acquireCtx, cancel := context.WithTimeout(ctx, l.opts.AcquireTimeout)
	defer cancel()
	if err := mutex.LockContext(acquireCtx); err != nil {
		l.logger.Warn("Failed to acquire company lock", slog.String("lock_key", key), slog.String("error", err.Error()))
		return apperrors.Unavailable("acquire company lock", err)
	}
	l.logger.Debug("Company lock acquired", slog.String("lock_key", key))

	defer func() {
		// Release with a fresh context so a cancelled caller still frees the lock.
		unlockCtx, cancel := context.WithTimeout(context.Background(), l.opts.AcquireTimeout)
		defer cancel()
		if ok, err := mutex.UnlockContext(unlockCtx); !ok || err != nil {
			l.logger.Error("Failed to release company lock", slog.String("lock_key", key), slog.Bool("unlock_ok", ok), slog.Any("error", err))
		}
	}()

	return fn(ctx)
}
