package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locker interface {
	WithLock(ctx context.Context, companyID string, fn func(context.Context) error) error
}

func setupRedisLocker(t *testing.T, opts RedisOptions) *RedisLocker {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l, err := NewRedisLocker(client, opts, nil)
	require.NoError(t, err)
	return l
}

func lockers(t *testing.T) map[string]locker {
	return map[string]locker{
		"local": NewLocalLocker(time.Second, nil),
		"redis": setupRedisLocker(t, RedisOptions{Expiry: 5 * time.Second, Tries: 200, RetryDelay: 5 * time.Millisecond, AcquireTimeout: 5 * time.Second}),
	}
}

func TestWithLock_SerializesSameCompany(t *testing.T) {
	for name, l := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			var inside, maxInside int32
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := l.WithLock(context.Background(), "c1", func(ctx context.Context) error {
						n := atomic.AddInt32(&inside, 1)
						for {
							m := atomic.LoadInt32(&maxInside)
							if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
								break
							}
						}
						time.Sleep(2 * time.Millisecond)
						atomic.AddInt32(&inside, -1)
						return nil
					})
					assert.NoError(t, err)
				}()
			}
			wg.Wait()
			assert.Equal(t, int32(1), atomic.LoadInt32(&maxInside))
		})
	}
}

func TestWithLock_PropagatesError(t *testing.T) {
	for name, l := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			err := l.WithLock(context.Background(), "c1", func(ctx context.Context) error {
				return assert.AnError
			})
			assert.ErrorIs(t, err, assert.AnError)

			// The lock must have been released.
			err = l.WithLock(context.Background(), "c1", func(ctx context.Context) error { return nil })
			assert.NoError(t, err)
		})
	}
}

func TestWithLock_ValidatesArguments(t *testing.T) {
	for name, l := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, l.WithLock(context.Background(), "", func(context.Context) error { return nil }), ErrEmptyCompanyID)
			assert.ErrorIs(t, l.WithLock(context.Background(), "c1", nil), ErrNilLockFn)
		})
	}
}

func TestLocalLocker_DifferentCompaniesDoNotBlock(t *testing.T) {
	l := NewLocalLocker(50*time.Millisecond, nil)
	err := l.WithLock(context.Background(), "c1", func(ctx context.Context) error {
		return l.WithLock(ctx, "c2", func(context.Context) error { return nil })
	})
	assert.NoError(t, err)
}

func TestLocalLocker_TimesOutAsUnavailable(t *testing.T) {
	l := NewLocalLocker(20*time.Millisecond, nil)
	err := l.WithLock(context.Background(), "c1", func(ctx context.Context) error {
		return l.WithLock(ctx, "c1", func(context.Context) error {
			t.Fatal("nested acquisition of the same company must not succeed")
			return nil
		})
	})
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestRedisLocker_BusyLockIsUnavailable(t *testing.T) {
	l := setupRedisLocker(t, RedisOptions{Expiry: 5 * time.Second, Tries: 2, RetryDelay: 5 * time.Millisecond, AcquireTimeout: time.Second})
	err := l.WithLock(context.Background(), "c1", func(ctx context.Context) error {
		return l.WithLock(ctx, "c1", func(context.Context) error { return nil })
	})
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}
