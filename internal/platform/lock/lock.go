// Package lock provides the single-writer-per-company critical section used around every
// ledger mutation.
package lock

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrNilLockFn is returned when a nil function is passed to WithLock.
	ErrNilLockFn = errors.New("lock function is nil")
	// ErrEmptyCompanyID is returned when no company id is provided.
	ErrEmptyCompanyID = errors.New("company id cannot be empty")
)

// DefaultAcquireTimeout bounds how long WithLock waits for the company lock.
const DefaultAcquireTimeout = 5 * time.Second

func validate(companyID string, fn func(context.Context) error) error {
	if fn == nil {
		return ErrNilLockFn
	}
	if strings.TrimSpace(companyID) == "" {
		return ErrEmptyCompanyID
	}
	return nil
}
