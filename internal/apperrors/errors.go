package apperrors

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Client-correctable: the operator can fix the request and retry.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrState indicates the operation conflicts with the current state of a resource
// (closed period, already-deleted entity, ...).
var ErrState = errors.New("invalid state for operation")

// ErrForbidden indicates the caller's role does not grant the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrUnavailable indicates an external collaborator (store, lock, advisory service) failed or timed out.
var ErrUnavailable = errors.New("service unavailable")

// ErrInternal indicates an unexpected failure inside the service.
var ErrInternal = errors.New("internal error")

// AppError carries a status-like code and the underlying cause of a store or boundary failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the category sentinel implied by Code.
func (e *AppError) Is(target error) bool {
	switch e.Code {
	case 400:
		return target == ErrValidation
	case 404:
		return target == ErrNotFound
	case 409:
		return target == ErrState
	case 503:
		return target == ErrUnavailable
	case 500:
		return target == ErrInternal
	}
	return false
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError returns a validation failure with the given message.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// NewNotFoundError returns a not-found failure with the given message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewStateError returns a state failure with the given message.
func NewStateError(message string) error {
	return fmt.Errorf("%w: %s", ErrState, message)
}

// Unavailable wraps a boundary failure so callers can tell it apart from validation failures.
func Unavailable(operation string, err error) error {
	return NewAppError(503, operation, err)
}

// UnbalancedEntryError is returned when a voucher's debit and credit totals differ.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("voucher is unbalanced: debits %s, credits %s (difference %s)",
		e.TotalDebit.String(), e.TotalCredit.String(), e.TotalDebit.Sub(e.TotalCredit).String())
}

func (e *UnbalancedEntryError) Unwrap() error { return ErrValidation }

// InvalidLineError identifies a malformed journal line by its zero-based index.
type InvalidLineError struct {
	Line   int
	Reason string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line+1, e.Reason)
}

func (e *InvalidLineError) Unwrap() error { return ErrValidation }

// UnknownAccountError is returned when a line references a missing or soft-deleted account.
type UnknownAccountError struct {
	Line      int
	AccountID string
	Deleted   bool
}

func (e *UnknownAccountError) Error() string {
	if e.Deleted {
		return fmt.Sprintf("line %d: account %s is deleted", e.Line+1, e.AccountID)
	}
	return fmt.Sprintf("line %d: account %s does not exist", e.Line+1, e.AccountID)
}

func (e *UnknownAccountError) Unwrap() error { return ErrValidation }

// ClosedPeriodError is returned when a fiscal year is closed for the requested operation.
type ClosedPeriodError struct {
	FiscalYearID string
	Date         time.Time
}

func (e *ClosedPeriodError) Error() string {
	return fmt.Sprintf("fiscal year %s is closed (date %s)", e.FiscalYearID, e.Date.Format(time.DateOnly))
}

func (e *ClosedPeriodError) Unwrap() error { return ErrState }

// OutOfRangeError is returned when a date falls outside the fiscal year's bounds.
type OutOfRangeError struct {
	FiscalYearID string
	Date         time.Time
	Start        time.Time
	End          time.Time
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("date %s is outside fiscal year %s [%s, %s]", e.Date.Format(time.DateOnly),
		e.FiscalYearID, e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

func (e *OutOfRangeError) Unwrap() error { return ErrValidation }

// NoRateAvailableError is returned when no exchange rate is effective on or before the requested date.
type NoRateAvailableError struct {
	CurrencyCode string
	Date         time.Time
}

func (e *NoRateAvailableError) Error() string {
	return fmt.Sprintf("no exchange rate for %s effective on or before %s", e.CurrencyCode, e.Date.Format(time.DateOnly))
}

func (e *NoRateAvailableError) Unwrap() error { return ErrValidation }

// DuplicateCodeError is returned when a code is already taken within a company.
type DuplicateCodeError struct {
	Entity string
	Code   string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("%s code %q already exists", e.Entity, e.Code)
}

func (e *DuplicateCodeError) Unwrap() error { return ErrDuplicate }
