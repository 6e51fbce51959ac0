package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = time.DateOnly

// ParseDate parses a YYYY-MM-DD date. An empty string yields the zero time.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", apperrors.ErrValidation, field)
	}
	return t, nil
}

// FormatDate renders a calendar date; the zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
