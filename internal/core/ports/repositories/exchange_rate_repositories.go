package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves one rate of the company by its ID.
	FindExchangeRateByID(ctx context.Context, companyID, exchangeRateID string) (*domain.ExchangeRate, error)

	// FindEffectiveRate retrieves the rate with the latest effective date not after date.
	// Ties on the date go to the most recently inserted record. Returns ErrNotFound when none qualifies.
	FindEffectiveRate(ctx context.Context, companyID, currencyCode string, date time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves the rate series for a currency ordered by effective date then insertion.
	ListExchangeRates(ctx context.Context, companyID, currencyCode string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate and returns it with its insertion sequence.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)
}
