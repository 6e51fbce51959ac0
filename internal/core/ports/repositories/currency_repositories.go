package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, companyID, currencyCode string) (*domain.Currency, error)

	// FindBaseCurrency retrieves the company's base currency.
	FindBaseCurrency(ctx context.Context, companyID string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies of a company ordered by code.
	ListCurrencies(ctx context.Context, companyID string) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency updates the name and symbol of a currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error
}
