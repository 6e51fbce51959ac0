package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currencies and rates
type CurrencyReaderSvc interface {
	GetCurrencyByCode(ctx context.Context, rc domain.RequestContext, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context, rc domain.RequestContext) ([]domain.Currency, error)
	ListExchangeRates(ctx context.Context, rc domain.RequestContext, currencyCode string) ([]domain.ExchangeRate, error)

	// ResolveRate returns 1 for the base currency; otherwise the latest rate effective on or before date.
	ResolveRate(ctx context.Context, rc domain.RequestContext, currencyCode string, date time.Time) (decimal.Decimal, error)
}

// CurrencyWriterSvc defines write operations for currencies and rates
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, rc domain.RequestContext, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// UpdateCurrency is refused once any voucher references the currency.
	UpdateCurrency(ctx context.Context, rc domain.RequestContext, currencyCode string, req dto.UpdateCurrencyRequest) (*domain.Currency, error)

	AddExchangeRate(ctx context.Context, rc domain.RequestContext, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
