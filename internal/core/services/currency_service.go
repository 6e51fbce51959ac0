package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// currencyService manages currencies and their exchange-rate series.
type currencyService struct {
	BaseService
}

// NewCurrencyService creates a new currency and rate resolver.
func NewCurrencyService(base BaseService) portssvc.CurrencySvcFacade {
	return &currencyService{BaseService: base}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// resolveRate returns how many base units one unit of currencyCode was worth on date.
// It never falls back to 1 for a foreign currency.
func resolveRate(ctx context.Context, repos portsrepo.ReadRepositories, companyID, currencyCode string, date time.Time) (decimal.Decimal, error) {
	currency, err := repos.FindCurrencyByCode(ctx, companyID, currencyCode)
	if errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, apperrors.NewValidationError(fmt.Sprintf("currency %s is not enabled", currencyCode))
	}
	if err != nil {
		return decimal.Zero, err
	}
	if currency.IsBase {
		return decimal.NewFromInt(1), nil
	}
	rate, err := repos.FindEffectiveRate(ctx, companyID, currencyCode, date)
	if errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, &apperrors.NoRateAvailableError{CurrencyCode: currencyCode, Date: date}
	}
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Rate, nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, rc domain.RequestContext, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageCurrencies); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if len(code) != 3 {
		return nil, apperrors.NewValidationError("currency code must have 3 letters")
	}

	currency := domain.Currency{
		CompanyID:    rc.CompanyID,
		CurrencyCode: code,
		Symbol:       req.Symbol,
		Name:         req.Name,
		IsBase:       req.IsBase,
		AuditFields:  s.auditFields(rc.ActorID),
	}

	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		if currency.IsBase {
			base, err := repos.FindBaseCurrency(ctx, rc.CompanyID)
			switch {
			case err == nil:
				return apperrors.NewStateError(fmt.Sprintf("company already has base currency %s", base.CurrencyCode))
			case !errors.Is(err, apperrors.ErrNotFound):
				return err
			}
		}
		if err := repos.SaveCurrency(ctx, currency); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityCurrency, code, "")
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create currency", slog.String("currency_code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Currency created successfully", slog.String("currency_code", code))
	return &currency, nil
}

// UpdateCurrency changes the name or symbol of a currency that no voucher has used yet.
func (s *currencyService) UpdateCurrency(ctx context.Context, rc domain.RequestContext, currencyCode string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageCurrencies); err != nil {
		return nil, err
	}

	var updated domain.Currency
	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		existing, err := repos.FindCurrencyByCode(ctx, rc.CompanyID, currencyCode)
		if err != nil {
			return err
		}
		used, err := repos.CountVouchers(ctx, rc.CompanyID, portsrepo.VoucherFilter{
			CurrencyCode: currencyCode,
			ListOptions:  portsrepo.ListOptions{IncludeDeleted: true},
		})
		if err != nil {
			return err
		}
		if used > 0 {
			return apperrors.NewStateError(fmt.Sprintf("currency %s is referenced by %d voucher(s)", currencyCode, used))
		}

		updated = *existing
		if req.Name != nil {
			updated.Name = *req.Name
		}
		if req.Symbol != nil {
			updated.Symbol = *req.Symbol
		}
		updated.LastUpdatedAt = s.Now()
		updated.LastUpdatedBy = rc.ActorID
		if err := repos.UpdateCurrency(ctx, updated); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditUpdate, domain.EntityCurrency, currencyCode, "")
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update currency", slog.String("currency_code", currencyCode))
		}
		return nil, err
	}
	return &updated, nil
}

func (s *currencyService) AddExchangeRate(ctx context.Context, rc domain.RequestContext, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageCurrencies); err != nil {
		return nil, err
	}
	if !req.Rate.IsPositive() {
		return nil, apperrors.NewValidationError("exchange rate must be positive")
	}
	effective, err := dto.ParseDate("dateEffective", req.DateEffective)
	if err != nil {
		return nil, err
	}
	if effective.IsZero() {
		return nil, apperrors.NewValidationError("dateEffective is required")
	}

	var saved *domain.ExchangeRate
	err = s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		currency, err := repos.FindCurrencyByCode(ctx, rc.CompanyID, req.CurrencyCode)
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError(fmt.Sprintf("currency %s is not enabled", req.CurrencyCode))
		}
		if err != nil {
			return err
		}
		if currency.IsBase {
			return apperrors.NewValidationError("the base currency has a fixed rate of 1")
		}

		saved, err = repos.SaveExchangeRate(ctx, domain.ExchangeRate{
			ExchangeRateID: s.NewID(),
			CompanyID:      rc.CompanyID,
			CurrencyCode:   req.CurrencyCode,
			Rate:           req.Rate,
			DateEffective:  effective,
			AuditFields:    s.auditFields(rc.ActorID),
		})
		if err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityExchangeRate, saved.ExchangeRateID,
			fmt.Sprintf("%s %s from %s", req.CurrencyCode, req.Rate.String(), dto.FormatDate(effective)))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add exchange rate", slog.String("currency_code", req.CurrencyCode))
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate added", slog.String("currency_code", req.CurrencyCode), slog.String("rate", req.Rate.String()))
	return saved, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, rc domain.RequestContext, currencyCode string) (*domain.Currency, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var currency *domain.Currency
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		currency, err = repos.FindCurrencyByCode(ctx, rc.CompanyID, currencyCode)
		return err
	})
	return currency, err
}

func (s *currencyService) ListCurrencies(ctx context.Context, rc domain.RequestContext) ([]domain.Currency, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var currencies []domain.Currency
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		currencies, err = repos.ListCurrencies(ctx, rc.CompanyID)
		return err
	})
	return currencies, err
}

func (s *currencyService) ListExchangeRates(ctx context.Context, rc domain.RequestContext, currencyCode string) ([]domain.ExchangeRate, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var rates []domain.ExchangeRate
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		rates, err = repos.ListExchangeRates(ctx, rc.CompanyID, currencyCode)
		return err
	})
	return rates, err
}

func (s *currencyService) ResolveRate(ctx context.Context, rc domain.RequestContext, currencyCode string, date time.Time) (decimal.Decimal, error) {
	if err := rc.Validate(); err != nil {
		return decimal.Zero, apperrors.NewValidationError(err.Error())
	}
	var rate decimal.Decimal
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		rate, err = resolveRate(ctx, repos, rc.CompanyID, currencyCode, date)
		return err
	})
	return rate, err
}
