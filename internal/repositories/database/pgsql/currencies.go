package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const currencyColumns = `company_id, currency_code, symbol, name, is_base, created_at, created_by, last_updated_at, last_updated_by`

const exchangeRateColumns = `exchange_rate_id, company_id, currency_code, rate, date_effective, sequence,
	created_at, created_by, last_updated_at, last_updated_by`

const (
	pkCurrency        = "currencies_pkey"
	uqOneBaseCurrency = "uq_currencies_one_base"
)

func scanCurrency(row pgx.Row) (domain.Currency, error) {
	var m models.Currency
	err := row.Scan(&m.CompanyID, &m.CurrencyCode, &m.Symbol, &m.Name, &m.IsBase,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return mapping.ToDomainCurrency(m), err
}

func scanExchangeRate(row pgx.Row) (domain.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(&m.ExchangeRateID, &m.CompanyID, &m.CurrencyCode, &m.Rate, &m.DateEffective, &m.Sequence,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return mapping.ToDomainExchangeRate(m), err
}

func (r *repos) FindCurrencyByCode(ctx context.Context, companyID, currencyCode string) (*domain.Currency, error) {
	c, err := scanCurrency(r.q.QueryRow(ctx,
		`SELECT `+currencyColumns+` FROM currencies WHERE company_id = $1 AND currency_code = $2`, companyID, currencyCode))
	if err != nil {
		return nil, translate(err, "find currency")
	}
	return &c, nil
}

func (r *repos) FindBaseCurrency(ctx context.Context, companyID string) (*domain.Currency, error) {
	c, err := scanCurrency(r.q.QueryRow(ctx,
		`SELECT `+currencyColumns+` FROM currencies WHERE company_id = $1 AND is_base`, companyID))
	if err != nil {
		return nil, translate(err, "find base currency")
	}
	return &c, nil
}

func (r *repos) ListCurrencies(ctx context.Context, companyID string) ([]domain.Currency, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+currencyColumns+` FROM currencies WHERE company_id = $1 ORDER BY currency_code`, companyID)
	if err != nil {
		return nil, translate(err, "list currencies")
	}
	currencies, err := collect(rows, scanCurrency)
	return currencies, translate(err, "list currencies")
}

func (r *repos) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	_, err := r.q.Exec(ctx, `
		INSERT INTO currencies (company_id, currency_code, symbol, name, is_base, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.CompanyID, m.CurrencyCode, m.Symbol, m.Name, m.IsBase, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	switch constraintOf(err) {
	case pkCurrency:
		return &apperrors.DuplicateCodeError{Entity: "currency", Code: currency.CurrencyCode}
	case uqOneBaseCurrency:
		return apperrors.NewStateError("company already has a base currency")
	}
	return translate(err, "save currency")
}

func (r *repos) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE currencies
		SET name = $3, symbol = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND currency_code = $2`,
		currency.CompanyID, currency.CurrencyCode, currency.Name, currency.Symbol, currency.LastUpdatedAt, currency.LastUpdatedBy)
	return expectOne(tag, err, "update currency")
}

// FindEffectiveRate picks the latest date not after date; the later insert wins a tie.
func (r *repos) FindEffectiveRate(ctx context.Context, companyID, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	rate, err := scanExchangeRate(r.q.QueryRow(ctx, `
		SELECT `+exchangeRateColumns+`
		FROM exchange_rates
		WHERE company_id = $1 AND currency_code = $2 AND date_effective <= $3
		ORDER BY date_effective DESC, sequence DESC
		LIMIT 1`, companyID, currencyCode, domain.DateOnly(date)))
	if err != nil {
		return nil, translate(err, "find effective rate")
	}
	return &rate, nil
}

func (r *repos) FindExchangeRateByID(ctx context.Context, companyID, exchangeRateID string) (*domain.ExchangeRate, error) {
	rate, err := scanExchangeRate(r.q.QueryRow(ctx,
		`SELECT `+exchangeRateColumns+` FROM exchange_rates WHERE company_id = $1 AND exchange_rate_id = $2`,
		companyID, exchangeRateID))
	if err != nil {
		return nil, translate(err, "find exchange rate")
	}
	return &rate, nil
}

func (r *repos) ListExchangeRates(ctx context.Context, companyID, currencyCode string) ([]domain.ExchangeRate, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+exchangeRateColumns+`
		FROM exchange_rates
		WHERE company_id = $1 AND currency_code = $2
		ORDER BY date_effective, sequence`, companyID, currencyCode)
	if err != nil {
		return nil, translate(err, "list exchange rates")
	}
	rates, err := collect(rows, scanExchangeRate)
	return rates, translate(err, "list exchange rates")
}

func (r *repos) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	m := mapping.ToModelExchangeRate(rate)
	err := r.q.QueryRow(ctx, `
		INSERT INTO exchange_rates (exchange_rate_id, company_id, currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING sequence`,
		m.ExchangeRateID, m.CompanyID, m.CurrencyCode, m.Rate, m.DateEffective,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy).Scan(&m.Sequence)
	if err != nil {
		return nil, translate(err, "save exchange rate")
	}
	saved := mapping.ToDomainExchangeRate(m)
	return &saved, nil
}
