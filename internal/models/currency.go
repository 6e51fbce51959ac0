package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the currencies row, keyed by (company_id, currency_code).
type Currency struct {
	CompanyID    string `db:"company_id"`
	CurrencyCode string `db:"currency_code"`
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	IsBase       bool   `db:"is_base"`
	AuditFields
}

// ExchangeRate is the exchange_rates row. Sequence is a BIGSERIAL.
type ExchangeRate struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	CompanyID      string          `db:"company_id"`
	CurrencyCode   string          `db:"currency_code"`
	Rate           decimal.Decimal `db:"rate"`
	DateEffective  time.Time       `db:"date_effective"`
	Sequence       int64           `db:"sequence"`
	AuditFields
}
