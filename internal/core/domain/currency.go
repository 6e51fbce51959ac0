package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a currency enabled for a company.
type Currency struct {
	CompanyID    string `json:"companyID"`
	CurrencyCode string `json:"currencyCode"` // e.g., "USD", unique per company
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	IsBase       bool   `json:"isBase"`       // Exactly one per company
	AuditFields
}

// ExchangeRate expresses how many base-currency units one unit of CurrencyCode is worth
// from DateEffective onwards.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	CompanyID      string          `json:"companyID"`
	CurrencyCode   string          `json:"currencyCode"`
	Rate           decimal.Decimal `json:"rate"`
	DateEffective  time.Time       `json:"dateEffective"`
	// Sequence is the insertion order; the later record wins when dates tie.
	Sequence int64 `json:"sequence"`
	AuditFields
}
