package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		CompanyID:      d.CompanyID,
		CurrencyCode:   d.CurrencyCode,
		Rate:           d.Rate,
		DateEffective:  domain.DateOnly(d.DateEffective),
		Sequence:       d.Sequence,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		CompanyID:      m.CompanyID,
		CurrencyCode:   m.CurrencyCode,
		Rate:           m.Rate,
		DateEffective:  domain.DateOnly(m.DateEffective),
		Sequence:       m.Sequence,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
