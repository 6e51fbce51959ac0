package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelFiscalYear converts a domain FiscalYear to a model FiscalYear
func ToModelFiscalYear(d domain.FiscalYear) models.FiscalYear {
	return models.FiscalYear{
		FiscalYearID: d.FiscalYearID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		StartDate:    domain.DateOnly(d.StartDate),
		EndDate:      domain.DateOnly(d.EndDate),
		IsClosed:     d.IsClosed,
		ClosedAt:     d.ClosedAt,
		ClosedBy:     NullableString(d.ClosedBy),
		AuditFields:  ToModelAuditFields(d.AuditFields),
		SoftDelete:   ToModelSoftDelete(d.SoftDelete),
	}
}

// ToDomainFiscalYear converts a model FiscalYear to a domain FiscalYear
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID: m.FiscalYearID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		StartDate:    domain.DateOnly(m.StartDate),
		EndDate:      domain.DateOnly(m.EndDate),
		IsClosed:     m.IsClosed,
		ClosedAt:     m.ClosedAt,
		ClosedBy:     StringValue(m.ClosedBy),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		SoftDelete:   ToDomainSoftDelete(m.SoftDelete),
	}
}
