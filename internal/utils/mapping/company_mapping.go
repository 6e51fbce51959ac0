package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanyMember converts a model CompanyMember to a domain CompanyMember
func ToDomainCompanyMember(m models.CompanyMember) domain.CompanyMember {
	return domain.CompanyMember{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      domain.Role(m.Role),
		JoinedAt:  m.JoinedAt,
	}
}
