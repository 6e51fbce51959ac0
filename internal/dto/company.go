package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// --- Company DTOs ---

// CreateCompanyRequest defines data for onboarding a new company.
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	// BaseCurrency is registered as the company's base currency.
	BaseCurrency       string `json:"baseCurrency" binding:"required,iso4217"`
	BaseCurrencyName   string `json:"baseCurrencyName" binding:"required"`
	BaseCurrencySymbol string `json:"baseCurrencySymbol" binding:"required"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID     string    `json:"companyID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		Description:   c.Description,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ListCompaniesResponse wraps a list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of companies.
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	res := ListCompaniesResponse{Companies: make([]CompanyResponse, len(companies))}
	for i := range companies {
		res.Companies[i] = ToCompanyResponse(&companies[i])
	}
	return res
}

// --- Membership DTOs ---

// AddMemberRequest defines data for adding a user to a company.
type AddMemberRequest struct {
	UserID string      `json:"userID" binding:"required"`
	Role   domain.Role `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// MemberResponse defines data returned for a company member.
type MemberResponse struct {
	UserID    string      `json:"userID"`
	CompanyID string      `json:"companyID"`
	Role      domain.Role `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
}

// ToMemberResponses converts memberships to DTOs.
func ToMemberResponses(members []domain.CompanyMember) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i, m := range members {
		res[i] = MemberResponse{UserID: m.UserID, CompanyID: m.CompanyID, Role: m.Role, JoinedAt: m.JoinedAt}
	}
	return res
}
