package domain

import "time"

// Company is the tenant boundary. Every other entity carries its CompanyID.
type Company struct {
	CompanyID   string `json:"companyID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// CompanyMember represents the membership of a user in a company.
type CompanyMember struct {
	UserID    string    `json:"userID"`
	CompanyID string    `json:"companyID"`
	Role      Role      `json:"role"` // Role of the user in this specific company
	JoinedAt  time.Time `json:"joinedAt"`
}
