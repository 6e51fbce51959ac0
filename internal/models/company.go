package models

import "time"

// Company is the companies row.
type Company struct {
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// CompanyMember is the company_members row.
type CompanyMember struct {
	CompanyID string    `db:"company_id"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	JoinedAt  time.Time `db:"joined_at"`
}
