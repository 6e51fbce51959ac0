package models

import "time"

// FiscalYear is the fiscal_years row. Start and end are DATE columns.
type FiscalYear struct {
	FiscalYearID string     `db:"fiscal_year_id"`
	CompanyID    string     `db:"company_id"`
	Name         string     `db:"name"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      time.Time  `db:"end_date"`
	IsClosed     bool       `db:"is_closed"`
	ClosedAt     *time.Time `db:"closed_at"`
	ClosedBy     *string    `db:"closed_by"`
	AuditFields
	SoftDelete
}
