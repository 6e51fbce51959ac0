package domain

import "time"

// FiscalYear bounds the dates postings may use.
type FiscalYear struct {
	FiscalYearID string     `json:"fiscalYearID"`
	CompanyID    string     `json:"companyID"`
	Name         string     `json:"name"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	IsClosed     bool       `json:"isClosed"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	ClosedBy     string     `json:"closedBy,omitempty"`
	AuditFields
	SoftDelete
}

// Contains reports whether date falls within [StartDate, EndDate], compared by calendar day.
func (fy FiscalYear) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(fy.StartDate)) && !d.After(DateOnly(fy.EndDate))
}

// Overlaps reports whether the two fiscal years share at least one day.
func (fy FiscalYear) Overlaps(other FiscalYear) bool {
	return !DateOnly(fy.EndDate).Before(DateOnly(other.StartDate)) &&
		!DateOnly(other.EndDate).Before(DateOnly(fy.StartDate))
}
