package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// CreateFiscalYearRequest defines the data needed to open a fiscal year.
type CreateFiscalYearRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string     `json:"fiscalYearID"`
	Name         string     `json:"name"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	IsClosed     bool       `json:"isClosed"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	ClosedBy     string     `json:"closedBy,omitempty"`
	IsDeleted    bool       `json:"isDeleted"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy"`
}

// ToFiscalYearResponse converts a domain.FiscalYear to DTO.
func ToFiscalYearResponse(fy *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		FiscalYearID: fy.FiscalYearID,
		Name:         fy.Name,
		StartDate:    FormatDate(fy.StartDate),
		EndDate:      FormatDate(fy.EndDate),
		IsClosed:     fy.IsClosed,
		ClosedAt:     fy.ClosedAt,
		ClosedBy:     fy.ClosedBy,
		IsDeleted:    fy.IsDeleted,
		CreatedAt:    fy.CreatedAt,
		CreatedBy:    fy.CreatedBy,
	}
}

// ToListFiscalYearResponse converts a slice of fiscal years.
func ToListFiscalYearResponse(years []domain.FiscalYear) []FiscalYearResponse {
	res := make([]FiscalYearResponse, len(years))
	for i := range years {
		res[i] = ToFiscalYearResponse(&years[i])
	}
	return res
}
