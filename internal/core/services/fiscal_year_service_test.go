package services_test

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiscalYear_SingleOpenYearAndNoOverlap(t *testing.T) {
	f := newFixture(t, nil)
	fy2024 := f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")

	_, err := f.svc.FiscalYear.CreateFiscalYear(f.ctx, f.admin, dto.CreateFiscalYearRequest{Name: "FY2025", StartDate: "2025-01-01", EndDate: "2025-12-31"})
	assert.ErrorIs(t, err, apperrors.ErrState, "a second open year is refused")

	_, err = f.svc.FiscalYear.CloseFiscalYear(f.ctx, f.admin, fy2024)
	require.NoError(t, err)

	_, err = f.svc.FiscalYear.CreateFiscalYear(f.ctx, f.admin, dto.CreateFiscalYearRequest{Name: "Overlap", StartDate: "2024-06-01", EndDate: "2025-05-31"})
	assert.ErrorIs(t, err, apperrors.ErrState, "overlapping years are refused")

	f.fiscalYear(t, "FY2025", "2025-01-01", "2025-12-31")

	years, err := f.svc.FiscalYear.ListFiscalYears(f.ctx, f.readOnly, false)
	require.NoError(t, err)
	require.Len(t, years, 2)
	assert.Equal(t, "FY2024", years[0].Name)
}

func TestFiscalYear_Validation(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.FiscalYear.CreateFiscalYear(f.ctx, f.admin, dto.CreateFiscalYearRequest{Name: "Backwards", StartDate: "2024-12-31", EndDate: "2024-01-01"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.FiscalYear.CreateFiscalYear(f.ctx, f.admin, dto.CreateFiscalYearRequest{Name: "Garbled", StartDate: "01/01/2024", EndDate: "2024-12-31"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.FiscalYear.CreateFiscalYear(f.ctx, f.member, dto.CreateFiscalYearRequest{Name: "FY", StartDate: "2024-01-01", EndDate: "2024-12-31"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestFiscalYear_AssertOpen(t *testing.T) {
	f := newFixture(t, nil)
	fyID := f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")

	assert.NoError(t, f.svc.FiscalYear.AssertOpen(f.ctx, f.member, fyID, day("2024-01-01")))
	assert.NoError(t, f.svc.FiscalYear.AssertOpen(f.ctx, f.member, fyID, day("2024-12-31")))

	err := f.svc.FiscalYear.AssertOpen(f.ctx, f.member, fyID, day("2025-01-01"))
	var outOfRange *apperrors.OutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, fyID, outOfRange.FiscalYearID)

	_, err = f.svc.FiscalYear.CloseFiscalYear(f.ctx, f.admin, fyID)
	require.NoError(t, err)

	err = f.svc.FiscalYear.AssertOpen(f.ctx, f.member, fyID, day("2024-06-30"))
	var closed *apperrors.ClosedPeriodError
	require.ErrorAs(t, err, &closed)
	assert.ErrorIs(t, err, apperrors.ErrState)

	assert.ErrorIs(t, f.svc.FiscalYear.AssertOpen(f.ctx, f.member, "missing", day("2024-06-30")), apperrors.ErrNotFound)
}

func TestFiscalYear_CloseIsTerminal(t *testing.T) {
	f := newFixture(t, nil)
	fyID := f.fiscalYear(t, "FY2024", "2024-01-01", "2024-12-31")

	active, err := f.svc.FiscalYear.GetActiveFiscalYear(f.ctx, f.readOnly)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, fyID, active.FiscalYearID)

	_, err = f.svc.FiscalYear.CloseFiscalYear(f.ctx, f.member, fyID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	closed, err := f.svc.FiscalYear.CloseFiscalYear(f.ctx, f.admin, fyID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
	assert.Equal(t, adminUserID, closed.ClosedBy)
	assert.NotNil(t, closed.ClosedAt)

	_, err = f.svc.FiscalYear.CloseFiscalYear(f.ctx, f.admin, fyID)
	assert.ErrorIs(t, err, apperrors.ErrState)

	active, err = f.svc.FiscalYear.GetActiveFiscalYear(f.ctx, f.readOnly)
	require.NoError(t, err)
	assert.Nil(t, active)
}
