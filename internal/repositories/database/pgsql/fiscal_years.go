package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const fiscalYearColumns = `fiscal_year_id, company_id, name, start_date, end_date, is_closed, closed_at, closed_by,
	created_at, created_by, last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by`

const uqOneOpenFiscalYear = "uq_fiscal_years_one_open"

func scanFiscalYear(row pgx.Row) (domain.FiscalYear, error) {
	var m models.FiscalYear
	err := row.Scan(
		&m.FiscalYearID, &m.CompanyID, &m.Name, &m.StartDate, &m.EndDate, &m.IsClosed, &m.ClosedAt, &m.ClosedBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.IsDeleted, &m.DeletedAt, &m.DeletedBy,
	)
	return mapping.ToDomainFiscalYear(m), err
}

func (r *repos) FindFiscalYearByID(ctx context.Context, companyID, fiscalYearID string) (*domain.FiscalYear, error) {
	fy, err := scanFiscalYear(r.q.QueryRow(ctx,
		`SELECT `+fiscalYearColumns+` FROM fiscal_years WHERE company_id = $1 AND fiscal_year_id = $2`,
		companyID, fiscalYearID))
	if err != nil {
		return nil, translate(err, "find fiscal year")
	}
	return &fy, nil
}

func (r *repos) ListFiscalYears(ctx context.Context, companyID string, opts repositories.ListOptions) ([]domain.FiscalYear, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+fiscalYearColumns+`
		FROM fiscal_years
		WHERE company_id = $1 AND ($2 OR NOT is_deleted)
		ORDER BY start_date, fiscal_year_id`, companyID, opts.IncludeDeleted)
	if err != nil {
		return nil, translate(err, "list fiscal years")
	}
	years, err := collect(rows, scanFiscalYear)
	return years, translate(err, "list fiscal years")
}

func (r *repos) SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	m := mapping.ToModelFiscalYear(fy)
	_, err := r.q.Exec(ctx, `
		INSERT INTO fiscal_years (fiscal_year_id, company_id, name, start_date, end_date, is_closed, closed_at, closed_by,
			created_at, created_by, last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		m.FiscalYearID, m.CompanyID, m.Name, m.StartDate, m.EndDate, m.IsClosed, m.ClosedAt, m.ClosedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.IsDeleted, m.DeletedAt, m.DeletedBy)
	if constraintOf(err) == uqOneOpenFiscalYear {
		return apperrors.NewStateError("another fiscal year is already open")
	}
	return translate(err, "save fiscal year")
}

// LockFiscalYear reads the row FOR UPDATE. Closing waits for in-flight postings to commit.
func (r *repos) LockFiscalYear(ctx context.Context, companyID, fiscalYearID string) (*domain.FiscalYear, error) {
	fy, err := scanFiscalYear(r.q.QueryRow(ctx,
		`SELECT `+fiscalYearColumns+` FROM fiscal_years WHERE company_id = $1 AND fiscal_year_id = $2 FOR UPDATE`,
		companyID, fiscalYearID))
	if err != nil {
		return nil, translate(err, "lock fiscal year")
	}
	return &fy, nil
}

func (r *repos) CloseFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	m := mapping.ToModelFiscalYear(fy)
	tag, err := r.q.Exec(ctx, `
		UPDATE fiscal_years
		SET is_closed = TRUE, closed_at = $3, closed_by = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND fiscal_year_id = $2`,
		m.CompanyID, m.FiscalYearID, m.ClosedAt, m.ClosedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return expectOne(tag, err, "close fiscal year")
}
