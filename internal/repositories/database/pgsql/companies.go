package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const companyColumns = `c.company_id, c.name, c.description, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by`

func scanCompany(row pgx.Row) (domain.Company, error) {
	var m models.Company
	err := row.Scan(&m.CompanyID, &m.Name, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return mapping.ToDomainCompany(m), err
}

func scanCompanyMember(row pgx.Row) (domain.CompanyMember, error) {
	var m models.CompanyMember
	err := row.Scan(&m.CompanyID, &m.UserID, &m.Role, &m.JoinedAt)
	return mapping.ToDomainCompanyMember(m), err
}

func (r *repos) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies c WHERE c.company_id = $1`, companyID))
	if err != nil {
		return nil, translate(err, "find company")
	}
	return &c, nil
}

func (r *repos) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+companyColumns+`
		FROM companies c
		JOIN company_members m ON m.company_id = c.company_id
		WHERE m.user_id = $1
		ORDER BY c.name`, userID)
	if err != nil {
		return nil, translate(err, "list companies")
	}
	companies, err := collect(rows, scanCompany)
	return companies, translate(err, "list companies")
}

func (r *repos) FindCompanyMember(ctx context.Context, companyID, userID string) (*domain.CompanyMember, error) {
	m, err := scanCompanyMember(r.q.QueryRow(ctx, `
		SELECT company_id, user_id, role, joined_at
		FROM company_members
		WHERE company_id = $1 AND user_id = $2`, companyID, userID))
	if err != nil {
		return nil, translate(err, "find company member")
	}
	return &m, nil
}

func (r *repos) ListCompanyMembers(ctx context.Context, companyID string) ([]domain.CompanyMember, error) {
	rows, err := r.q.Query(ctx, `
		SELECT company_id, user_id, role, joined_at
		FROM company_members
		WHERE company_id = $1
		ORDER BY joined_at, user_id`, companyID)
	if err != nil {
		return nil, translate(err, "list company members")
	}
	members, err := collect(rows, scanCompanyMember)
	return members, translate(err, "list company members")
}

func (r *repos) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	_, err := r.q.Exec(ctx, `
		INSERT INTO companies (company_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.CompanyID, m.Name, m.Description, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	return translate(err, "save company")
}

// SaveCompanyMember inserts the membership or replaces the role of an existing one.
func (r *repos) SaveCompanyMember(ctx context.Context, member domain.CompanyMember) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO company_members (company_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, user_id) DO UPDATE SET role = EXCLUDED.role`,
		member.CompanyID, member.UserID, string(member.Role), member.JoinedAt)
	err = translate(err, "save company member")
	if errors.Is(err, apperrors.ErrValidation) {
		// The only foreign key is the company.
		return apperrors.ErrNotFound
	}
	return err
}
