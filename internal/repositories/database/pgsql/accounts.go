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

const accountColumns = `account_id, company_id, code, name, account_type, parent_account_id,
	created_at, created_by, last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by`

const uqAccountCode = "uq_accounts_company_code"

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID, &m.CompanyID, &m.Code, &m.Name, &m.AccountType, &m.ParentAccountID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.IsDeleted, &m.DeletedAt, &m.DeletedBy,
	)
	return mapping.ToDomainAccount(m), err
}

func (r *repos) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 AND account_id = $2`, companyID, accountID))
	if err != nil {
		return nil, translate(err, "find account")
	}
	return &a, nil
}

func (r *repos) FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 AND code = $2`, companyID, code))
	if err != nil {
		return nil, translate(err, "find account by code")
	}
	return &a, nil
}

func (r *repos) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 AND account_id = ANY($2)`, companyID, accountIDs)
	if err != nil {
		return nil, translate(err, "find accounts")
	}
	accounts, err := collect(rows, scanAccount)
	if err != nil {
		return nil, translate(err, "find accounts")
	}
	for _, a := range accounts {
		out[a.AccountID] = a
	}
	return out, nil
}

func (r *repos) ListAccounts(ctx context.Context, companyID string, opts repositories.ListOptions) ([]domain.Account, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE company_id = $1 AND ($2 OR NOT is_deleted)
		ORDER BY code`, companyID, opts.IncludeDeleted)
	if err != nil {
		return nil, translate(err, "list accounts")
	}
	accounts, err := collect(rows, scanAccount)
	return accounts, translate(err, "list accounts")
}

func (r *repos) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.q.Exec(ctx, `
		INSERT INTO accounts (account_id, company_id, code, name, account_type, parent_account_id,
			created_at, created_by, last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.AccountID, m.CompanyID, m.Code, m.Name, m.AccountType, m.ParentAccountID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.IsDeleted, m.DeletedAt, m.DeletedBy)
	if constraintOf(err) == uqAccountCode {
		return &apperrors.DuplicateCodeError{Entity: "account", Code: account.Code}
	}
	return translate(err, "save account")
}

func (r *repos) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	tag, err := r.q.Exec(ctx, `
		UPDATE accounts
		SET code = $3, name = $4, parent_account_id = $5, last_updated_at = $6, last_updated_by = $7
		WHERE company_id = $1 AND account_id = $2`,
		m.CompanyID, m.AccountID, m.Code, m.Name, m.ParentAccountID, m.LastUpdatedAt, m.LastUpdatedBy)
	if constraintOf(err) == uqAccountCode {
		return &apperrors.DuplicateCodeError{Entity: "account", Code: account.Code}
	}
	return expectOne(tag, err, "update account")
}
