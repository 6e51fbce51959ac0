package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

func (r *reader) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	a, ok := r.st.accounts[accountID]
	if !ok || a.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r *reader) FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	for _, a := range r.st.accounts {
		if a.CompanyID == companyID && a.Code == code {
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *reader) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if a, ok := r.st.accounts[id]; ok && a.CompanyID == companyID {
			out[id] = a
		}
	}
	return out, nil
}

func (r *reader) ListAccounts(ctx context.Context, companyID string, opts repositories.ListOptions) ([]domain.Account, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.Account{}
	for _, a := range r.st.accounts {
		if a.CompanyID != companyID || (a.IsDeleted && !opts.IncludeDeleted) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (w *writer) SaveAccount(ctx context.Context, account domain.Account) error {
	if err := alive(ctx); err != nil {
		return err
	}
	if _, exists := w.st.accounts[account.AccountID]; exists {
		return apperrors.ErrDuplicate
	}
	for _, a := range w.st.accounts {
		if a.CompanyID == account.CompanyID && a.Code == account.Code {
			return &apperrors.DuplicateCodeError{Entity: "account", Code: account.Code}
		}
	}
	w.st.accounts[account.AccountID] = account
	return nil
}

func (w *writer) UpdateAccount(ctx context.Context, account domain.Account) error {
	if err := alive(ctx); err != nil {
		return err
	}
	existing, ok := w.st.accounts[account.AccountID]
	if !ok || existing.CompanyID != account.CompanyID {
		return apperrors.ErrNotFound
	}
	existing.Code = account.Code
	existing.Name = account.Name
	existing.ParentAccountID = account.ParentAccountID
	existing.LastUpdatedAt = account.LastUpdatedAt
	existing.LastUpdatedBy = account.LastUpdatedBy
	w.st.accounts[account.AccountID] = existing
	return nil
}
