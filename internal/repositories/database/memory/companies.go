package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

func alive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Unavailable("memory store", err)
	}
	return nil
}

func (r *reader) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	c, ok := r.st.companies[companyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *reader) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.Company{}
	for k := range r.st.members {
		if k.userID != userID {
			continue
		}
		if c, ok := r.st.companies[k.companyID]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *reader) FindCompanyMember(ctx context.Context, companyID, userID string) (*domain.CompanyMember, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	m, ok := r.st.members[memberKey{companyID: companyID, userID: userID}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (r *reader) ListCompanyMembers(ctx context.Context, companyID string) ([]domain.CompanyMember, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.CompanyMember{}
	for k, m := range r.st.members {
		if k.companyID == companyID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (w *writer) SaveCompany(ctx context.Context, company domain.Company) error {
	if err := alive(ctx); err != nil {
		return err
	}
	if _, exists := w.st.companies[company.CompanyID]; exists {
		return apperrors.ErrDuplicate
	}
	w.st.companies[company.CompanyID] = company
	return nil
}

func (w *writer) SaveCompanyMember(ctx context.Context, member domain.CompanyMember) error {
	if err := alive(ctx); err != nil {
		return err
	}
	if _, ok := w.st.companies[member.CompanyID]; !ok {
		return apperrors.ErrNotFound
	}
	w.st.members[memberKey{companyID: member.CompanyID, userID: member.UserID}] = member
	return nil
}
