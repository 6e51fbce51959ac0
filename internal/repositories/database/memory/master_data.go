package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

func (r *reader) FindProductByID(ctx context.Context, companyID, productID string) (*domain.Product, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	p, ok := r.st.products[productID]
	if !ok || p.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (r *reader) ListProducts(ctx context.Context, companyID string, opts repositories.ListOptions) ([]domain.Product, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.Product{}
	for _, p := range r.st.products {
		if p.CompanyID != companyID || (p.IsDeleted && !opts.IncludeDeleted) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (w *writer) SaveProduct(ctx context.Context, product domain.Product) error {
	if err := alive(ctx); err != nil {
		return err
	}
	if _, exists := w.st.products[product.ProductID]; exists {
		return apperrors.ErrDuplicate
	}
	for _, p := range w.st.products {
		if p.CompanyID == product.CompanyID && p.SKU == product.SKU {
			return &apperrors.DuplicateCodeError{Entity: "product", Code: product.SKU}
		}
	}
	w.st.products[product.ProductID] = product
	return nil
}

func (r *reader) FindCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	c, ok := r.st.customers[customerID]
	if !ok || c.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *reader) ListCustomers(ctx context.Context, companyID string, opts repositories.ListOptions) ([]domain.Customer, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.Customer{}
	for _, c := range r.st.customers {
		if c.CompanyID != companyID || (c.IsDeleted && !opts.IncludeDeleted) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out, nil
}

func (w *writer) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	if err := alive(ctx); err != nil {
		return err
	}
	if _, exists := w.st.customers[customer.CustomerID]; exists {
		return apperrors.ErrDuplicate
	}
	w.st.customers[customer.CustomerID] = customer
	return nil
}
