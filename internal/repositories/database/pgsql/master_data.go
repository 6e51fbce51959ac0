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

const productColumns = `product_id, company_id, sku, name, unit_price,
	created_at, created_by, last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by`

const uqProductSKU = "uq_products_company_sku"

func scanProduct(row pgx.Row) (domain.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID, &m.CompanyID, &m.SKU, &m.Name, &m.UnitPrice,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.IsDeleted, &m.DeletedAt, &m.DeletedBy,
	)
	return mapping.ToDomainProduct(m), err
}

func (r *repos) FindProductByID(ctx context.Context, companyID, productID string) (*domain.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE company_id = $1 AND product_id = $2`, companyID, productID))
	if err != nil {
		return nil, translate(err, "find product")
	}
	return &p, nil
}

func (r *repos) ListProducts(ctx context.Context, companyID string, opts repositories.ListOptions) ([]domain.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE company_id = $1 AND ($2 OR NOT is_deleted)
		ORDER BY sku`, companyID, opts.IncludeDeleted)
	if err != nil {
		return nil, translate(err, "list products")
	}
	products, err := collect(rows, scanProduct)
	return products, translate(err, "list products")
}

func (r *repos) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (product_id, company_id, sku, name, unit_price,
			created_at, created_by, last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ProductID, m.CompanyID, m.SKU, m.Name, m.UnitPrice,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.IsDeleted, m.DeletedAt, m.DeletedBy)
	if constraintOf(err) == uqProductSKU {
		return &apperrors.DuplicateCodeError{Entity: "product", Code: product.SKU}
	}
	return translate(err, "save product")
}

const customerColumns = `customer_id, company_id, name, email, phone,
	created_at, created_by, last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by`

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID, &m.CompanyID, &m.Name, &m.Email, &m.Phone,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.IsDeleted, &m.DeletedAt, &m.DeletedBy,
	)
	return mapping.ToDomainCustomer(m), err
}

func (r *repos) FindCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE company_id = $1 AND customer_id = $2`, companyID, customerID))
	if err != nil {
		return nil, translate(err, "find customer")
	}
	return &c, nil
}

func (r *repos) ListCustomers(ctx context.Context, companyID string, opts repositories.ListOptions) ([]domain.Customer, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE company_id = $1 AND ($2 OR NOT is_deleted)
		ORDER BY name, customer_id`, companyID, opts.IncludeDeleted)
	if err != nil {
		return nil, translate(err, "list customers")
	}
	customers, err := collect(rows, scanCustomer)
	return customers, translate(err, "list customers")
}

func (r *repos) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	_, err := r.q.Exec(ctx, `
		INSERT INTO customers (customer_id, company_id, name, email, phone,
			created_at, created_by, last_updated_at, last_updated_by, is_deleted, deleted_at, deleted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.CustomerID, m.CompanyID, m.Name, m.Email, m.Phone,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.IsDeleted, m.DeletedAt, m.DeletedBy)
	return translate(err, "save customer")
}
