package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product, deleted or not.
	FindProductByID(ctx context.Context, companyID, productID string) (*domain.Product, error)

	// ListProducts retrieves products ordered by SKU.
	ListProducts(ctx context.Context, companyID string, opts ListOptions) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product. A SKU already used in the company yields a DuplicateCodeError.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer, deleted or not.
	FindCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves customers ordered by name.
	ListCustomers(ctx context.Context, companyID string, opts ListOptions) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}
