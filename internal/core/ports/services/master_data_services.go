package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// MasterDataReaderSvc defines read operations for products and customers
type MasterDataReaderSvc interface {
	GetProduct(ctx context.Context, rc domain.RequestContext, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.Product, error)
	GetCustomer(ctx context.Context, rc domain.RequestContext, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.Customer, error)
}

// MasterDataWriterSvc defines write operations for products and customers
type MasterDataWriterSvc interface {
	// CreateProduct registers a product under a company-unique SKU.
	CreateProduct(ctx context.Context, rc domain.RequestContext, req dto.CreateProductRequest) (*domain.Product, error)
	CreateCustomer(ctx context.Context, rc domain.RequestContext, req dto.CreateCustomerRequest) (*domain.Customer, error)
}

// MasterDataSvcFacade combines all master data service interfaces
type MasterDataSvcFacade interface {
	MasterDataReaderSvc
	MasterDataWriterSvc
}
