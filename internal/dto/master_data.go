package dto

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to register a product.
type CreateProductRequest struct {
	SKU       string          `json:"sku" binding:"required,max=64"`
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}

// ProductsResponse wraps a list of products.
type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

// CustomersResponse wraps a list of customers.
type CustomersResponse struct {
	Customers []domain.Customer `json:"customers"`
}
