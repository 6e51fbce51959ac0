package domain

import "github.com/shopspring/decimal"

// Product is a stocked item. Inventory batches reference it by ProductID.
type Product struct {
	ProductID string          `json:"productID"`
	CompanyID string          `json:"companyID"`
	SKU       string          `json:"sku"` // Unique per company
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	AuditFields
	SoftDelete
}

// Customer is a counterparty the company sells to.
type Customer struct {
	CustomerID string `json:"customerID"`
	CompanyID  string `json:"companyID"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	AuditFields
	SoftDelete
}
