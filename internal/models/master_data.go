package models

import "github.com/shopspring/decimal"

// Product is the products row.
type Product struct {
	ProductID string          `db:"product_id"`
	CompanyID string          `db:"company_id"`
	SKU       string          `db:"sku"`
	Name      string          `db:"name"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	AuditFields
	SoftDelete
}

// Customer is the customers row.
type Customer struct {
	CustomerID string `db:"customer_id"`
	CompanyID  string `db:"company_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	AuditFields
	SoftDelete
}
