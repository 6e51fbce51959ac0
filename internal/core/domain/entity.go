package domain

import "fmt"

// EntityKind enumerates the entity types the ledger knows about.
// Every switch over EntityKind lists all kinds; add new kinds to AllEntityKinds as well.
type EntityKind string

const (
	EntityAccount        EntityKind = "ACCOUNT"
	EntityVoucher        EntityKind = "VOUCHER"
	EntityFiscalYear     EntityKind = "FISCAL_YEAR"
	EntityInventoryBatch EntityKind = "INVENTORY_BATCH"
	EntityCurrency       EntityKind = "CURRENCY"
	EntityExchangeRate   EntityKind = "EXCHANGE_RATE"
	EntityApproval       EntityKind = "APPROVAL"
	EntityProduct        EntityKind = "PRODUCT"
	EntityCustomer       EntityKind = "CUSTOMER"
)

// AllEntityKinds lists every known kind.
func AllEntityKinds() []EntityKind {
	return []EntityKind{
		EntityAccount,
		EntityVoucher,
		EntityFiscalYear,
		EntityInventoryBatch,
		EntityCurrency,
		EntityExchangeRate,
		EntityApproval,
		EntityProduct,
		EntityCustomer,
	}
}

// ParseEntityKind converts a wire value into an EntityKind.
func ParseEntityKind(s string) (EntityKind, error) {
	for _, k := range AllEntityKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// SoftDeletable reports whether the kind supports soft delete and restore.
func (k EntityKind) SoftDeletable() bool {
	switch k {
	case EntityAccount, EntityVoucher, EntityFiscalYear, EntityInventoryBatch, EntityProduct, EntityCustomer:
		return true
	case EntityCurrency, EntityExchangeRate, EntityApproval:
		return false
	}
	return false
}

// Label is the human-readable name used in audit details and error messages.
func (k EntityKind) Label() string {
	switch k {
	case EntityAccount:
		return "account"
	case EntityVoucher:
		return "voucher"
	case EntityFiscalYear:
		return "fiscal year"
	case EntityInventoryBatch:
		return "inventory batch"
	case EntityCurrency:
		return "currency"
	case EntityExchangeRate:
		return "exchange rate"
	case EntityApproval:
		return "approval"
	case EntityProduct:
		return "product"
	case EntityCustomer:
		return "customer"
	}
	return string(k)
}
