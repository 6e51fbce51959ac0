package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every valid account type in statement order.
func AccountTypes() []AccountType {
	return []AccountType{Asset, Liability, Equity, Revenue, Expense}
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether balances of this type grow with debits.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account represents a ledger account within a company's chart of accounts.
type Account struct {
	AccountID       string      `json:"accountID"`   // Primary Key (UUID)
	CompanyID       string      `json:"companyID"`   // Tenant boundary
	Code            string      `json:"code"`        // Unique per company
	Name            string      `json:"name"`        // User-defined name
	AccountType     AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	ParentAccountID string      `json:"parentAccountID,omitempty"`
	AuditFields
	SoftDelete
}
