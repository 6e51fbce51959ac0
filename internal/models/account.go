package models

// Account is the accounts row. ParentAccountID is NULL for top-level accounts.
type Account struct {
	AccountID       string  `db:"account_id"`
	CompanyID       string  `db:"company_id"`
	Code            string  `db:"code"`
	Name            string  `db:"name"`
	AccountType     string  `db:"account_type"`
	ParentAccountID *string `db:"parent_account_id"`
	AuditFields
	SoftDelete
}
