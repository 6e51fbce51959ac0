package memory

import (
	"maps"
	"slices"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

type memberKey struct {
	companyID string
	userID    string
}

type currencyKey struct {
	companyID string
	code      string
}

// state is one version of the whole store. Committed states are never mutated.
type state struct {
	companies   map[string]domain.Company
	members     map[memberKey]domain.CompanyMember
	accounts    map[string]domain.Account
	fiscalYears map[string]domain.FiscalYear
	currencies  map[currencyKey]domain.Currency
	rates       []domain.ExchangeRate
	vouchers    map[string]domain.Voucher
	batches     map[string]domain.InventoryBatch
	invTxns     []domain.InventoryTransaction
	products    map[string]domain.Product
	customers   map[string]domain.Customer
	approvals   map[string]domain.Approval
	audit       []domain.AuditLog
	seq         int64
}

func newState() *state {
	return &state{
		companies:   map[string]domain.Company{},
		members:     map[memberKey]domain.CompanyMember{},
		accounts:    map[string]domain.Account{},
		fiscalYears: map[string]domain.FiscalYear{},
		currencies:  map[currencyKey]domain.Currency{},
		vouchers:    map[string]domain.Voucher{},
		batches:     map[string]domain.InventoryBatch{},
		products:    map[string]domain.Product{},
		customers:   map[string]domain.Customer{},
		approvals:   map[string]domain.Approval{},
	}
}

// clone copies every container. Values are structs; the only shared reference types are
// voucher entry slices, which are never modified after a voucher is saved.
func (s *state) clone() *state {
	return &state{
		companies:   maps.Clone(s.companies),
		members:     maps.Clone(s.members),
		accounts:    maps.Clone(s.accounts),
		fiscalYears: maps.Clone(s.fiscalYears),
		currencies:  maps.Clone(s.currencies),
		rates:       slices.Clip(slices.Clone(s.rates)),
		vouchers:    maps.Clone(s.vouchers),
		batches:     maps.Clone(s.batches),
		invTxns:     slices.Clip(slices.Clone(s.invTxns)),
		products:    maps.Clone(s.products),
		customers:   maps.Clone(s.customers),
		approvals:   maps.Clone(s.approvals),
		audit:       slices.Clip(slices.Clone(s.audit)),
		seq:         s.seq,
	}
}

func (s *state) nextSeq() int64 {
	s.seq++
	return s.seq
}
