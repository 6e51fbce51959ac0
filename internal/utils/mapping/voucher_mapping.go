package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelVoucher converts a domain Voucher header to a model Voucher. Entries map separately.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:    d.VoucherID,
		CompanyID:    d.CompanyID,
		Reference:    d.Reference,
		Description:  d.Description,
		VoucherDate:  domain.DateOnly(d.VoucherDate),
		FiscalYearID: d.FiscalYearID,
		CurrencyCode: d.CurrencyCode,
		ExchangeRate: d.ExchangeRate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		SoftDelete:   ToModelSoftDelete(d.SoftDelete),
	}
}

// ToDomainVoucher converts a model Voucher and its entries to a domain Voucher
func ToDomainVoucher(m models.Voucher, entries []models.JournalEntry) domain.Voucher {
	d := domain.Voucher{
		VoucherID:    m.VoucherID,
		CompanyID:    m.CompanyID,
		Reference:    m.Reference,
		Description:  m.Description,
		VoucherDate:  domain.DateOnly(m.VoucherDate),
		FiscalYearID: m.FiscalYearID,
		CurrencyCode: m.CurrencyCode,
		ExchangeRate: m.ExchangeRate,
		Entries:      make([]domain.JournalEntry, len(entries)),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		SoftDelete:   ToDomainSoftDelete(m.SoftDelete),
	}
	for i, e := range entries {
		d.Entries[i] = ToDomainJournalEntry(e)
	}
	return d
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:   d.EntryID,
		VoucherID: d.VoucherID,
		LineNo:    d.LineNo,
		AccountID: d.AccountID,
		Debit:     d.Debit,
		Credit:    d.Credit,
		Notes:     d.Notes,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:   m.EntryID,
		VoucherID: m.VoucherID,
		LineNo:    m.LineNo,
		AccountID: m.AccountID,
		Debit:     m.Debit,
		Credit:    m.Credit,
		Notes:     m.Notes,
	}
}
