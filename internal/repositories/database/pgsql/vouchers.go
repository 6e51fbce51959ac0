package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const voucherColumns = `v.voucher_id, v.company_id, v.reference, v.description, v.voucher_date, v.fiscal_year_id,
	v.currency_code, v.exchange_rate, v.created_at, v.created_by, v.last_updated_at, v.last_updated_by,
	v.is_deleted, v.deleted_at, v.deleted_by`

const entryColumns = `entry_id, voucher_id, line_no, account_id, debit, credit, notes`

func scanVoucherHeader(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID, &m.CompanyID, &m.Reference, &m.Description, &m.VoucherDate, &m.FiscalYearID,
		&m.CurrencyCode, &m.ExchangeRate, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.IsDeleted, &m.DeletedAt, &m.DeletedBy,
	)
	return m, err
}

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(&m.EntryID, &m.VoucherID, &m.LineNo, &m.AccountID, &m.Debit, &m.Credit, &m.Notes)
	return m, err
}

// voucherWhere builds the shared predicate for listing and counting vouchers.
func voucherWhere(companyID string, filter repositories.VoucherFilter) *whereBuilder {
	w := &whereBuilder{}
	w.add("v.company_id = $%d", companyID)
	if !filter.From.IsZero() {
		w.add("v.voucher_date >= $%d", domain.DateOnly(filter.From))
	}
	if !filter.To.IsZero() {
		w.add("v.voucher_date <= $%d", domain.DateOnly(filter.To))
	}
	if filter.FiscalYearID != "" {
		w.add("v.fiscal_year_id = $%d", filter.FiscalYearID)
	}
	if filter.CurrencyCode != "" {
		w.add("v.currency_code = $%d", filter.CurrencyCode)
	}
	if !filter.IncludeDeleted {
		w.raw("NOT v.is_deleted")
	}
	return w
}

// entriesFor loads the lines of the given vouchers grouped by voucher, in line order.
func (r *repos) entriesFor(ctx context.Context, voucherIDs []string) (map[string][]models.JournalEntry, error) {
	out := make(map[string][]models.JournalEntry, len(voucherIDs))
	if len(voucherIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+entryColumns+` FROM journal_entries WHERE voucher_id = ANY($1) ORDER BY voucher_id, line_no`, voucherIDs)
	if err != nil {
		return nil, err
	}
	entries, err := collect(rows, scanEntry)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		out[e.VoucherID] = append(out[e.VoucherID], e)
	}
	return out, nil
}

func (r *repos) FindVoucherByID(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error) {
	header, err := scanVoucherHeader(r.q.QueryRow(ctx,
		`SELECT `+voucherColumns+` FROM vouchers v WHERE v.company_id = $1 AND v.voucher_id = $2`, companyID, voucherID))
	if err != nil {
		return nil, translate(err, "find voucher")
	}
	entries, err := r.entriesFor(ctx, []string{voucherID})
	if err != nil {
		return nil, translate(err, "find voucher entries")
	}
	v := mapping.ToDomainVoucher(header, entries[voucherID])
	return &v, nil
}

func (r *repos) ListVouchers(ctx context.Context, companyID string, filter repositories.VoucherFilter) ([]domain.Voucher, error) {
	w := voucherWhere(companyID, filter)
	rows, err := r.q.Query(ctx, `SELECT `+voucherColumns+` FROM vouchers v`+w.String()+
		` ORDER BY v.voucher_date, v.created_at, v.voucher_id`, w.args...)
	if err != nil {
		return nil, translate(err, "list vouchers")
	}
	headers, err := collect(rows, scanVoucherHeader)
	if err != nil {
		return nil, translate(err, "list vouchers")
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.VoucherID
	}
	entries, err := r.entriesFor(ctx, ids)
	if err != nil {
		return nil, translate(err, "list voucher entries")
	}

	out := make([]domain.Voucher, len(headers))
	for i, h := range headers {
		out[i] = mapping.ToDomainVoucher(h, entries[h.VoucherID])
	}
	return out, nil
}

func (r *repos) CountVouchers(ctx context.Context, companyID string, filter repositories.VoucherFilter) (int, error) {
	w := voucherWhere(companyID, filter)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM vouchers v`+w.String(), w.args...).Scan(&n); err != nil {
		return 0, translate(err, "count vouchers")
	}
	return n, nil
}

// SaveVoucher inserts the header and sends every line in one batch.
func (r *repos) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	_, err := r.q.Exec(ctx, `
		INSERT INTO vouchers (voucher_id, company_id, reference, description, voucher_date, fiscal_year_id,
			currency_code, exchange_rate, created_at, created_by, last_updated_at, last_updated_by,
			is_deleted, deleted_at, deleted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		m.VoucherID, m.CompanyID, m.Reference, m.Description, m.VoucherDate, m.FiscalYearID,
		m.CurrencyCode, m.ExchangeRate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		m.IsDeleted, m.DeletedAt, m.DeletedBy)
	if err != nil {
		return translate(err, "save voucher")
	}

	batch := &pgx.Batch{}
	for _, e := range voucher.Entries {
		em := mapping.ToModelJournalEntry(e)
		batch.Queue(`
			INSERT INTO journal_entries (entry_id, voucher_id, line_no, account_id, debit, credit, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			em.EntryID, m.VoucherID, em.LineNo, em.AccountID, em.Debit, em.Credit, em.Notes)
	}
	results := r.q.SendBatch(ctx, batch)
	for range voucher.Entries {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return translate(err, "save journal entry")
		}
	}
	return translate(results.Close(), "save journal entries")
}

// ListLedgerLines joins lines with their voucher header for the reporting engine.
func (r *repos) ListLedgerLines(ctx context.Context, companyID string, query domain.ReportQuery) ([]domain.LedgerLine, error) {
	w := voucherWhere(companyID, repositories.VoucherFilter{
		From:         query.From,
		To:           query.To,
		FiscalYearID: query.FiscalYearID,
		ListOptions:  repositories.ListOptions{IncludeDeleted: query.IncludeDeleted},
	})
	rows, err := r.q.Query(ctx, `
		SELECT v.voucher_id, v.voucher_date, v.fiscal_year_id, e.account_id, e.debit, e.credit, v.exchange_rate, v.is_deleted
		FROM journal_entries e
		JOIN vouchers v ON v.voucher_id = e.voucher_id`+w.String()+`
		ORDER BY v.voucher_date, v.created_at, e.voucher_id, e.line_no`, w.args...)
	if err != nil {
		return nil, translate(err, "list ledger lines")
	}
	lines, err := collect(rows, func(row pgx.Row) (domain.LedgerLine, error) {
		var l domain.LedgerLine
		err := row.Scan(&l.VoucherID, &l.VoucherDate, &l.FiscalYearID, &l.AccountID, &l.Debit, &l.Credit, &l.ExchangeRate, &l.VoucherDeleted)
		return l, err
	})
	return lines, translate(err, "list ledger lines")
}
