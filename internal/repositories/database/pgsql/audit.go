package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const auditColumns = `sequence, audit_log_id, company_id, actor_id, action, entity_kind, entity_id, details, created_at`

func scanAuditLog(row pgx.Row) (domain.AuditLog, error) {
	var m models.AuditLog
	err := row.Scan(&m.Sequence, &m.AuditLogID, &m.CompanyID, &m.ActorID, &m.Action, &m.EntityKind,
		&m.EntityID, &m.Details, &m.CreatedAt)
	return mapping.ToDomainAuditLog(m), err
}

// ListAuditLogs returns entries newest first.
func (r *repos) ListAuditLogs(ctx context.Context, companyID string, filter repositories.AuditFilter) ([]domain.AuditLog, error) {
	w := &whereBuilder{}
	w.add("company_id = $%d", companyID)
	if filter.BeforeSequence > 0 {
		w.add("sequence < $%d", filter.BeforeSequence)
	}
	if filter.EntityKind != "" {
		w.add("entity_kind = $%d", string(filter.EntityKind))
	}
	if filter.EntityID != "" {
		w.add("entity_id = $%d", filter.EntityID)
	}
	query := `SELECT ` + auditColumns + ` FROM audit_logs` + w.String() + ` ORDER BY sequence DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ` + w.next(filter.Limit)
	}
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, translate(err, "list audit logs")
	}
	logs, err := collect(rows, scanAuditLog)
	return logs, translate(err, "list audit logs")
}

// AppendAuditLog inserts one entry; the sequence is assigned by the database.
func (r *repos) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)
	_, err := r.q.Exec(ctx, `
		INSERT INTO audit_logs (audit_log_id, company_id, actor_id, action, entity_kind, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.AuditLogID, m.CompanyID, m.ActorID, m.Action, m.EntityKind, m.EntityID, m.Details, m.CreatedAt)
	return translate(err, "append audit log")
}
