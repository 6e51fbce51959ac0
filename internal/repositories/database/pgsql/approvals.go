package pgsql

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/models"
	"github.com/SscSPs/erp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const approvalColumns = `approval_id, company_id, entity_kind, entity_id, level, status, requested_by, requested_at,
	decided_by, decided_at, notes`

func scanApproval(row pgx.Row) (domain.Approval, error) {
	var m models.Approval
	err := row.Scan(&m.ApprovalID, &m.CompanyID, &m.EntityKind, &m.EntityID, &m.Level, &m.Status,
		&m.RequestedBy, &m.RequestedAt, &m.DecidedBy, &m.DecidedAt, &m.Notes)
	return mapping.ToDomainApproval(m), err
}

func (r *repos) FindApprovalByID(ctx context.Context, companyID, approvalID string) (*domain.Approval, error) {
	a, err := scanApproval(r.q.QueryRow(ctx,
		`SELECT `+approvalColumns+` FROM approvals WHERE company_id = $1 AND approval_id = $2`, companyID, approvalID))
	if err != nil {
		return nil, translate(err, "find approval")
	}
	return &a, nil
}

func (r *repos) ListApprovals(ctx context.Context, companyID string, filter repositories.ApprovalFilter) ([]domain.Approval, error) {
	w := &whereBuilder{}
	w.add("company_id = $%d", companyID)
	if filter.EntityKind != "" {
		w.add("entity_kind = $%d", string(filter.EntityKind))
	}
	if filter.EntityID != "" {
		w.add("entity_id = $%d", filter.EntityID)
	}
	if filter.Status != "" {
		w.add("status = $%d", string(filter.Status))
	}
	rows, err := r.q.Query(ctx, `SELECT `+approvalColumns+` FROM approvals`+w.String()+
		` ORDER BY entity_kind, entity_id, level`, w.args...)
	if err != nil {
		return nil, translate(err, "list approvals")
	}
	approvals, err := collect(rows, scanApproval)
	return approvals, translate(err, "list approvals")
}

func (r *repos) SaveApproval(ctx context.Context, approval domain.Approval) error {
	m := mapping.ToModelApproval(approval)
	_, err := r.q.Exec(ctx, `
		INSERT INTO approvals (approval_id, company_id, entity_kind, entity_id, level, status, requested_by, requested_at,
			decided_by, decided_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ApprovalID, m.CompanyID, m.EntityKind, m.EntityID, m.Level, m.Status, m.RequestedBy, m.RequestedAt,
		m.DecidedBy, m.DecidedAt, m.Notes)
	return translate(err, "save approval")
}

func (r *repos) UpdateApprovalDecision(ctx context.Context, approval domain.Approval) error {
	m := mapping.ToModelApproval(approval)
	tag, err := r.q.Exec(ctx, `
		UPDATE approvals
		SET status = $3, decided_by = $4, decided_at = $5, notes = $6
		WHERE company_id = $1 AND approval_id = $2`,
		m.CompanyID, m.ApprovalID, m.Status, m.DecidedBy, m.DecidedAt, m.Notes)
	return expectOne(tag, err, "update approval")
}
