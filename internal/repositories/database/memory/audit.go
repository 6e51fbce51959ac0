package memory

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

func (r *reader) ListAuditLogs(ctx context.Context, companyID string, filter repositories.AuditFilter) ([]domain.AuditLog, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	out := []domain.AuditLog{}
	for i := len(r.st.audit) - 1; i >= 0; i-- {
		e := r.st.audit[i]
		if e.CompanyID != companyID {
			continue
		}
		if filter.BeforeSequence > 0 && e.Sequence >= filter.BeforeSequence {
			continue
		}
		if filter.EntityKind != "" && e.EntityKind != filter.EntityKind {
			continue
		}
		if filter.EntityID != "" && e.EntityID != filter.EntityID {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (w *writer) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	if err := alive(ctx); err != nil {
		return err
	}
	entry.Sequence = w.st.nextSeq()
	w.st.audit = append(w.st.audit, entry)
	return nil
}
