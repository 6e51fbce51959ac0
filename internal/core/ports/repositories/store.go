package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ListOptions is honored by every listing and report path.
type ListOptions struct {
	// IncludeDeleted returns soft-deleted records alongside live ones.
	IncludeDeleted bool
}

// LifecycleWriter flips the soft-delete flag of any soft-deletable entity kind.
type LifecycleWriter interface {
	// SetDeleted marks the entity deleted (deleted=true) or restores it. Returns ErrNotFound
	// when no entity of that kind and id exists in the company.
	SetDeleted(ctx context.Context, kind domain.EntityKind, companyID, entityID string, deleted bool, actorID string, at time.Time) error
}

// ReadRepositories groups every read operation. Implementations read the last committed state.
type ReadRepositories interface {
	CompanyReader
	AccountReader
	FiscalYearReader
	CurrencyReader
	ExchangeRateReader
	VoucherReader
	LedgerReader
	InventoryReader
	ProductReader
	CustomerReader
	ApprovalReader
	AuditReader
}

// Repositories is the transactional view handed to WithinTx callbacks.
type Repositories interface {
	ReadRepositories
	CompanyWriter
	AccountWriter
	FiscalYearWriter
	CurrencyWriter
	ExchangeRateWriter
	VoucherWriter
	InventoryWriter
	ProductWriter
	CustomerWriter
	ApprovalWriter
	AuditWriter
	LifecycleWriter
}

// Store is the persistence boundary of the ledger.
type Store interface {
	// Reader returns repositories over the last committed state. Reads never block writers.
	Reader() ReadRepositories

	// ReadSnapshot runs fn over one consistent committed snapshot, so every read inside fn
	// observes the same state even while writers commit.
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context, repos ReadRepositories) error) error

	// WithinTx runs fn in a single transaction scoped to companyID. The transaction commits
	// when fn returns nil and rolls back otherwise; no partial writes are ever visible.
	WithinTx(ctx context.Context, companyID string, fn func(ctx context.Context, repos Repositories) error) error

	// Close releases resources held by the store.
	Close()
}
