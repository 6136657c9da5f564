package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// EntryFilter narrows entry queries. Dates are inclusive calendar dates.
// A Limit of zero or less means no limit; balance folds need every row.
type EntryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	CreatedBy string
	Limit     int
	Offset    int
}

// EntryRepository defines data access for cash entries. List returns rows
// ordered by (date, seq) ascending; Create fills Seq from the store's
// shared event sequence.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.CashEntry) error
	GetByID(ctx context.Context, id string) (*domain.CashEntry, error)
	Update(ctx context.Context, entry *domain.CashEntry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EntryFilter) ([]*domain.CashEntry, error)
}

// ExpenseFilter narrows expense queries.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// ExpenseRepository defines data access for expenses. Ordering and Seq
// behave as for entries, drawn from the same sequence.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ExpenseFilter) ([]*domain.Expense, error)
}

// ReconciliationRepository defines data access for reconciliation
// snapshots. Rows are immutable once created; List returns most recent
// first (by date, then creation).
type ReconciliationRepository interface {
	Create(ctx context.Context, rec *domain.CashReconciliation) error
	List(ctx context.Context, limit, offset int) ([]*domain.CashReconciliation, error)
	Latest(ctx context.Context) (*domain.CashReconciliation, error)
}

// SettingsRepository loads and saves the single settings aggregate.
// Load returns the defaults when nothing has been saved yet.
type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// FlowStore holds in-progress POS flow sessions.
type FlowStore interface {
	Save(ctx context.Context, flow *domain.POSFlow) error
	Get(ctx context.Context, id string) (*domain.POSFlow, error)
	Delete(ctx context.Context, id string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// PaymentRecord is the payload handed to the external payment system.
// RealmID is the company realm from settings; when empty the syncer falls
// back to its configured default.
type PaymentRecord struct {
	RealmID     string
	InvoiceRef  string
	CustomerRef string
	MethodRef   string
	Amount      decimal.Decimal
}

// PaymentSyncer records a payment in an external system (QuickBooks).
// Implementations are best-effort: a returned error never unwinds the
// local write, it only degrades the response to a warning.
type PaymentSyncer interface {
	RecordPayment(ctx context.Context, record PaymentRecord) error
}

// MetricsRecorder publishes operation counters. Methods must be safe for
// concurrent use; constructors substitute a no-op for a nil recorder.
type MetricsRecorder interface {
	EntryCreated(entryType string)
	EntryDeleted()
	CashInRecorded(amount decimal.Decimal)
	ExpenseCreated()
	ExpenseReimbursed()
	ReconciliationRecorded(balanced bool, discrepancy decimal.Decimal)
	FlowStarted()
	FlowFinished(outcome string)
	PaymentSyncAttempted(result string)
	AuditLogged(action, status string)
}

// ReceiptStore stores a receipt blob and returns a reference path. The
// blob itself is owned by the external storage collaborator.
type ReceiptStore interface {
	Store(ctx context.Context, name string, blob []byte) (string, error)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
