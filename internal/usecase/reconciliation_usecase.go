package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// ReconciliationUseCase compares physical counts against the books and
// records the outcome as immutable snapshots.
type ReconciliationUseCase struct {
	reconRepo ReconciliationRepository
	auditRepo AuditRepository
	idGen     IDGenerator
	metrics   MetricsRecorder
	balancer  balancer
}

// NewReconciliationUseCase creates a new ReconciliationUseCase. metrics
// may be nil.
func NewReconciliationUseCase(
	reconRepo ReconciliationRepository,
	entryRepo EntryRepository,
	expenseRepo ExpenseRepository,
	settingsRepo SettingsRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	metrics MetricsRecorder,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		reconRepo: reconRepo,
		auditRepo: auditRepo,
		idGen:     idGen,
		metrics:   ensureMetrics(metrics),
		balancer: balancer{
			entryRepo:    entryRepo,
			expenseRepo:  expenseRepo,
			settingsRepo: settingsRepo,
		},
	}
}

// ReconcileInput represents a physical count of both pools as of a date.
type ReconcileInput struct {
	Date           *time.Time
	Notes          string
	RegisterActual decimal.Decimal
	DepositActual  decimal.Decimal
}

// Reconcile computes the expected balances as of the count date, compares
// them to the counted amounts and stores the snapshot. The snapshot is
// never recomputed: later edits to the underlying rows leave it standing
// as a record of what the books said at count time. Admin only.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, input ReconcileInput) (*domain.CashReconciliation, error) {
	user, ok := domain.UserFromContext(ctx)
	if !ok || !user.Role.CanReconcile() {
		return nil, domain.ErrInsufficientRole
	}

	now := time.Now().UTC()

	date := domain.DateOf(now)
	if input.Date != nil {
		date = domain.DateOf(*input.Date)
	}

	expected, err := uc.balancer.balanceAsOf(ctx, date)
	if err != nil {
		return nil, err
	}

	actual := domain.Balance{Register: input.RegisterActual, Deposit: input.DepositActual}

	rec := &domain.CashReconciliation{
		ID:               uc.idGen.Generate(),
		Date:             date,
		Notes:            input.Notes,
		RegisterActual:   input.RegisterActual,
		DepositActual:    input.DepositActual,
		RegisterExpected: expected.Register,
		DepositExpected:  expected.Deposit,
		Discrepancy:      domain.ComputeDiscrepancy(actual, expected),
		CreatedBy:        user.ID,
		CreatedAt:        now,
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	if err := uc.reconRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	writeAudit(ctx, uc.auditRepo, uc.idGen, uc.metrics, domain.AuditActionReconcile, "reconciliation", rec.ID, nil, rec)
	uc.metrics.ReconciliationRecorded(rec.Balanced(), rec.Discrepancy)

	return rec, nil
}

// ListReconciliationsInput represents input for listing reconciliations.
type ListReconciliationsInput struct {
	Limit  int
	Offset int
}

// ListReconciliations lists snapshots, most recent first.
func (uc *ReconciliationUseCase) ListReconciliations(ctx context.Context, input ListReconciliationsInput) ([]*domain.CashReconciliation, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.reconRepo.List(ctx, limit, offset)
}

// LatestReconciliation returns the most recent snapshot.
func (uc *ReconciliationUseCase) LatestReconciliation(ctx context.Context) (*domain.CashReconciliation, error) {
	return uc.reconRepo.Latest(ctx)
}
