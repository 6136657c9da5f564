package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// LedgerUseCase produces the running-balance ledger view.
type LedgerUseCase struct {
	entryRepo   EntryRepository
	expenseRepo ExpenseRepository
	reconRepo   ReconciliationRepository
	balancer    balancer
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	entryRepo EntryRepository,
	expenseRepo ExpenseRepository,
	reconRepo ReconciliationRepository,
	settingsRepo SettingsRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		entryRepo:   entryRepo,
		expenseRepo: expenseRepo,
		reconRepo:   reconRepo,
		balancer: balancer{
			entryRepo:    entryRepo,
			expenseRepo:  expenseRepo,
			settingsRepo: settingsRepo,
		},
	}
}

// GetLedgerInput represents input for the ledger view. Nil dates default
// to the current week (Monday through today).
type GetLedgerInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Ledger is the running-balance view over a date range. Starting balances
// are the pool balances at the close of the day before StartDate. Rows
// dated on or before LastReconciliationDate describe a period already
// audited; clients render them locked.
type Ledger struct {
	StartDate              time.Time
	EndDate                time.Time
	LastReconciliationDate *time.Time
	Rows                   []domain.LedgerRow
	StartingRegister       decimal.Decimal
	StartingDeposit        decimal.Decimal
}

// GetLedger builds the ledger for a date range.
func (uc *LedgerUseCase) GetLedger(ctx context.Context, input GetLedgerInput) (*Ledger, error) {
	if err := domain.ValidateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	start := domain.StartOfWeek(now)
	if input.StartDate != nil {
		start = domain.DateOf(*input.StartDate)
	}

	end := domain.DateOf(now)
	if input.EndDate != nil {
		end = domain.DateOf(*input.EndDate)
	}

	opening, err := uc.balancer.balanceBefore(ctx, start)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.List(ctx, EntryFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.List(ctx, ExpenseFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, err
	}

	ledger := &Ledger{
		StartDate:        start,
		EndDate:          end,
		StartingRegister: opening.Register,
		StartingDeposit:  opening.Deposit,
		Rows:             domain.BuildLedger(opening, entries, expenses),
	}

	latest, err := uc.reconRepo.Latest(ctx)
	switch {
	case err == nil:
		date := latest.Date
		ledger.LastReconciliationDate = &date
	case errors.Is(err, domain.ErrReconciliationNotFound):
	default:
		return nil, err
	}

	return ledger, nil
}
