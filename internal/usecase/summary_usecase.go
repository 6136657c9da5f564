package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// SummaryUseCase produces the dashboard summary.
type SummaryUseCase struct {
	entryRepo   EntryRepository
	expenseRepo ExpenseRepository
	reconRepo   ReconciliationRepository
	balancer    balancer
}

// NewSummaryUseCase creates a new SummaryUseCase.
func NewSummaryUseCase(
	entryRepo EntryRepository,
	expenseRepo ExpenseRepository,
	reconRepo ReconciliationRepository,
	settingsRepo SettingsRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
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

// GetSummaryInput represents input for the summary. At defaults to now;
// it exists so "today" is pinnable.
type GetSummaryInput struct {
	At *time.Time
}

// Summary is the dashboard view: current pool balances, today's takings
// and spend, and the balances the week opened with.
type Summary struct {
	Date                   time.Time
	WeekStart              time.Time
	LastReconciliationDate *time.Time
	Register               decimal.Decimal
	Deposit                decimal.Decimal
	Total                  decimal.Decimal
	TodayCashIn            decimal.Decimal
	TodayCashOut           decimal.Decimal
	TodayExpenses          decimal.Decimal
	WeekStartRegister      decimal.Decimal
	WeekStartDeposit       decimal.Decimal
	LastDiscrepancy        decimal.Decimal
}

// GetSummary builds the dashboard summary as of a point in time.
//
// Today's cash-in is the tendered amount, gross of change handed back;
// transfers between the two pools are excluded from both daily figures
// since they move no money in or out of the business. Today's expenses
// include out-of-pocket spend even though it never touches a pool.
func (uc *SummaryUseCase) GetSummary(ctx context.Context, input GetSummaryInput) (*Summary, error) {
	now := time.Now().UTC()
	if input.At != nil {
		now = input.At.UTC()
	}

	today := domain.DateOf(now)

	current, err := uc.balancer.balanceAsOf(ctx, today)
	if err != nil {
		return nil, err
	}

	weekStart := domain.StartOfWeek(now)

	weekOpening, err := uc.balancer.balanceBefore(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.List(ctx, EntryFilter{StartDate: &today, EndDate: &today})
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.List(ctx, ExpenseFilter{StartDate: &today, EndDate: &today})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Date:              today,
		WeekStart:         weekStart,
		Register:          current.Register,
		Deposit:           current.Deposit,
		Total:             current.Total(),
		TodayCashIn:       decimal.Zero,
		TodayCashOut:      decimal.Zero,
		TodayExpenses:     decimal.Zero,
		WeekStartRegister: weekOpening.Register,
		WeekStartDeposit:  weekOpening.Deposit,
	}

	for _, e := range entries {
		switch e.Type {
		case domain.EntryCashIn:
			summary.TodayCashIn = summary.TodayCashIn.Add(e.Amount)
		case domain.EntryCashOut:
			summary.TodayCashOut = summary.TodayCashOut.Add(e.Amount)
		}
	}

	for _, x := range expenses {
		summary.TodayExpenses = summary.TodayExpenses.Add(x.Amount)
	}

	latest, err := uc.reconRepo.Latest(ctx)
	switch {
	case err == nil:
		date := latest.Date
		summary.LastReconciliationDate = &date
		summary.LastDiscrepancy = latest.Discrepancy
	case errors.Is(err, domain.ErrReconciliationNotFound):
	default:
		return nil, err
	}

	return summary, nil
}
