package usecase

import (
	"context"
	"time"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// balancer computes pool balances by folding every entry and expense over
// the opening balances from settings. Shared by the ledger, summary and
// reconciliation use cases.
type balancer struct {
	entryRepo    EntryRepository
	expenseRepo  ExpenseRepository
	settingsRepo SettingsRepository
}

// balanceAsOf returns the pool balances at the end of the given calendar
// date (inclusive).
func (b balancer) balanceAsOf(ctx context.Context, end time.Time) (domain.Balance, error) {
	endDate := domain.DateOf(end)

	settings, err := b.settingsRepo.Load(ctx)
	if err != nil {
		return domain.Balance{}, err
	}

	entries, err := b.entryRepo.List(ctx, EntryFilter{EndDate: &endDate})
	if err != nil {
		return domain.Balance{}, err
	}

	expenses, err := b.expenseRepo.List(ctx, ExpenseFilter{EndDate: &endDate})
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.FoldBalance(settings.OpeningBalance(), entries, expenses), nil
}

// balanceBefore returns the pool balances at the start of the given
// calendar date, i.e. the close of the previous day.
func (b balancer) balanceBefore(ctx context.Context, start time.Time) (domain.Balance, error) {
	return b.balanceAsOf(ctx, domain.DateOf(start).AddDate(0, 0, -1))
}
