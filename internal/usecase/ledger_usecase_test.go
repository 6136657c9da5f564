package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
	"github.com/smallbatch-apps/cashfloat/internal/usecase/mocks"
)

func TestLedgerUseCase_GetLedger(t *testing.T) {
	entryRepo, expenseRepo, settingsRepo := seedWeek(t)
	reconRepo := mocks.NewMockReconciliationRepository()

	uc := usecase.NewLedgerUseCase(entryRepo, expenseRepo, reconRepo, settingsRepo)

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	wednesday := monday.AddDate(0, 0, 2)

	ledger, err := uc.GetLedger(context.Background(), usecase.GetLedgerInput{
		StartDate: &monday,
		EndDate:   &wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ledger.StartingRegister.String() != "200" {
		t.Errorf("starting register = %s, want 200", ledger.StartingRegister)
	}
	if ledger.StartingDeposit.String() != "500" {
		t.Errorf("starting deposit = %s, want 500", ledger.StartingDeposit)
	}

	// 4 entries + 2 expenses
	if len(ledger.Rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(ledger.Rows))
	}

	last := ledger.Rows[len(ledger.Rows)-1]
	if last.RegisterBalance.String() != "233" {
		t.Errorf("closing register = %s, want 233", last.RegisterBalance)
	}
	if last.DepositBalance.String() != "620" {
		t.Errorf("closing deposit = %s, want 620", last.DepositBalance)
	}

	for i := 1; i < len(ledger.Rows); i++ {
		prev, cur := ledger.Rows[i-1], ledger.Rows[i]
		if cur.Date.Before(prev.Date) {
			t.Fatalf("rows out of date order at %d", i)
		}
		if cur.Date.Equal(prev.Date) && cur.Seq < prev.Seq {
			t.Fatalf("rows out of seq order at %d", i)
		}
	}

	if ledger.LastReconciliationDate != nil {
		t.Error("expected no reconciliation date")
	}
}

func TestLedgerUseCase_GetLedger_MidWeekStart(t *testing.T) {
	entryRepo, expenseRepo, settingsRepo := seedWeek(t)
	reconRepo := mocks.NewMockReconciliationRepository()

	uc := usecase.NewLedgerUseCase(entryRepo, expenseRepo, reconRepo, settingsRepo)

	wednesday := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	ledger, err := uc.GetLedger(context.Background(), usecase.GetLedgerInput{
		StartDate: &wednesday,
		EndDate:   &wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Monday and Tuesday are folded into the starting balances:
	// 200 + 80 - 50 and 500 + 20 + 50
	if ledger.StartingRegister.String() != "230" {
		t.Errorf("starting register = %s, want 230", ledger.StartingRegister)
	}
	if ledger.StartingDeposit.String() != "570" {
		t.Errorf("starting deposit = %s, want 570", ledger.StartingDeposit)
	}

	// Wednesday has 2 entries and 2 expenses
	if len(ledger.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(ledger.Rows))
	}
}

func TestLedgerUseCase_GetLedger_ReconciliationDate(t *testing.T) {
	entryRepo, expenseRepo, settingsRepo := seedWeek(t)
	reconRepo := mocks.NewMockReconciliationRepository()

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	err := reconRepo.Create(context.Background(), &domain.CashReconciliation{
		ID:        "r1",
		Date:      monday,
		CreatedAt: monday,
	})
	if err != nil {
		t.Fatalf("seed reconciliation: %v", err)
	}

	uc := usecase.NewLedgerUseCase(entryRepo, expenseRepo, reconRepo, settingsRepo)

	wednesday := monday.AddDate(0, 0, 2)
	ledger, err := uc.GetLedger(context.Background(), usecase.GetLedgerInput{
		StartDate: &monday,
		EndDate:   &wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ledger.LastReconciliationDate == nil || !ledger.LastReconciliationDate.Equal(monday) {
		t.Errorf("last reconciliation = %v, want %s", ledger.LastReconciliationDate, monday)
	}
}

func TestLedgerUseCase_GetLedger_InvalidRange(t *testing.T) {
	uc := usecase.NewLedgerUseCase(
		mocks.NewMockEntryRepository(),
		mocks.NewMockExpenseRepository(),
		mocks.NewMockReconciliationRepository(),
		mocks.NewMockSettingsRepository(),
	)

	start := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -3)

	_, err := uc.GetLedger(context.Background(), usecase.GetLedgerInput{
		StartDate: &start,
		EndDate:   &end,
	})
	if err == nil {
		t.Fatal("expected error for inverted range")
	}

	var empty usecase.GetLedgerInput
	if _, err := uc.GetLedger(context.Background(), empty); err != nil {
		t.Fatalf("defaulted range must work: %v", err)
	}
}
