package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
	"github.com/smallbatch-apps/cashfloat/internal/usecase/mocks"
)

// Wednesday 2026-03-11; the week opened on Monday 2026-03-09.
var summaryNow = time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC)

func seedWeek(t *testing.T) (*mocks.MockEntryRepository, *mocks.MockExpenseRepository, *mocks.MockSettingsRepository) {
	t.Helper()

	ctx := context.Background()
	entryRepo := mocks.NewMockEntryRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	settingsRepo := mocks.NewMockSettingsRepository()

	settings := domain.DefaultSettings()
	settings.OpeningRegister = decimal.NewFromInt(200)
	settings.OpeningDeposit = decimal.NewFromInt(500)
	if err := settingsRepo.Save(ctx, settings); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	wednesday := monday.AddDate(0, 0, 2)

	entries := []*domain.CashEntry{
		{
			ID: "e1", Type: domain.EntryCashIn, Source: domain.SourceRegister,
			Amount:         decimal.NewFromInt(100),
			RegisterAmount: decimal.NewFromInt(80),
			DepositAmount:  decimal.NewFromInt(20),
			ChangeGiven:    decimal.Zero,
			Date:           monday,
		},
		{
			ID: "e2", Type: domain.EntryDeposit, Source: domain.SourceRegister,
			Amount:         decimal.NewFromInt(50),
			RegisterAmount: decimal.NewFromInt(50),
			DepositAmount:  decimal.NewFromInt(50),
			Date:           tuesday,
		},
		{
			ID: "e3", Type: domain.EntryCashIn, Source: domain.SourceRegister,
			Amount:         decimal.NewFromInt(100),
			RegisterAmount: decimal.NewFromInt(30),
			DepositAmount:  decimal.NewFromInt(50),
			ChangeGiven:    decimal.NewFromInt(20),
			CustomerName:   "Acme",
			Date:           wednesday,
		},
		{
			ID: "e4", Type: domain.EntryCashOut, Source: domain.SourceRegister,
			Amount:         decimal.NewFromInt(15),
			RegisterAmount: decimal.NewFromInt(15),
			Category:       "Postage",
			Date:           wednesday,
		},
	}
	for _, e := range entries {
		if err := entryRepo.Create(ctx, e); err != nil {
			t.Fatalf("seed entry %s: %v", e.ID, err)
		}
	}

	expenses := []*domain.Expense{
		{
			ID: "x1", Description: "printer paper", Category: "Office",
			Source: domain.SourceRegister,
			Amount: decimal.NewFromInt(12),
			Date:   wednesday,
		},
		{
			ID: "x2", Description: "fuel", Category: "Travel",
			Source: domain.SourceRegister, OutOfPocket: true,
			Amount: decimal.NewFromInt(40),
			Date:   wednesday,
		},
	}
	for _, x := range expenses {
		if err := expenseRepo.Create(ctx, x); err != nil {
			t.Fatalf("seed expense %s: %v", x.ID, err)
		}
	}

	return entryRepo, expenseRepo, settingsRepo
}

func TestSummaryUseCase_GetSummary(t *testing.T) {
	entryRepo, expenseRepo, settingsRepo := seedWeek(t)
	reconRepo := mocks.NewMockReconciliationRepository()

	uc := usecase.NewSummaryUseCase(entryRepo, expenseRepo, reconRepo, settingsRepo)

	at := summaryNow
	summary, err := uc.GetSummary(context.Background(), usecase.GetSummaryInput{At: &at})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 200 + 80 - 50 + 30 - 15 - 12, out-of-pocket excluded
	if summary.Register.String() != "233" {
		t.Errorf("register = %s, want 233", summary.Register)
	}
	// 500 + 20 + 50 + 50
	if summary.Deposit.String() != "620" {
		t.Errorf("deposit = %s, want 620", summary.Deposit)
	}
	if summary.Total.String() != "853" {
		t.Errorf("total = %s, want 853", summary.Total)
	}

	// today's takings are the tendered amount, gross of the 20 change
	// handed back; the transfer is not a taking
	if summary.TodayCashIn.String() != "100" {
		t.Errorf("today cash in = %s, want 100", summary.TodayCashIn)
	}
	if summary.TodayCashOut.String() != "15" {
		t.Errorf("today cash out = %s, want 15", summary.TodayCashOut)
	}
	// spend report includes out-of-pocket
	if summary.TodayExpenses.String() != "52" {
		t.Errorf("today expenses = %s, want 52", summary.TodayExpenses)
	}

	// nothing predates Monday, so the week opened on the opening balances
	if summary.WeekStartRegister.String() != "200" {
		t.Errorf("week start register = %s, want 200", summary.WeekStartRegister)
	}
	if summary.WeekStartDeposit.String() != "500" {
		t.Errorf("week start deposit = %s, want 500", summary.WeekStartDeposit)
	}
	if !summary.WeekStart.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week start = %s, want Monday", summary.WeekStart)
	}

	if summary.LastReconciliationDate != nil {
		t.Error("expected no reconciliation date")
	}
}

func TestSummaryUseCase_GetSummary_WithReconciliation(t *testing.T) {
	entryRepo, expenseRepo, settingsRepo := seedWeek(t)
	reconRepo := mocks.NewMockReconciliationRepository()

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	err := reconRepo.Create(context.Background(), &domain.CashReconciliation{
		ID:          "r1",
		Date:        monday,
		Discrepancy: decimal.NewFromInt(-5),
		CreatedAt:   monday,
	})
	if err != nil {
		t.Fatalf("seed reconciliation: %v", err)
	}

	uc := usecase.NewSummaryUseCase(entryRepo, expenseRepo, reconRepo, settingsRepo)

	at := summaryNow
	summary, err := uc.GetSummary(context.Background(), usecase.GetSummaryInput{At: &at})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.LastReconciliationDate == nil || !summary.LastReconciliationDate.Equal(monday) {
		t.Errorf("last reconciliation = %v, want %s", summary.LastReconciliationDate, monday)
	}
	if summary.LastDiscrepancy.String() != "-5" {
		t.Errorf("last discrepancy = %s, want -5", summary.LastDiscrepancy)
	}
}
