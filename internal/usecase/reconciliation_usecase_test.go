package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
	"github.com/smallbatch-apps/cashfloat/internal/usecase/mocks"
)

func newReconUC(t *testing.T, reconRepo *mocks.MockReconciliationRepository) *usecase.ReconciliationUseCase {
	t.Helper()

	entryRepo, expenseRepo, settingsRepo := seedWeek(t)

	return usecase.NewReconciliationUseCase(
		reconRepo, entryRepo, expenseRepo, settingsRepo,
		mocks.NewMockAuditRepository(), mocks.NewMockIDGenerator(), nil,
	)
}

func TestReconciliationUseCase_Reconcile(t *testing.T) {
	wednesday := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		input           usecase.ReconcileInput
		wantDiscrepancy string
		balanced        bool
	}{
		{
			// books as of Wednesday: register 233, deposit 620
			name: "exact count balances",
			input: usecase.ReconcileInput{
				Date:           &wednesday,
				RegisterActual: decimal.NewFromInt(233),
				DepositActual:  decimal.NewFromInt(620),
			},
			wantDiscrepancy: "0",
			balanced:        true,
		},
		{
			name: "shortfall is negative",
			input: usecase.ReconcileInput{
				Date:           &wednesday,
				RegisterActual: decimal.NewFromInt(228),
				DepositActual:  decimal.NewFromInt(620),
			},
			wantDiscrepancy: "-5",
		},
		{
			name: "surplus is positive",
			input: usecase.ReconcileInput{
				Date:           &wednesday,
				RegisterActual: decimal.NewFromInt(235),
				DepositActual:  decimal.NewFromInt(620),
			},
			wantDiscrepancy: "2",
		},
		{
			name: "offsetting pool errors balance the total",
			input: usecase.ReconcileInput{
				Date:           &wednesday,
				RegisterActual: decimal.NewFromInt(243),
				DepositActual:  decimal.NewFromInt(610),
			},
			wantDiscrepancy: "0",
			balanced:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconRepo := mocks.NewMockReconciliationRepository()
			uc := newReconUC(t, reconRepo)

			rec, err := uc.Reconcile(adminContext(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rec.Discrepancy.String() != tt.wantDiscrepancy {
				t.Errorf("discrepancy = %s, want %s", rec.Discrepancy, tt.wantDiscrepancy)
			}
			if rec.Balanced() != tt.balanced {
				t.Errorf("balanced = %v, want %v", rec.Balanced(), tt.balanced)
			}
			if rec.RegisterExpected.String() != "233" {
				t.Errorf("expected register = %s, want 233", rec.RegisterExpected)
			}
			if rec.DepositExpected.String() != "620" {
				t.Errorf("expected deposit = %s, want 620", rec.DepositExpected)
			}
			if rec.CreatedBy != "admin-1" {
				t.Errorf("createdBy = %s, want admin-1", rec.CreatedBy)
			}

			latest, err := reconRepo.Latest(context.Background())
			if err != nil {
				t.Fatalf("snapshot not persisted: %v", err)
			}
			if latest.ID != rec.ID {
				t.Error("persisted snapshot mismatch")
			}
		})
	}
}

func TestReconciliationUseCase_Reconcile_RoleChecks(t *testing.T) {
	input := usecase.ReconcileInput{
		RegisterActual: decimal.NewFromInt(100),
		DepositActual:  decimal.NewFromInt(100),
	}

	t.Run("employee cannot reconcile", func(t *testing.T) {
		uc := newReconUC(t, mocks.NewMockReconciliationRepository())
		if _, err := uc.Reconcile(employeeContext(), input); !errors.Is(err, domain.ErrInsufficientRole) {
			t.Fatalf("expected ErrInsufficientRole, got %v", err)
		}
	})

	t.Run("anonymous cannot reconcile", func(t *testing.T) {
		uc := newReconUC(t, mocks.NewMockReconciliationRepository())
		if _, err := uc.Reconcile(context.Background(), input); !errors.Is(err, domain.ErrInsufficientRole) {
			t.Fatalf("expected ErrInsufficientRole, got %v", err)
		}
	})
}

func TestReconciliationUseCase_Reconcile_NegativeCount(t *testing.T) {
	uc := newReconUC(t, mocks.NewMockReconciliationRepository())

	_, err := uc.Reconcile(adminContext(), usecase.ReconcileInput{
		RegisterActual: decimal.NewFromInt(-10),
		DepositActual:  decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestReconciliationUseCase_ListReconciliations(t *testing.T) {
	reconRepo := mocks.NewMockReconciliationRepository()
	uc := newReconUC(t, reconRepo)

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	wednesday := monday.AddDate(0, 0, 2)

	for _, in := range []usecase.ReconcileInput{
		{Date: &monday, RegisterActual: decimal.NewFromInt(200), DepositActual: decimal.NewFromInt(500)},
		{Date: &wednesday, RegisterActual: decimal.NewFromInt(233), DepositActual: decimal.NewFromInt(620)},
	} {
		if _, err := uc.Reconcile(adminContext(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	recs, err := uc.ListReconciliations(context.Background(), usecase.ListReconciliationsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(recs))
	}
	if !recs[0].Date.Equal(wednesday) {
		t.Error("expected most recent snapshot first")
	}
}

func TestReconciliationUseCase_Metrics(t *testing.T) {
	wednesday := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	recorder := mocks.NewMockMetricsRecorder()
	entryRepo, expenseRepo, settingsRepo := seedWeek(t)
	uc := usecase.NewReconciliationUseCase(
		mocks.NewMockReconciliationRepository(), entryRepo, expenseRepo, settingsRepo,
		mocks.NewMockAuditRepository(), mocks.NewMockIDGenerator(), recorder,
	)

	// Books as of Wednesday: register 233, deposit 620.
	if _, err := uc.Reconcile(adminContext(), usecase.ReconcileInput{
		Date:           &wednesday,
		RegisterActual: decimal.NewFromInt(233),
		DepositActual:  decimal.NewFromInt(620),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.Reconcile(adminContext(), usecase.ReconcileInput{
		Date:           &wednesday,
		RegisterActual: decimal.NewFromInt(228),
		DepositActual:  decimal.NewFromInt(620),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := recorder.Count("reconciliation:balanced"); got != 1 {
		t.Errorf("balanced counts = %d, want 1", got)
	}
	if got := recorder.Count("reconciliation:discrepancy"); got != 1 {
		t.Errorf("discrepancy counts = %d, want 1", got)
	}
}
