package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
	"github.com/smallbatch-apps/cashfloat/internal/usecase/mocks"
)

func TestSettingsUseCase_GetSettings_Defaults(t *testing.T) {
	uc := usecase.NewSettingsUseCase(mocks.NewMockSettingsRepository(), mocks.NewMockAuditRepository(), mocks.NewMockIDGenerator(), nil)

	settings, err := uc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !settings.TaxRate.IsZero() {
		t.Errorf("default tax rate = %s, want 0", settings.TaxRate)
	}
	if !settings.OpeningRegister.IsZero() || !settings.OpeningDeposit.IsZero() {
		t.Error("default opening balances must be zero")
	}
}

func TestSettingsUseCase_SaveSettings(t *testing.T) {
	t.Run("admin can save and reload", func(t *testing.T) {
		uc := usecase.NewSettingsUseCase(mocks.NewMockSettingsRepository(), mocks.NewMockAuditRepository(), mocks.NewMockIDGenerator(), nil)

		in := domain.DefaultSettings()
		in.TaxRate = decimal.NewFromFloat(0.15)
		in.SalesPeople = []string{"Pat", "Sam"}
		in.OpeningRegister = decimal.NewFromInt(200)
		in.OpeningDeposit = decimal.NewFromInt(500)

		saved, err := uc.SaveSettings(adminContext(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.UpdatedAt.IsZero() {
			t.Error("expected UpdatedAt to be set")
		}

		loaded, err := uc.GetSettings(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !loaded.TaxRate.Equal(in.TaxRate) {
			t.Errorf("tax rate = %s, want 0.15", loaded.TaxRate)
		}
		if len(loaded.SalesPeople) != 2 {
			t.Errorf("sales people = %v, want 2 names", loaded.SalesPeople)
		}
		if loaded.OpeningRegister.String() != "200" {
			t.Errorf("opening register = %s, want 200", loaded.OpeningRegister)
		}
	})

	t.Run("employee cannot save", func(t *testing.T) {
		uc := usecase.NewSettingsUseCase(mocks.NewMockSettingsRepository(), mocks.NewMockAuditRepository(), mocks.NewMockIDGenerator(), nil)

		_, err := uc.SaveSettings(employeeContext(), domain.DefaultSettings())
		if !errors.Is(err, domain.ErrInsufficientRole) {
			t.Fatalf("expected ErrInsufficientRole, got %v", err)
		}
	})

	t.Run("negative opening balance rejected", func(t *testing.T) {
		uc := usecase.NewSettingsUseCase(mocks.NewMockSettingsRepository(), mocks.NewMockAuditRepository(), mocks.NewMockIDGenerator(), nil)

		in := domain.DefaultSettings()
		in.OpeningRegister = decimal.NewFromInt(-1)

		_, err := uc.SaveSettings(adminContext(), in)
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
