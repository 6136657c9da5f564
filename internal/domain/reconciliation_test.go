package domain

import "testing"

func TestComputeDiscrepancy(t *testing.T) {
	tests := []struct {
		name     string
		actual   Balance
		expected Balance
		want     string
	}{
		{
			name:     "shortfall is negative",
			actual:   Balance{Register: dec("225"), Deposit: dec("550")},
			expected: Balance{Register: dec("230"), Deposit: dec("550")},
			want:     "-5",
		},
		{
			name:     "surplus is positive",
			actual:   Balance{Register: dec("240"), Deposit: dec("550")},
			expected: Balance{Register: dec("230"), Deposit: dec("550")},
			want:     "10",
		},
		{
			name:     "balanced",
			actual:   Balance{Register: dec("230"), Deposit: dec("550")},
			expected: Balance{Register: dec("230"), Deposit: dec("550")},
			want:     "0",
		},
		{
			name: "offsetting pool errors still balance in total",
			// The discrepancy compares totals; a miscount shifted between
			// pools cancels out. That is the recorded figure by design.
			actual:   Balance{Register: dec("220"), Deposit: dec("560")},
			expected: Balance{Register: dec("230"), Deposit: dec("550")},
			want:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDiscrepancy(tt.actual, tt.expected)

			if !got.Equal(dec(tt.want)) {
				t.Errorf("discrepancy = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCashReconciliation_Validate(t *testing.T) {
	rec := &CashReconciliation{
		RegisterActual: dec("100"),
		DepositActual:  dec("0"),
		Date:           day(10),
	}

	if err := rec.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	rec.DepositActual = dec("-1")
	if err := rec.Validate(); err != ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}

	rec = &CashReconciliation{RegisterActual: dec("1"), DepositActual: dec("1")}
	if err := rec.Validate(); err != ErrMissingDate {
		t.Errorf("expected ErrMissingDate, got %v", err)
	}
}

func TestCashReconciliation_Balanced(t *testing.T) {
	rec := &CashReconciliation{Discrepancy: dec("0")}
	if !rec.Balanced() {
		t.Error("zero discrepancy should report balanced")
	}

	rec.Discrepancy = dec("-5")
	if rec.Balanced() {
		t.Error("nonzero discrepancy should not report balanced")
	}
}
