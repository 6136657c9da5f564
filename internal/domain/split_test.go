package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name         string
		paid         string
		invoiceTotal string
		toDeposit    string
		wantRegister string
		wantDeposit  string
		wantChange   string
		wantErr      error
	}{
		{
			name:         "change with nothing to deposit",
			paid:         "100.00",
			invoiceTotal: "80.00",
			toDeposit:    "0",
			wantRegister: "80.00",
			wantDeposit:  "0",
			wantChange:   "20.00",
		},
		{
			name:         "change and deposit portion",
			paid:         "100.00",
			invoiceTotal: "80.00",
			toDeposit:    "50.00",
			wantRegister: "30.00",
			wantDeposit:  "50.00",
			wantChange:   "20.00",
		},
		{
			name:         "exact payment",
			paid:         "45.50",
			invoiceTotal: "45.50",
			toDeposit:    "45.50",
			wantRegister: "0",
			wantDeposit:  "45.50",
			wantChange:   "0",
		},
		{
			name:         "partial payment clamps change at zero",
			paid:         "60.00",
			invoiceTotal: "80.00",
			toDeposit:    "0",
			wantRegister: "60.00",
			wantDeposit:  "0",
			wantChange:   "0",
		},
		{
			name:         "whole payment to deposit pays change from register reserve",
			paid:         "100.00",
			invoiceTotal: "80.00",
			toDeposit:    "100.00",
			wantRegister: "-20.00",
			wantDeposit:  "100.00",
			wantChange:   "20.00",
		},
		{
			name:         "zero invoice total treats everything beyond deposit as change",
			paid:         "50.00",
			invoiceTotal: "0",
			toDeposit:    "0",
			wantRegister: "0",
			wantDeposit:  "0",
			wantChange:   "50.00",
		},
		{
			name:         "reject non-positive paid",
			paid:         "0",
			invoiceTotal: "10.00",
			toDeposit:    "0",
			wantErr:      ErrInvalidAmount,
		},
		{
			name:         "reject negative deposit portion",
			paid:         "10.00",
			invoiceTotal: "10.00",
			toDeposit:    "-1.00",
			wantErr:      ErrInvalidAmount,
		},
		{
			name:         "reject deposit portion above paid",
			paid:         "10.00",
			invoiceTotal: "10.00",
			toDeposit:    "10.01",
			wantErr:      ErrInsufficientSplit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := ComputeSplit(SplitInput{
				Paid:         dec(tt.paid),
				InvoiceTotal: dec(tt.invoiceTotal),
				ToDeposit:    dec(tt.toDeposit),
				ChangeSource: SourceRegister,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !split.Register.Equal(dec(tt.wantRegister)) {
				t.Errorf("register = %s, want %s", split.Register, tt.wantRegister)
			}

			if !split.Deposit.Equal(dec(tt.wantDeposit)) {
				t.Errorf("deposit = %s, want %s", split.Deposit, tt.wantDeposit)
			}

			if !split.Change.Equal(dec(tt.wantChange)) {
				t.Errorf("change = %s, want %s", split.Change, tt.wantChange)
			}
		})
	}
}

func TestComputeSplit_Conservation(t *testing.T) {
	// register + toDeposit + change = paid must hold for every accepted
	// input, including partial payments and negative register deltas.
	cases := []struct {
		paid         string
		invoiceTotal string
		toDeposit    string
	}{
		{"100.00", "80.00", "0"},
		{"100.00", "80.00", "50.00"},
		{"100.00", "80.00", "100.00"},
		{"0.01", "0", "0"},
		{"33.33", "11.11", "22.22"},
		{"250.00", "300.00", "250.00"},
		{"19.99", "19.99", "10.00"},
	}

	for _, c := range cases {
		split, err := ComputeSplit(SplitInput{
			Paid:         dec(c.paid),
			InvoiceTotal: dec(c.invoiceTotal),
			ToDeposit:    dec(c.toDeposit),
			ChangeSource: SourceRegister,
		})
		if err != nil {
			t.Fatalf("ComputeSplit(%+v): %v", c, err)
		}

		sum := split.Register.Add(split.Deposit).Add(split.Change)
		if !sum.Equal(dec(c.paid)) {
			t.Errorf("paid=%s invoice=%s toDeposit=%s: register+deposit+change = %s, want %s",
				c.paid, c.invoiceTotal, c.toDeposit, sum, c.paid)
		}

		if split.Change.IsNegative() {
			t.Errorf("paid=%s invoice=%s: change %s is negative", c.paid, c.invoiceTotal, split.Change)
		}
	}
}

func TestSplit_Entry(t *testing.T) {
	in := SplitInput{
		Paid:         dec("100.00"),
		InvoiceTotal: dec("80.00"),
		ToDeposit:    dec("50.00"),
		ChangeSource: SourceDeposit,
	}

	split, err := ComputeSplit(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := split.Entry(in)
	entry.Date = DateOf(entryTestTime)

	if entry.Type != EntryCashIn {
		t.Errorf("type = %s, want %s", entry.Type, EntryCashIn)
	}

	if entry.Source != SourceDeposit {
		t.Errorf("source = %s, want %s", entry.Source, SourceDeposit)
	}

	if err := entry.Validate(); err != nil {
		t.Errorf("entry built from split should validate, got %v", err)
	}
}
