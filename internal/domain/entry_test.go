package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var entryTestTime = time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

func cashIn(amount, register, deposit, change string, source Source) *CashEntry {
	return &CashEntry{
		ID:             "entry-1",
		Type:           EntryCashIn,
		Amount:         dec(amount),
		RegisterAmount: dec(register),
		DepositAmount:  dec(deposit),
		ChangeGiven:    dec(change),
		Source:         source,
		Date:           DateOf(entryTestTime),
	}
}

func TestCashEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   *CashEntry
		wantErr error
	}{
		{
			name:  "valid cash in",
			entry: cashIn("100.00", "30.00", "50.00", "20.00", SourceRegister),
		},
		{
			name:  "valid cash in with negative register delta",
			entry: cashIn("100.00", "-20.00", "100.00", "20.00", SourceRegister),
		},
		{
			name:    "cash in that does not conserve",
			entry:   cashIn("100.00", "30.00", "50.00", "10.00", SourceRegister),
			wantErr: ErrSplitNotConserved,
		},
		{
			name:    "cash in with negative change",
			entry:   cashIn("100.00", "110.00", "0", "-10.00", SourceRegister),
			wantErr: ErrNegativeChange,
		},
		{
			name: "cash out without category",
			entry: &CashEntry{
				Type:   EntryCashOut,
				Amount: dec("40.00"),
				Source: SourceDeposit,
				Date:   DateOf(entryTestTime),
			},
			wantErr: ErrMissingCategory,
		},
		{
			name: "transfer with change",
			entry: &CashEntry{
				Type:           EntryDeposit,
				Amount:         dec("50.00"),
				RegisterAmount: dec("50.00"),
				DepositAmount:  dec("50.00"),
				ChangeGiven:    dec("1.00"),
				Source:         SourceRegister,
				Date:           DateOf(entryTestTime),
			},
			wantErr: ErrChangeNotAllowed,
		},
		{
			name: "non-positive amount",
			entry: &CashEntry{
				Type:   EntryCashOut,
				Amount: decimal.Zero,
				Source: SourceRegister,
				Date:   DateOf(entryTestTime),
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "missing date",
			entry: &CashEntry{
				Type:     EntryCashOut,
				Amount:   dec("10.00"),
				Category: "supplies",
				Source:   SourceRegister,
			},
			wantErr: ErrMissingDate,
		},
		{
			name: "unknown type",
			entry: &CashEntry{
				Type:   EntryType("REFUND"),
				Amount: dec("10.00"),
				Source: SourceRegister,
				Date:   DateOf(entryTestTime),
			},
			wantErr: ErrInvalidEntryType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCashEntry_NormalizeDefaultsTransferSource(t *testing.T) {
	for _, typ := range []EntryType{EntryDeposit, EntryWithdrawal} {
		entry := &CashEntry{
			Type: typ, Amount: dec("60.00"),
			Date: DateOf(entryTestTime),
		}

		entry.Normalize()

		if entry.Source != SourceRegister {
			t.Errorf("%s source = %q, want REGISTER", typ, entry.Source)
		}
		if err := entry.Validate(); err != nil {
			t.Errorf("%s without source should validate after normalize, got %v", typ, err)
		}
	}

	// non-transfer kinds keep whatever source they were given
	entry := &CashEntry{
		Type: EntryCashOut, Amount: dec("10.00"),
		Category: "refund", Date: DateOf(entryTestTime),
	}
	entry.Normalize()
	if entry.Source != "" {
		t.Errorf("cash out source = %q, want unchanged", entry.Source)
	}
}

func TestCashEntry_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		entry        *CashEntry
		wantRegister string
		wantDeposit  string
	}{
		{
			name: "cash out from register",
			entry: &CashEntry{
				Type: EntryCashOut, Amount: dec("40.00"),
				Category: "refund", Source: SourceRegister,
				Date: DateOf(entryTestTime),
			},
			wantRegister: "40.00",
			wantDeposit:  "0",
		},
		{
			name: "cash out from deposit",
			entry: &CashEntry{
				Type: EntryCashOut, Amount: dec("40.00"),
				Category: "refund", Source: SourceDeposit,
				Date: DateOf(entryTestTime),
			},
			wantRegister: "0",
			wantDeposit:  "40.00",
		},
		{
			name: "transfer stores the magnitude on both sides",
			entry: &CashEntry{
				Type: EntryWithdrawal, Amount: dec("75.00"),
				Source: SourceDeposit, Date: DateOf(entryTestTime),
			},
			wantRegister: "75.00",
			wantDeposit:  "75.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.Normalize()

			if !tt.entry.RegisterAmount.Equal(dec(tt.wantRegister)) {
				t.Errorf("register amount = %s, want %s", tt.entry.RegisterAmount, tt.wantRegister)
			}

			if !tt.entry.DepositAmount.Equal(dec(tt.wantDeposit)) {
				t.Errorf("deposit amount = %s, want %s", tt.entry.DepositAmount, tt.wantDeposit)
			}

			if err := tt.entry.Validate(); err != nil {
				t.Errorf("normalized entry should validate, got %v", err)
			}
		})
	}
}
