package domain

import (
	"github.com/shopspring/decimal"
)

// SplitInput is the operator-facing input for a cash-in event: amount
// tendered, the invoice it pays, and the portion routed straight to the
// safety deposit.
type SplitInput struct {
	Paid         decimal.Decimal
	InvoiceTotal decimal.Decimal
	ToDeposit    decimal.Decimal
	ChangeSource Source
}

// Split is the conserved division of tendered cash.
type Split struct {
	Register decimal.Decimal
	Deposit  decimal.Decimal
	Change   decimal.Decimal
}

// ComputeSplit converts a cash-in input into the conserved
// (register, deposit, change) triple:
//
//	change   = max(0, round(paid - invoiceTotal, 2))
//	register = round(paid - toDeposit - change, 2)
//
// so register + toDeposit + change = paid always holds by construction.
// Register may come out negative: that attributes change paid from the
// register's own reserve rather than from the freshly tendered cash.
//
// Paid below invoice total is accepted here (change clamps to zero);
// whether partial payment is allowed is the caller's policy.
func ComputeSplit(in SplitInput) (Split, error) {
	if in.Paid.LessThanOrEqual(decimal.Zero) {
		return Split{}, ErrInvalidAmount
	}

	if in.InvoiceTotal.IsNegative() || in.ToDeposit.IsNegative() {
		return Split{}, ErrInvalidAmount
	}

	if in.ToDeposit.GreaterThan(in.Paid) {
		return Split{}, ErrInsufficientSplit
	}

	change := in.Paid.Sub(in.InvoiceTotal).Round(2)
	if change.IsNegative() {
		change = decimal.Zero
	}

	register := in.Paid.Sub(in.ToDeposit).Sub(change).Round(2)

	return Split{
		Register: register,
		Deposit:  in.ToDeposit.Round(2),
		Change:   change,
	}, nil
}

// Entry builds a CASH_IN entry carrying the split. Source records which
// pool absorbs the change; the balance fold applies the correction when it
// is the deposit.
func (s Split) Entry(in SplitInput) *CashEntry {
	return &CashEntry{
		Type:           EntryCashIn,
		Amount:         in.Paid.Round(2),
		RegisterAmount: s.Register,
		DepositAmount:  s.Deposit,
		ChangeGiven:    s.Change,
		Source:         in.ChangeSource,
	}
}
