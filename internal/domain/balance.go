package domain

import (
	"github.com/shopspring/decimal"
)

// Balance is a point-in-time pair of pool balances.
type Balance struct {
	Register decimal.Decimal
	Deposit  decimal.Decimal
}

// ZeroBalance returns a balance of zero in both pools.
func ZeroBalance() Balance {
	return Balance{Register: decimal.Zero, Deposit: decimal.Zero}
}

// Add returns the balance shifted by the given pool deltas.
func (b Balance) Add(register, deposit decimal.Decimal) Balance {
	return Balance{
		Register: b.Register.Add(register),
		Deposit:  b.Deposit.Add(deposit),
	}
}

// Total returns register + deposit.
func (b Balance) Total() decimal.Decimal {
	return b.Register.Add(b.Deposit)
}

// EntryDelta returns the (register, deposit) contribution of one entry.
//
// The split calculator's raw register amount assumes change is withheld
// from the register's share of the tendered cash; when the entry's source
// is the deposit the change was instead paid out of the deposit pool, so
// the delta is corrected here rather than in the stored record.
func EntryDelta(e *CashEntry) (register, deposit decimal.Decimal) {
	switch e.Type {
	case EntryCashIn:
		register = e.RegisterAmount
		deposit = e.DepositAmount

		if e.Source == SourceDeposit {
			register = register.Add(e.ChangeGiven)
			deposit = deposit.Sub(e.ChangeGiven)
		}
	case EntryCashOut:
		if e.Source == SourceRegister {
			register = e.Amount.Neg()
			deposit = decimal.Zero
		} else {
			register = decimal.Zero
			deposit = e.Amount.Neg()
		}
	case EntryDeposit:
		register = e.Amount.Neg()
		deposit = e.Amount
	case EntryWithdrawal:
		register = e.Amount
		deposit = e.Amount.Neg()
	default:
		register = decimal.Zero
		deposit = decimal.Zero
	}

	return register, deposit
}

// ExpenseDelta returns the (register, deposit) contribution of one expense.
// Out-of-pocket expenses never touch either pool, whatever their source.
func ExpenseDelta(x *Expense) (register, deposit decimal.Decimal) {
	if x.OutOfPocket {
		return decimal.Zero, decimal.Zero
	}

	if x.Source == SourceRegister {
		return x.Amount.Neg(), decimal.Zero
	}

	return decimal.Zero, x.Amount.Neg()
}

// FoldBalance folds entries and expenses over a starting balance. The fold
// is commutative: the result does not depend on the order of the slices,
// only the ledger's running-total display does. Nothing here is persisted;
// balances are always reproducible from the stored records.
func FoldBalance(start Balance, entries []*CashEntry, expenses []*Expense) Balance {
	b := start

	for _, e := range entries {
		dr, dd := EntryDelta(e)
		b = b.Add(dr, dd)
	}

	for _, x := range expenses {
		dr, dd := ExpenseDelta(x)
		b = b.Add(dr, dd)
	}

	return b
}
