package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a debit against register, deposit or out-of-pocket funds.
//
// An out-of-pocket expense was paid personally by an employee and never
// moves either cash pool; Reimbursed tracks whether the employee has been
// paid back (the reimbursement itself is recorded separately, if at all).
type Expense struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Date        time.Time
	ID          string
	Description string
	Category    string
	Source      Source
	PaidByName  string
	ReceiptPath string
	CreatedBy   string
	Amount      decimal.Decimal
	Seq         int64
	OutOfPocket bool
	Reimbursed  bool
}

// Validate checks the expense invariants.
func (x *Expense) Validate() error {
	if x.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if x.Category == "" {
		return ErrMissingCategory
	}

	if !x.Source.IsValid() {
		return ErrInvalidSource
	}

	if x.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// Editable reports whether the expense can still be modified. Reimbursed
// expenses are frozen apart from toggling the flag itself.
func (x *Expense) Editable() bool {
	return !x.Reimbursed
}
