package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashReconciliation is an immutable audit snapshot comparing a physical
// count against the computed expected balances as of a date. It references
// a date, not specific entries: it audits a cumulative state, not a delta.
type CashReconciliation struct {
	CreatedAt        time.Time
	Date             time.Time
	ID               string
	Notes            string
	CreatedBy        string
	RegisterActual   decimal.Decimal
	DepositActual    decimal.Decimal
	RegisterExpected decimal.Decimal
	DepositExpected  decimal.Decimal
	Discrepancy      decimal.Decimal
}

// ComputeDiscrepancy returns (actual total) - (expected total): a shortfall
// is negative, a surplus positive.
func ComputeDiscrepancy(actual, expected Balance) decimal.Decimal {
	return actual.Total().Sub(expected.Total())
}

// Balanced reports whether the count matched the books exactly.
func (r *CashReconciliation) Balanced() bool {
	return r.Discrepancy.IsZero()
}

// Validate checks the counted amounts. Counts of zero are legitimate;
// negative cash is not.
func (r *CashReconciliation) Validate() error {
	if r.RegisterActual.IsNegative() || r.DepositActual.IsNegative() {
		return ErrInvalidAmount
	}

	if r.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}
