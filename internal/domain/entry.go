package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a cash-affecting event.
type EntryType string

const (
	// EntryCashIn is a customer payment received in cash.
	EntryCashIn EntryType = "CASH_IN"
	// EntryCashOut is cash paid out of a pool (refund, petty purchase).
	EntryCashOut EntryType = "CASH_OUT"
	// EntryDeposit moves cash from the register drawer to the safety deposit.
	EntryDeposit EntryType = "DEPOSIT"
	// EntryWithdrawal moves cash from the safety deposit back to the register.
	EntryWithdrawal EntryType = "WITHDRAWAL"
)

// Valid entry types
var validEntryTypes = map[EntryType]bool{
	EntryCashIn:     true,
	EntryCashOut:    true,
	EntryDeposit:    true,
	EntryWithdrawal: true,
}

// IsValid checks that the entry type is one of the known kinds.
func (t EntryType) IsValid() bool {
	return validEntryTypes[t]
}

// Source names the cash pool an entry debits or pays change from.
type Source string

const (
	SourceRegister Source = "REGISTER"
	SourceDeposit  Source = "DEPOSIT"
)

// IsValid checks that the source names a known pool.
func (s Source) IsValid() bool {
	return s == SourceRegister || s == SourceDeposit
}

// CashEntry is a single cash event attributed to a calendar date.
//
// Seq is assigned by the store from a monotonic server-side sequence shared
// with expenses; it breaks same-date ties so the ledger order is stable no
// matter which terminal created the record.
type CashEntry struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Date           time.Time
	ID             string
	Type           EntryType
	Source         Source
	Category       string
	CustomerName   string
	InvoiceNumber  string
	Notes          string
	CreatedBy      string
	Amount         decimal.Decimal
	RegisterAmount decimal.Decimal
	DepositAmount  decimal.Decimal
	ChangeGiven    decimal.Decimal
	Seq            int64
}

// Normalize fills the pool attribution fields for the non-CASH_IN kinds,
// which are fully determined by type, source and amount. CASH_IN entries
// carry the split calculator's output and are left untouched.
func (e *CashEntry) Normalize() {
	switch e.Type {
	case EntryCashOut:
		if e.Source == SourceRegister {
			e.RegisterAmount = e.Amount
			e.DepositAmount = decimal.Zero
		} else {
			e.RegisterAmount = decimal.Zero
			e.DepositAmount = e.Amount
		}

		e.ChangeGiven = decimal.Zero
	case EntryDeposit, EntryWithdrawal:
		// Transfers store the magnitude on both sides; the balance fold
		// decides the sign from the type. Source carries no information
		// for them, so an omitted one is filled in rather than rejected.
		if e.Source == "" {
			e.Source = SourceRegister
		}

		e.RegisterAmount = e.Amount
		e.DepositAmount = e.Amount
		e.ChangeGiven = decimal.Zero
	}
}

// Validate checks the entry invariants. It must pass before any write.
func (e *CashEntry) Validate() error {
	if !e.Type.IsValid() {
		return ErrInvalidEntryType
	}

	if !e.Source.IsValid() {
		return ErrInvalidSource
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if e.Date.IsZero() {
		return ErrMissingDate
	}

	switch e.Type {
	case EntryCashIn:
		if e.ChangeGiven.IsNegative() {
			return ErrNegativeChange
		}

		// The accounting identity the whole ledger depends on:
		// register + deposit + change = amount tendered.
		total := e.RegisterAmount.Add(e.DepositAmount).Add(e.ChangeGiven)
		if !total.Equal(e.Amount) {
			return ErrSplitNotConserved
		}

		if e.DepositAmount.IsNegative() {
			return ErrInsufficientSplit
		}
	case EntryCashOut:
		if e.Category == "" {
			return ErrMissingCategory
		}

		if !e.ChangeGiven.IsZero() {
			return ErrChangeNotAllowed
		}
	case EntryDeposit, EntryWithdrawal:
		if !e.ChangeGiven.IsZero() {
			return ErrChangeNotAllowed
		}

		if !e.RegisterAmount.Equal(e.Amount) || !e.DepositAmount.Equal(e.Amount) {
			return ErrSplitNotConserved
		}
	}

	return nil
}
