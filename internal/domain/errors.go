package domain

import "errors"

var (
	// Entry errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidEntryType  = errors.New("invalid entry type")
	ErrInvalidSource     = errors.New("invalid cash source")
	ErrMissingCategory   = errors.New("category is required")
	ErrMissingDate       = errors.New("date is required")
	ErrNegativeChange    = errors.New("change given cannot be negative")
	ErrChangeNotAllowed  = errors.New("change given is only valid for cash in entries")
	ErrSplitNotConserved = errors.New("register, deposit and change do not add up to amount")
	ErrEntryNotFound     = errors.New("entry not found")

	// Split errors
	ErrInsufficientSplit = errors.New("insufficient funds to split")

	// Expense errors
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrExpenseReimbursed = errors.New("expense is reimbursed and can no longer be edited")

	// Reconciliation errors
	ErrReconciliationNotFound = errors.New("reconciliation not found")

	// POS flow errors
	ErrFlowNotFound      = errors.New("flow not found")
	ErrFlowFinished      = errors.New("flow has already finished")
	ErrInvalidTransition = errors.New("invalid flow transition")
	ErrPaymentShort      = errors.New("amount paid is less than invoice total")
)
