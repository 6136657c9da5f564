package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowState is a named step of the POS cash-in flow.
type FlowState string

const (
	// FlowAmount collects amount tendered and the invoice total.
	FlowAmount FlowState = "amount"
	// FlowSplit chooses the deposit portion and the change source.
	FlowSplit FlowState = "split"
	// FlowConfirm shows the computed split for operator confirmation.
	FlowConfirm FlowState = "confirm"
	// FlowDone is terminal; the cash entry has been created.
	FlowDone FlowState = "done"
	// FlowCancelled is terminal; nothing was written.
	FlowCancelled FlowState = "cancelled"
)

// Terminal reports whether the flow can no longer advance.
func (s FlowState) Terminal() bool {
	return s == FlowDone || s == FlowCancelled
}

// FlowAction is an operator action submitted against a flow.
type FlowAction string

const (
	ActionEnterAmount FlowAction = "enter_amount"
	ActionSetSplit    FlowAction = "set_split"
	ActionBack        FlowAction = "back"
	ActionConfirm     FlowAction = "confirm"
	ActionCancel      FlowAction = "cancel"
)

// flowTransitions is the explicit state x action -> state table. The client
// is untrusted input: anything not in the table is rejected, and each
// transition's preconditions are re-validated server-side in Transition.
var flowTransitions = map[FlowState]map[FlowAction]FlowState{
	FlowAmount: {
		ActionEnterAmount: FlowSplit,
		ActionCancel:      FlowCancelled,
	},
	FlowSplit: {
		ActionSetSplit: FlowConfirm,
		ActionBack:     FlowAmount,
		ActionCancel:   FlowCancelled,
	},
	FlowConfirm: {
		ActionConfirm: FlowDone,
		ActionBack:    FlowSplit,
		ActionCancel:  FlowCancelled,
	},
}

// POSFlow is one in-progress cash-in wizard session. The accumulated
// fields become a CashEntry when the flow reaches FlowDone.
type POSFlow struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Date          time.Time
	ID            string
	State         FlowState
	Category      string
	CustomerName  string
	InvoiceNumber string
	SalesPerson   string
	CreatedBy     string
	ChangeSource  Source
	Paid          decimal.Decimal
	InvoiceTotal  decimal.Decimal
	ToDeposit     decimal.Decimal
	AllowPartial  bool
}

// NewPOSFlow starts a flow at the amount step.
func NewPOSFlow(id, createdBy string, now time.Time) *POSFlow {
	return &POSFlow{
		ID:           id,
		State:        FlowAmount,
		ChangeSource: SourceRegister,
		Date:         DateOf(now),
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Transition applies an action, validating the transition table and the
// target step's preconditions against the flow's current fields. Callers
// set fields from the request payload before transitioning.
func (f *POSFlow) Transition(action FlowAction) error {
	if f.State.Terminal() {
		return ErrFlowFinished
	}

	next, ok := flowTransitions[f.State][action]
	if !ok {
		return ErrInvalidTransition
	}

	switch action {
	case ActionEnterAmount:
		if f.Paid.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidAmount
		}

		if !f.AllowPartial && f.Paid.LessThan(f.InvoiceTotal) {
			return ErrPaymentShort
		}
	case ActionSetSplit:
		if f.ToDeposit.IsNegative() {
			return ErrInvalidAmount
		}

		if f.ToDeposit.GreaterThan(f.Paid) {
			return ErrInsufficientSplit
		}

		if !f.ChangeSource.IsValid() {
			return ErrInvalidSource
		}
	}

	f.State = next

	return nil
}

// SplitInput returns the flow's accumulated values as split input.
func (f *POSFlow) SplitInput() SplitInput {
	return SplitInput{
		Paid:         f.Paid,
		InvoiceTotal: f.InvoiceTotal,
		ToDeposit:    f.ToDeposit,
		ChangeSource: f.ChangeSource,
	}
}
