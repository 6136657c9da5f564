package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// RecordCashInRequest represents a request to record a customer payment.
type RecordCashInRequest struct {
	Date          *time.Time      `json:"date,omitempty"`
	Paid          decimal.Decimal `json:"paid"`
	InvoiceTotal  decimal.Decimal `json:"invoice_total"`
	ToDeposit     decimal.Decimal `json:"to_deposit"`
	ChangeSource  string          `json:"change_source,omitempty"`
	Category      string          `json:"category"`
	CustomerName  string          `json:"customer_name,omitempty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	AllowPartial  bool            `json:"allow_partial,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordCashInRequest) ToUseCaseInput() usecase.RecordCashInInput {
	changeSource := domain.SourceRegister
	if r.ChangeSource != "" {
		changeSource = domain.Source(r.ChangeSource)
	}

	return usecase.RecordCashInInput{
		Date:          r.Date,
		Paid:          r.Paid,
		InvoiceTotal:  r.InvoiceTotal,
		ToDeposit:     r.ToDeposit,
		ChangeSource:  changeSource,
		Category:      r.Category,
		CustomerName:  r.CustomerName,
		InvoiceNumber: r.InvoiceNumber,
		Notes:         r.Notes,
		AllowPartial:  r.AllowPartial,
	}
}

// RecordEntryRequest represents a request to record a cash-out or a pool
// transfer.
type RecordEntryRequest struct {
	Date     *time.Time      `json:"date,omitempty"`
	Type     string          `json:"type"`
	Source   string          `json:"source"`
	Category string          `json:"category"`
	Notes    string          `json:"notes,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordEntryRequest) ToUseCaseInput() usecase.RecordEntryInput {
	return usecase.RecordEntryInput{
		Date:     r.Date,
		Type:     domain.EntryType(r.Type),
		Source:   domain.Source(r.Source),
		Category: r.Category,
		Notes:    r.Notes,
		Amount:   r.Amount,
	}
}

// PatchEntryRequest represents a partial entry update; absent fields are
// untouched.
type PatchEntryRequest struct {
	Date          *time.Time       `json:"date,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Category      *string          `json:"category,omitempty"`
	CustomerName  *string          `json:"customer_name,omitempty"`
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *PatchEntryRequest) ToUseCaseInput() usecase.PatchEntryInput {
	return usecase.PatchEntryInput{
		Date:          r.Date,
		Amount:        r.Amount,
		Category:      r.Category,
		CustomerName:  r.CustomerName,
		InvoiceNumber: r.InvoiceNumber,
		Notes:         r.Notes,
	}
}

// CreateExpenseRequest represents a request to record an expense. Receipt
// is base64-encoded image or PDF data.
type CreateExpenseRequest struct {
	Date        *time.Time      `json:"date,omitempty"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Source      string          `json:"source"`
	PaidByName  string          `json:"paid_by_name,omitempty"`
	Receipt     []byte          `json:"receipt,omitempty"`
	ReceiptName string          `json:"receipt_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	OutOfPocket bool            `json:"out_of_pocket,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateExpenseRequest) ToUseCaseInput() usecase.CreateExpenseInput {
	return usecase.CreateExpenseInput{
		Date:        r.Date,
		Description: r.Description,
		Category:    r.Category,
		Source:      domain.Source(r.Source),
		PaidByName:  r.PaidByName,
		Receipt:     r.Receipt,
		ReceiptName: r.ReceiptName,
		Amount:      r.Amount,
		OutOfPocket: r.OutOfPocket,
	}
}

// UpdateExpenseRequest represents a partial expense update.
type UpdateExpenseRequest struct {
	Date        *time.Time       `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Source      *string          `json:"source,omitempty"`
	PaidByName  *string          `json:"paid_by_name,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	OutOfPocket *bool            `json:"out_of_pocket,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateExpenseRequest) ToUseCaseInput() usecase.UpdateExpenseInput {
	var source *domain.Source
	if r.Source != nil {
		s := domain.Source(*r.Source)
		source = &s
	}

	return usecase.UpdateExpenseInput{
		Date:        r.Date,
		Description: r.Description,
		Category:    r.Category,
		Source:      source,
		PaidByName:  r.PaidByName,
		Amount:      r.Amount,
		OutOfPocket: r.OutOfPocket,
	}
}

// SetReimbursedRequest marks an out-of-pocket expense paid back (or not).
type SetReimbursedRequest struct {
	Reimbursed bool `json:"reimbursed"`
}

// ReconcileRequest represents a physical count submission.
type ReconcileRequest struct {
	Date           *time.Time      `json:"date,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	RegisterActual decimal.Decimal `json:"register_actual"`
	DepositActual  decimal.Decimal `json:"deposit_actual"`
}

// ToUseCaseInput converts to use case input.
func (r *ReconcileRequest) ToUseCaseInput() usecase.ReconcileInput {
	return usecase.ReconcileInput{
		Date:           r.Date,
		Notes:          r.Notes,
		RegisterActual: r.RegisterActual,
		DepositActual:  r.DepositActual,
	}
}

// SaveSettingsRequest represents a full settings replacement.
type SaveSettingsRequest struct {
	TaxRate              decimal.Decimal `json:"tax_rate"`
	SalesPeople          []string        `json:"sales_people"`
	QuickBooksRealmID    string          `json:"quickbooks_realm_id,omitempty"`
	QuickBooksDepositRef string          `json:"quickbooks_deposit_ref,omitempty"`
	OpeningRegister      decimal.Decimal `json:"opening_register"`
	OpeningDeposit       decimal.Decimal `json:"opening_deposit"`
	OpeningDate          *time.Time      `json:"opening_date,omitempty"`
}

// ToDomain converts to domain settings.
func (r *SaveSettingsRequest) ToDomain() domain.Settings {
	settings := domain.Settings{
		TaxRate:              r.TaxRate,
		SalesPeople:          r.SalesPeople,
		QuickBooksRealmID:    r.QuickBooksRealmID,
		QuickBooksDepositRef: r.QuickBooksDepositRef,
		OpeningRegister:      r.OpeningRegister,
		OpeningDeposit:       r.OpeningDeposit,
	}
	if r.OpeningDate != nil {
		settings.OpeningDate = *r.OpeningDate
	}

	return settings
}

// AdvanceFlowRequest represents one operator action against a POS session.
// Payload fields are read per action; the rest are ignored.
type AdvanceFlowRequest struct {
	Action        string          `json:"action"`
	Paid          decimal.Decimal `json:"paid,omitempty"`
	InvoiceTotal  decimal.Decimal `json:"invoice_total,omitempty"`
	ToDeposit     decimal.Decimal `json:"to_deposit,omitempty"`
	ChangeSource  string          `json:"change_source,omitempty"`
	Category      string          `json:"category,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	SalesPerson   string          `json:"sales_person,omitempty"`
	AllowPartial  bool            `json:"allow_partial,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AdvanceFlowRequest) ToUseCaseInput() usecase.AdvanceFlowInput {
	return usecase.AdvanceFlowInput{
		Action:        domain.FlowAction(r.Action),
		Paid:          r.Paid,
		InvoiceTotal:  r.InvoiceTotal,
		ToDeposit:     r.ToDeposit,
		ChangeSource:  domain.Source(r.ChangeSource),
		Category:      r.Category,
		CustomerName:  r.CustomerName,
		InvoiceNumber: r.InvoiceNumber,
		SalesPerson:   r.SalesPerson,
		AllowPartial:  r.AllowPartial,
	}
}
