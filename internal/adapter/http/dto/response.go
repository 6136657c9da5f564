package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// EntryResponse represents a cash entry in API responses.
type EntryResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Source         string          `json:"source,omitempty"`
	Category       string          `json:"category"`
	CustomerName   string          `json:"customer_name,omitempty"`
	InvoiceNumber  string          `json:"invoice_number,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	RegisterAmount decimal.Decimal `json:"register_amount"`
	DepositAmount  decimal.Decimal `json:"deposit_amount"`
	ChangeGiven    decimal.Decimal `json:"change_given"`
	Date           time.Time       `json:"date"`
	Seq            int64           `json:"seq"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.CashEntry) *EntryResponse {
	return &EntryResponse{
		ID:             e.ID,
		Type:           string(e.Type),
		Source:         string(e.Source),
		Category:       e.Category,
		CustomerName:   e.CustomerName,
		InvoiceNumber:  e.InvoiceNumber,
		Notes:          e.Notes,
		Amount:         e.Amount,
		RegisterAmount: e.RegisterAmount,
		DepositAmount:  e.DepositAmount,
		ChangeGiven:    e.ChangeGiven,
		Date:           e.Date,
		Seq:            e.Seq,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.CashEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// EntryResultResponse pairs a written entry with a sync warning, if any.
type EntryResultResponse struct {
	Entry       *EntryResponse `json:"entry"`
	SyncWarning string         `json:"sync_warning,omitempty"`
}

// EntryResultFromUseCase converts a use case entry result to a response.
func EntryResultFromUseCase(r *usecase.EntryResult) *EntryResultResponse {
	return &EntryResultResponse{
		Entry:       EntryFromDomain(r.Entry),
		SyncWarning: r.SyncWarning,
	}
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Source      string          `json:"source"`
	PaidByName  string          `json:"paid_by_name,omitempty"`
	ReceiptPath string          `json:"receipt_path,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Seq         int64           `json:"seq"`
	OutOfPocket bool            `json:"out_of_pocket"`
	Reimbursed  bool            `json:"reimbursed"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(x *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          x.ID,
		Description: x.Description,
		Category:    x.Category,
		Source:      string(x.Source),
		PaidByName:  x.PaidByName,
		ReceiptPath: x.ReceiptPath,
		Amount:      x.Amount,
		Date:        x.Date,
		Seq:         x.Seq,
		OutOfPocket: x.OutOfPocket,
		Reimbursed:  x.Reimbursed,
		CreatedBy:   x.CreatedBy,
		CreatedAt:   x.CreatedAt,
		UpdatedAt:   x.UpdatedAt,
	}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, x := range expenses {
		result[i] = ExpenseFromDomain(x)
	}
	return result
}

// ReconciliationResponse represents a reconciliation snapshot.
type ReconciliationResponse struct {
	ID               string          `json:"id"`
	Date             time.Time       `json:"date"`
	Notes            string          `json:"notes,omitempty"`
	RegisterActual   decimal.Decimal `json:"register_actual"`
	DepositActual    decimal.Decimal `json:"deposit_actual"`
	RegisterExpected decimal.Decimal `json:"register_expected"`
	DepositExpected  decimal.Decimal `json:"deposit_expected"`
	Discrepancy      decimal.Decimal `json:"discrepancy"`
	Balanced         bool            `json:"balanced"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ReconciliationFromDomain converts a domain reconciliation to a response.
func ReconciliationFromDomain(rec *domain.CashReconciliation) *ReconciliationResponse {
	return &ReconciliationResponse{
		ID:               rec.ID,
		Date:             rec.Date,
		Notes:            rec.Notes,
		RegisterActual:   rec.RegisterActual,
		DepositActual:    rec.DepositActual,
		RegisterExpected: rec.RegisterExpected,
		DepositExpected:  rec.DepositExpected,
		Discrepancy:      rec.Discrepancy,
		Balanced:         rec.Balanced(),
		CreatedBy:        rec.CreatedBy,
		CreatedAt:        rec.CreatedAt,
	}
}

// ReconciliationsFromDomain converts domain reconciliations to responses.
func ReconciliationsFromDomain(recs []*domain.CashReconciliation) []*ReconciliationResponse {
	result := make([]*ReconciliationResponse, len(recs))
	for i, rec := range recs {
		result[i] = ReconciliationFromDomain(rec)
	}
	return result
}

// LedgerRowResponse represents one timeline row with running balances.
// Rows dated on or before the latest reconciliation describe an already
// audited period; clients render them locked.
type LedgerRowResponse struct {
	ID              string          `json:"id"`
	Kind            string          `json:"kind"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	RegisterChange  decimal.Decimal `json:"register_change"`
	DepositChange   decimal.Decimal `json:"deposit_change"`
	RegisterBalance decimal.Decimal `json:"register_balance"`
	DepositBalance  decimal.Decimal `json:"deposit_balance"`
	Seq             int64           `json:"seq"`
	Reconciled      bool            `json:"reconciled"`
}

// LedgerResponse represents the running-balance ledger view.
type LedgerResponse struct {
	StartDate              time.Time           `json:"start_date"`
	EndDate                time.Time           `json:"end_date"`
	LastReconciliationDate *time.Time          `json:"last_reconciliation_date,omitempty"`
	StartingRegister       decimal.Decimal     `json:"starting_register"`
	StartingDeposit        decimal.Decimal     `json:"starting_deposit"`
	Rows                   []LedgerRowResponse `json:"rows"`
}

// LedgerFromUseCase converts a use case ledger to a response.
func LedgerFromUseCase(l *usecase.Ledger) *LedgerResponse {
	rows := make([]LedgerRowResponse, len(l.Rows))
	for i, row := range l.Rows {
		rows[i] = LedgerRowResponse{
			ID:              row.ID,
			Kind:            string(row.Kind),
			Date:            row.Date,
			Description:     row.Description,
			RegisterChange:  row.RegisterChange,
			DepositChange:   row.DepositChange,
			RegisterBalance: row.RegisterBalance,
			DepositBalance:  row.DepositBalance,
			Seq:             row.Seq,
			Reconciled:      l.LastReconciliationDate != nil && !row.Date.After(*l.LastReconciliationDate),
		}
	}

	return &LedgerResponse{
		StartDate:              l.StartDate,
		EndDate:                l.EndDate,
		LastReconciliationDate: l.LastReconciliationDate,
		StartingRegister:       l.StartingRegister,
		StartingDeposit:        l.StartingDeposit,
		Rows:                   rows,
	}
}

// SummaryResponse represents the dashboard summary.
type SummaryResponse struct {
	Date                   time.Time       `json:"date"`
	WeekStart              time.Time       `json:"week_start"`
	LastReconciliationDate *time.Time      `json:"last_reconciliation_date,omitempty"`
	Register               decimal.Decimal `json:"register"`
	Deposit                decimal.Decimal `json:"deposit"`
	Total                  decimal.Decimal `json:"total"`
	TodayCashIn            decimal.Decimal `json:"today_cash_in"`
	TodayCashOut           decimal.Decimal `json:"today_cash_out"`
	TodayExpenses          decimal.Decimal `json:"today_expenses"`
	WeekStartRegister      decimal.Decimal `json:"week_start_register"`
	WeekStartDeposit       decimal.Decimal `json:"week_start_deposit"`
	LastDiscrepancy        decimal.Decimal `json:"last_discrepancy"`
}

// SummaryFromUseCase converts a use case summary to a response.
func SummaryFromUseCase(s *usecase.Summary) *SummaryResponse {
	return &SummaryResponse{
		Date:                   s.Date,
		WeekStart:              s.WeekStart,
		LastReconciliationDate: s.LastReconciliationDate,
		Register:               s.Register,
		Deposit:                s.Deposit,
		Total:                  s.Total,
		TodayCashIn:            s.TodayCashIn,
		TodayCashOut:           s.TodayCashOut,
		TodayExpenses:          s.TodayExpenses,
		WeekStartRegister:      s.WeekStartRegister,
		WeekStartDeposit:       s.WeekStartDeposit,
		LastDiscrepancy:        s.LastDiscrepancy,
	}
}

// SettingsResponse represents the shop settings.
type SettingsResponse struct {
	TaxRate              decimal.Decimal `json:"tax_rate"`
	SalesPeople          []string        `json:"sales_people"`
	QuickBooksRealmID    string          `json:"quickbooks_realm_id,omitempty"`
	QuickBooksDepositRef string          `json:"quickbooks_deposit_ref,omitempty"`
	OpeningRegister      decimal.Decimal `json:"opening_register"`
	OpeningDeposit       decimal.Decimal `json:"opening_deposit"`
	OpeningDate          *time.Time      `json:"opening_date,omitempty"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// SettingsFromDomain converts domain settings to a response.
func SettingsFromDomain(s domain.Settings) *SettingsResponse {
	resp := &SettingsResponse{
		TaxRate:              s.TaxRate,
		SalesPeople:          s.SalesPeople,
		QuickBooksRealmID:    s.QuickBooksRealmID,
		QuickBooksDepositRef: s.QuickBooksDepositRef,
		OpeningRegister:      s.OpeningRegister,
		OpeningDeposit:       s.OpeningDeposit,
		UpdatedAt:            s.UpdatedAt,
	}
	if !s.OpeningDate.IsZero() {
		d := s.OpeningDate
		resp.OpeningDate = &d
	}

	return resp
}

// SplitResponse represents a computed cash-in split.
type SplitResponse struct {
	Register decimal.Decimal `json:"register"`
	Deposit  decimal.Decimal `json:"deposit"`
	Change   decimal.Decimal `json:"change"`
}

// FlowResponse represents a POS session.
type FlowResponse struct {
	ID            string          `json:"id"`
	State         string          `json:"state"`
	Date          time.Time       `json:"date"`
	Paid          decimal.Decimal `json:"paid"`
	InvoiceTotal  decimal.Decimal `json:"invoice_total"`
	ToDeposit     decimal.Decimal `json:"to_deposit"`
	ChangeSource  string          `json:"change_source,omitempty"`
	Category      string          `json:"category,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	SalesPerson   string          `json:"sales_person,omitempty"`
	AllowPartial  bool            `json:"allow_partial"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// FlowFromDomain converts a domain POS flow to a response.
func FlowFromDomain(f *domain.POSFlow) *FlowResponse {
	return &FlowResponse{
		ID:            f.ID,
		State:         string(f.State),
		Date:          f.Date,
		Paid:          f.Paid,
		InvoiceTotal:  f.InvoiceTotal,
		ToDeposit:     f.ToDeposit,
		ChangeSource:  string(f.ChangeSource),
		Category:      f.Category,
		CustomerName:  f.CustomerName,
		InvoiceNumber: f.InvoiceNumber,
		SalesPerson:   f.SalesPerson,
		AllowPartial:  f.AllowPartial,
		CreatedBy:     f.CreatedBy,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// AdvanceFlowResponse is the state after one POS action.
type AdvanceFlowResponse struct {
	Flow        *FlowResponse  `json:"flow"`
	Split       *SplitResponse `json:"split,omitempty"`
	Entry       *EntryResponse `json:"entry,omitempty"`
	SyncWarning string         `json:"sync_warning,omitempty"`
}

// AdvanceFlowFromUseCase converts a use case advance result to a response.
func AdvanceFlowFromUseCase(r *usecase.AdvanceFlowResult) *AdvanceFlowResponse {
	resp := &AdvanceFlowResponse{
		Flow:        FlowFromDomain(r.Flow),
		SyncWarning: r.SyncWarning,
	}
	if r.Split != nil {
		resp.Split = &SplitResponse{
			Register: r.Split.Register,
			Deposit:  r.Split.Deposit,
			Change:   r.Split.Change,
		}
	}
	if r.Entry != nil {
		resp.Entry = EntryFromDomain(r.Entry)
	}

	return resp
}

// AuditLogResponse represents an audit log row.
type AuditLogResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	RequestID    string         `json:"request_id,omitempty"`
	BeforeState  map[string]any `json:"before_state,omitempty"`
	AfterState   map[string]any `json:"after_state,omitempty"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AuditLogFromDomain converts a domain audit log to a response.
func AuditLogFromDomain(l *domain.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		Action:       l.Action,
		ResourceType: l.ResourceType,
		ResourceID:   l.ResourceID,
		RequestID:    l.RequestID,
		BeforeState:  l.BeforeState,
		AfterState:   l.AfterState,
		Status:       l.Status,
		ErrorMessage: l.ErrorMessage,
		CreatedAt:    l.CreatedAt,
	}
}

// AuditLogsFromDomain converts domain audit logs to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		result[i] = AuditLogFromDomain(l)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
