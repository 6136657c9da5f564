package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// ExpenseUseCase handles expense business logic.
type ExpenseUseCase struct {
	expenseRepo ExpenseRepository
	auditRepo   AuditRepository
	receipts    ReceiptStore
	idGen       IDGenerator
	metrics     MetricsRecorder
}

// NewExpenseUseCase creates a new ExpenseUseCase. receipts may be nil when
// receipt storage is not configured; metrics may be nil.
func NewExpenseUseCase(
	expenseRepo ExpenseRepository,
	auditRepo AuditRepository,
	receipts ReceiptStore,
	idGen IDGenerator,
	metrics MetricsRecorder,
) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo: expenseRepo,
		auditRepo:   auditRepo,
		receipts:    receipts,
		idGen:       idGen,
		metrics:     ensureMetrics(metrics),
	}
}

// CreateExpenseInput represents input for recording an expense.
type CreateExpenseInput struct {
	Date        *time.Time
	Description string
	Category    string
	Source      domain.Source
	PaidByName  string
	Receipt     []byte
	ReceiptName string
	Amount      decimal.Decimal
	OutOfPocket bool
}

// CreateExpense records an expense. Out-of-pocket expenses never move
// either cash pool; Source still records which pool a reimbursement would
// come from.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateCategory(input.Category); err != nil {
		return nil, err
	}

	if err := domain.ValidateText(input.Description, domain.MaxDescriptionLength); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	expense := &domain.Expense{
		ID:          uc.idGen.Generate(),
		Description: input.Description,
		Category:    input.Category,
		Source:      input.Source,
		PaidByName:  input.PaidByName,
		Amount:      input.Amount,
		OutOfPocket: input.OutOfPocket,
		Date:        domain.DateOf(now),
		CreatedBy:   callerID(ctx),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Date != nil {
		expense.Date = domain.DateOf(*input.Date)
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if len(input.Receipt) > 0 && uc.receipts != nil {
		path, err := uc.receipts.Store(ctx, input.ReceiptName, input.Receipt)
		if err != nil {
			return nil, err
		}

		expense.ReceiptPath = path
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	writeAudit(ctx, uc.auditRepo, uc.idGen, uc.metrics, domain.AuditActionExpenseCreate, "expense", expense.ID, nil, expense)
	uc.metrics.ExpenseCreated()

	return expense, nil
}

// GetExpense fetches a single expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return uc.expenseRepo.GetByID(ctx, id)
}

// ListExpensesInput represents input for listing expenses.
type ListExpensesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// ListExpenses lists expenses ordered by date then sequence.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, input ListExpensesInput) ([]*domain.Expense, error) {
	if err := domain.ValidateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.expenseRepo.List(ctx, ExpenseFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Limit:     limit,
		Offset:    offset,
	})
}

// UpdateExpenseInput represents a partial update; nil fields are untouched.
type UpdateExpenseInput struct {
	Date        *time.Time
	Description *string
	Category    *string
	Source      *domain.Source
	PaidByName  *string
	Amount      *decimal.Decimal
	OutOfPocket *bool
}

// UpdateExpense applies a partial update. Reimbursed expenses are frozen.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, id string, input UpdateExpenseInput) (*domain.Expense, error) {
	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !expense.Editable() {
		return nil, domain.ErrExpenseReimbursed
	}

	before := *expense

	if input.Date != nil {
		expense.Date = domain.DateOf(*input.Date)
	}

	if input.Description != nil {
		expense.Description = *input.Description
	}

	if input.Category != nil {
		expense.Category = *input.Category
	}

	if input.Source != nil {
		expense.Source = *input.Source
	}

	if input.PaidByName != nil {
		expense.PaidByName = *input.PaidByName
	}

	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return nil, err
		}

		expense.Amount = *input.Amount
	}

	if input.OutOfPocket != nil {
		expense.OutOfPocket = *input.OutOfPocket
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	writeAudit(ctx, uc.auditRepo, uc.idGen, uc.metrics, domain.AuditActionExpenseUpdate, "expense", expense.ID, &before, expense)

	return expense, nil
}

// SetReimbursed toggles the reimbursed flag on an out-of-pocket expense.
// Toggling back off re-opens the expense for edits.
func (uc *ExpenseUseCase) SetReimbursed(ctx context.Context, id string, reimbursed bool) (*domain.Expense, error) {
	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if expense.Reimbursed == reimbursed {
		return expense, nil
	}

	before := *expense
	expense.Reimbursed = reimbursed
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	writeAudit(ctx, uc.auditRepo, uc.idGen, uc.metrics, domain.AuditActionExpenseToggle, "expense", expense.ID, &before, expense)
	if reimbursed {
		uc.metrics.ExpenseReimbursed()
	}

	return expense, nil
}

// DeleteExpense removes an expense. Admin only; reimbursed expenses
// cannot be deleted.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	user, ok := domain.UserFromContext(ctx)
	if !ok || !user.Role.CanDelete() {
		return domain.ErrInsufficientRole
	}

	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !expense.Editable() {
		return domain.ErrExpenseReimbursed
	}

	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	writeAudit(ctx, uc.auditRepo, uc.idGen, uc.metrics, domain.AuditActionExpenseDelete, "expense", id, expense, nil)

	return nil
}
