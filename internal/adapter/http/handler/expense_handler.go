package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/dto"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// ReceiptOpener resolves a stored receipt path to a servable file.
type ReceiptOpener interface {
	Open(rel string) (string, error)
}

// ExpenseHandler handles expense HTTP requests.
type ExpenseHandler struct {
	expenseUC *usecase.ExpenseUseCase
	receipts  ReceiptOpener
}

// NewExpenseHandler creates a new ExpenseHandler. receipts may be nil when
// receipt storage is disabled.
func NewExpenseHandler(expenseUC *usecase.ExpenseUseCase, receipts ReceiptOpener) *ExpenseHandler {
	return &ExpenseHandler{expenseUC: expenseUC, receipts: receipts}
}

// Create records an expense.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.expenseUC.CreateExpense(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExpenseFromDomain(expense))
}

// Get retrieves an expense by ID.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	expense, err := h.expenseUC.GetExpense(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// List lists expenses, optionally filtered by date range.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseUC.ListExpenses(r.Context(), usecase.ListExpensesInput{
		StartDate: parseDateQuery(r, "start_date"),
		EndDate:   parseDateQuery(r, "end_date"),
		Limit:     parseIntQuery(r, "limit", 0),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpensesFromDomain(expenses))
}

// Patch applies a partial update to an expense.
func (h *ExpenseHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	var req dto.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.expenseUC.UpdateExpense(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// SetReimbursed marks an out-of-pocket expense paid back or re-opens it.
func (h *ExpenseHandler) SetReimbursed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	var req dto.SetReimbursedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.expenseUC.SetReimbursed(r.Context(), id, req.Reimbursed)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// Delete removes an expense. Admin only.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	if err := h.expenseUC.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete expense", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Receipt serves the stored receipt file for an expense.
func (h *ExpenseHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	expense, err := h.expenseUC.GetExpense(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get expense", err.Error())
		return
	}

	if expense.ReceiptPath == "" || h.receipts == nil {
		writeError(w, http.StatusNotFound, "expense has no receipt", "")
		return
	}

	path, err := h.receipts.Open(expense.ReceiptPath)
	if err != nil {
		writeError(w, http.StatusNotFound, "receipt not found", err.Error())
		return
	}

	http.ServeFile(w, r, path)
}
