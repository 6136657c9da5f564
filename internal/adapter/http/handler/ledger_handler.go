package handler

import (
	"net/http"

	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/dto"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// LedgerHandler serves the running-balance ledger and the dashboard summary.
type LedgerHandler struct {
	ledgerUC  *usecase.LedgerUseCase
	summaryUC *usecase.SummaryUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase, summaryUC *usecase.SummaryUseCase) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, summaryUC: summaryUC}
}

// GetLedger builds the ledger for a date range. Without query parameters
// the range defaults to the current week.
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.ledgerUC.GetLedger(r.Context(), usecase.GetLedgerInput{
		StartDate: parseDateQuery(r, "start_date"),
		EndDate:   parseDateQuery(r, "end_date"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromUseCase(ledger))
}

// GetSummary builds the dashboard summary, optionally as of a given date.
func (h *LedgerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryUC.GetSummary(r.Context(), usecase.GetSummaryInput{
		At: parseDateQuery(r, "at"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(summary))
}
