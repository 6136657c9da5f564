package handler

import (
	"encoding/json"
	"net/http"

	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/dto"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// ReconciliationHandler handles physical count HTTP requests.
type ReconciliationHandler struct {
	reconciliationUC *usecase.ReconciliationUseCase
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC *usecase.ReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// Create records a physical count against the expected balances.
func (h *ReconciliationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rec, err := h.reconciliationUC.Reconcile(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReconciliationFromDomain(rec))
}

// List lists reconciliation snapshots, most recent first.
func (h *ReconciliationHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.reconciliationUC.ListReconciliations(r.Context(), usecase.ListReconciliationsInput{
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list reconciliations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationsFromDomain(recs))
}

// Latest returns the most recent reconciliation snapshot.
func (h *ReconciliationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	rec, err := h.reconciliationUC.LatestReconciliation(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get latest reconciliation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromDomain(rec))
}
