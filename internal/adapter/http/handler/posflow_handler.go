package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/dto"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// POSFlowHandler handles POS cash-in wizard HTTP requests.
type POSFlowHandler struct {
	flowUC *usecase.POSFlowUseCase
}

// NewPOSFlowHandler creates a new POSFlowHandler.
func NewPOSFlowHandler(flowUC *usecase.POSFlowUseCase) *POSFlowHandler {
	return &POSFlowHandler{flowUC: flowUC}
}

// Start opens a new POS session at the amount step.
func (h *POSFlowHandler) Start(w http.ResponseWriter, r *http.Request) {
	flow, err := h.flowUC.StartFlow(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to start flow", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.FlowFromDomain(flow))
}

// Get retrieves a POS session by ID.
func (h *POSFlowHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing flow ID", "")
		return
	}

	flow, err := h.flowUC.GetFlow(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get flow", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FlowFromDomain(flow))
}

// Advance applies one operator action to a POS session.
func (h *POSFlowHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing flow ID", "")
		return
	}

	var req dto.AdvanceFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.flowUC.AdvanceFlow(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to advance flow", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AdvanceFlowFromUseCase(result))
}

// Cancel abandons a POS session.
func (h *POSFlowHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing flow ID", "")
		return
	}

	flow, err := h.flowUC.CancelFlow(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to cancel flow", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FlowFromDomain(flow))
}
