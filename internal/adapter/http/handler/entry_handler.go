package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/dto"
	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// EntryService is the use case surface the entry handler needs.
type EntryService interface {
	RecordCashIn(ctx context.Context, input usecase.RecordCashInInput) (*usecase.EntryResult, error)
	RecordEntry(ctx context.Context, input usecase.RecordEntryInput) (*domain.CashEntry, error)
	GetEntry(ctx context.Context, id string) (*domain.CashEntry, error)
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.CashEntry, error)
	PatchEntry(ctx context.Context, id string, input usecase.PatchEntryInput) (*domain.CashEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// EntryHandler handles cash entry HTTP requests.
type EntryHandler struct {
	entryUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC EntryService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// RecordCashIn records a customer payment through the split calculator.
func (h *EntryHandler) RecordCashIn(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordCashInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.entryUC.RecordCashIn(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record cash in", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryResultFromUseCase(result))
}

// Record records a cash-out or a pool transfer.
func (h *EntryHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.entryUC.RecordEntry(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Get retrieves an entry by ID.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	entry, err := h.entryUC.GetEntry(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// List lists entries, optionally filtered by date range.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryUC.ListEntries(r.Context(), usecase.ListEntriesInput{
		StartDate: parseDateQuery(r, "start_date"),
		EndDate:   parseDateQuery(r, "end_date"),
		CreatedBy: r.URL.Query().Get("created_by"),
		Limit:     parseIntQuery(r, "limit", 0),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// Patch applies a partial update to an entry.
func (h *EntryHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	var req dto.PatchEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.entryUC.PatchEntry(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Delete removes an entry. Admin only.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.entryUC.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
