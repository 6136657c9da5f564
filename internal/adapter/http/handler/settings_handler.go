package handler

import (
	"encoding/json"
	"net/http"

	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/dto"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// SettingsHandler handles shop settings HTTP requests.
type SettingsHandler struct {
	settingsUC *usecase.SettingsUseCase
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsUC *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// Get returns the current settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUC.GetSettings(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load settings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SettingsFromDomain(settings))
}

// Save replaces the settings. Admin only.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	settings, err := h.settingsUC.SaveSettings(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save settings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SettingsFromDomain(settings))
}
