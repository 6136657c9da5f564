package handler

import (
	"net/http"

	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/dto"
	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// AuditHandler serves the audit trail.
type AuditHandler struct {
	auditUC *usecase.AuditUseCase
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditUC *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// List lists audit logs matching the query filters.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	logs, err := h.auditUC.ListAuditLogs(r.Context(), domain.AuditFilter{
		UserID:       q.Get("user_id"),
		Action:       q.Get("action"),
		ResourceType: q.Get("resource_type"),
		ResourceID:   q.Get("resource_id"),
		StartDate:    parseDateQuery(r, "start_date"),
		EndDate:      parseDateQuery(r, "end_date"),
		Limit:        parseIntQuery(r, "limit", 0),
		Offset:       parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list audit logs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditLogsFromDomain(logs))
}
