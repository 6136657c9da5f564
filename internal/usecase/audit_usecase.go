package usecase

import (
	"context"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// AuditUseCase exposes the audit trail for review.
type AuditUseCase struct {
	auditRepo AuditRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListAuditLogs lists audit rows matching the filter, newest first.
func (uc *AuditUseCase) ListAuditLogs(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	if err := domain.ValidateDateRange(filter.StartDate, filter.EndDate); err != nil {
		return nil, err
	}

	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)

	return uc.auditRepo.List(ctx, filter)
}
