package usecase

import (
	"context"
	"time"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// callerID resolves the acting user from the context, falling back to
// "system" for unattributed work (CLI, startup tasks).
func callerID(ctx context.Context) string {
	if user, ok := domain.UserFromContext(ctx); ok {
		return user.ID
	}

	return "system"
}

// writeAudit records an audit row. Audit failures are swallowed; the
// business write has already happened.
func writeAudit(
	ctx context.Context,
	auditRepo AuditRepository,
	idGen IDGenerator,
	metrics MetricsRecorder,
	action domain.AuditAction,
	resourceType, resourceID string,
	before, after any,
) {
	if auditRepo == nil {
		return
	}

	log := &domain.AuditLog{
		ID:           idGen.Generate(),
		UserID:       callerID(ctx),
		Action:       string(action),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	}
	if before != nil {
		log.BeforeState = domain.MarshalState(before)
	}
	if after != nil {
		log.AfterState = domain.MarshalState(after)
	}

	_ = auditRepo.Create(ctx, log)
	metrics.AuditLogged(log.Action, log.Status)
}
