package usecase

import (
	"context"
	"time"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// SettingsUseCase loads and saves the settings aggregate.
type SettingsUseCase struct {
	settingsRepo SettingsRepository
	auditRepo    AuditRepository
	idGen        IDGenerator
	metrics      MetricsRecorder
}

// NewSettingsUseCase creates a new SettingsUseCase. metrics may be nil.
func NewSettingsUseCase(settingsRepo SettingsRepository, auditRepo AuditRepository, idGen IDGenerator, metrics MetricsRecorder) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		auditRepo:    auditRepo,
		idGen:        idGen,
		metrics:      ensureMetrics(metrics),
	}
}

// GetSettings returns the current settings, defaults included.
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (domain.Settings, error) {
	return uc.settingsRepo.Load(ctx)
}

// SaveSettings replaces the whole aggregate. Admin only. Opening balances
// anchor every balance computation, so a save silently reshapes all
// historical views; the audit row keeps the before state.
func (uc *SettingsUseCase) SaveSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	user, ok := domain.UserFromContext(ctx)
	if !ok || !user.Role.CanManageSettings() {
		return domain.Settings{}, domain.ErrInsufficientRole
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}

	before, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return domain.Settings{}, err
	}

	writeAudit(ctx, uc.auditRepo, uc.idGen, uc.metrics, domain.AuditActionSettingsSave, "settings", "settings", before, settings)

	return settings, nil
}
