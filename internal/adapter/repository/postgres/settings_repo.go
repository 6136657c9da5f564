package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// SettingsRepository implements usecase.SettingsRepository over a
// single-row table.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Load returns the saved settings, or the defaults when nothing has been
// saved yet.
func (r *SettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	query := `
		SELECT tax_rate, sales_people, quickbooks_realm_id, quickbooks_deposit_ref,
		       opening_register, opening_deposit, opening_date, updated_at
		FROM settings
		WHERE id = 1
	`

	var s domain.Settings
	var openingDate *time.Time

	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TaxRate,
		&s.SalesPeople,
		&s.QuickBooksRealmID,
		&s.QuickBooksDepositRef,
		&s.OpeningRegister,
		&s.OpeningDeposit,
		&openingDate,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	if openingDate != nil {
		s.OpeningDate = *openingDate
	}
	if s.SalesPeople == nil {
		s.SalesPeople = []string{}
	}

	return s, nil
}

// Save upserts the settings row.
func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	query := `
		INSERT INTO settings (
			id, tax_rate, sales_people, quickbooks_realm_id, quickbooks_deposit_ref,
			opening_register, opening_deposit, opening_date, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			tax_rate = EXCLUDED.tax_rate,
			sales_people = EXCLUDED.sales_people,
			quickbooks_realm_id = EXCLUDED.quickbooks_realm_id,
			quickbooks_deposit_ref = EXCLUDED.quickbooks_deposit_ref,
			opening_register = EXCLUDED.opening_register,
			opening_deposit = EXCLUDED.opening_deposit,
			opening_date = EXCLUDED.opening_date,
			updated_at = EXCLUDED.updated_at
	`

	var openingDate *time.Time
	if !settings.OpeningDate.IsZero() {
		d := settings.OpeningDate
		openingDate = &d
	}

	_, err := r.pool.Exec(ctx, query,
		settings.TaxRate,
		settings.SalesPeople,
		settings.QuickBooksRealmID,
		settings.QuickBooksDepositRef,
		settings.OpeningRegister,
		settings.OpeningDeposit,
		openingDate,
		settings.UpdatedAt,
	)

	return err
}
