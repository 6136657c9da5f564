package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// ReconciliationRepository implements usecase.ReconciliationRepository.
// Snapshots are insert-only; there is no update path.
type ReconciliationRepository struct {
	pool *pgxpool.Pool
}

// NewReconciliationRepository creates a new ReconciliationRepository.
func NewReconciliationRepository(pool *pgxpool.Pool) *ReconciliationRepository {
	return &ReconciliationRepository{pool: pool}
}

const reconciliationColumns = `id, date, notes, register_actual, deposit_actual,
	       register_expected, deposit_expected, discrepancy, created_by, created_at`

// Create inserts a reconciliation snapshot.
func (r *ReconciliationRepository) Create(ctx context.Context, rec *domain.CashReconciliation) error {
	query := `
		INSERT INTO cash_reconciliations (
			id, date, notes, register_actual, deposit_actual,
			register_expected, deposit_expected, discrepancy, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.Date,
		rec.Notes,
		rec.RegisterActual,
		rec.DepositActual,
		rec.RegisterExpected,
		rec.DepositExpected,
		rec.Discrepancy,
		rec.CreatedBy,
		rec.CreatedAt,
	)

	return err
}

// List retrieves snapshots, most recent first.
func (r *ReconciliationRepository) List(ctx context.Context, limit, offset int) ([]*domain.CashReconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + `
		FROM cash_reconciliations
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*domain.CashReconciliation
	for rows.Next() {
		rec, err := scanReconciliation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// Latest retrieves the most recent snapshot.
func (r *ReconciliationRepository) Latest(ctx context.Context) (*domain.CashReconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + `
		FROM cash_reconciliations
		ORDER BY date DESC, created_at DESC
		LIMIT 1
	`

	rec, err := scanReconciliation(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReconciliationNotFound
		}
		return nil, err
	}

	return rec, nil
}

func scanReconciliation(row pgx.Row) (*domain.CashReconciliation, error) {
	var rec domain.CashReconciliation

	err := row.Scan(
		&rec.ID,
		&rec.Date,
		&rec.Notes,
		&rec.RegisterActual,
		&rec.DepositActual,
		&rec.RegisterExpected,
		&rec.DepositExpected,
		&rec.Discrepancy,
		&rec.CreatedBy,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
