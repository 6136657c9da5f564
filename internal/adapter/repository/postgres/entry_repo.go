package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool, retrier *Retrier) *EntryRepository {
	return &EntryRepository{pool: pool, retrier: retrier}
}

const entryColumns = `id, type, source, category, customer_name, invoice_number, notes,
	       amount, register_amount, deposit_amount, change_given,
	       date, seq, created_by, created_at, updated_at`

// Create inserts an entry. Seq is drawn from the event sequence shared
// with expenses, so same-date rows order consistently across both tables.
func (r *EntryRepository) Create(ctx context.Context, entry *domain.CashEntry) error {
	query := `
		INSERT INTO cash_entries (
			id, type, source, category, customer_name, invoice_number, notes,
			amount, register_amount, deposit_amount, change_given,
			date, seq, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, nextval('cash_event_seq'), $13, $14, $15)
		RETURNING seq
	`

	return r.retrier.Retry(ctx, func() error {
		return r.pool.QueryRow(ctx, query,
			entry.ID,
			entry.Type,
			entry.Source,
			entry.Category,
			entry.CustomerName,
			entry.InvoiceNumber,
			entry.Notes,
			entry.Amount,
			entry.RegisterAmount,
			entry.DepositAmount,
			entry.ChangeGiven,
			entry.Date,
			entry.CreatedBy,
			entry.CreatedAt,
			entry.UpdatedAt,
		).Scan(&entry.Seq)
	})
}

// GetByID retrieves an entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.CashEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM cash_entries WHERE id = $1`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// Update rewrites a stored entry. Seq is never touched; the row keeps its
// place in the timeline.
func (r *EntryRepository) Update(ctx context.Context, entry *domain.CashEntry) error {
	query := `
		UPDATE cash_entries
		SET type = $2, source = $3, category = $4, customer_name = $5,
		    invoice_number = $6, notes = $7, amount = $8,
		    register_amount = $9, deposit_amount = $10, change_given = $11,
		    date = $12, updated_at = $13
		WHERE id = $1
	`

	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query,
			entry.ID,
			entry.Type,
			entry.Source,
			entry.Category,
			entry.CustomerName,
			entry.InvoiceNumber,
			entry.Notes,
			entry.Amount,
			entry.RegisterAmount,
			entry.DepositAmount,
			entry.ChangeGiven,
			entry.Date,
			entry.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrEntryNotFound
		}
		return nil
	})
}

// Delete removes an entry.
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cash_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// List retrieves entries matching the filter, ordered by (date, seq).
func (r *EntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.CashEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM cash_entries WHERE 1=1`
	args := []any{}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}

	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
	}

	if filter.CreatedBy != "" {
		args = append(args, filter.CreatedBy)
		query += fmt.Sprintf(` AND created_by = $%d`, len(args))
	}

	query += ` ORDER BY date, seq`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.CashEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.CashEntry, error) {
	var e domain.CashEntry

	err := row.Scan(
		&e.ID,
		&e.Type,
		&e.Source,
		&e.Category,
		&e.CustomerName,
		&e.InvoiceNumber,
		&e.Notes,
		&e.Amount,
		&e.RegisterAmount,
		&e.DepositAmount,
		&e.ChangeGiven,
		&e.Date,
		&e.Seq,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
