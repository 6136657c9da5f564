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

// ExpenseRepository implements usecase.ExpenseRepository.
type ExpenseRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool, retrier *Retrier) *ExpenseRepository {
	return &ExpenseRepository{pool: pool, retrier: retrier}
}

const expenseColumns = `id, description, category, source, paid_by_name,
	       out_of_pocket, reimbursed, receipt_path, amount,
	       date, seq, created_by, created_at, updated_at`

// Create inserts an expense, drawing Seq from the shared event sequence.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO cash_expenses (
			id, description, category, source, paid_by_name,
			out_of_pocket, reimbursed, receipt_path, amount,
			date, seq, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, nextval('cash_event_seq'), $11, $12, $13)
		RETURNING seq
	`

	return r.retrier.Retry(ctx, func() error {
		return r.pool.QueryRow(ctx, query,
			expense.ID,
			expense.Description,
			expense.Category,
			expense.Source,
			expense.PaidByName,
			expense.OutOfPocket,
			expense.Reimbursed,
			expense.ReceiptPath,
			expense.Amount,
			expense.Date,
			expense.CreatedBy,
			expense.CreatedAt,
			expense.UpdatedAt,
		).Scan(&expense.Seq)
	})
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM cash_expenses WHERE id = $1`

	expense, err := scanExpense(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}

	return expense, nil
}

// Update rewrites a stored expense, keeping its Seq.
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	query := `
		UPDATE cash_expenses
		SET description = $2, category = $3, source = $4, paid_by_name = $5,
		    out_of_pocket = $6, reimbursed = $7, receipt_path = $8,
		    amount = $9, date = $10, updated_at = $11
		WHERE id = $1
	`

	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query,
			expense.ID,
			expense.Description,
			expense.Category,
			expense.Source,
			expense.PaidByName,
			expense.OutOfPocket,
			expense.Reimbursed,
			expense.ReceiptPath,
			expense.Amount,
			expense.Date,
			expense.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrExpenseNotFound
		}
		return nil
	})
}

// Delete removes an expense.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cash_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

// List retrieves expenses matching the filter, ordered by (date, seq).
func (r *ExpenseRepository) List(ctx context.Context, filter usecase.ExpenseFilter) ([]*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM cash_expenses WHERE 1=1`
	args := []any{}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}

	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
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

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var x domain.Expense

	err := row.Scan(
		&x.ID,
		&x.Description,
		&x.Category,
		&x.Source,
		&x.PaidByName,
		&x.OutOfPocket,
		&x.Reimbursed,
		&x.ReceiptPath,
		&x.Amount,
		&x.Date,
		&x.Seq,
		&x.CreatedBy,
		&x.CreatedAt,
		&x.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &x, nil
}
