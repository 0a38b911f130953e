// Package expense implements expense persistence using PostgreSQL.
package expense

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides expense persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new expense repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const expenseColumns = `id, kitchen_id, paid_by, amount_cents, currency, category, note, spent_at, created_at, updated_at`

const createExpenseSQL = `
INSERT INTO expenses (id, kitchen_id, paid_by, amount_cents, currency, category, note, spent_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + expenseColumns

const getExpenseSQL = `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

const updateExpenseSQL = `
UPDATE expenses
SET amount_cents = $2, currency = $3, category = $4, note = $5, spent_at = $6, updated_at = now()
WHERE id = $1
RETURNING ` + expenseColumns

const deleteExpenseSQL = `DELETE FROM expenses WHERE id = $1`

const monthlySummarySQL = `
SELECT category, sum(amount_cents)
FROM expenses
WHERE kitchen_id = $1 AND spent_at >= $2 AND spent_at < $3
GROUP BY category`

// Filter narrows List. Zero-valued fields are ignored.
type Filter struct {
	Category *domain.ExpenseCategory
	PaidBy   *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// Create inserts an expense.
func (r *Repo) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanExpense(q.QueryRow(ctx, createExpenseSQL,
		e.ID, e.KitchenID, e.PaidBy, e.AmountCents, e.Currency,
		e.Category, e.Note, e.SpentAt, e.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "expense", e.ID)
	}
	return out, nil
}

// GetByID returns an expense by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanExpense(q.QueryRow(ctx, getExpenseSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "expense", id)
	}
	return out, nil
}

// List returns a kitchen's expenses matching the filter, newest spend first.
func (r *Repo) List(ctx context.Context, kitchenID uuid.UUID, f Filter) ([]*domain.Expense, error) {
	b := psql.
		Select("id", "kitchen_id", "paid_by", "amount_cents", "currency",
			"category", "note", "spent_at", "created_at", "updated_at").
		From("expenses").
		Where(sq.Eq{"kitchen_id": kitchenID}).
		OrderBy("spent_at DESC")

	if f.Category != nil {
		b = b.Where(sq.Eq{"category": *f.Category})
	}
	if f.PaidBy != nil {
		b = b.Where(sq.Eq{"paid_by": *f.PaidBy})
	}
	if f.From != nil {
		b = b.Where(sq.GtOrEq{"spent_at": *f.From})
	}
	if f.To != nil {
		b = b.Where(sq.Lt{"spent_at": *f.To})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list expenses query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []*domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update rewrites an expense's editable fields.
func (r *Repo) Update(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanExpense(q.QueryRow(ctx, updateExpenseSQL,
		e.ID, e.AmountCents, e.Currency, e.Category, e.Note, e.SpentAt))
	if err != nil {
		return nil, postgres.MapError(err, "expense", e.ID)
	}
	return out, nil
}

// Delete removes an expense.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpenseSQL, id)
	if err != nil {
		return postgres.MapError(err, "expense", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MonthlySummary aggregates one calendar month of spending by category.
func (r *Repo) MonthlySummary(ctx context.Context, kitchenID uuid.UUID, year int, month time.Month) (*domain.ExpenseSummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, monthlySummarySQL, kitchenID, from, to)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	defer rows.Close()

	sum := &domain.ExpenseSummary{
		KitchenID:  kitchenID,
		Year:       year,
		Month:      month,
		ByCategory: make(map[domain.ExpenseCategory]int64),
	}
	for rows.Next() {
		var cat domain.ExpenseCategory
		var cents int64
		if err := rows.Scan(&cat, &cents); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		sum.ByCategory[cat] = cents
		sum.TotalCents += cents
	}
	return sum, rows.Err()
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(&e.ID, &e.KitchenID, &e.PaidBy, &e.AmountCents, &e.Currency,
		&e.Category, &e.Note, &e.SpentAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
