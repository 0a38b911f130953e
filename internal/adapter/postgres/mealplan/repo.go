// Package mealplan implements meal plan and recipe persistence using
// PostgreSQL.
package mealplan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides meal plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meal plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, kitchen_id, date, meal, title, recipe_id, notes, created_by, created_at, updated_at`

const createEntrySQL = `
INSERT INTO meal_plan_entries (id, kitchen_id, date, meal, title, recipe_id, notes, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + entryColumns

const getEntrySQL = `SELECT ` + entryColumns + ` FROM meal_plan_entries WHERE id = $1`

const listEntriesSQL = `
SELECT ` + entryColumns + ` FROM meal_plan_entries
WHERE kitchen_id = $1 AND date >= $2 AND date <= $3
ORDER BY date, meal`

const updateEntrySQL = `
UPDATE meal_plan_entries
SET date = $2, meal = $3, title = $4, recipe_id = $5, notes = $6, updated_at = now()
WHERE id = $1
RETURNING ` + entryColumns

const deleteEntrySQL = `DELETE FROM meal_plan_entries WHERE id = $1`

// CreateEntry inserts a meal plan entry. A duplicate (kitchen, date,
// meal) slot surfaces as domain.ErrAlreadyExists.
func (r *Repo) CreateEntry(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanEntry(q.QueryRow(ctx, createEntrySQL,
		e.ID, e.KitchenID, e.Date, e.Meal, e.Title, e.RecipeID, e.Notes, e.CreatedBy, e.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "meal plan entry", e.ID)
	}
	return out, nil
}

// GetEntry returns a meal plan entry by primary key.
func (r *Repo) GetEntry(ctx context.Context, id uuid.UUID) (*domain.MealPlanEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanEntry(q.QueryRow(ctx, getEntrySQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "meal plan entry", id)
	}
	return out, nil
}

// ListEntries returns a kitchen's entries within [from, to] inclusive,
// in calendar order.
func (r *Repo) ListEntries(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listEntriesSQL, kitchenID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list meal plan entries: %w", err)
	}
	defer rows.Close()

	var out []*domain.MealPlanEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal plan entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateEntry rewrites an entry's editable fields.
func (r *Repo) UpdateEntry(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanEntry(q.QueryRow(ctx, updateEntrySQL,
		e.ID, e.Date, e.Meal, e.Title, e.RecipeID, e.Notes))
	if err != nil {
		return nil, postgres.MapError(err, "meal plan entry", e.ID)
	}
	return out, nil
}

// DeleteEntry removes an entry.
func (r *Repo) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteEntrySQL, id)
	if err != nil {
		return postgres.MapError(err, "meal plan entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal plan entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanEntry(row pgx.Row) (*domain.MealPlanEntry, error) {
	var e domain.MealPlanEntry
	err := row.Scan(&e.ID, &e.KitchenID, &e.Date, &e.Meal, &e.Title,
		&e.RecipeID, &e.Notes, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
