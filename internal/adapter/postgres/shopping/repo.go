// Package shopping implements shopping list persistence using PostgreSQL.
package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides shopping list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shopping repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listColumns = `id, kitchen_id, name, created_by, created_at, updated_at`

const createListSQL = `
INSERT INTO shopping_lists (id, kitchen_id, name, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + listColumns

const getListSQL = `SELECT ` + listColumns + ` FROM shopping_lists WHERE id = $1`

const listListsSQL = `
SELECT ` + listColumns + ` FROM shopping_lists
WHERE kitchen_id = $1
ORDER BY created_at DESC`

const renameListSQL = `
UPDATE shopping_lists SET name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + listColumns

const deleteListSQL = `DELETE FROM shopping_lists WHERE id = $1`

// CreateList inserts a shopping list.
func (r *Repo) CreateList(ctx context.Context, l *domain.ShoppingList) (*domain.ShoppingList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanList(q.QueryRow(ctx, createListSQL,
		l.ID, l.KitchenID, l.Name, l.CreatedBy, l.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "shopping list", l.ID)
	}
	return out, nil
}

// GetList returns a shopping list by primary key.
func (r *Repo) GetList(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanList(q.QueryRow(ctx, getListSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "shopping list", id)
	}
	return out, nil
}

// ListByKitchen returns a kitchen's shopping lists, newest first.
func (r *Repo) ListByKitchen(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listListsSQL, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	defer rows.Close()

	var out []*domain.ShoppingList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping list: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// RenameList changes a list's name.
func (r *Repo) RenameList(ctx context.Context, id uuid.UUID, name string) (*domain.ShoppingList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanList(q.QueryRow(ctx, renameListSQL, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "shopping list", id)
	}
	return out, nil
}

// DeleteList removes a list; its lines cascade.
func (r *Repo) DeleteList(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteListSQL, id)
	if err != nil {
		return postgres.MapError(err, "shopping list", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping list %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanList(row pgx.Row) (*domain.ShoppingList, error) {
	var l domain.ShoppingList
	if err := row.Scan(&l.ID, &l.KitchenID, &l.Name, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
