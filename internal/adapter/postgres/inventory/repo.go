// Package inventory implements inventory item, batch, and usage log
// persistence using PostgreSQL.
package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides inventory persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, kitchen_id, name, category, default_unit, threshold, created_at, updated_at`

const createItemSQL = `
INSERT INTO inventory_items (id, kitchen_id, name, category, default_unit, threshold, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + itemColumns

const getItemSQL = `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`

const getItemsByIDsSQL = `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = ANY($1::uuid[])`

const updateItemSQL = `
UPDATE inventory_items
SET name = $2, category = $3, default_unit = $4, threshold = $5, updated_at = now()
WHERE id = $1
RETURNING ` + itemColumns

const deleteItemSQL = `DELETE FROM inventory_items WHERE id = $1`

const itemQuantitySQL = `
SELECT coalesce(sum(quantity), 0)
FROM inventory_batches
WHERE item_id = $1 AND status = 'ACTIVE'`

// CreateItem inserts an inventory item.
func (r *Repo) CreateItem(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanItem(q.QueryRow(ctx, createItemSQL,
		it.ID, it.KitchenID, it.Name, it.Category, it.DefaultUnit, it.Threshold, it.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "inventory item", it.ID)
	}
	return out, nil
}

// GetItem returns an inventory item by primary key.
func (r *Repo) GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanItem(q.QueryRow(ctx, getItemSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "inventory item", id)
	}
	return out, nil
}

// GetItemsByIDs returns items for a set of keys (dataloader batch).
// Missing keys are simply absent from the result.
func (r *Repo) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getItemsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get items by ids: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// UpdateItem changes an item's descriptive fields and threshold.
func (r *Repo) UpdateItem(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanItem(q.QueryRow(ctx, updateItemSQL,
		it.ID, it.Name, it.Category, it.DefaultUnit, it.Threshold))
	if err != nil {
		return nil, postgres.MapError(err, "inventory item", it.ID)
	}
	return out, nil
}

// DeleteItem removes an item; its batches and usage logs cascade.
func (r *Repo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteItemSQL, id)
	if err != nil {
		return postgres.MapError(err, "inventory item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ItemQuantity returns the sum of ACTIVE batch quantities for an item.
func (r *Repo) ItemQuantity(ctx context.Context, itemID uuid.UUID) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var qty float64
	if err := q.QueryRow(ctx, itemQuantitySQL, itemID).Scan(&qty); err != nil {
		return 0, fmt.Errorf("item quantity: %w", err)
	}
	return qty, nil
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := row.Scan(&it.ID, &it.KitchenID, &it.Name, &it.Category,
		&it.DefaultUnit, &it.Threshold, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func collectItems(rows pgx.Rows) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
