package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

const lineColumns = `id, list_id, item_id, name, quantity, unit, is_checked, created_at, updated_at`

const insertLineSQL = `
INSERT INTO shopping_list_items (id, list_id, item_id, name, quantity, unit, is_checked, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + lineColumns

const getLineSQL = `SELECT ` + lineColumns + ` FROM shopping_list_items WHERE id = $1`

const listLinesSQL = `
SELECT ` + lineColumns + ` FROM shopping_list_items
WHERE list_id = $1
ORDER BY created_at`

const updateLineSQL = `
UPDATE shopping_list_items
SET name = $2, quantity = $3, unit = $4, is_checked = $5, updated_at = now()
WHERE id = $1
RETURNING ` + lineColumns

const deleteLineSQL = `DELETE FROM shopping_list_items WHERE id = $1`

const deleteCheckedSQL = `DELETE FROM shopping_list_items WHERE list_id = $1 AND is_checked`

// InsertLine adds one line to a list.
func (r *Repo) InsertLine(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanLine(q.QueryRow(ctx, insertLineSQL,
		li.ID, li.ListID, li.ItemID, li.Name, li.Quantity, li.Unit, li.IsChecked, li.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "shopping list item", li.ID)
	}
	return out, nil
}

// GetLine returns one line by primary key.
func (r *Repo) GetLine(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanLine(q.QueryRow(ctx, getLineSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "shopping list item", id)
	}
	return out, nil
}

// ListLines returns the lines of a list in insertion order.
func (r *Repo) ListLines(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listLinesSQL, listID)
	if err != nil {
		return nil, fmt.Errorf("list shopping lines: %w", err)
	}
	defer rows.Close()

	var out []*domain.ShoppingListItem
	for rows.Next() {
		li, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping line: %w", err)
		}
		out = append(out, li)
	}
	return out, rows.Err()
}

// UpdateLine rewrites a line's editable fields.
func (r *Repo) UpdateLine(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanLine(q.QueryRow(ctx, updateLineSQL,
		li.ID, li.Name, li.Quantity, li.Unit, li.IsChecked))
	if err != nil {
		return nil, postgres.MapError(err, "shopping list item", li.ID)
	}
	return out, nil
}

// DeleteLine removes one line.
func (r *Repo) DeleteLine(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteLineSQL, id)
	if err != nil {
		return postgres.MapError(err, "shopping list item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shopping list item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteChecked clears checked lines from a list and reports how many
// were removed.
func (r *Repo) DeleteChecked(ctx context.Context, listID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteCheckedSQL, listID)
	if err != nil {
		return 0, fmt.Errorf("delete checked lines: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanLine(row pgx.Row) (*domain.ShoppingListItem, error) {
	var li domain.ShoppingListItem
	err := row.Scan(&li.ID, &li.ListID, &li.ItemID, &li.Name, &li.Quantity,
		&li.Unit, &li.IsChecked, &li.CreatedAt, &li.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &li, nil
}
