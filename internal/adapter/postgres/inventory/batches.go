package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

const batchColumns = `id, item_id, quantity, unit, expires_at, status, created_at, updated_at`

const createBatchSQL = `
INSERT INTO inventory_batches (id, item_id, quantity, unit, expires_at, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + batchColumns

const getBatchSQL = `SELECT ` + batchColumns + ` FROM inventory_batches WHERE id = $1`

const listActiveBatchesFIFOSQL = `
SELECT ` + batchColumns + ` FROM inventory_batches
WHERE item_id = $1 AND status = 'ACTIVE' AND quantity > 0
ORDER BY expires_at ASC NULLS LAST, created_at ASC
FOR UPDATE`

const listBatchesByItemSQL = `
SELECT ` + batchColumns + ` FROM inventory_batches
WHERE item_id = $1
ORDER BY created_at`

const updateBatchSQL = `
UPDATE inventory_batches
SET quantity = $2, status = $3, updated_at = now()
WHERE id = $1
RETURNING ` + batchColumns

const deleteBatchSQL = `DELETE FROM inventory_batches WHERE id = $1`

// CreateBatch inserts a batch for an item.
func (r *Repo) CreateBatch(ctx context.Context, b *domain.InventoryBatch) (*domain.InventoryBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanBatch(q.QueryRow(ctx, createBatchSQL,
		b.ID, b.ItemID, b.Quantity, b.Unit, b.ExpiresAt, b.Status, b.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "inventory batch", b.ID)
	}
	return out, nil
}

// GetBatch returns a batch by primary key.
func (r *Repo) GetBatch(ctx context.Context, id uuid.UUID) (*domain.InventoryBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanBatch(q.QueryRow(ctx, getBatchSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "inventory batch", id)
	}
	return out, nil
}

// ListActiveBatchesFIFO returns an item's ACTIVE batches in draw-down
// order (soonest expiry first, undated batches last, then oldest),
// locked for update. Consumption walks this list inside a transaction.
func (r *Repo) ListActiveBatchesFIFO(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listActiveBatchesFIFOSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("list active batches: %w", err)
	}
	defer rows.Close()

	return collectBatches(rows)
}

// ListBatchesByItem returns all batches of an item, oldest first.
func (r *Repo) ListBatchesByItem(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listBatchesByItemSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	return collectBatches(rows)
}

// UpdateBatch writes a batch's quantity and status.
func (r *Repo) UpdateBatch(ctx context.Context, id uuid.UUID, quantity float64, status domain.BatchStatus) (*domain.InventoryBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanBatch(q.QueryRow(ctx, updateBatchSQL, id, quantity, status))
	if err != nil {
		return nil, postgres.MapError(err, "inventory batch", id)
	}
	return out, nil
}

// DeleteBatch removes a batch outright.
func (r *Repo) DeleteBatch(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBatchSQL, id)
	if err != nil {
		return postgres.MapError(err, "inventory batch", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory batch %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkExpiredBatches flips ACTIVE batches whose expiry has passed to
// EXPIRED and returns the affected rows. Used by the expiry sweep.
const markExpiredBatchesSQL = `
UPDATE inventory_batches
SET status = 'EXPIRED', updated_at = now()
WHERE status = 'ACTIVE' AND expires_at IS NOT NULL AND expires_at < $1
RETURNING ` + batchColumns

func (r *Repo) MarkExpiredBatches(ctx context.Context, now time.Time) ([]*domain.InventoryBatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, markExpiredBatchesSQL, now)
	if err != nil {
		return nil, fmt.Errorf("mark expired batches: %w", err)
	}
	defer rows.Close()

	return collectBatches(rows)
}

func scanBatch(row pgx.Row) (*domain.InventoryBatch, error) {
	var b domain.InventoryBatch
	err := row.Scan(&b.ID, &b.ItemID, &b.Quantity, &b.Unit, &b.ExpiresAt,
		&b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBatches(rows pgx.Rows) ([]*domain.InventoryBatch, error) {
	var out []*domain.InventoryBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory batch: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
