package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// LowStockRow is an item whose remaining quantity is above zero but at
// or below its threshold.
type LowStockRow struct {
	Item     domain.InventoryItem
	Quantity float64
}

// ExpiringBatchRow is an ACTIVE batch expiring inside the sweep window,
// joined with its item for reminder wording.
type ExpiringBatchRow struct {
	Batch    domain.InventoryBatch
	ItemName string
	Kitchen  uuid.UUID
}

// ConsumptionStatRow is an item with its remaining quantity and its
// total consumed quantity since the cutoff, for restock prediction.
type ConsumptionStatRow struct {
	Item     domain.InventoryItem
	Quantity float64
	Consumed float64
}

const listLowStockSQL = `
SELECT ` + itemColumns + `, q.total
FROM inventory_items,
LATERAL (
    SELECT coalesce(sum(b.quantity), 0) AS total
    FROM inventory_batches b
    WHERE b.item_id = inventory_items.id AND b.status = 'ACTIVE'
) q
WHERE q.total > 0 AND q.total <= threshold`

const listExpiringBatchesSQL = `
SELECT b.id, b.item_id, b.quantity, b.unit, b.expires_at, b.status, b.created_at, b.updated_at,
       i.name, i.kitchen_id
FROM inventory_batches b
JOIN inventory_items i ON i.id = b.item_id
WHERE b.status = 'ACTIVE'
  AND b.quantity > 0
  AND b.expires_at IS NOT NULL
  AND b.expires_at >= $1
  AND b.expires_at <= $2`

const listConsumptionStatsSQL = `
SELECT ` + itemColumns + `, q.total, c.consumed
FROM inventory_items,
LATERAL (
    SELECT coalesce(sum(b.quantity), 0) AS total
    FROM inventory_batches b
    WHERE b.item_id = inventory_items.id AND b.status = 'ACTIVE'
) q,
LATERAL (
    SELECT coalesce(sum(u.quantity), 0) AS consumed
    FROM usage_logs u
    WHERE u.item_id = inventory_items.id
      AND u.created_at >= $1
      AND u.action IN ('USED', 'CONSUMED', 'COOKED')
) c
WHERE c.consumed > 0`

// ListLowStock returns every low-stock item across all kitchens.
// Depleted items (quantity exactly zero) are not low stock.
func (r *Repo) ListLowStock(ctx context.Context) ([]LowStockRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listLowStockSQL)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var out []LowStockRow
	for rows.Next() {
		var row LowStockRow
		it := &row.Item
		err := rows.Scan(&it.ID, &it.KitchenID, &it.Name, &it.Category,
			&it.DefaultUnit, &it.Threshold, &it.CreatedAt, &it.UpdatedAt, &row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListConsumptionStats returns, per item with any consumption since the
// cutoff, the remaining active quantity and the consumed total, across
// all kitchens.
func (r *Repo) ListConsumptionStats(ctx context.Context, since time.Time) ([]ConsumptionStatRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listConsumptionStatsSQL, since)
	if err != nil {
		return nil, fmt.Errorf("list consumption stats: %w", err)
	}
	defer rows.Close()

	var out []ConsumptionStatRow
	for rows.Next() {
		var row ConsumptionStatRow
		it := &row.Item
		err := rows.Scan(&it.ID, &it.KitchenID, &it.Name, &it.Category,
			&it.DefaultUnit, &it.Threshold, &it.CreatedAt, &it.UpdatedAt,
			&row.Quantity, &row.Consumed)
		if err != nil {
			return nil, fmt.Errorf("scan consumption stat row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListExpiringBatches returns ACTIVE batches whose expiry falls inside
// [now, now+window], across all kitchens.
func (r *Repo) ListExpiringBatches(ctx context.Context, now time.Time, window time.Duration) ([]ExpiringBatchRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listExpiringBatchesSQL, now, now.Add(window))
	if err != nil {
		return nil, fmt.Errorf("list expiring batches: %w", err)
	}
	defer rows.Close()

	var out []ExpiringBatchRow
	for rows.Next() {
		var row ExpiringBatchRow
		b := &row.Batch
		err := rows.Scan(&b.ID, &b.ItemID, &b.Quantity, &b.Unit, &b.ExpiresAt,
			&b.Status, &b.CreatedAt, &b.UpdatedAt, &row.ItemName, &row.Kitchen)
		if err != nil {
			return nil, fmt.Errorf("scan expiring batch row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
