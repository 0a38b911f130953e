package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

const usageColumns = `id, item_id, batch_id, user_id, action, quantity, created_at`

const insertUsageSQL = `
INSERT INTO usage_logs (id, item_id, batch_id, user_id, action, quantity, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + usageColumns

const listUsageSQL = `
SELECT ` + usageColumns + ` FROM usage_logs
WHERE item_id = $1 AND created_at >= $2
ORDER BY created_at DESC`

// consumptionSinceSQL sums quantities of consumption-type actions per
// item across a kitchen since a cutoff. Wasted and expired draw-downs
// do not predict future demand, so they are excluded.
const consumptionSinceSQL = `
SELECT u.item_id, sum(u.quantity)
FROM usage_logs u
JOIN inventory_items i ON i.id = u.item_id
WHERE i.kitchen_id = $1
  AND u.created_at >= $2
  AND u.action IN ('USED', 'CONSUMED', 'COOKED')
GROUP BY u.item_id`

// InsertUsage records a draw-down event.
func (r *Repo) InsertUsage(ctx context.Context, u *domain.UsageLog) (*domain.UsageLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.UsageLog
	err := q.QueryRow(ctx, insertUsageSQL,
		u.ID, u.ItemID, u.BatchID, u.UserID, u.Action, u.Quantity, u.CreatedAt).
		Scan(&out.ID, &out.ItemID, &out.BatchID, &out.UserID, &out.Action, &out.Quantity, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "usage log", u.ID)
	}
	return &out, nil
}

// ListUsage returns an item's usage history since a cutoff, newest first.
func (r *Repo) ListUsage(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listUsageSQL, itemID, since)
	if err != nil {
		return nil, fmt.Errorf("list usage: %w", err)
	}
	defer rows.Close()

	var out []*domain.UsageLog
	for rows.Next() {
		var u domain.UsageLog
		err := rows.Scan(&u.ID, &u.ItemID, &u.BatchID, &u.UserID, &u.Action, &u.Quantity, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan usage log: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// ConsumptionSince returns total consumed quantity per item for a
// kitchen since the cutoff. Feeds the restock-prediction sweep.
func (r *Repo) ConsumptionSince(ctx context.Context, kitchenID uuid.UUID, since time.Time) (map[uuid.UUID]float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, consumptionSinceSQL, kitchenID, since)
	if err != nil {
		return nil, fmt.Errorf("consumption since: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]float64)
	for rows.Next() {
		var itemID uuid.UUID
		var total float64
		if err := rows.Scan(&itemID, &total); err != nil {
			return nil, fmt.Errorf("scan consumption row: %w", err)
		}
		out[itemID] = total
	}
	return out, rows.Err()
}
