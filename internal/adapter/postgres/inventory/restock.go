package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// RestockRow is an item whose remaining quantity is at or below its
// threshold, with the current total. Depleted items are included here,
// unlike the low-stock reminder pass.
type RestockRow struct {
	Item     domain.InventoryItem
	Quantity float64
}

const listRestockCandidatesSQL = `
SELECT i.id, i.kitchen_id, i.name, i.category, i.default_unit,
       i.threshold, i.created_at, i.updated_at,
       q.total
FROM inventory_items i
CROSS JOIN LATERAL (
	SELECT coalesce(sum(b.quantity), 0) AS total
	FROM inventory_batches b
	WHERE b.item_id = i.id AND b.status = 'ACTIVE'
) q
WHERE i.kitchen_id = $1 AND q.total <= i.threshold AND i.threshold > 0
ORDER BY i.name`

// ListRestockCandidates returns a kitchen's items that need buying:
// total active quantity at or below threshold, zero included.
func (r *Repo) ListRestockCandidates(ctx context.Context, kitchenID uuid.UUID) ([]*RestockRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRestockCandidatesSQL, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("list restock candidates: %w", err)
	}
	defer rows.Close()

	var out []*RestockRow
	for rows.Next() {
		var rr RestockRow
		err := rows.Scan(
			&rr.Item.ID, &rr.Item.KitchenID, &rr.Item.Name, &rr.Item.Category,
			&rr.Item.DefaultUnit, &rr.Item.Threshold, &rr.Item.CreatedAt,
			&rr.Item.UpdatedAt, &rr.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan restock candidate: %w", err)
		}
		out = append(out, &rr)
	}
	return out, rows.Err()
}
