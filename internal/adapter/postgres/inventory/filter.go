package inventory

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// ItemFilter narrows ListItems. Zero-valued fields are ignored.
type ItemFilter struct {
	Category *string
	Search   *string
	LowStock bool
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListItems returns a kitchen's items matching the filter, ordered by name.
func (r *Repo) ListItems(ctx context.Context, kitchenID uuid.UUID, f ItemFilter) ([]*domain.InventoryItem, error) {
	b := psql.
		Select("i.id", "i.kitchen_id", "i.name", "i.category", "i.default_unit",
			"i.threshold", "i.created_at", "i.updated_at").
		From("inventory_items i").
		Where(sq.Eq{"i.kitchen_id": kitchenID}).
		OrderBy("i.name")

	if f.Category != nil {
		b = b.Where(sq.Eq{"i.category": *f.Category})
	}
	if f.Search != nil {
		b = b.Where(sq.ILike{"i.name": "%" + *f.Search + "%"})
	}
	if f.LowStock {
		// Low stock means some quantity remains but not more than the
		// threshold. Items at exactly zero are depleted, not low.
		b = b.Where(`0 < (SELECT coalesce(sum(b.quantity), 0)
			FROM inventory_batches b
			WHERE b.item_id = i.id AND b.status = 'ACTIVE')`).
			Where(`(SELECT coalesce(sum(b.quantity), 0)
			FROM inventory_batches b
			WHERE b.item_id = i.id AND b.status = 'ACTIVE') <= i.threshold`)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}
