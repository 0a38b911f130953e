package resolver

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/inventory"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/model"
)

func (r *queryResolver) InventoryItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	return r.inventory.GetItem(ctx, id)
}

func (r *queryResolver) InventoryItems(ctx context.Context, kitchenID uuid.UUID, filter *model.InventoryItemFilter) ([]*domain.InventoryItem, error) {
	var f postgresinv.ItemFilter
	if filter != nil {
		f.Category = filter.Category
		f.Search = filter.Search
		if filter.LowStock != nil {
			f.LowStock = *filter.LowStock
		}
	}
	return r.inventory.ListItems(ctx, kitchenID, f)
}

func (r *queryResolver) UsageLog(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error) {
	return r.inventory.ListUsage(ctx, itemID, since)
}

func (r *mutationResolver) CreateInventoryItem(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error) {
	return r.inventory.CreateItem(ctx, input)
}

func (r *mutationResolver) UpdateInventoryItem(ctx context.Context, input inventory.UpdateItemInput) (*domain.InventoryItem, error) {
	return r.inventory.UpdateItem(ctx, input)
}

func (r *mutationResolver) DeleteInventoryItem(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.inventory.DeleteItem(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) AddBatch(ctx context.Context, input inventory.AddBatchInput) (*domain.InventoryBatch, error) {
	return r.inventory.AddBatch(ctx, input)
}

func (r *mutationResolver) DiscardBatch(ctx context.Context, id uuid.UUID) (*domain.InventoryBatch, error) {
	return r.inventory.DiscardBatch(ctx, id)
}

func (r *mutationResolver) DeleteBatch(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.inventory.DeleteBatch(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// Consume draws down stock oldest-expiry-first and returns the touched batches.
func (r *mutationResolver) Consume(ctx context.Context, input inventory.ConsumeInput) ([]*domain.InventoryBatch, error) {
	return r.inventory.Consume(ctx, input)
}

// Quantity sums the item's active batches.
func (r *inventoryItemResolver) Quantity(ctx context.Context, obj *domain.InventoryItem) (float64, error) {
	return r.inventory.ItemQuantity(ctx, obj.ID)
}

func (r *inventoryItemResolver) Batches(ctx context.Context, obj *domain.InventoryItem) ([]*domain.InventoryBatch, error) {
	return r.inventory.ListBatches(ctx, obj.ID)
}
