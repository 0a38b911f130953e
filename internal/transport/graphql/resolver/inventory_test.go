package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/inventory"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/model"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

func TestInventoryItems_FilterConversion(t *testing.T) {
	t.Parallel()

	category := "dairy"
	lowStock := true

	var gotFilter postgresinv.ItemFilter
	mock := &inventoryServiceMock{
		ListItemsFunc: func(ctx context.Context, kitchenID uuid.UUID, filter postgresinv.ItemFilter) ([]*domain.InventoryItem, error) {
			gotFilter = filter
			return []*domain.InventoryItem{}, nil
		},
	}

	resolver := &queryResolver{&Resolver{inventory: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := resolver.InventoryItems(ctx, uuid.New(), &model.InventoryItemFilter{
		Category: &category,
		LowStock: &lowStock,
	})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Category)
	require.Equal(t, "dairy", *gotFilter.Category)
	require.Nil(t, gotFilter.Search)
	require.True(t, gotFilter.LowStock)
}

func TestInventoryItems_NilFilter(t *testing.T) {
	t.Parallel()

	mock := &inventoryServiceMock{
		ListItemsFunc: func(ctx context.Context, kitchenID uuid.UUID, filter postgresinv.ItemFilter) ([]*domain.InventoryItem, error) {
			require.Equal(t, postgresinv.ItemFilter{}, filter)
			return []*domain.InventoryItem{}, nil
		},
	}

	resolver := &queryResolver{&Resolver{inventory: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := resolver.InventoryItems(ctx, uuid.New(), nil)

	require.NoError(t, err)
}

func TestConsume_ReturnsTouchedBatches(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()

	mock := &inventoryServiceMock{
		ConsumeFunc: func(ctx context.Context, input inventory.ConsumeInput) ([]*domain.InventoryBatch, error) {
			require.Equal(t, itemID, input.ItemID)
			return []*domain.InventoryBatch{
				{ID: uuid.New(), ItemID: itemID, Status: domain.BatchStatusUsed},
				{ID: uuid.New(), ItemID: itemID, Status: domain.BatchStatusActive},
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{inventory: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.Consume(ctx, inventory.ConsumeInput{
		ItemID:   itemID,
		Quantity: 2.5,
		Action:   domain.UsageActionCooked,
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, domain.BatchStatusUsed, result[0].Status)
}

func TestInventoryItemQuantity_SumsBatches(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()

	mock := &inventoryServiceMock{
		ItemQuantityFunc: func(ctx context.Context, id uuid.UUID) (float64, error) {
			require.Equal(t, itemID, id)
			return 3.5, nil
		},
	}

	resolver := &inventoryItemResolver{&Resolver{inventory: mock}}

	qty, err := resolver.Quantity(context.Background(), &domain.InventoryItem{ID: itemID})

	require.NoError(t, err)
	require.Equal(t, 3.5, qty)
}
