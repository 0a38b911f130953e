package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/dataloader"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

type itemLoaderRepoMock struct {
	result []*domain.InventoryItem
	err    error
}

func (m *itemLoaderRepoMock) GetItemsByIDs(_ context.Context, _ []uuid.UUID) ([]*domain.InventoryItem, error) {
	return m.result, m.err
}

func TestShoppingListItemItem_FreeFormLine(t *testing.T) {
	t.Parallel()

	resolver := &shoppingListItemResolver{&Resolver{}}

	// Free-form lines have no linked item; the loader must not be hit.
	result, err := resolver.Item(context.Background(), &domain.ShoppingListItem{Name: "birthday candles"})

	require.NoError(t, err)
	require.Nil(t, result)
}

func TestShoppingListItemItem_LinkedLine(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()

	loaders := dataloader.NewLoaders(&dataloader.Repos{
		Item: &itemLoaderRepoMock{result: []*domain.InventoryItem{{ID: itemID, Name: "Milk"}}},
	})
	ctx := dataloader.WithLoaders(context.Background(), loaders)

	resolver := &shoppingListItemResolver{&Resolver{}}

	result, err := resolver.Item(ctx, &domain.ShoppingListItem{ItemID: &itemID})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, "Milk", result.Name)
}

func TestSetItemChecked_Passthrough(t *testing.T) {
	t.Parallel()

	lineID := uuid.New()

	mock := &shoppingServiceMock{
		SetLineCheckedFunc: func(ctx context.Context, id uuid.UUID, checked bool) (*domain.ShoppingListItem, error) {
			require.Equal(t, lineID, id)
			require.True(t, checked)
			return &domain.ShoppingListItem{ID: lineID, IsChecked: true}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{shopping: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.SetItemChecked(ctx, lineID, true)

	require.NoError(t, err)
	require.True(t, result.IsChecked)
}

func TestClearCheckedItems_ReturnsCount(t *testing.T) {
	t.Parallel()

	mock := &shoppingServiceMock{
		ClearCheckedFunc: func(ctx context.Context, listID uuid.UUID) (int, error) {
			return 4, nil
		},
	}

	resolver := &mutationResolver{&Resolver{shopping: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	n, err := resolver.ClearCheckedItems(ctx, uuid.New())

	require.NoError(t, err)
	require.Equal(t, 4, n)
}
