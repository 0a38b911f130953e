package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/shopping"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/dataloader"
)

func (r *queryResolver) ShoppingList(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
	return r.shopping.GetList(ctx, id)
}

func (r *queryResolver) ShoppingLists(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error) {
	return r.shopping.ListByKitchen(ctx, kitchenID)
}

func (r *queryResolver) RestockSuggestions(ctx context.Context, kitchenID uuid.UUID) ([]*shopping.RestockSuggestion, error) {
	suggestions, err := r.shopping.RestockSuggestions(ctx, kitchenID)
	if err != nil {
		return nil, err
	}
	out := make([]*shopping.RestockSuggestion, len(suggestions))
	for i := range suggestions {
		out[i] = &suggestions[i]
	}
	return out, nil
}

func (r *mutationResolver) CreateShoppingList(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error) {
	return r.shopping.CreateList(ctx, input)
}

func (r *mutationResolver) RenameShoppingList(ctx context.Context, id uuid.UUID, name string) (*domain.ShoppingList, error) {
	return r.shopping.RenameList(ctx, id, name)
}

func (r *mutationResolver) DeleteShoppingList(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.shopping.DeleteList(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) AddShoppingListItem(ctx context.Context, input shopping.AddLineInput) (*domain.ShoppingListItem, error) {
	return r.shopping.AddLine(ctx, input)
}

func (r *mutationResolver) UpdateShoppingListItem(ctx context.Context, input shopping.UpdateLineInput) (*domain.ShoppingListItem, error) {
	return r.shopping.UpdateLine(ctx, input)
}

func (r *mutationResolver) SetItemChecked(ctx context.Context, lineID uuid.UUID, checked bool) (*domain.ShoppingListItem, error) {
	return r.shopping.SetLineChecked(ctx, lineID, checked)
}

func (r *mutationResolver) DeleteShoppingListItem(ctx context.Context, lineID uuid.UUID) (bool, error) {
	if err := r.shopping.DeleteLine(ctx, lineID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) ClearCheckedItems(ctx context.Context, listID uuid.UUID) (int, error) {
	return r.shopping.ClearChecked(ctx, listID)
}

func (r *mutationResolver) AddRestockSuggestions(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error) {
	return r.shopping.AddRestockSuggestions(ctx, listID)
}

func (r *shoppingListResolver) Items(ctx context.Context, obj *domain.ShoppingList) ([]*domain.ShoppingListItem, error) {
	return r.shopping.ListLines(ctx, obj.ID)
}

// Item resolves the linked inventory item, nil for free-form lines.
func (r *shoppingListItemResolver) Item(ctx context.Context, obj *domain.ShoppingListItem) (*domain.InventoryItem, error) {
	if obj.ItemID == nil {
		return nil, nil
	}
	return dataloader.FromContext(ctx).ItemByID.Load(ctx, *obj.ItemID)()
}
