package resolver

import (
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/generated"
)

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// Household returns generated.HouseholdResolver implementation.
func (r *Resolver) Household() generated.HouseholdResolver { return &householdResolver{r} }

// Membership returns generated.MembershipResolver implementation.
func (r *Resolver) Membership() generated.MembershipResolver { return &membershipResolver{r} }

// InventoryItem returns generated.InventoryItemResolver implementation.
func (r *Resolver) InventoryItem() generated.InventoryItemResolver {
	return &inventoryItemResolver{r}
}

// ShoppingList returns generated.ShoppingListResolver implementation.
func (r *Resolver) ShoppingList() generated.ShoppingListResolver { return &shoppingListResolver{r} }

// ShoppingListItem returns generated.ShoppingListItemResolver implementation.
func (r *Resolver) ShoppingListItem() generated.ShoppingListItemResolver {
	return &shoppingListItemResolver{r}
}

// MealPlanEntry returns generated.MealPlanEntryResolver implementation.
func (r *Resolver) MealPlanEntry() generated.MealPlanEntryResolver {
	return &mealPlanEntryResolver{r}
}
