package resolver

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/mealplan"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/model"
)

func (r *queryResolver) MealPlan(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error) {
	return r.mealplan.ListEntries(ctx, kitchenID, from, to)
}

func (r *queryResolver) Recipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	return r.mealplan.GetRecipe(ctx, id)
}

func (r *queryResolver) Recipes(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error) {
	return r.mealplan.ListRecipes(ctx, kitchenID)
}

func (r *mutationResolver) CreateMealPlanEntry(ctx context.Context, input mealplan.CreateEntryInput) (*domain.MealPlanEntry, error) {
	return r.mealplan.CreateEntry(ctx, input)
}

func (r *mutationResolver) UpdateMealPlanEntry(ctx context.Context, input mealplan.UpdateEntryInput) (*domain.MealPlanEntry, error) {
	return r.mealplan.UpdateEntry(ctx, input)
}

func (r *mutationResolver) DeleteMealPlanEntry(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.mealplan.DeleteEntry(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) SaveRecipe(ctx context.Context, input mealplan.SaveRecipeInput) (*domain.Recipe, error) {
	return r.mealplan.SaveRecipe(ctx, input)
}

func (r *mutationResolver) DeleteRecipe(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.mealplan.DeleteRecipe(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) GenerateRecipe(ctx context.Context, input mealplan.GenerateRecipeInput) (*domain.Recipe, error) {
	return r.mealplan.GenerateRecipe(ctx, input)
}

// UploadReceipt stores a base64-encoded receipt image and returns its storage key.
func (r *mutationResolver) UploadReceipt(ctx context.Context, input model.UploadReceiptInput) (string, error) {
	data, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		return "", domain.NewValidationError("data", "must be valid base64")
	}
	return r.mealplan.UploadReceipt(ctx, input.KitchenID, data, input.ContentType)
}

func (r *mutationResolver) ParseReceipt(ctx context.Context, kitchenID uuid.UUID, key string) ([]*domain.ReceiptLine, error) {
	lines, err := r.mealplan.ParseReceipt(ctx, kitchenID, key)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.ReceiptLine, len(lines))
	for i := range lines {
		out[i] = &lines[i]
	}
	return out, nil
}

// Recipe resolves the linked recipe, nil for ad-hoc entries.
func (r *mealPlanEntryResolver) Recipe(ctx context.Context, obj *domain.MealPlanEntry) (*domain.Recipe, error) {
	if obj.RecipeID == nil {
		return nil, nil
	}
	return r.mealplan.GetRecipe(ctx, *obj.RecipeID)
}
