package mealplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/provider/gemini"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// SaveRecipe stores a hand-written recipe. Requires MEMBER.
func (s *Service) SaveRecipe(ctx context.Context, input SaveRecipeInput) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireKitchen(ctx, userID, input.KitchenID, domain.RoleMember); err != nil {
		return nil, err
	}

	rec, err := s.repo.CreateRecipe(ctx, &domain.Recipe{
		ID:           uuid.New(),
		KitchenID:    input.KitchenID,
		Title:        input.Title,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Servings:     input.Servings,
		CreatedBy:    userID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("mealplan.SaveRecipe: %w", err)
	}
	return rec, nil
}

// GetRecipe returns one recipe the caller can see.
func (s *Service) GetRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, rec.KitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRecipes returns a kitchen's saved recipes.
func (s *Service) ListRecipes(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.ListRecipes(ctx, kitchenID)
}

// DeleteRecipe removes a recipe. Meal plan entries pointing at it keep
// their title and lose the link. Requires MEMBER.
func (s *Service) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	rec, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, rec.KitchenID, domain.RoleMember); err != nil {
		return err
	}
	return s.repo.DeleteRecipe(ctx, id)
}

// GenerateRecipe asks the LLM for a dish built from the kitchen's
// current inventory and stores the answer as a Generated recipe.
// Requires MEMBER.
func (s *Service) GenerateRecipe(ctx context.Context, input GenerateRecipeInput) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.llm == nil {
		return nil, fmt.Errorf("recipe generation is not configured: %w", domain.ErrValidation)
	}

	if _, err := s.access.RequireKitchen(ctx, userID, input.KitchenID, domain.RoleMember); err != nil {
		return nil, err
	}

	items, err := s.inventory.ListItems(ctx, input.KitchenID, postgresinv.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	var onHand []gemini.Ingredient
	for _, it := range items {
		qty, err := s.inventory.ItemQuantity(ctx, it.ID)
		if err != nil {
			return nil, fmt.Errorf("item quantity: %w", err)
		}
		if qty <= 0 {
			continue
		}
		onHand = append(onHand, gemini.Ingredient{
			Name:     it.Name,
			Quantity: qty,
			Unit:     it.DefaultUnit,
		})
	}
	if len(onHand) == 0 {
		return nil, fmt.Errorf("no inventory to cook from: %w", domain.ErrConflict)
	}

	generated, err := s.llm.GenerateRecipe(ctx, gemini.RecipeRequest{
		Ingredients: onHand,
		Prompt:      input.Prompt,
		Servings:    input.Servings,
	})
	if err != nil {
		return nil, fmt.Errorf("mealplan.GenerateRecipe: %w", err)
	}

	rec, err := s.repo.CreateRecipe(ctx, &domain.Recipe{
		ID:           uuid.New(),
		KitchenID:    input.KitchenID,
		Title:        generated.Title,
		Ingredients:  generated.Ingredients,
		Instructions: generated.Instructions,
		Servings:     generated.Servings,
		Generated:    true,
		CreatedBy:    userID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("store generated recipe: %w", err)
	}

	s.log.InfoContext(ctx, "recipe generated",
		slog.String("recipe_id", rec.ID.String()),
		slog.String("kitchen_id", input.KitchenID.String()),
		slog.Int("ingredients_offered", len(onHand)))

	return rec, nil
}
