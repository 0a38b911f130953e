package mealplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// CreateEntry plans a meal for a date and slot. A kitchen can hold one
// entry per (date, meal); planning the same slot twice is a conflict.
// Requires MEMBER.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.MealPlanEntry, error) {
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

	if input.RecipeID != nil {
		rec, err := s.repo.GetRecipe(ctx, *input.RecipeID)
		if err != nil {
			return nil, err
		}
		if rec.KitchenID != input.KitchenID {
			return nil, fmt.Errorf("recipe belongs to another kitchen: %w", domain.ErrForbidden)
		}
	}

	entry, err := s.repo.CreateEntry(ctx, &domain.MealPlanEntry{
		ID:        uuid.New(),
		KitchenID: input.KitchenID,
		Date:      input.Date.Truncate(24 * time.Hour),
		Meal:      input.Meal,
		Title:     input.Title,
		RecipeID:  input.RecipeID,
		Notes:     input.Notes,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("mealplan.CreateEntry: %w", err)
	}

	s.log.InfoContext(ctx, "meal planned",
		slog.String("entry_id", entry.ID.String()),
		slog.String("kitchen_id", input.KitchenID.String()),
		slog.String("meal", input.Meal.String()))

	return entry, nil
}

// GetEntry returns one planned meal the caller can see.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.MealPlanEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, entry.KitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries returns a kitchen's planned meals in [from, to].
func (s *Service) ListEntries(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if to.Before(from) {
		return nil, domain.NewValidationError("to", "must not precede from")
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.ListEntries(ctx, kitchenID, from, to)
}

// UpdateEntry edits a planned meal. Requires MEMBER.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.MealPlanEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetEntry(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, entry.KitchenID, domain.RoleMember); err != nil {
		return nil, err
	}

	if input.RecipeID != nil {
		rec, err := s.repo.GetRecipe(ctx, *input.RecipeID)
		if err != nil {
			return nil, err
		}
		if rec.KitchenID != entry.KitchenID {
			return nil, fmt.Errorf("recipe belongs to another kitchen: %w", domain.ErrForbidden)
		}
	}

	entry.Date = input.Date.Truncate(24 * time.Hour)
	entry.Meal = input.Meal
	entry.Title = input.Title
	entry.RecipeID = input.RecipeID
	entry.Notes = input.Notes

	return s.repo.UpdateEntry(ctx, entry)
}

// DeleteEntry removes a planned meal. Requires MEMBER.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, entry.KitchenID, domain.RoleMember); err != nil {
		return err
	}
	return s.repo.DeleteEntry(ctx, id)
}
