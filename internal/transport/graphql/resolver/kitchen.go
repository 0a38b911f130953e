package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/kitchen"
)

func (r *queryResolver) Kitchen(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error) {
	return r.kitchen.Get(ctx, id)
}

func (r *queryResolver) Kitchens(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error) {
	return r.kitchen.ListByHousehold(ctx, householdID)
}

func (r *mutationResolver) CreateKitchen(ctx context.Context, input kitchen.CreateInput) (*domain.Kitchen, error) {
	return r.kitchen.Create(ctx, input)
}

func (r *mutationResolver) UpdateKitchen(ctx context.Context, input kitchen.UpdateInput) (*domain.Kitchen, error) {
	return r.kitchen.Update(ctx, input)
}

func (r *mutationResolver) DeleteKitchen(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.kitchen.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
