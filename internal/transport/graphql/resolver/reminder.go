package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/reminder"
)

func (r *queryResolver) Reminder(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	return r.reminder.Get(ctx, id)
}

func (r *queryResolver) Reminders(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error) {
	return r.reminder.ListByKitchen(ctx, kitchenID, includeCompleted)
}

func (r *mutationResolver) CreateReminder(ctx context.Context, input reminder.CreateInput) (*domain.Reminder, error) {
	return r.reminder.Create(ctx, input)
}

func (r *mutationResolver) UpdateReminder(ctx context.Context, input reminder.UpdateInput) (*domain.Reminder, error) {
	return r.reminder.Update(ctx, input)
}

func (r *mutationResolver) CompleteReminder(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	return r.reminder.Complete(ctx, id)
}

func (r *mutationResolver) DeleteReminder(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.reminder.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
