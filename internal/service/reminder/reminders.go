package reminder

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

// Create adds a user reminder to a kitchen. Requires MEMBER.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Reminder, error) {
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

	rem, err := s.repo.Create(ctx, &domain.Reminder{
		ID:          uuid.New(),
		KitchenID:   input.KitchenID,
		Type:        input.Type,
		Title:       input.Title,
		Body:        input.Body,
		ScheduledAt: input.ScheduledAt,
		IsRecurring: input.IsRecurring,
		Frequency:   input.Frequency,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("reminder.Create: %w", err)
	}

	s.log.InfoContext(ctx, "reminder created",
		slog.String("reminder_id", rem.ID.String()),
		slog.String("kitchen_id", input.KitchenID.String()),
		slog.String("type", input.Type.String()))

	return rem, nil
}

// Get returns one reminder the caller can see.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.requireReminder(ctx, userID, id, domain.RoleViewer)
}

// ListByKitchen returns a kitchen's reminders, optionally with
// completed ones.
func (s *Service) ListByKitchen(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.ListByKitchen(ctx, kitchenID, includeCompleted)
}

// Complete marks a reminder done. Completing an already-completed
// reminder is a no-op conflict. Requires MEMBER.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rem, err := s.requireReminder(ctx, userID, id, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	if rem.IsCompleted {
		return nil, fmt.Errorf("reminder already completed: %w", domain.ErrConflict)
	}
	return s.repo.Complete(ctx, id)
}

// Update edits a reminder's title, body, and schedule. Requires MEMBER.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Reminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rem, err := s.requireReminder(ctx, userID, input.ReminderID, domain.RoleMember)
	if err != nil {
		return nil, err
	}

	rem.Title = input.Title
	rem.Body = input.Body
	rem.ScheduledAt = input.ScheduledAt
	rem.IsRecurring = input.IsRecurring
	rem.Frequency = input.Frequency

	return s.repo.Update(ctx, rem)
}

// Delete removes a reminder. Requires MEMBER.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.requireReminder(ctx, userID, id, domain.RoleMember); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
