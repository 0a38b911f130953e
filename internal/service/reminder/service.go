// Package reminder implements user-facing reminder management. The
// derived reminders themselves are materialized by the sweep engine;
// this service covers CRUD, completion, and CUSTOM reminders.
package reminder

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

type reminderRepo interface {
	Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	ListByKitchen(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	Update(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type accessService interface {
	RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

// Service implements reminder business logic.
type Service struct {
	log    *slog.Logger
	repo   reminderRepo
	access accessService
}

// NewService creates a new reminder service.
func NewService(logger *slog.Logger, repo reminderRepo, access accessService) *Service {
	return &Service{
		log:    logger.With("service", "reminder"),
		repo:   repo,
		access: access,
	}
}

// requireReminder resolves a reminder and checks the caller's role on
// its kitchen.
func (s *Service) requireReminder(ctx context.Context, userID, reminderID uuid.UUID, minRole domain.Role) (*domain.Reminder, error) {
	rem, err := s.repo.GetByID(ctx, reminderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, rem.KitchenID, minRole); err != nil {
		return nil, err
	}
	return rem, nil
}
