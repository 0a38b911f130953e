// Package kitchen implements kitchen business logic.
package kitchen

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

type kitchenRepo interface {
	Create(ctx context.Context, k *domain.Kitchen) (*domain.Kitchen, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error)
	Update(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.Kitchen, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error)
}

type accessService interface {
	Require(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
	RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

// Service implements kitchen business logic.
type Service struct {
	log      *slog.Logger
	kitchens kitchenRepo
	access   accessService
}

// NewService creates a new kitchen service.
func NewService(logger *slog.Logger, kitchens kitchenRepo, access accessService) *Service {
	return &Service{
		log:      logger.With("service", "kitchen"),
		kitchens: kitchens,
		access:   access,
	}
}

// Create adds a kitchen to a household. Requires ADMIN.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Kitchen, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.Require(ctx, userID, input.HouseholdID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	k, err := s.kitchens.Create(ctx, &domain.Kitchen{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("kitchen.Create: %w", err)
	}

	s.log.InfoContext(ctx, "kitchen created",
		slog.String("kitchen_id", k.ID.String()),
		slog.String("household_id", input.HouseholdID.String()))

	return k, nil
}

// Get returns a kitchen the caller can see.
func (s *Service) Get(ctx context.Context, kitchenID uuid.UUID) (*domain.Kitchen, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.kitchens.GetByID(ctx, kitchenID)
}

// ListByHousehold returns a household's kitchens. Any member may look.
func (s *Service) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*domain.Kitchen, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.Require(ctx, userID, householdID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.kitchens.ListByHousehold(ctx, householdID)
}

// Update changes a kitchen's name and description. Requires ADMIN.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Kitchen, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireKitchen(ctx, userID, input.KitchenID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.kitchens.Update(ctx, input.KitchenID, input.Name, input.Description)
}

// Delete removes a kitchen and everything in it. Requires ADMIN.
func (s *Service) Delete(ctx context.Context, kitchenID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.kitchens.Delete(ctx, kitchenID); err != nil {
		return fmt.Errorf("kitchen.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "kitchen deleted",
		slog.String("kitchen_id", kitchenID.String()))

	return nil
}
