// Package access resolves whether a user may act on a household or
// kitchen. Every other service calls through here before touching data.
package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

type householdRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error)
}

type kitchenRepo interface {
	HouseholdID(ctx context.Context, kitchenID uuid.UUID) (uuid.UUID, error)
}

// Service implements household and kitchen access checks.
type Service struct {
	log        *slog.Logger
	households householdRepo
	kitchens   kitchenRepo
}

// NewService creates a new access service.
func NewService(logger *slog.Logger, households householdRepo, kitchens kitchenRepo) *Service {
	return &Service{
		log:        logger.With("service", "access"),
		households: households,
		kitchens:   kitchens,
	}
}

// Require verifies that the user holds at least minRole in the household.
// A missing household is domain.ErrNotFound; existence is checked before
// membership, so callers can distinguish "no such household" from "not
// yours". A missing or insufficient membership is domain.ErrForbidden.
// On success the caller's membership is returned.
func (s *Service) Require(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
	if _, err := s.households.GetByID(ctx, householdID); err != nil {
		return nil, fmt.Errorf("get household: %w", err)
	}

	m, err := s.households.GetMembership(ctx, householdID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}

	if !m.Role.AtLeast(minRole) {
		return nil, domain.ErrForbidden
	}
	return m, nil
}

// RequireKitchen verifies access to a kitchen by resolving its owning
// household and delegating to Require. A missing kitchen is
// domain.ErrNotFound.
func (s *Service) RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
	householdID, err := s.kitchens.HouseholdID(ctx, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("resolve kitchen household: %w", err)
	}
	return s.Require(ctx, userID, householdID, minRole)
}
