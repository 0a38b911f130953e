package household

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

// Create makes a new household with the caller as its OWNER. The
// household row and the owner membership are written in one
// transaction, so the at-least-one-owner invariant holds from birth.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Household, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Household
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()

		h, err := s.households.Create(txCtx, &domain.Household{
			ID:        uuid.New(),
			Name:      input.Name,
			CreatedBy: userID,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create household: %w", err)
		}

		_, err = s.households.InsertMembership(txCtx, &domain.Membership{
			ID:          uuid.New(),
			HouseholdID: h.ID,
			UserID:      userID,
			Role:        domain.RoleOwner,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create owner membership: %w", err)
		}

		created = h
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("household.Create: %w", err)
	}

	s.log.InfoContext(ctx, "household created",
		slog.String("household_id", created.ID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}

// Get returns a household the caller is a member of.
func (s *Service) Get(ctx context.Context, householdID uuid.UUID) (*domain.Household, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.Require(ctx, userID, householdID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.households.GetByID(ctx, householdID)
}

// ListMine returns every household the caller belongs to.
func (s *Service) ListMine(ctx context.Context) ([]*domain.Household, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.households.ListForUser(ctx, userID)
}

// Update renames a household. Requires ADMIN.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Household, error) {
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

	return s.households.Update(ctx, input.HouseholdID, input.Name)
}

// Delete removes a household and everything under it. Requires OWNER.
func (s *Service) Delete(ctx context.Context, householdID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.access.Require(ctx, userID, householdID, domain.RoleOwner); err != nil {
		return err
	}

	if err := s.households.Delete(ctx, householdID); err != nil {
		return fmt.Errorf("household.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "household deleted",
		slog.String("household_id", householdID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
