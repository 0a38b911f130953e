package household

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// ListMembers returns a household's memberships. Any member may look.
func (s *Service) ListMembers(ctx context.Context, householdID uuid.UUID) ([]*domain.Membership, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.Require(ctx, userID, householdID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.households.ListMemberships(ctx, householdID)
}

// UpdateMemberRole changes another member's role. Requires ADMIN;
// granting or removing OWNER requires OWNER. Demoting the last OWNER is
// refused so the household never loses its owner.
func (s *Service) UpdateMemberRole(ctx context.Context, input UpdateRoleInput) (*domain.Membership, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	caller, err := s.access.Require(ctx, callerID, input.HouseholdID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	target, err := s.households.GetMembership(ctx, input.HouseholdID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get target membership: %w", err)
	}

	// Touching the OWNER role in either direction is an owner-only act.
	if (target.Role == domain.RoleOwner || input.Role == domain.RoleOwner) && caller.Role != domain.RoleOwner {
		return nil, domain.ErrForbidden
	}

	if target.Role == domain.RoleOwner && input.Role != domain.RoleOwner {
		owners, err := s.households.CountOwners(ctx, input.HouseholdID)
		if err != nil {
			return nil, fmt.Errorf("count owners: %w", err)
		}
		if owners <= 1 {
			return nil, fmt.Errorf("cannot demote the last owner: %w", domain.ErrConflict)
		}
	}

	updated, err := s.households.UpdateMembershipRole(ctx, input.HouseholdID, input.UserID, input.Role)
	if err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}

	s.log.InfoContext(ctx, "member role updated",
		slog.String("household_id", input.HouseholdID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("role", input.Role.String()))

	return updated, nil
}

// RemoveMember removes a user from a household. Admins can remove
// others; any member can remove themselves (leave). The last OWNER can
// neither be removed nor leave.
func (s *Service) RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	minRole := domain.RoleAdmin
	if callerID == userID {
		minRole = domain.RoleViewer
	}
	caller, err := s.access.Require(ctx, callerID, householdID, minRole)
	if err != nil {
		return err
	}

	target, err := s.households.GetMembership(ctx, householdID, userID)
	if err != nil {
		return fmt.Errorf("get target membership: %w", err)
	}

	if target.Role == domain.RoleOwner {
		if caller.Role != domain.RoleOwner {
			return domain.ErrForbidden
		}
		owners, err := s.households.CountOwners(ctx, householdID)
		if err != nil {
			return fmt.Errorf("count owners: %w", err)
		}
		if owners <= 1 {
			return fmt.Errorf("cannot remove the last owner: %w", domain.ErrConflict)
		}
	}

	if err := s.households.DeleteMembership(ctx, householdID, userID); err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}

	s.log.InfoContext(ctx, "member removed",
		slog.String("household_id", householdID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
