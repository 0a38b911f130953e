package household

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/auth"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// Invite creates an email invitation to join a household. Requires
// ADMIN. The raw token is emailed and never stored; delivery failure is
// logged but does not fail the invite.
func (s *Service) Invite(ctx context.Context, input InviteInput) (*domain.Invite, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.Require(ctx, callerID, input.HouseholdID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	// Inviting someone who is already a member is a conflict, not a
	// silent no-op.
	if existing, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		if _, err := s.households.GetMembership(ctx, input.HouseholdID, existing.ID); err == nil {
			return nil, fmt.Errorf("already a member: %w", domain.ErrAlreadyExists)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check membership: %w", err)
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check user: %w", err)
	}

	raw, hash, err := s.tokens.GenerateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("generate invite token: %w", err)
	}

	now := time.Now()
	invite, err := s.households.InsertInvite(ctx, &domain.Invite{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Email:       input.Email,
		Role:        input.Role,
		TokenHash:   hash,
		Status:      domain.InviteStatusPending,
		InvitedBy:   callerID,
		ExpiresAt:   now.Add(s.cfg.InviteTTL),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("store invite: %w", err)
	}

	if s.mailer != nil {
		household, err := s.households.GetByID(ctx, input.HouseholdID)
		if err != nil {
			return nil, fmt.Errorf("get household: %w", err)
		}
		inviter, err := s.users.GetByID(ctx, callerID)
		if err != nil {
			return nil, fmt.Errorf("get inviter: %w", err)
		}
		if err := s.mailer.SendInvite(ctx, input.Email, inviter.Name, household.Name, raw); err != nil {
			s.log.ErrorContext(ctx, "invite email delivery failed",
				slog.String("invite_id", invite.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "invite created",
		slog.String("household_id", input.HouseholdID.String()),
		slog.String("invite_id", invite.ID.String()))

	return invite, nil
}

// AcceptInvite redeems an invite token for the authenticated user. The
// invite must be pending, unexpired, and addressed to the caller's
// email. On success the membership is created and the invite marked
// ACCEPTED in one transaction.
func (s *Service) AcceptInvite(ctx context.Context, rawToken string) (*domain.Membership, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if rawToken == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	invite, err := s.households.GetInviteByTokenHash(ctx, auth.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invite: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}

	if !invite.Usable(time.Now()) {
		return nil, fmt.Errorf("invite no longer usable: %w", domain.ErrConflict)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !strings.EqualFold(user.Email, invite.Email) {
		return nil, domain.ErrForbidden
	}

	var membership *domain.Membership
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := s.households.InsertMembership(txCtx, &domain.Membership{
			ID:          uuid.New(),
			HouseholdID: invite.HouseholdID,
			UserID:      userID,
			Role:        invite.Role,
			CreatedAt:   time.Now(),
		})
		if err != nil {
			return fmt.Errorf("create membership: %w", err)
		}

		if _, err := s.households.UpdateInviteStatus(txCtx, invite.ID, domain.InviteStatusAccepted); err != nil {
			return fmt.Errorf("mark invite accepted: %w", err)
		}

		membership = m
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("already a member: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("household.AcceptInvite: %w", err)
	}

	s.log.InfoContext(ctx, "invite accepted",
		slog.String("household_id", invite.HouseholdID.String()),
		slog.String("user_id", userID.String()))

	return membership, nil
}

// RevokeInvite cancels a pending invite. Requires ADMIN.
func (s *Service) RevokeInvite(ctx context.Context, inviteID, householdID uuid.UUID) (*domain.Invite, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.Require(ctx, callerID, householdID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	invite, err := s.households.UpdateInviteStatus(ctx, inviteID, domain.InviteStatusRevoked)
	if err != nil {
		return nil, fmt.Errorf("revoke invite: %w", err)
	}
	return invite, nil
}

// ListInvites returns a household's pending invites. Requires ADMIN.
func (s *Service) ListInvites(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.Require(ctx, callerID, householdID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.households.ListPendingInvites(ctx, householdID)
}
