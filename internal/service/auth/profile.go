package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// Me returns the authenticated user's account.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}
	return user, nil
}

// UpdateProfile edits the authenticated user's name and avatar.
// Nil fields are left unchanged.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, userID, input.Name, input.AvatarURL)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateProfile: %w", err)
	}
	return user, nil
}
