package resolver

import (
	"context"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/auth"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/dataloader"
)

// Me returns the authenticated user's profile.
func (r *queryResolver) Me(ctx context.Context) (*domain.User, error) {
	return r.auth.Me(ctx)
}

// UpdateProfile updates the authenticated user's name or avatar.
func (r *mutationResolver) UpdateProfile(ctx context.Context, input auth.UpdateProfileInput) (*domain.User, error) {
	return r.auth.UpdateProfile(ctx, input)
}

// User resolves the member's user via the per-request dataloader.
func (r *membershipResolver) User(ctx context.Context, obj *domain.Membership) (*domain.User, error) {
	u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, obj.UserID)()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}
