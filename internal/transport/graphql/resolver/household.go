package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/household"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/dataloader"
)

func (r *queryResolver) MyHouseholds(ctx context.Context) ([]*domain.Household, error) {
	return r.household.ListMine(ctx)
}

func (r *queryResolver) Household(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	return r.household.Get(ctx, id)
}

func (r *queryResolver) Invites(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error) {
	return r.household.ListInvites(ctx, householdID)
}

func (r *mutationResolver) CreateHousehold(ctx context.Context, input household.CreateInput) (*domain.Household, error) {
	return r.household.Create(ctx, input)
}

func (r *mutationResolver) UpdateHousehold(ctx context.Context, input household.UpdateInput) (*domain.Household, error) {
	return r.household.Update(ctx, input)
}

func (r *mutationResolver) DeleteHousehold(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.household.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) InviteMember(ctx context.Context, input household.InviteInput) (*domain.Invite, error) {
	return r.household.Invite(ctx, input)
}

func (r *mutationResolver) AcceptInvite(ctx context.Context, token string) (*domain.Membership, error) {
	return r.household.AcceptInvite(ctx, token)
}

func (r *mutationResolver) RevokeInvite(ctx context.Context, inviteID, householdID uuid.UUID) (*domain.Invite, error) {
	return r.household.RevokeInvite(ctx, inviteID, householdID)
}

func (r *mutationResolver) UpdateMemberRole(ctx context.Context, input household.UpdateRoleInput) (*domain.Membership, error) {
	return r.household.UpdateMemberRole(ctx, input)
}

func (r *mutationResolver) RemoveMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error) {
	if err := r.household.RemoveMember(ctx, householdID, userID); err != nil {
		return false, err
	}
	return true, nil
}

// Members resolves household members via the per-request dataloader.
func (r *householdResolver) Members(ctx context.Context, obj *domain.Household) ([]*domain.Membership, error) {
	return dataloader.FromContext(ctx).MembershipsByHouseholdID.Load(ctx, obj.ID)()
}

func (r *householdResolver) Kitchens(ctx context.Context, obj *domain.Household) ([]*domain.Kitchen, error) {
	return r.kitchen.ListByHousehold(ctx, obj.ID)
}
