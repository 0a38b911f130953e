package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/household"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/dataloader"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

type membershipLoaderRepoMock struct {
	result []*domain.Membership
	err    error
}

func (m *membershipLoaderRepoMock) ListMembershipsByHouseholds(_ context.Context, _ []uuid.UUID) ([]*domain.Membership, error) {
	return m.result, m.err
}

type userLoaderRepoMock struct {
	result []*domain.User
	err    error
}

func (m *userLoaderRepoMock) GetByIDs(_ context.Context, _ []uuid.UUID) ([]*domain.User, error) {
	return m.result, m.err
}

func TestCreateHousehold_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mock := &householdServiceMock{
		CreateFunc: func(ctx context.Context, input household.CreateInput) (*domain.Household, error) {
			return &domain.Household{ID: uuid.New(), Name: input.Name, CreatedBy: userID}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{household: mock}}
	ctx := ctxutil.WithUserID(context.Background(), userID)

	result, err := resolver.CreateHousehold(ctx, household.CreateInput{Name: "Smith family"})

	require.NoError(t, err)
	require.Equal(t, "Smith family", result.Name)
	require.Equal(t, userID, result.CreatedBy)
}

func TestDeleteHousehold_Forbidden(t *testing.T) {
	t.Parallel()

	mock := &householdServiceMock{
		DeleteFunc: func(ctx context.Context, householdID uuid.UUID) error {
			return domain.ErrForbidden
		},
	}

	resolver := &mutationResolver{&Resolver{household: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	ok, err := resolver.DeleteHousehold(ctx, uuid.New())

	require.ErrorIs(t, err, domain.ErrForbidden)
	require.False(t, ok)
}

func TestHouseholdMembers_ViaDataloader(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	memberships := []*domain.Membership{
		{ID: uuid.New(), HouseholdID: householdID, Role: domain.RoleOwner},
		{ID: uuid.New(), HouseholdID: householdID, Role: domain.RoleMember},
	}

	loaders := dataloader.NewLoaders(&dataloader.Repos{
		Membership: &membershipLoaderRepoMock{result: memberships},
	})
	ctx := dataloader.WithLoaders(context.Background(), loaders)

	resolver := &householdResolver{&Resolver{}}

	result, err := resolver.Members(ctx, &domain.Household{ID: householdID})

	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, domain.RoleOwner, result[0].Role)
}

func TestMembershipUser_ViaDataloader(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	loaders := dataloader.NewLoaders(&dataloader.Repos{
		User: &userLoaderRepoMock{result: []*domain.User{{ID: userID, Name: "Ada"}}},
	})
	ctx := dataloader.WithLoaders(context.Background(), loaders)

	resolver := &membershipResolver{&Resolver{}}

	result, err := resolver.User(ctx, &domain.Membership{UserID: userID})

	require.NoError(t, err)
	require.Equal(t, "Ada", result.Name)
}

func TestMembershipUser_Missing(t *testing.T) {
	t.Parallel()

	loaders := dataloader.NewLoaders(&dataloader.Repos{
		User: &userLoaderRepoMock{},
	})
	ctx := dataloader.WithLoaders(context.Background(), loaders)

	resolver := &membershipResolver{&Resolver{}}

	_, err := resolver.User(ctx, &domain.Membership{UserID: uuid.New()})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHouseholdKitchens_UsesService(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()

	mock := &kitchenServiceMock{
		ListByHouseholdFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Kitchen, error) {
			require.Equal(t, householdID, id)
			return []*domain.Kitchen{{ID: uuid.New(), Name: "Main"}}, nil
		},
	}

	resolver := &householdResolver{&Resolver{kitchen: mock}}

	result, err := resolver.Kitchens(context.Background(), &domain.Household{ID: householdID})

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "Main", result[0].Name)
}
