package household

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

var _ householdRepo = &householdRepoMock{}

// householdRepoMock is a hand-rolled stub: unset methods panic so a
// test touching an unexpected path fails loudly.
type householdRepoMock struct {
	CreateFunc      func(ctx context.Context, h *domain.Household) (*domain.Household, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, name string) (*domain.Household, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	ListForUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Household, error)

	InsertMembershipFunc     func(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	GetMembershipFunc        func(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error)
	ListMembershipsFunc      func(ctx context.Context, householdID uuid.UUID) ([]*domain.Membership, error)
	UpdateMembershipRoleFunc func(ctx context.Context, householdID, userID uuid.UUID, role domain.Role) (*domain.Membership, error)
	DeleteMembershipFunc     func(ctx context.Context, householdID, userID uuid.UUID) error
	CountOwnersFunc          func(ctx context.Context, householdID uuid.UUID) (int, error)

	InsertInviteFunc         func(ctx context.Context, inv *domain.Invite) (*domain.Invite, error)
	GetInviteByTokenHashFunc func(ctx context.Context, hash string) (*domain.Invite, error)
	ListPendingInvitesFunc   func(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error)
	UpdateInviteStatusFunc   func(ctx context.Context, id uuid.UUID, status domain.InviteStatus) (*domain.Invite, error)
}

func (m *householdRepoMock) Create(ctx context.Context, h *domain.Household) (*domain.Household, error) {
	if m.CreateFunc == nil {
		panic("householdRepoMock.CreateFunc not set")
	}
	return m.CreateFunc(ctx, h)
}

func (m *householdRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	if m.GetByIDFunc == nil {
		panic("householdRepoMock.GetByIDFunc not set")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *householdRepoMock) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Household, error) {
	if m.UpdateFunc == nil {
		panic("householdRepoMock.UpdateFunc not set")
	}
	return m.UpdateFunc(ctx, id, name)
}

func (m *householdRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("householdRepoMock.DeleteFunc not set")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *householdRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Household, error) {
	if m.ListForUserFunc == nil {
		panic("householdRepoMock.ListForUserFunc not set")
	}
	return m.ListForUserFunc(ctx, userID)
}

func (m *householdRepoMock) InsertMembership(ctx context.Context, mem *domain.Membership) (*domain.Membership, error) {
	if m.InsertMembershipFunc == nil {
		panic("householdRepoMock.InsertMembershipFunc not set")
	}
	return m.InsertMembershipFunc(ctx, mem)
}

func (m *householdRepoMock) GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error) {
	if m.GetMembershipFunc == nil {
		panic("householdRepoMock.GetMembershipFunc not set")
	}
	return m.GetMembershipFunc(ctx, householdID, userID)
}

func (m *householdRepoMock) ListMemberships(ctx context.Context, householdID uuid.UUID) ([]*domain.Membership, error) {
	if m.ListMembershipsFunc == nil {
		panic("householdRepoMock.ListMembershipsFunc not set")
	}
	return m.ListMembershipsFunc(ctx, householdID)
}

func (m *householdRepoMock) UpdateMembershipRole(ctx context.Context, householdID, userID uuid.UUID, role domain.Role) (*domain.Membership, error) {
	if m.UpdateMembershipRoleFunc == nil {
		panic("householdRepoMock.UpdateMembershipRoleFunc not set")
	}
	return m.UpdateMembershipRoleFunc(ctx, householdID, userID, role)
}

func (m *householdRepoMock) DeleteMembership(ctx context.Context, householdID, userID uuid.UUID) error {
	if m.DeleteMembershipFunc == nil {
		panic("householdRepoMock.DeleteMembershipFunc not set")
	}
	return m.DeleteMembershipFunc(ctx, householdID, userID)
}

func (m *householdRepoMock) CountOwners(ctx context.Context, householdID uuid.UUID) (int, error) {
	if m.CountOwnersFunc == nil {
		panic("householdRepoMock.CountOwnersFunc not set")
	}
	return m.CountOwnersFunc(ctx, householdID)
}

func (m *householdRepoMock) InsertInvite(ctx context.Context, inv *domain.Invite) (*domain.Invite, error) {
	if m.InsertInviteFunc == nil {
		panic("householdRepoMock.InsertInviteFunc not set")
	}
	return m.InsertInviteFunc(ctx, inv)
}

func (m *householdRepoMock) GetInviteByTokenHash(ctx context.Context, hash string) (*domain.Invite, error) {
	if m.GetInviteByTokenHashFunc == nil {
		panic("householdRepoMock.GetInviteByTokenHashFunc not set")
	}
	return m.GetInviteByTokenHashFunc(ctx, hash)
}

func (m *householdRepoMock) ListPendingInvites(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error) {
	if m.ListPendingInvitesFunc == nil {
		panic("householdRepoMock.ListPendingInvitesFunc not set")
	}
	return m.ListPendingInvitesFunc(ctx, householdID)
}

func (m *householdRepoMock) UpdateInviteStatus(ctx context.Context, id uuid.UUID, status domain.InviteStatus) (*domain.Invite, error) {
	if m.UpdateInviteStatusFunc == nil {
		panic("householdRepoMock.UpdateInviteStatusFunc not set")
	}
	return m.UpdateInviteStatusFunc(ctx, id, status)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc not set")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc not set")
	}
	return m.GetByEmailFunc(ctx, email)
}

var _ accessService = &accessServiceMock{}

type accessServiceMock struct {
	RequireFunc func(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

func (m *accessServiceMock) Require(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
	if m.RequireFunc == nil {
		panic("accessServiceMock.RequireFunc not set")
	}
	return m.RequireFunc(ctx, userID, householdID, minRole)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the function inline, as a real transaction would.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ tokenGenerator = &tokenGeneratorMock{}

type tokenGeneratorMock struct {
	GenerateOpaqueTokenFunc func() (string, string, error)
}

func (m *tokenGeneratorMock) GenerateOpaqueToken() (string, string, error) {
	if m.GenerateOpaqueTokenFunc == nil {
		panic("tokenGeneratorMock.GenerateOpaqueTokenFunc not set")
	}
	return m.GenerateOpaqueTokenFunc()
}

var _ InviteMailer = &inviteMailerMock{}

type inviteMailerMock struct {
	SendInviteFunc func(ctx context.Context, to, inviterName, householdName, token string) error
	sent           []string
}

func (m *inviteMailerMock) SendInvite(ctx context.Context, to, inviterName, householdName, token string) error {
	m.sent = append(m.sent, to)
	if m.SendInviteFunc == nil {
		return nil
	}
	return m.SendInviteFunc(ctx, to, inviterName, householdName, token)
}
