package household_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres/household"
	"github.com/hearthhq/hearth-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/user"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

type fixture struct {
	repo  *household.Repo
	users *userrepo.Repo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return &fixture{
		repo:  household.New(pool),
		users: userrepo.New(pool),
	}
}

func (f *fixture) createUser(t *testing.T) *domain.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), &domain.User{
		ID:           uuid.New(),
		Email:        uuid.New().String()[:8] + "@example.com",
		Name:         "Test User",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (f *fixture) createHousehold(t *testing.T, owner uuid.UUID) *domain.Household {
	t.Helper()
	h, err := f.repo.Create(context.Background(), &domain.Household{
		ID:        uuid.New(),
		Name:      "Maple Street",
		CreatedBy: owner,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create household: %v", err)
	}
	return h
}

func (f *fixture) addMember(t *testing.T, householdID, userID uuid.UUID, role domain.Role) *domain.Membership {
	t.Helper()
	m, err := f.repo.InsertMembership(context.Background(), &domain.Membership{
		ID:          uuid.New(),
		HouseholdID: householdID,
		UserID:      userID,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("insert membership: %v", err)
	}
	return m
}

func TestRepo_CreateGetUpdateDelete(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	owner := f.createUser(t)
	h := f.createHousehold(t, owner.ID)

	got, err := f.repo.GetByID(ctx, h.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Maple Street" || got.CreatedBy != owner.ID {
		t.Errorf("unexpected household: %+v", got)
	}

	updated, err := f.repo.Update(ctx, h.ID, "Oak Avenue")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Oak Avenue" {
		t.Errorf("expected renamed household, got %q", updated.Name)
	}

	if err := f.repo.Delete(ctx, h.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.repo.GetByID(ctx, h.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	err := f.repo.Delete(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Memberships(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	owner := f.createUser(t)
	member := f.createUser(t)
	h := f.createHousehold(t, owner.ID)

	f.addMember(t, h.ID, owner.ID, domain.RoleOwner)
	f.addMember(t, h.ID, member.ID, domain.RoleMember)

	// Duplicate membership violates (household_id, user_id).
	_, err := f.repo.InsertMembership(ctx, &domain.Membership{
		ID:          uuid.New(),
		HouseholdID: h.ID,
		UserID:      member.ID,
		Role:        domain.RoleViewer,
		CreatedAt:   time.Now().UTC(),
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists for duplicate membership, got %v", err)
	}

	members, err := f.repo.ListMemberships(ctx, h.ID)
	if err != nil {
		t.Fatalf("ListMemberships: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 memberships, got %d", len(members))
	}

	owners, err := f.repo.CountOwners(ctx, h.ID)
	if err != nil {
		t.Fatalf("CountOwners: %v", err)
	}
	if owners != 1 {
		t.Errorf("expected 1 owner, got %d", owners)
	}

	promoted, err := f.repo.UpdateMembershipRole(ctx, h.ID, member.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateMembershipRole: %v", err)
	}
	if promoted.Role != domain.RoleAdmin {
		t.Errorf("expected ADMIN, got %s", promoted.Role)
	}

	if err := f.repo.DeleteMembership(ctx, h.ID, member.ID); err != nil {
		t.Fatalf("DeleteMembership: %v", err)
	}
	if err := f.repo.DeleteMembership(ctx, h.ID, member.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestRepo_ListForUser(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	user := f.createUser(t)
	other := f.createUser(t)

	h1 := f.createHousehold(t, user.ID)
	h2 := f.createHousehold(t, user.ID)
	h3 := f.createHousehold(t, other.ID)

	f.addMember(t, h1.ID, user.ID, domain.RoleOwner)
	f.addMember(t, h2.ID, user.ID, domain.RoleMember)
	f.addMember(t, h3.ID, other.ID, domain.RoleOwner)

	households, err := f.repo.ListForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(households) != 2 {
		t.Fatalf("expected 2 households, got %d", len(households))
	}
	for _, h := range households {
		if h.ID == h3.ID {
			t.Errorf("household %s should not be listed for %s", h3.ID, user.ID)
		}
	}
}

func TestRepo_ListMembershipsByHouseholds(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	owner := f.createUser(t)
	h1 := f.createHousehold(t, owner.ID)
	h2 := f.createHousehold(t, owner.ID)

	f.addMember(t, h1.ID, owner.ID, domain.RoleOwner)
	f.addMember(t, h2.ID, owner.ID, domain.RoleOwner)
	f.addMember(t, h2.ID, f.createUser(t).ID, domain.RoleViewer)

	all, err := f.repo.ListMembershipsByHouseholds(ctx, []uuid.UUID{h1.ID, h2.ID})
	if err != nil {
		t.Fatalf("ListMembershipsByHouseholds: %v", err)
	}

	byHousehold := map[uuid.UUID]int{}
	for _, m := range all {
		byHousehold[m.HouseholdID]++
	}
	if byHousehold[h1.ID] != 1 || byHousehold[h2.ID] != 2 {
		t.Errorf("unexpected grouping: %v", byHousehold)
	}
}

func TestRepo_Invites(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	owner := f.createUser(t)
	h := f.createHousehold(t, owner.ID)

	hash := uuid.New().String()
	inv, err := f.repo.InsertInvite(ctx, &domain.Invite{
		ID:          uuid.New(),
		HouseholdID: h.ID,
		Email:       "invitee@example.com",
		Role:        domain.RoleMember,
		TokenHash:   hash,
		Status:      domain.InviteStatusPending,
		InvitedBy:   owner.ID,
		ExpiresAt:   time.Now().UTC().Add(24 * time.Hour),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("InsertInvite: %v", err)
	}

	got, err := f.repo.GetInviteByTokenHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetInviteByTokenHash: %v", err)
	}
	if got.ID != inv.ID || got.Email != "invitee@example.com" {
		t.Errorf("unexpected invite: %+v", got)
	}

	pending, err := f.repo.ListPendingInvites(ctx, h.ID)
	if err != nil {
		t.Fatalf("ListPendingInvites: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending invite, got %d", len(pending))
	}

	revoked, err := f.repo.UpdateInviteStatus(ctx, inv.ID, domain.InviteStatusRevoked)
	if err != nil {
		t.Fatalf("UpdateInviteStatus: %v", err)
	}
	if revoked.Status != domain.InviteStatusRevoked {
		t.Errorf("expected REVOKED, got %s", revoked.Status)
	}

	pending, err = f.repo.ListPendingInvites(ctx, h.ID)
	if err != nil {
		t.Fatalf("ListPendingInvites after revoke: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending invites after revoke, got %d", len(pending))
	}
}
