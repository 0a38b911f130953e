package household

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/auth"
	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{InviteTTL: 7 * 24 * time.Hour}
}

func allowAccess(role domain.Role) *accessServiceMock {
	return &accessServiceMock{
		RequireFunc: func(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
			if !role.AtLeast(minRole) {
				return nil, domain.ErrForbidden
			}
			return &domain.Membership{HouseholdID: householdID, UserID: userID, Role: role}, nil
		},
	}
}

func newTestService(repo *householdRepoMock, users *userRepoMock, access *accessServiceMock, mailer *inviteMailerMock) *Service {
	tokens := &tokenGeneratorMock{
		GenerateOpaqueTokenFunc: func() (string, string, error) {
			raw := uuid.NewString()
			return raw, auth.HashToken(raw), nil
		},
	}
	var m InviteMailer
	if mailer != nil {
		m = mailer
	}
	return NewService(slog.Default(), repo, users, access, &txManagerMock{}, tokens, m, testConfig())
}

func TestCreate_CreatorBecomesOwner(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var insertedMembership *domain.Membership

	repo := &householdRepoMock{
		CreateFunc: func(ctx context.Context, h *domain.Household) (*domain.Household, error) {
			return h, nil
		},
		InsertMembershipFunc: func(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
			insertedMembership = m
			return m, nil
		},
	}

	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleOwner), nil)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	h, err := svc.Create(ctx, CreateInput{Name: "  Maple Street  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name != "Maple Street" {
		t.Errorf("name not trimmed: %q", h.Name)
	}
	if insertedMembership == nil {
		t.Fatal("owner membership was not created")
	}
	if insertedMembership.Role != domain.RoleOwner {
		t.Errorf("creator role: got %s, want OWNER", insertedMembership.Role)
	}
	if insertedMembership.UserID != userID || insertedMembership.HouseholdID != h.ID {
		t.Error("membership does not tie creator to the new household")
	}
}

func TestCreate_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&householdRepoMock{}, &userRepoMock{}, allowAccess(domain.RoleOwner), nil)

	_, err := svc.Create(context.Background(), CreateInput{Name: "x"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateMemberRole_LastOwnerDemotionRefused(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	ownerID := uuid.New()

	repo := &householdRepoMock{
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: domain.RoleOwner}, nil
		},
		CountOwnersFunc: func(ctx context.Context, hid uuid.UUID) (int, error) {
			return 1, nil
		},
	}

	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleOwner), nil)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	_, err := svc.UpdateMemberRole(ctx, UpdateRoleInput{
		HouseholdID: householdID,
		UserID:      ownerID,
		Role:        domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for last-owner demotion, got %v", err)
	}
}

func TestUpdateMemberRole_DemoteOwnerWithAnotherOwner(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	callerID := uuid.New()
	targetID := uuid.New()

	repo := &householdRepoMock{
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: domain.RoleOwner}, nil
		},
		CountOwnersFunc: func(ctx context.Context, hid uuid.UUID) (int, error) {
			return 2, nil
		},
		UpdateMembershipRoleFunc: func(ctx context.Context, hid, uid uuid.UUID, role domain.Role) (*domain.Membership, error) {
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: role}, nil
		},
	}

	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleOwner), nil)
	ctx := ctxutil.WithUserID(context.Background(), callerID)

	m, err := svc.UpdateMemberRole(ctx, UpdateRoleInput{
		HouseholdID: householdID,
		UserID:      targetID,
		Role:        domain.RoleMember,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Role != domain.RoleMember {
		t.Errorf("role: got %s, want MEMBER", m.Role)
	}
}

func TestUpdateMemberRole_AdminCannotTouchOwner(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	callerID := uuid.New()
	targetID := uuid.New()

	repo := &householdRepoMock{
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: domain.RoleOwner}, nil
		},
	}

	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleAdmin), nil)
	ctx := ctxutil.WithUserID(context.Background(), callerID)

	_, err := svc.UpdateMemberRole(ctx, UpdateRoleInput{
		HouseholdID: householdID,
		UserID:      targetID,
		Role:        domain.RoleMember,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUpdateMemberRole_AdminCannotGrantOwner(t *testing.T) {
	t.Parallel()

	repo := &householdRepoMock{
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: domain.RoleMember}, nil
		},
	}

	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleAdmin), nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.UpdateMemberRole(ctx, UpdateRoleInput{
		HouseholdID: uuid.New(),
		UserID:      uuid.New(),
		Role:        domain.RoleOwner,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRemoveMember_SelfLeave(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	userID := uuid.New()
	deleted := false

	repo := &householdRepoMock{
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: domain.RoleMember}, nil
		},
		DeleteMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	// A plain member can leave even though removing others needs ADMIN.
	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleMember), nil)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	if err := svc.RemoveMember(ctx, householdID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("membership was not deleted")
	}
}

func TestRemoveMember_MemberCannotRemoveOthers(t *testing.T) {
	t.Parallel()

	svc := newTestService(&householdRepoMock{}, &userRepoMock{}, allowAccess(domain.RoleMember), nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	err := svc.RemoveMember(ctx, uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRemoveMember_LastOwnerCannotLeave(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	ownerID := uuid.New()

	repo := &householdRepoMock{
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: domain.RoleOwner}, nil
		},
		CountOwnersFunc: func(ctx context.Context, hid uuid.UUID) (int, error) {
			return 1, nil
		},
	}

	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleOwner), nil)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	err := svc.RemoveMember(ctx, householdID, ownerID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestInvite_Success(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	callerID := uuid.New()
	mailer := &inviteMailerMock{}

	repo := &householdRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
			return &domain.Household{ID: id, Name: "Maple Street"}, nil
		},
		InsertInviteFunc: func(ctx context.Context, inv *domain.Invite) (*domain.Invite, error) {
			return inv, nil
		},
	}
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Anna"}, nil
		},
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(repo, users, allowAccess(domain.RoleAdmin), mailer)
	ctx := ctxutil.WithUserID(context.Background(), callerID)

	invite, err := svc.Invite(ctx, InviteInput{
		HouseholdID: householdID,
		Email:       "New@Example.com",
		Role:        domain.RoleMember,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invite.Email != "new@example.com" {
		t.Errorf("email not normalized: %q", invite.Email)
	}
	if invite.Status != domain.InviteStatusPending {
		t.Errorf("status: got %s, want PENDING", invite.Status)
	}
	if invite.ExpiresAt.Before(time.Now().Add(6 * 24 * time.Hour)) {
		t.Error("invite expiry not derived from configured TTL")
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "new@example.com" {
		t.Errorf("invite email recipients: %v", mailer.sent)
	}
}

func TestInvite_ExistingMemberConflict(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	existingID := uuid.New()

	repo := &householdRepoMock{
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: domain.RoleMember}, nil
		},
	}
	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: existingID, Email: email}, nil
		},
	}

	svc := newTestService(repo, users, allowAccess(domain.RoleAdmin), nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Invite(ctx, InviteInput{
		HouseholdID: householdID,
		Email:       "member@example.com",
		Role:        domain.RoleMember,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestInvite_OwnerRoleRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&householdRepoMock{}, &userRepoMock{}, allowAccess(domain.RoleOwner), nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Invite(ctx, InviteInput{
		HouseholdID: uuid.New(),
		Email:       "x@example.com",
		Role:        domain.RoleOwner,
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAcceptInvite_Success(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	userID := uuid.New()
	raw := "raw-invite-token"
	accepted := false

	repo := &householdRepoMock{
		GetInviteByTokenHashFunc: func(ctx context.Context, hash string) (*domain.Invite, error) {
			if hash != auth.HashToken(raw) {
				return nil, domain.ErrNotFound
			}
			return &domain.Invite{
				ID:          uuid.New(),
				HouseholdID: householdID,
				Email:       "anna@example.com",
				Role:        domain.RoleMember,
				Status:      domain.InviteStatusPending,
				ExpiresAt:   time.Now().Add(time.Hour),
			}, nil
		},
		InsertMembershipFunc: func(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
			return m, nil
		},
		UpdateInviteStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.InviteStatus) (*domain.Invite, error) {
			if status == domain.InviteStatusAccepted {
				accepted = true
			}
			return &domain.Invite{ID: id, Status: status}, nil
		},
	}
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Email: "Anna@example.com"}, nil
		},
	}

	svc := newTestService(repo, users, allowAccess(domain.RoleViewer), nil)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	m, err := svc.AcceptInvite(ctx, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HouseholdID != householdID || m.Role != domain.RoleMember {
		t.Errorf("membership: %+v", m)
	}
	if !accepted {
		t.Error("invite was not marked accepted")
	}
}

func TestAcceptInvite_WrongEmail(t *testing.T) {
	t.Parallel()

	repo := &householdRepoMock{
		GetInviteByTokenHashFunc: func(ctx context.Context, hash string) (*domain.Invite, error) {
			return &domain.Invite{
				ID:        uuid.New(),
				Email:     "invited@example.com",
				Status:    domain.InviteStatusPending,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Email: "someone-else@example.com"}, nil
		},
	}

	svc := newTestService(repo, users, allowAccess(domain.RoleViewer), nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.AcceptInvite(ctx, "token")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAcceptInvite_Expired(t *testing.T) {
	t.Parallel()

	repo := &householdRepoMock{
		GetInviteByTokenHashFunc: func(ctx context.Context, hash string) (*domain.Invite, error) {
			return &domain.Invite{
				ID:        uuid.New(),
				Email:     "invited@example.com",
				Status:    domain.InviteStatusPending,
				ExpiresAt: time.Now().Add(-time.Hour),
			}, nil
		},
	}

	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleViewer), nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.AcceptInvite(ctx, "token")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAcceptInvite_Revoked(t *testing.T) {
	t.Parallel()

	repo := &householdRepoMock{
		GetInviteByTokenHashFunc: func(ctx context.Context, hash string) (*domain.Invite, error) {
			return &domain.Invite{
				ID:        uuid.New(),
				Email:     "invited@example.com",
				Status:    domain.InviteStatusRevoked,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}

	svc := newTestService(repo, &userRepoMock{}, allowAccess(domain.RoleViewer), nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.AcceptInvite(ctx, "token")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
