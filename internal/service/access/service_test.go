package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

func newTestService(households *householdRepoMock, kitchens *kitchenRepoMock) *Service {
	return NewService(slog.Default(), households, kitchens)
}

func memberOf(householdID, userID uuid.UUID, role domain.Role) *householdRepoMock {
	return &householdRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
			if id != householdID {
				return nil, domain.ErrNotFound
			}
			return &domain.Household{ID: id}, nil
		},
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			if hid != householdID || uid != userID {
				return nil, domain.ErrNotFound
			}
			return &domain.Membership{HouseholdID: hid, UserID: uid, Role: role}, nil
		},
	}
}

func TestRequire_SufficientRole(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	userID := uuid.New()

	cases := []struct {
		held domain.Role
		min  domain.Role
	}{
		{domain.RoleViewer, domain.RoleViewer},
		{domain.RoleMember, domain.RoleViewer},
		{domain.RoleMember, domain.RoleMember},
		{domain.RoleAdmin, domain.RoleMember},
		{domain.RoleAdmin, domain.RoleAdmin},
		{domain.RoleOwner, domain.RoleAdmin},
		{domain.RoleOwner, domain.RoleOwner},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_needs_%s", tc.held, tc.min), func(t *testing.T) {
			t.Parallel()

			svc := newTestService(memberOf(householdID, userID, tc.held), &kitchenRepoMock{})

			m, err := svc.Require(context.Background(), userID, householdID, tc.min)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Role != tc.held {
				t.Errorf("membership role: got %s, want %s", m.Role, tc.held)
			}
		})
	}
}

func TestRequire_InsufficientRole(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	userID := uuid.New()

	cases := []struct {
		held domain.Role
		min  domain.Role
	}{
		{domain.RoleViewer, domain.RoleMember},
		{domain.RoleViewer, domain.RoleOwner},
		{domain.RoleMember, domain.RoleAdmin},
		{domain.RoleAdmin, domain.RoleOwner},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_needs_%s", tc.held, tc.min), func(t *testing.T) {
			t.Parallel()

			svc := newTestService(memberOf(householdID, userID, tc.held), &kitchenRepoMock{})

			_, err := svc.Require(context.Background(), userID, householdID, tc.min)
			if !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestRequire_HouseholdNotFound(t *testing.T) {
	t.Parallel()

	households := &householdRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
			return nil, fmt.Errorf("household %s: %w", id, domain.ErrNotFound)
		},
	}
	svc := newTestService(households, &kitchenRepoMock{})

	_, err := svc.Require(context.Background(), uuid.New(), uuid.New(), domain.RoleViewer)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// Membership must not be consulted for a missing household: the
	// caller learns "not found", never "forbidden".
	if len(households.GetMembershipCalls()) != 0 {
		t.Errorf("GetMembership calls: got %d, want 0", len(households.GetMembershipCalls()))
	}
}

func TestRequire_NotAMember(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	svc := newTestService(memberOf(householdID, uuid.New(), domain.RoleOwner), &kitchenRepoMock{})

	_, err := svc.Require(context.Background(), uuid.New(), householdID, domain.RoleViewer)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-member, got %v", err)
	}
}

func TestRequire_MembershipLookupError(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	boom := errors.New("connection reset")

	households := &householdRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
			return &domain.Household{ID: id}, nil
		},
		GetMembershipFunc: func(ctx context.Context, hid, uid uuid.UUID) (*domain.Membership, error) {
			return nil, boom
		},
	}
	svc := newTestService(households, &kitchenRepoMock{})

	_, err := svc.Require(context.Background(), uuid.New(), householdID, domain.RoleViewer)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	if errors.Is(err, domain.ErrForbidden) {
		t.Error("infrastructure error must not surface as ErrForbidden")
	}
}

func TestRequireKitchen_DelegatesToHousehold(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	kitchenID := uuid.New()
	userID := uuid.New()

	kitchens := &kitchenRepoMock{
		HouseholdIDFunc: func(ctx context.Context, kid uuid.UUID) (uuid.UUID, error) {
			if kid != kitchenID {
				return uuid.Nil, domain.ErrNotFound
			}
			return householdID, nil
		},
	}
	svc := newTestService(memberOf(householdID, userID, domain.RoleMember), kitchens)

	m, err := svc.RequireKitchen(context.Background(), userID, kitchenID, domain.RoleMember)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HouseholdID != householdID {
		t.Errorf("membership household: got %s, want %s", m.HouseholdID, householdID)
	}
	if len(kitchens.HouseholdIDCalls()) != 1 {
		t.Errorf("HouseholdID calls: got %d, want 1", len(kitchens.HouseholdIDCalls()))
	}
}

func TestRequireKitchen_KitchenNotFound(t *testing.T) {
	t.Parallel()

	kitchens := &kitchenRepoMock{
		HouseholdIDFunc: func(ctx context.Context, kid uuid.UUID) (uuid.UUID, error) {
			return uuid.Nil, fmt.Errorf("kitchen %s: %w", kid, domain.ErrNotFound)
		},
	}
	households := &householdRepoMock{}
	svc := newTestService(households, kitchens)

	_, err := svc.RequireKitchen(context.Background(), uuid.New(), uuid.New(), domain.RoleViewer)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(households.GetByIDCalls()) != 0 {
		t.Errorf("GetByID calls: got %d, want 0", len(households.GetByIDCalls()))
	}
}

func TestRequireKitchen_OutsiderForbidden(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	kitchenID := uuid.New()

	kitchens := &kitchenRepoMock{
		HouseholdIDFunc: func(ctx context.Context, kid uuid.UUID) (uuid.UUID, error) {
			return householdID, nil
		},
	}
	svc := newTestService(memberOf(householdID, uuid.New(), domain.RoleOwner), kitchens)

	_, err := svc.RequireKitchen(context.Background(), uuid.New(), kitchenID, domain.RoleViewer)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
