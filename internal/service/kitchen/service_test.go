package kitchen

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

func allow(role domain.Role) *accessServiceMock {
	check := func(userID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
		if !role.AtLeast(minRole) {
			return nil, domain.ErrForbidden
		}
		return &domain.Membership{UserID: userID, Role: role}, nil
	}
	return &accessServiceMock{
		RequireFunc: func(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
			return check(userID, minRole)
		},
		RequireKitchenFunc: func(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
			return check(userID, minRole)
		},
	}
}

func newTestService(repo *kitchenRepoMock, access *accessServiceMock) *Service {
	return NewService(slog.Default(), repo, access)
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	repo := &kitchenRepoMock{
		CreateFunc: func(ctx context.Context, k *domain.Kitchen) (*domain.Kitchen, error) {
			return k, nil
		},
	}
	svc := newTestService(repo, allow(domain.RoleAdmin))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	k, err := svc.Create(ctx, CreateInput{
		HouseholdID: householdID,
		Name:        "  Main Kitchen  ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if k.Name != "Main Kitchen" {
		t.Errorf("name not trimmed: %q", k.Name)
	}
	if k.HouseholdID != householdID {
		t.Errorf("unexpected household: %s", k.HouseholdID)
	}
}

func TestCreate_RequiresAdmin(t *testing.T) {
	t.Parallel()

	svc := newTestService(&kitchenRepoMock{}, allow(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Create(ctx, CreateInput{HouseholdID: uuid.New(), Name: "Kitchen"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(&kitchenRepoMock{}, allow(domain.RoleAdmin))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Create(ctx, CreateInput{HouseholdID: uuid.Nil, Name: "   "})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(verr.Errors))
	}
}

func TestCreate_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&kitchenRepoMock{}, allow(domain.RoleOwner))

	_, err := svc.Create(context.Background(), CreateInput{HouseholdID: uuid.New(), Name: "Kitchen"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGet_ViewerCanSee(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	repo := &kitchenRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error) {
			return &domain.Kitchen{ID: id}, nil
		},
	}
	svc := newTestService(repo, allow(domain.RoleViewer))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	k, err := svc.Get(ctx, kitchenID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if k.ID != kitchenID {
		t.Errorf("unexpected kitchen: %s", k.ID)
	}
}

func TestListByHousehold_Success(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	repo := &kitchenRepoMock{
		ListByHouseholdFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Kitchen, error) {
			if id != householdID {
				t.Errorf("unexpected household id: %s", id)
			}
			return []*domain.Kitchen{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}
	svc := newTestService(repo, allow(domain.RoleViewer))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	kitchens, err := svc.ListByHousehold(ctx, householdID)
	if err != nil {
		t.Fatalf("ListByHousehold: %v", err)
	}
	if len(kitchens) != 2 {
		t.Errorf("expected 2 kitchens, got %d", len(kitchens))
	}
}

func TestUpdate_RequiresAdmin(t *testing.T) {
	t.Parallel()

	svc := newTestService(&kitchenRepoMock{}, allow(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Update(ctx, UpdateInput{KitchenID: uuid.New(), Name: "New Name"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	deleted := false
	repo := &kitchenRepoMock{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = id == kitchenID
			return nil
		},
	}
	svc := newTestService(repo, allow(domain.RoleAdmin))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	if err := svc.Delete(ctx, kitchenID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("expected repo delete to be called with the kitchen id")
	}
}
