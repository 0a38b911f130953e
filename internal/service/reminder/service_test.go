package reminder

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

func allowKitchen(role domain.Role) *accessServiceMock {
	return &accessServiceMock{
		RequireKitchenFunc: func(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
			if !role.AtLeast(minRole) {
				return nil, domain.ErrForbidden
			}
			return &domain.Membership{UserID: userID, Role: role}, nil
		},
	}
}

func newTestService(repo *reminderRepoMock, access *accessServiceMock) *Service {
	return NewService(slog.Default(), repo, access)
}

func TestCreate_CustomReminder(t *testing.T) {
	t.Parallel()

	repo := &reminderRepoMock{
		CreateFunc: func(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
			return rem, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	rem, err := svc.Create(ctx, CreateInput{
		KitchenID:   uuid.New(),
		Type:        domain.ReminderTypeCustom,
		Title:       "  Defrost the freezer ",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rem.Title != "Defrost the freezer" {
		t.Errorf("title not trimmed: %q", rem.Title)
	}
	if rem.IsCompleted {
		t.Error("new reminder must start incomplete")
	}
}

func TestCreate_DerivedTypeRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&reminderRepoMock{}, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	for _, typ := range []domain.ReminderType{
		domain.ReminderTypeLowStock,
		domain.ReminderTypeExpiry,
		domain.ReminderTypeShopping,
	} {
		_, err := svc.Create(ctx, CreateInput{
			KitchenID:   uuid.New(),
			Type:        typ,
			Title:       "Sneaky",
			ScheduledAt: time.Now(),
		})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", typ, err)
		}
	}
}

func TestCreate_RecurringNeedsFrequency(t *testing.T) {
	t.Parallel()

	svc := newTestService(&reminderRepoMock{}, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Create(ctx, CreateInput{
		KitchenID:   uuid.New(),
		Type:        domain.ReminderTypeCustom,
		Title:       "Water the herbs",
		ScheduledAt: time.Now(),
		IsRecurring: true,
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestComplete_Success(t *testing.T) {
	t.Parallel()

	rem := &domain.Reminder{
		ID:          uuid.New(),
		KitchenID:   uuid.New(),
		Type:        domain.ReminderTypeLowStock,
		Title:       "Milk is running low",
		ScheduledAt: time.Now().Add(-time.Hour),
	}
	repo := &reminderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
			return rem, nil
		},
		CompleteFunc: func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
			done := *rem
			done.IsCompleted = true
			return &done, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	done, err := svc.Complete(ctx, rem.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !done.IsCompleted {
		t.Error("reminder should be completed")
	}
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	t.Parallel()

	rem := &domain.Reminder{
		ID:          uuid.New(),
		KitchenID:   uuid.New(),
		Type:        domain.ReminderTypeCustom,
		Title:       "Done already",
		IsCompleted: true,
	}
	repo := &reminderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
			return rem, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Complete(ctx, rem.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestComplete_ViewerForbidden(t *testing.T) {
	t.Parallel()

	rem := &domain.Reminder{ID: uuid.New(), KitchenID: uuid.New(), Type: domain.ReminderTypeCustom, Title: "x"}
	repo := &reminderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
			return rem, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleViewer))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	if _, err := svc.Complete(ctx, rem.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := &reminderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleOwner))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	if _, err := svc.Get(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
