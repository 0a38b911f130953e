package reminder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	householdrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/household"
	kitchenrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/kitchen"
	"github.com/hearthhq/hearth-backend/internal/adapter/postgres/reminder"
	"github.com/hearthhq/hearth-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/user"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// newKitchen creates the user -> household -> kitchen chain the
// reminders table hangs off.
func newKitchen(t *testing.T) (*reminder.Repo, uuid.UUID) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	u, err := userrepo.New(pool).Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        uuid.New().String()[:8] + "@example.com",
		Name:         "Test User",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	h, err := householdrepo.New(pool).Create(ctx, &domain.Household{
		ID:        uuid.New(),
		Name:      "Test Household",
		CreatedBy: u.ID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create household: %v", err)
	}

	k, err := kitchenrepo.New(pool).Create(ctx, &domain.Kitchen{
		ID:          uuid.New(),
		HouseholdID: h.ID,
		Name:        "Main Kitchen",
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create kitchen: %v", err)
	}

	return reminder.New(pool), k.ID
}

func makeReminder(kitchenID uuid.UUID, typ domain.ReminderType, entityID *uuid.UUID) *domain.Reminder {
	return &domain.Reminder{
		ID:          uuid.New(),
		KitchenID:   kitchenID,
		Type:        typ,
		Title:       "Milk is running low",
		EntityID:    entityID,
		ScheduledAt: time.Now().UTC(),
		CreatedAt:   time.Now().UTC(),
	}
}

func TestRepo_CreateAndGet(t *testing.T) {
	t.Parallel()
	repo, kitchenID := newKitchen(t)
	ctx := context.Background()

	entityID := uuid.New()
	body := "2 litres left"
	rem := makeReminder(kitchenID, domain.ReminderTypeLowStock, &entityID)
	rem.Body = &body

	created, err := repo.Create(ctx, rem)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Type != domain.ReminderTypeLowStock {
		t.Errorf("expected LOW_STOCK, got %s", got.Type)
	}
	if got.EntityID == nil || *got.EntityID != entityID {
		t.Errorf("expected entity id %s, got %v", entityID, got.EntityID)
	}
	if got.Body == nil || *got.Body != body {
		t.Errorf("expected body %q, got %v", body, got.Body)
	}
	if got.IsCompleted {
		t.Error("new reminder must not be completed")
	}
}

func TestRepo_Create_DuplicateOpenEntity(t *testing.T) {
	t.Parallel()
	repo, kitchenID := newKitchen(t)
	ctx := context.Background()

	entityID := uuid.New()
	first, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeLowStock, &entityID))
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err = repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeLowStock, &entityID))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate open reminder, got %v", err)
	}

	// Completing the open reminder frees the slot again.
	if _, err := repo.Complete(ctx, first.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeLowStock, &entityID)); err != nil {
		t.Fatalf("Create after complete: %v", err)
	}
}

func TestRepo_Create_MultipleCustomWithoutEntity(t *testing.T) {
	t.Parallel()
	repo, kitchenID := newKitchen(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeCustom, nil)); err != nil {
		t.Fatalf("first custom reminder: %v", err)
	}
	if _, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeCustom, nil)); err != nil {
		t.Fatalf("second custom reminder: %v", err)
	}
}

func TestRepo_FindOpen(t *testing.T) {
	t.Parallel()
	repo, kitchenID := newKitchen(t)
	ctx := context.Background()

	entityID := uuid.New()
	created, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeExpiry, &entityID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindOpen(ctx, kitchenID, domain.ReminderTypeExpiry, &entityID)
	if err != nil {
		t.Fatalf("FindOpen: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected reminder %s, got %s", created.ID, found.ID)
	}

	if _, err := repo.FindOpen(ctx, kitchenID, domain.ReminderTypeExpiry, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for nil entity lookup, got %v", err)
	}
}

func TestRepo_ListByKitchen_FiltersCompleted(t *testing.T) {
	t.Parallel()
	repo, kitchenID := newKitchen(t)
	ctx := context.Background()

	open, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeCustom, nil))
	if err != nil {
		t.Fatalf("Create open: %v", err)
	}
	done, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeCustom, nil))
	if err != nil {
		t.Fatalf("Create done: %v", err)
	}
	if _, err := repo.Complete(ctx, done.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	active, err := repo.ListByKitchen(ctx, kitchenID, false)
	if err != nil {
		t.Fatalf("ListByKitchen(false): %v", err)
	}
	if len(active) != 1 || active[0].ID != open.ID {
		t.Errorf("expected only the open reminder, got %d rows", len(active))
	}

	all, err := repo.ListByKitchen(ctx, kitchenID, true)
	if err != nil {
		t.Fatalf("ListByKitchen(true): %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected both reminders, got %d", len(all))
	}
}

func TestRepo_ListDue(t *testing.T) {
	t.Parallel()
	repo, kitchenID := newKitchen(t)
	ctx := context.Background()

	now := time.Now().UTC()

	due := makeReminder(kitchenID, domain.ReminderTypeCustom, nil)
	due.ScheduledAt = now.Add(-time.Hour)
	if _, err := repo.Create(ctx, due); err != nil {
		t.Fatalf("Create due: %v", err)
	}

	future := makeReminder(kitchenID, domain.ReminderTypeCustom, nil)
	future.ScheduledAt = now.Add(time.Hour)
	if _, err := repo.Create(ctx, future); err != nil {
		t.Fatalf("Create future: %v", err)
	}

	rows, err := repo.ListDue(ctx, now)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	for _, r := range rows {
		if r.ScheduledAt.After(now) {
			t.Errorf("reminder %s scheduled at %s is not due yet", r.ID, r.ScheduledAt)
		}
	}
	if len(rows) == 0 {
		t.Error("expected at least the overdue reminder")
	}
}

func TestRepo_Update_Recurrence(t *testing.T) {
	t.Parallel()
	repo, kitchenID := newKitchen(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeMealPrep, nil))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	weekly := domain.FrequencyWeekly
	created.Title = "Prep lunches"
	created.IsRecurring = true
	created.Frequency = &weekly

	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.IsRecurring || updated.Frequency == nil || *updated.Frequency != domain.FrequencyWeekly {
		t.Errorf("expected weekly recurrence, got %+v", updated)
	}
}

func TestRepo_Complete_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newKitchen(t)

	if _, err := repo.Complete(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, kitchenID := newKitchen(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeReminder(kitchenID, domain.ReminderTypeCustom, nil))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}
