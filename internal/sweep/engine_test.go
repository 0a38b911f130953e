package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/goleak"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

func testSweepConfig() config.SweepConfig {
	return config.SweepConfig{
		LowStockInterval:  time.Hour,
		ExpiryInterval:    6 * time.Hour,
		UsageInterval:     12 * time.Hour,
		ScheduledInterval: 5 * time.Minute,
		ExpiryWindow:      72 * time.Hour,
		UsageWindow:       720 * time.Hour,
		DepletionHorizon:  168 * time.Hour,
	}
}

func newTestEngine(
	inv *inventoryRepoMock,
	rem *reminderRepoMock,
	kit *kitchenRepoMock,
	n *notifierMock,
	clock clockwork.Clock,
) *Engine {
	return NewEngine(slog.Default(), testSweepConfig(), clock, inv, rem, kit, n)
}

// capturingReminderRepo collects created reminders and accepts all of
// them, for passes where only the created set matters.
type capturingReminderRepo struct {
	mu      sync.Mutex
	created []*domain.Reminder
}

func (c *capturingReminderRepo) repo() *reminderRepoMock {
	return &reminderRepoMock{
		CreateFunc: func(_ context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.created = append(c.created, rem)
			return rem, nil
		},
	}
}

func TestLowStockPass_CreatesReminderAndNotifiesMembers(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	member1, member2 := uuid.New(), uuid.New()
	item := domain.InventoryItem{
		ID: uuid.New(), KitchenID: kitchenID,
		Name: "Milk", DefaultUnit: "l", Threshold: 2,
	}

	inv := &inventoryRepoMock{
		ListLowStockFunc: func(context.Context) ([]postgresinv.LowStockRow, error) {
			return []postgresinv.LowStockRow{{Item: item, Quantity: 1.5}}, nil
		},
	}
	captured := &capturingReminderRepo{}
	kit := &kitchenRepoMock{
		MemberUserIDsFunc: func(_ context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			if id != kitchenID {
				t.Errorf("MemberUserIDs called with kitchen %s, want %s", id, kitchenID)
			}
			return []uuid.UUID{member1, member2}, nil
		},
	}
	n := &notifierMock{}

	e := newTestEngine(inv, captured.repo(), kit, n, clockwork.NewFakeClock())
	if err := e.LowStockPass(context.Background()); err != nil {
		t.Fatalf("LowStockPass: %v", err)
	}

	if len(captured.created) != 1 {
		t.Fatalf("created %d reminders, want 1", len(captured.created))
	}
	rem := captured.created[0]
	if rem.Type != domain.ReminderTypeLowStock {
		t.Errorf("type = %s, want LOW_STOCK", rem.Type)
	}
	if rem.EntityID == nil || *rem.EntityID != item.ID {
		t.Error("reminder must reference the item")
	}
	if rem.KitchenID != kitchenID {
		t.Errorf("kitchen = %s, want %s", rem.KitchenID, kitchenID)
	}

	sent := n.Sent()
	if len(sent) != 2 {
		t.Fatalf("sent %d notifications, want one per member", len(sent))
	}
	if !strings.Contains(sent[0].Title, "Milk") {
		t.Errorf("notification title %q must name the item", sent[0].Title)
	}
}

func TestLowStockPass_ExistingReminderIsSilent(t *testing.T) {
	t.Parallel()

	item := domain.InventoryItem{ID: uuid.New(), KitchenID: uuid.New(), Name: "Milk", Threshold: 2}
	inv := &inventoryRepoMock{
		ListLowStockFunc: func(context.Context) ([]postgresinv.LowStockRow, error) {
			return []postgresinv.LowStockRow{{Item: item, Quantity: 1}}, nil
		},
	}
	rem := &reminderRepoMock{
		CreateFunc: func(context.Context, *domain.Reminder) (*domain.Reminder, error) {
			return nil, fmt.Errorf("reminder: %w", domain.ErrAlreadyExists)
		},
	}
	n := &notifierMock{}
	// kitchenRepoMock has a nil MemberUserIDsFunc: a duplicate must not
	// reach the fan-out.
	e := newTestEngine(inv, rem, &kitchenRepoMock{}, n, clockwork.NewFakeClock())

	if err := e.LowStockPass(context.Background()); err != nil {
		t.Fatalf("LowStockPass: %v", err)
	}
	if len(n.Sent()) != 0 {
		t.Error("existing reminder must not notify again")
	}
}

func TestExpiryPass_MarksExpiredAndRemindsUpcoming(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	now := clock.Now()
	kitchenID := uuid.New()
	expiresAt := now.Add(48 * time.Hour)
	batch := domain.InventoryBatch{
		ID: uuid.New(), ItemID: uuid.New(),
		Quantity: 2, Unit: "l", ExpiresAt: &expiresAt,
		Status: domain.BatchStatusActive,
	}

	var marked bool
	inv := &inventoryRepoMock{
		MarkExpiredBatchesFunc: func(_ context.Context, got time.Time) ([]*domain.InventoryBatch, error) {
			marked = true
			if !got.Equal(now) {
				t.Errorf("MarkExpiredBatches now = %v, want %v", got, now)
			}
			return nil, nil
		},
		ListExpiringBatchesFunc: func(_ context.Context, _ time.Time, window time.Duration) ([]postgresinv.ExpiringBatchRow, error) {
			if window != 72*time.Hour {
				t.Errorf("window = %v, want 72h", window)
			}
			return []postgresinv.ExpiringBatchRow{{Batch: batch, ItemName: "Milk", Kitchen: kitchenID}}, nil
		},
	}
	captured := &capturingReminderRepo{}
	kit := &kitchenRepoMock{
		MemberUserIDsFunc: func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{uuid.New()}, nil
		},
	}
	n := &notifierMock{}

	e := newTestEngine(inv, captured.repo(), kit, n, clock)
	if err := e.ExpiryPass(context.Background()); err != nil {
		t.Fatalf("ExpiryPass: %v", err)
	}

	if !marked {
		t.Error("pass must mark overdue batches before scanning")
	}
	if len(captured.created) != 1 {
		t.Fatalf("created %d reminders, want 1", len(captured.created))
	}
	rem := captured.created[0]
	if rem.Type != domain.ReminderTypeExpiry {
		t.Errorf("type = %s, want EXPIRY", rem.Type)
	}
	if rem.EntityID == nil || *rem.EntityID != batch.ID {
		t.Error("reminder must reference the batch")
	}
	sent := n.Sent()
	if len(sent) != 1 || !strings.Contains(sent[0].Body, "2 days") {
		t.Errorf("notification body must mention days left, got %+v", sent)
	}
}

func TestUsagePass_PredictsDepletionInsideHorizon(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	fast := domain.InventoryItem{ID: uuid.New(), KitchenID: kitchenID, Name: "Coffee", DefaultUnit: "g"}
	slow := domain.InventoryItem{ID: uuid.New(), KitchenID: kitchenID, Name: "Salt", DefaultUnit: "g"}

	inv := &inventoryRepoMock{
		ListConsumptionStatsFunc: func(context.Context, time.Time) ([]postgresinv.ConsumptionStatRow, error) {
			return []postgresinv.ConsumptionStatRow{
				// 60 consumed over the 30-day window, 10 left: 2/day,
				// gone in 5 days, inside the 7-day horizon.
				{Item: fast, Quantity: 10, Consumed: 60},
				// 30 consumed, 100 left: 1/day, 100 days out.
				{Item: slow, Quantity: 100, Consumed: 30},
			}, nil
		},
	}
	captured := &capturingReminderRepo{}
	kit := &kitchenRepoMock{
		MemberUserIDsFunc: func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{uuid.New()}, nil
		},
	}
	n := &notifierMock{}

	e := newTestEngine(inv, captured.repo(), kit, n, clockwork.NewFakeClock())
	if err := e.UsagePass(context.Background()); err != nil {
		t.Fatalf("UsagePass: %v", err)
	}

	if len(captured.created) != 1 {
		t.Fatalf("created %d reminders, want only the fast-moving item", len(captured.created))
	}
	rem := captured.created[0]
	if rem.Type != domain.ReminderTypeShopping {
		t.Errorf("type = %s, want SHOPPING", rem.Type)
	}
	if rem.EntityID == nil || *rem.EntityID != fast.ID {
		t.Error("reminder must reference the fast-moving item")
	}
	sent := n.Sent()
	if len(sent) != 1 || !strings.Contains(sent[0].Body, "5 days") {
		t.Errorf("notification must predict 5 days, got %+v", sent)
	}
}

func TestScheduledPass_CompletesOneShotAndAdvancesRecurring(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	now := clock.Now()
	kitchenID := uuid.New()
	weekly := domain.FrequencyWeekly

	oneShot := &domain.Reminder{
		ID: uuid.New(), KitchenID: kitchenID,
		Type: domain.ReminderTypeCustom, Title: "Descale the kettle",
		ScheduledAt: now.Add(-time.Minute),
	}
	recurring := &domain.Reminder{
		ID: uuid.New(), KitchenID: kitchenID,
		Type: domain.ReminderTypeCustom, Title: "Take out compost",
		ScheduledAt: now.Add(-time.Minute),
		IsRecurring: true, Frequency: &weekly,
	}

	var completed []uuid.UUID
	var updated []*domain.Reminder
	rem := &reminderRepoMock{
		ListDueFunc: func(context.Context, time.Time) ([]*domain.Reminder, error) {
			return []*domain.Reminder{oneShot, recurring}, nil
		},
		CompleteFunc: func(_ context.Context, id uuid.UUID) (*domain.Reminder, error) {
			completed = append(completed, id)
			return nil, nil
		},
		UpdateFunc: func(_ context.Context, r *domain.Reminder) (*domain.Reminder, error) {
			updated = append(updated, r)
			return r, nil
		},
	}
	kit := &kitchenRepoMock{
		MemberUserIDsFunc: func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{uuid.New()}, nil
		},
	}
	n := &notifierMock{}

	e := newTestEngine(&inventoryRepoMock{}, rem, kit, n, clock)
	if err := e.ScheduledPass(context.Background()); err != nil {
		t.Fatalf("ScheduledPass: %v", err)
	}

	if len(n.Sent()) != 2 {
		t.Fatalf("sent %d notifications, want one per due reminder", len(n.Sent()))
	}
	if !strings.HasPrefix(n.Sent()[0].Title, "Reminder: ") {
		t.Errorf("title = %q, want Reminder: prefix", n.Sent()[0].Title)
	}
	if len(completed) != 1 || completed[0] != oneShot.ID {
		t.Errorf("completed = %v, want only the one-shot", completed)
	}
	if len(updated) != 1 {
		t.Fatalf("updated %d reminders, want only the recurring one", len(updated))
	}
	if !updated[0].ScheduledAt.After(now) {
		t.Error("recurring reminder must be rescheduled into the future")
	}
}

func TestScheduledPass_UnknownFrequencyLeftUntouched(t *testing.T) {
	t.Parallel()

	bad := domain.Frequency("FORTNIGHTLY")
	clock := clockwork.NewFakeClock()
	rem := &reminderRepoMock{
		ListDueFunc: func(context.Context, time.Time) ([]*domain.Reminder, error) {
			return []*domain.Reminder{{
				ID: uuid.New(), KitchenID: uuid.New(),
				Type: domain.ReminderTypeCustom, Title: "Broken schedule",
				ScheduledAt: clock.Now().Add(-time.Minute),
				IsRecurring: true, Frequency: &bad,
			}}, nil
		},
		// Update and Complete stay nil: either call would panic.
	}
	kit := &kitchenRepoMock{
		MemberUserIDsFunc: func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
			return nil, nil
		},
	}

	e := newTestEngine(&inventoryRepoMock{}, rem, kit, &notifierMock{}, clock)
	if err := e.ScheduledPass(context.Background()); err != nil {
		t.Fatalf("ScheduledPass: %v", err)
	}
}

func TestRunPass_IsolatesErrors(t *testing.T) {
	t.Parallel()

	inv := &inventoryRepoMock{
		ListLowStockFunc: func(context.Context) ([]postgresinv.LowStockRow, error) {
			return nil, errors.New("database is down")
		},
	}
	e := newTestEngine(inv, &reminderRepoMock{}, &kitchenRepoMock{}, &notifierMock{}, clockwork.NewFakeClock())

	// Must not panic or propagate.
	e.runPass(context.Background(), "low_stock", e.LowStockPass)
}

func TestEngine_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	clock := clockwork.NewFakeClock()
	inv := &inventoryRepoMock{
		ListLowStockFunc: func(context.Context) ([]postgresinv.LowStockRow, error) { return nil, nil },
		ListExpiringBatchesFunc: func(context.Context, time.Time, time.Duration) ([]postgresinv.ExpiringBatchRow, error) {
			return nil, nil
		},
		ListConsumptionStatsFunc: func(context.Context, time.Time) ([]postgresinv.ConsumptionStatRow, error) {
			return nil, nil
		},
		MarkExpiredBatchesFunc: func(context.Context, time.Time) ([]*domain.InventoryBatch, error) {
			return nil, nil
		},
	}
	var calls sync.WaitGroup
	calls.Add(1)
	var once sync.Once
	rem := &reminderRepoMock{
		ListDueFunc: func(context.Context, time.Time) ([]*domain.Reminder, error) {
			once.Do(calls.Done)
			return nil, nil
		},
	}

	e := newTestEngine(inv, rem, &kitchenRepoMock{}, &notifierMock{}, clock)
	e.Start(context.Background())

	// The immediate run of every pass must have happened before Stop.
	calls.Wait()
	e.Stop()
}
