// Package sweep materializes derived reminders from inventory and usage
// state, and processes scheduled reminders when they come due.
//
// Four independent passes run on their own timers: low stock, expiring
// batches, usage-based restock prediction, and scheduled delivery. A
// pass failure is logged and the next tick retries; passes never take
// each other down. Idempotency rides on the store's partial unique
// index over (kitchen, type, entity) for incomplete reminders: a
// concurrent or repeated pass sees ErrAlreadyExists and moves on.
package sweep

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

type inventoryRepo interface {
	ListLowStock(ctx context.Context) ([]postgresinv.LowStockRow, error)
	ListExpiringBatches(ctx context.Context, now time.Time, window time.Duration) ([]postgresinv.ExpiringBatchRow, error)
	ListConsumptionStats(ctx context.Context, since time.Time) ([]postgresinv.ConsumptionStatRow, error)
	MarkExpiredBatches(ctx context.Context, now time.Time) ([]*domain.InventoryBatch, error)
}

type reminderRepo interface {
	Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	ListDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	Update(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
}

type kitchenRepo interface {
	MemberUserIDs(ctx context.Context, kitchenID uuid.UUID) ([]uuid.UUID, error)
}

type notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) (*domain.Notification, error)
}

// Engine runs the sweep passes.
type Engine struct {
	log       *slog.Logger
	cfg       config.SweepConfig
	clock     clockwork.Clock
	inventory inventoryRepo
	reminders reminderRepo
	kitchens  kitchenRepo
	notifier  notifier

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates a sweep engine. The clock is injectable so tests
// can drive the timers.
func NewEngine(
	logger *slog.Logger,
	cfg config.SweepConfig,
	clock clockwork.Clock,
	inventory inventoryRepo,
	reminders reminderRepo,
	kitchens kitchenRepo,
	n notifier,
) *Engine {
	return &Engine{
		log:       logger.With("component", "sweep"),
		cfg:       cfg,
		clock:     clock,
		inventory: inventory,
		reminders: reminders,
		kitchens:  kitchens,
		notifier:  n,
	}
}

// Start launches one goroutine per pass. Each pass runs once
// immediately, then on its interval.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)

	passes := []struct {
		name     string
		interval time.Duration
		run      func(context.Context) error
	}{
		{"low_stock", e.cfg.LowStockInterval, e.LowStockPass},
		{"expiry", e.cfg.ExpiryInterval, e.ExpiryPass},
		{"usage", e.cfg.UsageInterval, e.UsagePass},
		{"scheduled", e.cfg.ScheduledInterval, e.ScheduledPass},
	}

	for _, p := range passes {
		e.wg.Add(1)
		go e.loop(ctx, p.name, p.interval, p.run)
	}

	e.log.InfoContext(ctx, "sweep engine started")
}

// Stop cancels the pass loops and waits for them to drain.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()
	e.log.Info("sweep engine stopped")
}

func (e *Engine) loop(ctx context.Context, name string, interval time.Duration, run func(context.Context) error) {
	defer e.wg.Done()

	e.runPass(ctx, name, run)

	ticker := e.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			e.runPass(ctx, name, run)
		}
	}
}

// runPass isolates one pass execution: errors and panics are logged,
// never propagated to the loop.
func (e *Engine) runPass(ctx context.Context, name string, run func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			e.log.ErrorContext(ctx, "sweep pass panicked",
				slog.String("pass", name),
				slog.Any("panic", r))
		}
	}()

	if err := run(ctx); err != nil && ctx.Err() == nil {
		e.log.ErrorContext(ctx, "sweep pass failed",
			slog.String("pass", name),
			slog.String("error", err.Error()))
	}
}

// ensureReminder creates a reminder unless an incomplete one already
// exists for the same (kitchen, type, entity). It returns true when a
// new reminder was created.
func (e *Engine) ensureReminder(ctx context.Context, rem *domain.Reminder) (bool, error) {
	_, err := e.reminders.Create(ctx, rem)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrAlreadyExists):
		return false, nil
	default:
		return false, err
	}
}

// notifyKitchen fans a message out to every member of the kitchen's
// household. Delivery is best effort.
func (e *Engine) notifyKitchen(ctx context.Context, kitchenID uuid.UUID, title, body string, data map[string]string) {
	userIDs, err := e.kitchens.MemberUserIDs(ctx, kitchenID)
	if err != nil {
		e.log.WarnContext(ctx, "listing kitchen members failed",
			slog.String("kitchen_id", kitchenID.String()),
			slog.String("error", err.Error()))
		return
	}
	for _, userID := range userIDs {
		if _, err := e.notifier.Notify(ctx, userID, title, body, data); err != nil {
			e.log.WarnContext(ctx, "notification failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
	}
}
