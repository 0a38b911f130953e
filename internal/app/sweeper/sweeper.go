// Package sweeper wires and runs the reminder sweep daemon as its own
// process, separate from the API server so sweep load never competes
// with request latency.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	inventoryrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	kitchenrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/kitchen"
	notificationrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/notification"
	reminderrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/reminder"
	"github.com/hearthhq/hearth-backend/internal/app"
	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/provider/webpush"
	"github.com/hearthhq/hearth-backend/internal/service/notification"
	"github.com/hearthhq/hearth-backend/internal/sweep"
)

// Run starts the sweep engine and blocks until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting sweeper",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var push notification.Pusher
	if cfg.Push.Enabled() {
		push = webpush.NewSender(cfg.Push)
	} else {
		logger.Info("web push disabled: no VAPID keys")
	}

	notifier := notification.NewService(logger, notificationrepo.New(pool), push)

	engine := sweep.NewEngine(
		logger,
		cfg.Sweep,
		clockwork.NewRealClock(),
		inventoryrepo.New(pool),
		reminderrepo.New(pool),
		kitchenrepo.New(pool),
		notifier,
	)

	engine.Start(ctx)
	<-ctx.Done()
	engine.Stop()

	logger.Info("sweeper stopped")
	return nil
}
