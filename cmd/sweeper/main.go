// Command sweeper runs the reminder sweep daemon. It scans inventory
// for low-stock and expiring items, predicts depletion from usage
// history, and delivers scheduled reminders as notifications.
//
// It shares configuration with the server; DATABASE_DSN is required.
// Run exactly one instance per database: passes are idempotent, but a
// second instance doubles the query load for nothing.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/hearthhq/hearth-backend/internal/app/sweeper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sweeper.Run(ctx); err != nil {
		log.Fatalf("sweeper: %v", err)
	}
}
