// Command server runs the Hearth API: GraphQL at /query, auth and
// health endpoints over REST.
//
// Configuration comes from CONFIG_PATH (YAML) and environment
// variables; DATABASE_DSN and AUTH_JWT_SECRET are required.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/hearthhq/hearth-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
