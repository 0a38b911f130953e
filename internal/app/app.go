package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	expenserepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/expense"
	householdrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/household"
	inventoryrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	kitchenrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/kitchen"
	mealplanrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/mealplan"
	notificationrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/notification"
	reminderrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/reminder"
	shoppingrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/shopping"
	"github.com/hearthhq/hearth-backend/internal/adapter/postgres/token"
	userrepo "github.com/hearthhq/hearth-backend/internal/adapter/postgres/user"
	authpkg "github.com/hearthhq/hearth-backend/internal/auth"
	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/provider/gemini"
	"github.com/hearthhq/hearth-backend/internal/provider/postmark"
	"github.com/hearthhq/hearth-backend/internal/provider/s3"
	"github.com/hearthhq/hearth-backend/internal/provider/webpush"
	"github.com/hearthhq/hearth-backend/internal/service/access"
	authsvc "github.com/hearthhq/hearth-backend/internal/service/auth"
	"github.com/hearthhq/hearth-backend/internal/service/expense"
	"github.com/hearthhq/hearth-backend/internal/service/household"
	"github.com/hearthhq/hearth-backend/internal/service/inventory"
	"github.com/hearthhq/hearth-backend/internal/service/kitchen"
	"github.com/hearthhq/hearth-backend/internal/service/mealplan"
	"github.com/hearthhq/hearth-backend/internal/service/notification"
	"github.com/hearthhq/hearth-backend/internal/service/reminder"
	"github.com/hearthhq/hearth-backend/internal/service/shopping"
	gqlpkg "github.com/hearthhq/hearth-backend/internal/transport/graphql"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/dataloader"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/generated"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/resolver"
	"github.com/hearthhq/hearth-backend/internal/transport/middleware"
	"github.com/hearthhq/hearth-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects
// to PostgreSQL, assembles repositories, services, and the GraphQL
// transport, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	// Repositories.
	expenseRepo := expenserepo.New(pool)
	householdRepo := householdrepo.New(pool)
	inventoryRepo := inventoryrepo.New(pool)
	kitchenRepo := kitchenrepo.New(pool)
	mealplanRepo := mealplanrepo.New(pool)
	notificationRepo := notificationrepo.New(pool)
	reminderRepo := reminderrepo.New(pool)
	shoppingRepo := shoppingrepo.New(pool)
	tokenRepo := token.New(pool)
	userRepo := userrepo.New(pool)

	// Optional providers. A nil interface disables the feature; the
	// owning service degrades instead of failing at startup.
	var llm mealplan.LLMClient
	if cfg.LLM.Enabled() {
		client, err := gemini.NewClient(ctx, logger, cfg.LLM)
		if err != nil {
			return fmt.Errorf("init gemini client: %w", err)
		}
		defer client.Close()
		llm = client
	} else {
		logger.Info("LLM features disabled: no Gemini API key")
	}

	var store mealplan.ObjectStore
	if cfg.Storage.Enabled() {
		store = s3.NewStore(cfg.Storage)
	} else {
		logger.Info("receipt storage disabled: no bucket credentials")
	}

	var push notification.Pusher
	if cfg.Push.Enabled() {
		push = webpush.NewSender(cfg.Push)
	} else {
		logger.Info("web push disabled: no VAPID keys")
	}

	var mailer household.InviteMailer
	if cfg.Email.ServerToken != "" {
		mailer = postmark.NewMailer(logger, cfg.Email)
	} else {
		logger.Info("invite email disabled: no Postmark token")
	}

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	accessService := access.NewService(logger, householdRepo, kitchenRepo)
	authService := authsvc.NewService(logger, userRepo, tokenRepo, jwtMgr, cfg.Auth)
	householdService := household.NewService(logger, householdRepo, userRepo, accessService, txm, jwtMgr, mailer, cfg.Auth)
	kitchenService := kitchen.NewService(logger, kitchenRepo, accessService)
	inventoryService := inventory.NewService(logger, inventoryRepo, accessService, txm)
	shoppingService := shopping.NewService(logger, shoppingRepo, inventoryRepo, accessService, txm)
	expenseService := expense.NewService(logger, expenseRepo, accessService)
	mealplanService := mealplan.NewService(logger, mealplanRepo, inventoryRepo, accessService, llm, store)
	reminderService := reminder.NewService(logger, reminderRepo, accessService)
	notificationService := notification.NewService(logger, notificationRepo, push)

	// GraphQL resolver + handler.
	res := resolver.NewResolver(
		logger, authService, householdService, kitchenService,
		inventoryService, shoppingService, expenseService,
		mealplanService, reminderService, notificationService,
	)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlpkg.NewServer(schema, cfg.GraphQL, logger)

	dlRepos := &dataloader.Repos{
		User:       userRepo,
		Membership: householdRepo,
		Item:       inventoryRepo,
	}

	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	public := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rl.Limit(cfg.Server.RateLimitPerMin),
	)
	protected := middleware.Chain(
		public,
		middleware.Auth(jwtMgr),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)

	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	authHandler := rest.NewAuthHandler(authService, jwtMgr, logger)
	mux.Handle("POST /auth/register", public(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /auth/login", public(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /auth/refresh", public(http.HandlerFunc(authHandler.Refresh)))
	mux.Handle("POST /auth/logout", public(http.HandlerFunc(authHandler.Logout)))

	mux.Handle("POST /query", protected(gqlSrv))
	mux.Handle("OPTIONS /query", protected(gqlSrv))

	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /playground", playground.Handler("Hearth GraphQL", "/query"))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
