// Package mealplan implements meal plan entries, saved recipes,
// LLM-generated recipe suggestions, and receipt parsing.
package mealplan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/provider/gemini"
)

type mealplanRepo interface {
	CreateEntry(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.MealPlanEntry, error)
	ListEntries(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error)
	UpdateEntry(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	CreateRecipe(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
}

type inventoryRepo interface {
	ListItems(ctx context.Context, kitchenID uuid.UUID, f postgresinv.ItemFilter) ([]*domain.InventoryItem, error)
	ItemQuantity(ctx context.Context, itemID uuid.UUID) (float64, error)
}

// LLMClient generates recipes and parses receipt images. Nil disables
// both features; the affected operations return ErrValidation.
type LLMClient interface {
	GenerateRecipe(ctx context.Context, req gemini.RecipeRequest) (*gemini.GeneratedRecipe, error)
	ParseReceipt(ctx context.Context, image []byte, mimeType string) ([]domain.ReceiptLine, error)
}

// ObjectStore persists receipt images. Nil disables receipt upload.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, string, error)
}

type accessService interface {
	RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

// Service implements meal plan business logic. llm and store may be
// nil when the respective backends are not configured; the operations
// that need them fail with a validation error.
type Service struct {
	log       *slog.Logger
	repo      mealplanRepo
	inventory inventoryRepo
	access    accessService
	llm       LLMClient
	store     ObjectStore
}

// NewService creates a new meal plan service.
func NewService(logger *slog.Logger, repo mealplanRepo, inventory inventoryRepo, access accessService, llm LLMClient, store ObjectStore) *Service {
	return &Service{
		log:       logger.With("service", "mealplan"),
		repo:      repo,
		inventory: inventory,
		access:    access,
		llm:       llm,
		store:     store,
	}
}
