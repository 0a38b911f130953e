package mealplan

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/provider/gemini"
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

func newTestService(repo *mealplanRepoMock, inv *inventoryRepoMock, access *accessServiceMock, llm *llmClientMock, store *objectStoreMock) *Service {
	if inv == nil {
		inv = &inventoryRepoMock{}
	}
	var l LLMClient
	if llm != nil {
		l = llm
	}
	var st ObjectStore
	if store != nil {
		st = store
	}
	return NewService(slog.Default(), repo, inv, access, l, st)
}

func TestCreateEntry_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &mealplanRepoMock{
		CreateEntryFunc: func(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error) {
			return e, nil
		},
	}
	svc := newTestService(repo, nil, allowKitchen(domain.RoleMember), nil, nil)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	entry, err := svc.CreateEntry(ctx, CreateEntryInput{
		KitchenID: uuid.New(),
		Date:      time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC),
		Meal:      domain.MealTypeDinner,
		Title:     "Mushroom risotto",
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.CreatedBy != userID {
		t.Error("creator not recorded")
	}
	if entry.Date.Hour() != 0 {
		t.Errorf("date should be truncated to midnight, got %v", entry.Date)
	}
}

func TestCreateEntry_DuplicateSlot(t *testing.T) {
	t.Parallel()

	repo := &mealplanRepoMock{
		CreateEntryFunc: func(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	svc := newTestService(repo, nil, allowKitchen(domain.RoleMember), nil, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateEntry(ctx, CreateEntryInput{
		KitchenID: uuid.New(),
		Date:      time.Now(),
		Meal:      domain.MealTypeLunch,
		Title:     "Leftovers",
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateEntry_ForeignRecipeRejected(t *testing.T) {
	t.Parallel()

	recipeID := uuid.New()
	repo := &mealplanRepoMock{
		GetRecipeFunc: func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
			return &domain.Recipe{ID: recipeID, KitchenID: uuid.New()}, nil
		},
	}
	svc := newTestService(repo, nil, allowKitchen(domain.RoleMember), nil, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateEntry(ctx, CreateEntryInput{
		KitchenID: uuid.New(),
		Date:      time.Now(),
		Meal:      domain.MealTypeDinner,
		Title:     "Stolen dish",
		RecipeID:  &recipeID,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGenerateRecipe_UsesInventory(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	rice := &domain.InventoryItem{ID: uuid.New(), KitchenID: kitchenID, Name: "Rice", DefaultUnit: "kg"}
	empty := &domain.InventoryItem{ID: uuid.New(), KitchenID: kitchenID, Name: "Saffron", DefaultUnit: "g"}

	var offered []gemini.Ingredient
	var storedRecipe *domain.Recipe

	repo := &mealplanRepoMock{
		CreateRecipeFunc: func(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
			storedRecipe = rec
			return rec, nil
		},
	}
	inv := &inventoryRepoMock{
		ListItemsFunc: func(ctx context.Context, k uuid.UUID, f postgresinv.ItemFilter) ([]*domain.InventoryItem, error) {
			return []*domain.InventoryItem{rice, empty}, nil
		},
		ItemQuantityFunc: func(ctx context.Context, itemID uuid.UUID) (float64, error) {
			if itemID == rice.ID {
				return 2, nil
			}
			return 0, nil
		},
	}
	llm := &llmClientMock{
		GenerateRecipeFunc: func(ctx context.Context, req gemini.RecipeRequest) (*gemini.GeneratedRecipe, error) {
			offered = req.Ingredients
			return &gemini.GeneratedRecipe{
				Title:        "Fried rice",
				Ingredients:  []domain.RecipeIngredient{{Name: "Rice", Quantity: 0.5, Unit: "kg"}},
				Instructions: "Cook the rice. Fry it.",
				Servings:     req.Servings,
			}, nil
		},
	}
	svc := newTestService(repo, inv, allowKitchen(domain.RoleMember), llm, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	rec, err := svc.GenerateRecipe(ctx, GenerateRecipeInput{KitchenID: kitchenID, Servings: 2})
	if err != nil {
		t.Fatalf("GenerateRecipe: %v", err)
	}

	if len(offered) != 1 || offered[0].Name != "Rice" {
		t.Errorf("depleted items must not be offered to the model: %+v", offered)
	}
	if !rec.Generated {
		t.Error("recipe should be marked Generated")
	}
	if storedRecipe == nil || storedRecipe.Title != "Fried rice" {
		t.Error("generated recipe not stored")
	}
}

func TestGenerateRecipe_NotConfigured(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mealplanRepoMock{}, nil, allowKitchen(domain.RoleMember), nil, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.GenerateRecipe(ctx, GenerateRecipeInput{KitchenID: uuid.New(), Servings: 2})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGenerateRecipe_EmptyKitchen(t *testing.T) {
	t.Parallel()

	inv := &inventoryRepoMock{
		ListItemsFunc: func(ctx context.Context, k uuid.UUID, f postgresinv.ItemFilter) ([]*domain.InventoryItem, error) {
			return nil, nil
		},
	}
	svc := newTestService(&mealplanRepoMock{}, inv, allowKitchen(domain.RoleMember), &llmClientMock{}, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.GenerateRecipe(ctx, GenerateRecipeInput{KitchenID: uuid.New(), Servings: 2})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUploadAndParseReceipt(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	store := newObjectStoreMock()
	llm := &llmClientMock{
		ParseReceiptFunc: func(ctx context.Context, image []byte, mimeType string) ([]domain.ReceiptLine, error) {
			if mimeType != "image/jpeg" {
				t.Errorf("content type lost: %q", mimeType)
			}
			return []domain.ReceiptLine{{Name: "Milk", Quantity: 2, Unit: "l", PriceCents: 218}}, nil
		},
	}
	svc := newTestService(&mealplanRepoMock{}, nil, allowKitchen(domain.RoleMember), llm, store)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	key, err := svc.UploadReceipt(ctx, kitchenID, []byte("jpegdata"), "image/jpeg")
	if err != nil {
		t.Fatalf("UploadReceipt: %v", err)
	}
	if !strings.HasPrefix(key, "receipts/"+kitchenID.String()+"/") {
		t.Errorf("key not namespaced by kitchen: %q", key)
	}

	lines, err := svc.ParseReceipt(ctx, kitchenID, key)
	if err != nil {
		t.Fatalf("ParseReceipt: %v", err)
	}
	if len(lines) != 1 || lines[0].Name != "Milk" {
		t.Errorf("lines wrong: %+v", lines)
	}
}

func TestParseReceipt_ForeignKeyRejected(t *testing.T) {
	t.Parallel()

	store := newObjectStoreMock()
	svc := newTestService(&mealplanRepoMock{}, nil, allowKitchen(domain.RoleMember), &llmClientMock{}, store)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	otherKitchen := uuid.New()
	_, err := svc.ParseReceipt(ctx, uuid.New(), "receipts/"+otherKitchen.String()+"/x.jpg")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUploadReceipt_BadContentType(t *testing.T) {
	t.Parallel()

	store := newObjectStoreMock()
	svc := newTestService(&mealplanRepoMock{}, nil, allowKitchen(domain.RoleMember), nil, store)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.UploadReceipt(ctx, uuid.New(), []byte("%PDF"), "application/pdf")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
