package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/provider/gemini"
)

// mealplanRepoMock is a hand-rolled stub: unset methods panic.
type mealplanRepoMock struct {
	CreateEntryFunc  func(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error)
	GetEntryFunc     func(ctx context.Context, id uuid.UUID) (*domain.MealPlanEntry, error)
	ListEntriesFunc  func(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error)
	UpdateEntryFunc  func(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error)
	DeleteEntryFunc  func(ctx context.Context, id uuid.UUID) error
	CreateRecipeFunc func(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	GetRecipeFunc    func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	ListRecipesFunc  func(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error)
	DeleteRecipeFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mealplanRepoMock) CreateEntry(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error) {
	if m.CreateEntryFunc == nil {
		panic("mealplanRepoMock.CreateEntryFunc: method is nil but was called")
	}
	return m.CreateEntryFunc(ctx, e)
}

func (m *mealplanRepoMock) GetEntry(ctx context.Context, id uuid.UUID) (*domain.MealPlanEntry, error) {
	if m.GetEntryFunc == nil {
		panic("mealplanRepoMock.GetEntryFunc: method is nil but was called")
	}
	return m.GetEntryFunc(ctx, id)
}

func (m *mealplanRepoMock) ListEntries(ctx context.Context, kitchenID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error) {
	if m.ListEntriesFunc == nil {
		panic("mealplanRepoMock.ListEntriesFunc: method is nil but was called")
	}
	return m.ListEntriesFunc(ctx, kitchenID, from, to)
}

func (m *mealplanRepoMock) UpdateEntry(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error) {
	if m.UpdateEntryFunc == nil {
		panic("mealplanRepoMock.UpdateEntryFunc: method is nil but was called")
	}
	return m.UpdateEntryFunc(ctx, e)
}

func (m *mealplanRepoMock) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if m.DeleteEntryFunc == nil {
		panic("mealplanRepoMock.DeleteEntryFunc: method is nil but was called")
	}
	return m.DeleteEntryFunc(ctx, id)
}

func (m *mealplanRepoMock) CreateRecipe(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	if m.CreateRecipeFunc == nil {
		panic("mealplanRepoMock.CreateRecipeFunc: method is nil but was called")
	}
	return m.CreateRecipeFunc(ctx, rec)
}

func (m *mealplanRepoMock) GetRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	if m.GetRecipeFunc == nil {
		panic("mealplanRepoMock.GetRecipeFunc: method is nil but was called")
	}
	return m.GetRecipeFunc(ctx, id)
}

func (m *mealplanRepoMock) ListRecipes(ctx context.Context, kitchenID uuid.UUID) ([]*domain.Recipe, error) {
	if m.ListRecipesFunc == nil {
		panic("mealplanRepoMock.ListRecipesFunc: method is nil but was called")
	}
	return m.ListRecipesFunc(ctx, kitchenID)
}

func (m *mealplanRepoMock) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if m.DeleteRecipeFunc == nil {
		panic("mealplanRepoMock.DeleteRecipeFunc: method is nil but was called")
	}
	return m.DeleteRecipeFunc(ctx, id)
}

type inventoryRepoMock struct {
	ListItemsFunc    func(ctx context.Context, kitchenID uuid.UUID, f postgresinv.ItemFilter) ([]*domain.InventoryItem, error)
	ItemQuantityFunc func(ctx context.Context, itemID uuid.UUID) (float64, error)
}

func (m *inventoryRepoMock) ListItems(ctx context.Context, kitchenID uuid.UUID, f postgresinv.ItemFilter) ([]*domain.InventoryItem, error) {
	if m.ListItemsFunc == nil {
		panic("inventoryRepoMock.ListItemsFunc: method is nil but was called")
	}
	return m.ListItemsFunc(ctx, kitchenID, f)
}

func (m *inventoryRepoMock) ItemQuantity(ctx context.Context, itemID uuid.UUID) (float64, error) {
	if m.ItemQuantityFunc == nil {
		panic("inventoryRepoMock.ItemQuantityFunc: method is nil but was called")
	}
	return m.ItemQuantityFunc(ctx, itemID)
}

type llmClientMock struct {
	GenerateRecipeFunc func(ctx context.Context, req gemini.RecipeRequest) (*gemini.GeneratedRecipe, error)
	ParseReceiptFunc   func(ctx context.Context, image []byte, mimeType string) ([]domain.ReceiptLine, error)
}

func (m *llmClientMock) GenerateRecipe(ctx context.Context, req gemini.RecipeRequest) (*gemini.GeneratedRecipe, error) {
	if m.GenerateRecipeFunc == nil {
		panic("llmClientMock.GenerateRecipeFunc: method is nil but was called")
	}
	return m.GenerateRecipeFunc(ctx, req)
}

func (m *llmClientMock) ParseReceipt(ctx context.Context, image []byte, mimeType string) ([]domain.ReceiptLine, error) {
	if m.ParseReceiptFunc == nil {
		panic("llmClientMock.ParseReceiptFunc: method is nil but was called")
	}
	return m.ParseReceiptFunc(ctx, image, mimeType)
}

// objectStoreMock keeps objects in a map.
type objectStoreMock struct {
	objects map[string][]byte
	types   map[string]string
}

func newObjectStoreMock() *objectStoreMock {
	return &objectStoreMock{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *objectStoreMock) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *objectStoreMock) Download(ctx context.Context, key string) ([]byte, string, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	return data, m.types[key], nil
}

type accessServiceMock struct {
	RequireKitchenFunc func(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

func (m *accessServiceMock) RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error) {
	if m.RequireKitchenFunc == nil {
		panic("accessServiceMock.RequireKitchenFunc: method is nil but was called")
	}
	return m.RequireKitchenFunc(ctx, userID, kitchenID, minRole)
}
