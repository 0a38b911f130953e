package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// inventoryRepoMock is a hand-rolled stub: unset methods panic.
type inventoryRepoMock struct {
	CreateItemFunc            func(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
	GetItemFunc               func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	UpdateItemFunc            func(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
	DeleteItemFunc            func(ctx context.Context, id uuid.UUID) error
	ListItemsFunc             func(ctx context.Context, kitchenID uuid.UUID, f postgresinv.ItemFilter) ([]*domain.InventoryItem, error)
	ItemQuantityFunc          func(ctx context.Context, itemID uuid.UUID) (float64, error)
	CreateBatchFunc           func(ctx context.Context, b *domain.InventoryBatch) (*domain.InventoryBatch, error)
	GetBatchFunc              func(ctx context.Context, id uuid.UUID) (*domain.InventoryBatch, error)
	ListBatchesByItemFunc     func(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error)
	ListActiveBatchesFIFOFunc func(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error)
	UpdateBatchFunc           func(ctx context.Context, id uuid.UUID, quantity float64, status domain.BatchStatus) (*domain.InventoryBatch, error)
	DeleteBatchFunc           func(ctx context.Context, id uuid.UUID) error
	InsertUsageFunc           func(ctx context.Context, u *domain.UsageLog) (*domain.UsageLog, error)
	ListUsageFunc             func(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error)
}

func (m *inventoryRepoMock) CreateItem(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	if m.CreateItemFunc == nil {
		panic("inventoryRepoMock.CreateItemFunc: method is nil but was called")
	}
	return m.CreateItemFunc(ctx, it)
}

func (m *inventoryRepoMock) GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	if m.GetItemFunc == nil {
		panic("inventoryRepoMock.GetItemFunc: method is nil but was called")
	}
	return m.GetItemFunc(ctx, id)
}

func (m *inventoryRepoMock) UpdateItem(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
	if m.UpdateItemFunc == nil {
		panic("inventoryRepoMock.UpdateItemFunc: method is nil but was called")
	}
	return m.UpdateItemFunc(ctx, it)
}

func (m *inventoryRepoMock) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if m.DeleteItemFunc == nil {
		panic("inventoryRepoMock.DeleteItemFunc: method is nil but was called")
	}
	return m.DeleteItemFunc(ctx, id)
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

func (m *inventoryRepoMock) CreateBatch(ctx context.Context, b *domain.InventoryBatch) (*domain.InventoryBatch, error) {
	if m.CreateBatchFunc == nil {
		panic("inventoryRepoMock.CreateBatchFunc: method is nil but was called")
	}
	return m.CreateBatchFunc(ctx, b)
}

func (m *inventoryRepoMock) GetBatch(ctx context.Context, id uuid.UUID) (*domain.InventoryBatch, error) {
	if m.GetBatchFunc == nil {
		panic("inventoryRepoMock.GetBatchFunc: method is nil but was called")
	}
	return m.GetBatchFunc(ctx, id)
}

func (m *inventoryRepoMock) ListBatchesByItem(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
	if m.ListBatchesByItemFunc == nil {
		panic("inventoryRepoMock.ListBatchesByItemFunc: method is nil but was called")
	}
	return m.ListBatchesByItemFunc(ctx, itemID)
}

func (m *inventoryRepoMock) ListActiveBatchesFIFO(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
	if m.ListActiveBatchesFIFOFunc == nil {
		panic("inventoryRepoMock.ListActiveBatchesFIFOFunc: method is nil but was called")
	}
	return m.ListActiveBatchesFIFOFunc(ctx, itemID)
}

func (m *inventoryRepoMock) UpdateBatch(ctx context.Context, id uuid.UUID, quantity float64, status domain.BatchStatus) (*domain.InventoryBatch, error) {
	if m.UpdateBatchFunc == nil {
		panic("inventoryRepoMock.UpdateBatchFunc: method is nil but was called")
	}
	return m.UpdateBatchFunc(ctx, id, quantity, status)
}

func (m *inventoryRepoMock) DeleteBatch(ctx context.Context, id uuid.UUID) error {
	if m.DeleteBatchFunc == nil {
		panic("inventoryRepoMock.DeleteBatchFunc: method is nil but was called")
	}
	return m.DeleteBatchFunc(ctx, id)
}

func (m *inventoryRepoMock) InsertUsage(ctx context.Context, u *domain.UsageLog) (*domain.UsageLog, error) {
	if m.InsertUsageFunc == nil {
		panic("inventoryRepoMock.InsertUsageFunc: method is nil but was called")
	}
	return m.InsertUsageFunc(ctx, u)
}

func (m *inventoryRepoMock) ListUsage(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error) {
	if m.ListUsageFunc == nil {
		panic("inventoryRepoMock.ListUsageFunc: method is nil but was called")
	}
	return m.ListUsageFunc(ctx, itemID, since)
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

// txManagerMock runs the callback inline, no real transaction.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
