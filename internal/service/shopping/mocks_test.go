package shopping

import (
	"context"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// shoppingRepoMock is a hand-rolled stub: unset methods panic.
type shoppingRepoMock struct {
	CreateListFunc    func(ctx context.Context, l *domain.ShoppingList) (*domain.ShoppingList, error)
	GetListFunc       func(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error)
	ListByKitchenFunc func(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error)
	RenameListFunc    func(ctx context.Context, id uuid.UUID, name string) (*domain.ShoppingList, error)
	DeleteListFunc    func(ctx context.Context, id uuid.UUID) error
	InsertLineFunc    func(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	GetLineFunc       func(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)
	ListLinesFunc     func(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error)
	UpdateLineFunc    func(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	DeleteLineFunc    func(ctx context.Context, id uuid.UUID) error
	DeleteCheckedFunc func(ctx context.Context, listID uuid.UUID) (int, error)
}

func (m *shoppingRepoMock) CreateList(ctx context.Context, l *domain.ShoppingList) (*domain.ShoppingList, error) {
	if m.CreateListFunc == nil {
		panic("shoppingRepoMock.CreateListFunc: method is nil but was called")
	}
	return m.CreateListFunc(ctx, l)
}

func (m *shoppingRepoMock) GetList(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
	if m.GetListFunc == nil {
		panic("shoppingRepoMock.GetListFunc: method is nil but was called")
	}
	return m.GetListFunc(ctx, id)
}

func (m *shoppingRepoMock) ListByKitchen(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error) {
	if m.ListByKitchenFunc == nil {
		panic("shoppingRepoMock.ListByKitchenFunc: method is nil but was called")
	}
	return m.ListByKitchenFunc(ctx, kitchenID)
}

func (m *shoppingRepoMock) RenameList(ctx context.Context, id uuid.UUID, name string) (*domain.ShoppingList, error) {
	if m.RenameListFunc == nil {
		panic("shoppingRepoMock.RenameListFunc: method is nil but was called")
	}
	return m.RenameListFunc(ctx, id, name)
}

func (m *shoppingRepoMock) DeleteList(ctx context.Context, id uuid.UUID) error {
	if m.DeleteListFunc == nil {
		panic("shoppingRepoMock.DeleteListFunc: method is nil but was called")
	}
	return m.DeleteListFunc(ctx, id)
}

func (m *shoppingRepoMock) InsertLine(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	if m.InsertLineFunc == nil {
		panic("shoppingRepoMock.InsertLineFunc: method is nil but was called")
	}
	return m.InsertLineFunc(ctx, li)
}

func (m *shoppingRepoMock) GetLine(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	if m.GetLineFunc == nil {
		panic("shoppingRepoMock.GetLineFunc: method is nil but was called")
	}
	return m.GetLineFunc(ctx, id)
}

func (m *shoppingRepoMock) ListLines(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error) {
	if m.ListLinesFunc == nil {
		panic("shoppingRepoMock.ListLinesFunc: method is nil but was called")
	}
	return m.ListLinesFunc(ctx, listID)
}

func (m *shoppingRepoMock) UpdateLine(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	if m.UpdateLineFunc == nil {
		panic("shoppingRepoMock.UpdateLineFunc: method is nil but was called")
	}
	return m.UpdateLineFunc(ctx, li)
}

func (m *shoppingRepoMock) DeleteLine(ctx context.Context, id uuid.UUID) error {
	if m.DeleteLineFunc == nil {
		panic("shoppingRepoMock.DeleteLineFunc: method is nil but was called")
	}
	return m.DeleteLineFunc(ctx, id)
}

func (m *shoppingRepoMock) DeleteChecked(ctx context.Context, listID uuid.UUID) (int, error) {
	if m.DeleteCheckedFunc == nil {
		panic("shoppingRepoMock.DeleteCheckedFunc: method is nil but was called")
	}
	return m.DeleteCheckedFunc(ctx, listID)
}

type inventoryRepoMock struct {
	ListRestockCandidatesFunc func(ctx context.Context, kitchenID uuid.UUID) ([]*postgresinv.RestockRow, error)
}

func (m *inventoryRepoMock) ListRestockCandidates(ctx context.Context, kitchenID uuid.UUID) ([]*postgresinv.RestockRow, error) {
	if m.ListRestockCandidatesFunc == nil {
		panic("inventoryRepoMock.ListRestockCandidatesFunc: method is nil but was called")
	}
	return m.ListRestockCandidatesFunc(ctx, kitchenID)
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
