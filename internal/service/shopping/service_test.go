package shopping

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
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

func newTestService(repo *shoppingRepoMock, inv *inventoryRepoMock, access *accessServiceMock) *Service {
	if inv == nil {
		inv = &inventoryRepoMock{}
	}
	return NewService(slog.Default(), repo, inv, access, txManagerMock{})
}

func testList(kitchenID uuid.UUID) *domain.ShoppingList {
	return &domain.ShoppingList{
		ID:        uuid.New(),
		KitchenID: kitchenID,
		Name:      "Weekly groceries",
		CreatedBy: uuid.New(),
		CreatedAt: time.Now(),
	}
}

func restockRow(name string, threshold, qty float64) *postgresinv.RestockRow {
	return &postgresinv.RestockRow{
		Item: domain.InventoryItem{
			ID:          uuid.New(),
			Name:        name,
			DefaultUnit: "pcs",
			Threshold:   threshold,
		},
		Quantity: qty,
	}
}

func TestCreateList_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &shoppingRepoMock{
		CreateListFunc: func(ctx context.Context, l *domain.ShoppingList) (*domain.ShoppingList, error) {
			return l, nil
		},
	}
	svc := newTestService(repo, nil, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), userID)

	list, err := svc.CreateList(ctx, CreateListInput{KitchenID: uuid.New(), Name: "  Groceries "})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if list.Name != "Groceries" {
		t.Errorf("name not trimmed: %q", list.Name)
	}
	if list.CreatedBy != userID {
		t.Error("creator not recorded")
	}
}

func TestCreateList_ViewerForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(&shoppingRepoMock{}, nil, allowKitchen(domain.RoleViewer))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateList(ctx, CreateListInput{KitchenID: uuid.New(), Name: "Groceries"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSetLineChecked(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	list := testList(kitchenID)
	line := &domain.ShoppingListItem{ID: uuid.New(), ListID: list.ID, Name: "Milk", Quantity: 2, Unit: "l"}

	repo := &shoppingRepoMock{
		GetLineFunc: func(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
			return line, nil
		},
		GetListFunc: func(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
			return list, nil
		},
		UpdateLineFunc: func(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
			return li, nil
		},
	}
	svc := newTestService(repo, nil, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	updated, err := svc.SetLineChecked(ctx, line.ID, true)
	if err != nil {
		t.Fatalf("SetLineChecked: %v", err)
	}
	if !updated.IsChecked {
		t.Error("line should be checked")
	}
}

func TestRestockSuggestions_QuantityIsShortfall(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	inv := &inventoryRepoMock{
		ListRestockCandidatesFunc: func(ctx context.Context, k uuid.UUID) ([]*postgresinv.RestockRow, error) {
			return []*postgresinv.RestockRow{
				restockRow("Eggs", 12, 4),  // shortfall 8
				restockRow("Flour", 2, 2),  // exactly at threshold
				restockRow("Butter", 3, 0), // depleted
			}, nil
		},
	}
	svc := newTestService(&shoppingRepoMock{}, inv, allowKitchen(domain.RoleViewer))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	got, err := svc.RestockSuggestions(ctx, kitchenID)
	if err != nil {
		t.Fatalf("RestockSuggestions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}
	if got[0].Quantity != 8 {
		t.Errorf("Eggs: want shortfall 8, got %g", got[0].Quantity)
	}
	if got[1].Quantity != 2 {
		t.Errorf("Flour at threshold: want full threshold 2, got %g", got[1].Quantity)
	}
	if got[2].Quantity != 3 {
		t.Errorf("Butter depleted: want full threshold 3, got %g", got[2].Quantity)
	}
}

func TestAddRestockSuggestions_SkipsItemsAlreadyOnList(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	list := testList(kitchenID)
	onList := restockRow("Eggs", 12, 4)
	missing := restockRow("Milk", 2, 0)

	existingID := onList.Item.ID
	var inserted []*domain.ShoppingListItem

	repo := &shoppingRepoMock{
		GetListFunc: func(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
			return list, nil
		},
		ListLinesFunc: func(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error) {
			return []*domain.ShoppingListItem{
				{ID: uuid.New(), ListID: list.ID, ItemID: &existingID, Name: "Eggs", Quantity: 8, Unit: "pcs"},
			}, nil
		},
		InsertLineFunc: func(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
			inserted = append(inserted, li)
			return li, nil
		},
	}
	inv := &inventoryRepoMock{
		ListRestockCandidatesFunc: func(ctx context.Context, k uuid.UUID) ([]*postgresinv.RestockRow, error) {
			return []*postgresinv.RestockRow{onList, missing}, nil
		},
	}
	svc := newTestService(repo, inv, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	added, err := svc.AddRestockSuggestions(ctx, list.ID)
	if err != nil {
		t.Fatalf("AddRestockSuggestions: %v", err)
	}
	if len(added) != 1 || len(inserted) != 1 {
		t.Fatalf("expected exactly 1 new line, got %d", len(inserted))
	}
	if inserted[0].Name != "Milk" || *inserted[0].ItemID != missing.Item.ID {
		t.Errorf("wrong line added: %+v", inserted[0])
	}
	if inserted[0].Quantity != 2 {
		t.Errorf("depleted item should suggest full threshold, got %g", inserted[0].Quantity)
	}
}

func TestClearChecked(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	list := testList(kitchenID)
	repo := &shoppingRepoMock{
		GetListFunc: func(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
			return list, nil
		},
		DeleteCheckedFunc: func(ctx context.Context, listID uuid.UUID) (int, error) {
			return 4, nil
		},
	}
	svc := newTestService(repo, nil, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	n, err := svc.ClearChecked(ctx, list.ID)
	if err != nil {
		t.Fatalf("ClearChecked: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 cleared, got %d", n)
	}
}

func TestListNotFound(t *testing.T) {
	t.Parallel()

	repo := &shoppingRepoMock{
		GetListFunc: func(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo, nil, allowKitchen(domain.RoleOwner))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	if _, err := svc.GetList(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
