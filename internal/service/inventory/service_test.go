package inventory

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

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

func newTestService(repo *inventoryRepoMock, access *accessServiceMock) *Service {
	return NewService(slog.Default(), repo, access, txManagerMock{})
}

func testItem(kitchenID uuid.UUID) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:          uuid.New(),
		KitchenID:   kitchenID,
		Name:        "Milk",
		DefaultUnit: "l",
		Threshold:   1,
		CreatedAt:   time.Now(),
	}
}

func activeBatch(itemID uuid.UUID, qty float64, createdAt time.Time) *domain.InventoryBatch {
	return &domain.InventoryBatch{
		ID:        uuid.New(),
		ItemID:    itemID,
		Quantity:  qty,
		Unit:      "l",
		Status:    domain.BatchStatusActive,
		CreatedAt: createdAt,
	}
}

func TestCreateItem_Success(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	repo := &inventoryRepoMock{
		CreateItemFunc: func(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error) {
			return it, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	item, err := svc.CreateItem(ctx, CreateItemInput{
		KitchenID:   kitchenID,
		Name:        "  Milk  ",
		DefaultUnit: "l",
		Threshold:   2,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Name != "Milk" {
		t.Errorf("name not trimmed: %q", item.Name)
	}
	if item.ID == uuid.Nil {
		t.Error("expected generated id")
	}
}

func TestCreateItem_ViewerForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(&inventoryRepoMock{}, allowKitchen(domain.RoleViewer))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateItem(ctx, CreateItemInput{
		KitchenID:   uuid.New(),
		Name:        "Milk",
		DefaultUnit: "l",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateItem_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(&inventoryRepoMock{}, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateItem(ctx, CreateItemInput{
		KitchenID: uuid.New(),
		Name:      "",
		Threshold: -1,
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("expected 3 field errors (name, default_unit, threshold), got %d: %v", len(verr.Errors), verr.Errors)
	}
}

func TestConsume_DrainsOldestFirst(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	item := testItem(kitchenID)
	base := time.Now().Add(-72 * time.Hour)
	oldest := activeBatch(item.ID, 1, base)
	middle := activeBatch(item.ID, 2, base.Add(24*time.Hour))
	newest := activeBatch(item.ID, 3, base.Add(48*time.Hour))

	type update struct {
		id     uuid.UUID
		qty    float64
		status domain.BatchStatus
	}
	var updates []update
	var usages []*domain.UsageLog

	repo := &inventoryRepoMock{
		GetItemFunc: func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
			return item, nil
		},
		ListActiveBatchesFIFOFunc: func(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
			return []*domain.InventoryBatch{oldest, middle, newest}, nil
		},
		UpdateBatchFunc: func(ctx context.Context, id uuid.UUID, quantity float64, status domain.BatchStatus) (*domain.InventoryBatch, error) {
			updates = append(updates, update{id, quantity, status})
			return &domain.InventoryBatch{ID: id, ItemID: item.ID, Quantity: quantity, Status: status}, nil
		},
		InsertUsageFunc: func(ctx context.Context, u *domain.UsageLog) (*domain.UsageLog, error) {
			usages = append(usages, u)
			return u, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	touched, err := svc.Consume(ctx, ConsumeInput{ItemID: item.ID, Quantity: 2.5, Action: domain.UsageActionUsed})
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 batch updates, got %d", len(updates))
	}
	if updates[0].id != oldest.ID || updates[0].qty != 0 || updates[0].status != domain.BatchStatusUsed {
		t.Errorf("first update should drain oldest to USED, got %+v", updates[0])
	}
	if updates[1].id != middle.ID || updates[1].qty != 0.5 || updates[1].status != domain.BatchStatusActive {
		t.Errorf("second update should leave 0.5 ACTIVE in middle batch, got %+v", updates[1])
	}

	if len(usages) != 2 {
		t.Fatalf("expected 2 usage entries, got %d", len(usages))
	}
	if usages[0].Quantity != 1 || *usages[0].BatchID != oldest.ID {
		t.Errorf("first usage entry wrong: %+v", usages[0])
	}
	if usages[1].Quantity != 1.5 || *usages[1].BatchID != middle.ID {
		t.Errorf("second usage entry wrong: %+v", usages[1])
	}
	if usages[0].Action != domain.UsageActionUsed {
		t.Errorf("action = %s, want USED", usages[0].Action)
	}

	if len(touched) != 2 {
		t.Errorf("expected 2 touched batches, got %d", len(touched))
	}
}

func TestConsume_ExactDrainMarksUsed(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	item := testItem(kitchenID)
	only := activeBatch(item.ID, 2, time.Now().Add(-time.Hour))

	var gotStatus domain.BatchStatus
	repo := &inventoryRepoMock{
		GetItemFunc: func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
			return item, nil
		},
		ListActiveBatchesFIFOFunc: func(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
			return []*domain.InventoryBatch{only}, nil
		},
		UpdateBatchFunc: func(ctx context.Context, id uuid.UUID, quantity float64, status domain.BatchStatus) (*domain.InventoryBatch, error) {
			gotStatus = status
			return &domain.InventoryBatch{ID: id, Quantity: quantity, Status: status}, nil
		},
		InsertUsageFunc: func(ctx context.Context, u *domain.UsageLog) (*domain.UsageLog, error) {
			return u, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	if _, err := svc.Consume(ctx, ConsumeInput{ItemID: item.ID, Quantity: 2, Action: domain.UsageActionCooked}); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if gotStatus != domain.BatchStatusUsed {
		t.Errorf("batch drained to zero should be USED, got %s", gotStatus)
	}
}

func TestConsume_InsufficientStock(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	item := testItem(kitchenID)

	repo := &inventoryRepoMock{
		GetItemFunc: func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
			return item, nil
		},
		ListActiveBatchesFIFOFunc: func(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
			return []*domain.InventoryBatch{activeBatch(item.ID, 1, time.Now())}, nil
		},
		// UpdateBatch and InsertUsage left nil: the walk must not start.
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Consume(ctx, ConsumeInput{ItemID: item.ID, Quantity: 5, Action: domain.UsageActionUsed})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestConsume_ItemNotFound(t *testing.T) {
	t.Parallel()

	repo := &inventoryRepoMock{
		GetItemFunc: func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Consume(ctx, ConsumeInput{ItemID: uuid.New(), Quantity: 1, Action: domain.UsageActionUsed})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiscardBatch_LogsWaste(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	item := testItem(kitchenID)
	batch := activeBatch(item.ID, 3, time.Now().Add(-time.Hour))

	var usage *domain.UsageLog
	repo := &inventoryRepoMock{
		GetBatchFunc: func(ctx context.Context, id uuid.UUID) (*domain.InventoryBatch, error) {
			return batch, nil
		},
		GetItemFunc: func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
			return item, nil
		},
		UpdateBatchFunc: func(ctx context.Context, id uuid.UUID, quantity float64, status domain.BatchStatus) (*domain.InventoryBatch, error) {
			return &domain.InventoryBatch{ID: id, ItemID: item.ID, Quantity: quantity, Status: status}, nil
		},
		InsertUsageFunc: func(ctx context.Context, u *domain.UsageLog) (*domain.UsageLog, error) {
			usage = u
			return u, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	updated, err := svc.DiscardBatch(ctx, batch.ID)
	if err != nil {
		t.Fatalf("DiscardBatch: %v", err)
	}
	if updated.Status != domain.BatchStatusWasted || updated.Quantity != 0 {
		t.Errorf("batch should be WASTED at zero, got %s %g", updated.Status, updated.Quantity)
	}
	if usage == nil {
		t.Fatal("expected a usage log entry")
	}
	if usage.Action != domain.UsageActionWasted || usage.Quantity != 3 {
		t.Errorf("usage entry wrong: %+v", usage)
	}
}

func TestDiscardBatch_AlreadyTerminal(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	item := testItem(kitchenID)
	batch := activeBatch(item.ID, 0, time.Now())
	batch.Status = domain.BatchStatusUsed

	repo := &inventoryRepoMock{
		GetBatchFunc: func(ctx context.Context, id uuid.UUID) (*domain.InventoryBatch, error) {
			return batch, nil
		},
		GetItemFunc: func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
			return item, nil
		},
	}
	svc := newTestService(repo, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.DiscardBatch(ctx, batch.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAddBatch_InvalidQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(&inventoryRepoMock{}, allowKitchen(domain.RoleMember))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.AddBatch(ctx, AddBatchInput{ItemID: uuid.New(), Quantity: 0, Unit: "l"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUnauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&inventoryRepoMock{}, allowKitchen(domain.RoleOwner))

	if _, err := svc.GetItem(context.Background(), uuid.New()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("GetItem: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Consume(context.Background(), ConsumeInput{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Consume: expected ErrUnauthorized, got %v", err)
	}
}
