package sweep

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

type inventoryRepoMock struct {
	ListLowStockFunc         func(ctx context.Context) ([]postgresinv.LowStockRow, error)
	ListExpiringBatchesFunc  func(ctx context.Context, now time.Time, window time.Duration) ([]postgresinv.ExpiringBatchRow, error)
	ListConsumptionStatsFunc func(ctx context.Context, since time.Time) ([]postgresinv.ConsumptionStatRow, error)
	MarkExpiredBatchesFunc   func(ctx context.Context, now time.Time) ([]*domain.InventoryBatch, error)
}

func (m *inventoryRepoMock) ListLowStock(ctx context.Context) ([]postgresinv.LowStockRow, error) {
	if m.ListLowStockFunc == nil {
		panic("inventoryRepoMock.ListLowStock is nil but was called")
	}
	return m.ListLowStockFunc(ctx)
}

func (m *inventoryRepoMock) ListExpiringBatches(ctx context.Context, now time.Time, window time.Duration) ([]postgresinv.ExpiringBatchRow, error) {
	if m.ListExpiringBatchesFunc == nil {
		panic("inventoryRepoMock.ListExpiringBatches is nil but was called")
	}
	return m.ListExpiringBatchesFunc(ctx, now, window)
}

func (m *inventoryRepoMock) ListConsumptionStats(ctx context.Context, since time.Time) ([]postgresinv.ConsumptionStatRow, error) {
	if m.ListConsumptionStatsFunc == nil {
		panic("inventoryRepoMock.ListConsumptionStats is nil but was called")
	}
	return m.ListConsumptionStatsFunc(ctx, since)
}

func (m *inventoryRepoMock) MarkExpiredBatches(ctx context.Context, now time.Time) ([]*domain.InventoryBatch, error) {
	if m.MarkExpiredBatchesFunc == nil {
		panic("inventoryRepoMock.MarkExpiredBatches is nil but was called")
	}
	return m.MarkExpiredBatchesFunc(ctx, now)
}

type reminderRepoMock struct {
	CreateFunc   func(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	ListDueFunc  func(ctx context.Context, now time.Time) ([]*domain.Reminder, error)
	CompleteFunc func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	UpdateFunc   func(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
}

func (m *reminderRepoMock) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	if m.CreateFunc == nil {
		panic("reminderRepoMock.Create is nil but was called")
	}
	return m.CreateFunc(ctx, rem)
}

func (m *reminderRepoMock) ListDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	if m.ListDueFunc == nil {
		panic("reminderRepoMock.ListDue is nil but was called")
	}
	return m.ListDueFunc(ctx, now)
}

func (m *reminderRepoMock) Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	if m.CompleteFunc == nil {
		panic("reminderRepoMock.Complete is nil but was called")
	}
	return m.CompleteFunc(ctx, id)
}

func (m *reminderRepoMock) Update(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	if m.UpdateFunc == nil {
		panic("reminderRepoMock.Update is nil but was called")
	}
	return m.UpdateFunc(ctx, rem)
}

type kitchenRepoMock struct {
	MemberUserIDsFunc func(ctx context.Context, kitchenID uuid.UUID) ([]uuid.UUID, error)
}

func (m *kitchenRepoMock) MemberUserIDs(ctx context.Context, kitchenID uuid.UUID) ([]uuid.UUID, error) {
	if m.MemberUserIDsFunc == nil {
		panic("kitchenRepoMock.MemberUserIDs is nil but was called")
	}
	return m.MemberUserIDsFunc(ctx, kitchenID)
}

// notifierMock records every notification concurrently-safely.
type notifierMock struct {
	mu   sync.Mutex
	rows []notified
}

type notified struct {
	UserID uuid.UUID
	Title  string
	Body   string
	Data   map[string]string
}

func (m *notifierMock) Notify(_ context.Context, userID uuid.UUID, title, body string, data map[string]string) (*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, notified{UserID: userID, Title: title, Body: body, Data: data})
	return &domain.Notification{ID: uuid.New(), UserID: userID, Title: title, Body: body, Data: data}, nil
}

func (m *notifierMock) Sent() []notified {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notified, len(m.rows))
	copy(out, m.rows)
	return out
}
