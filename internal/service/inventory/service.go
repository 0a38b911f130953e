// Package inventory implements inventory item, batch, and consumption
// business logic.
package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

type inventoryRepo interface {
	CreateItem(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, kitchenID uuid.UUID, f postgresinv.ItemFilter) ([]*domain.InventoryItem, error)
	ItemQuantity(ctx context.Context, itemID uuid.UUID) (float64, error)

	CreateBatch(ctx context.Context, b *domain.InventoryBatch) (*domain.InventoryBatch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.InventoryBatch, error)
	ListBatchesByItem(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error)
	ListActiveBatchesFIFO(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error)
	UpdateBatch(ctx context.Context, id uuid.UUID, quantity float64, status domain.BatchStatus) (*domain.InventoryBatch, error)
	DeleteBatch(ctx context.Context, id uuid.UUID) error

	InsertUsage(ctx context.Context, u *domain.UsageLog) (*domain.UsageLog, error)
	ListUsage(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error)
}

type accessService interface {
	RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements inventory business logic.
type Service struct {
	log    *slog.Logger
	repo   inventoryRepo
	access accessService
	tx     txManager
}

// NewService creates a new inventory service.
func NewService(logger *slog.Logger, repo inventoryRepo, access accessService, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "inventory"),
		repo:   repo,
		access: access,
		tx:     tx,
	}
}
