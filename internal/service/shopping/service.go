// Package shopping implements shopping list business logic, including
// restock suggestions derived from inventory levels.
package shopping

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

type shoppingRepo interface {
	CreateList(ctx context.Context, l *domain.ShoppingList) (*domain.ShoppingList, error)
	GetList(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error)
	ListByKitchen(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error)
	RenameList(ctx context.Context, id uuid.UUID, name string) (*domain.ShoppingList, error)
	DeleteList(ctx context.Context, id uuid.UUID) error

	InsertLine(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	GetLine(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)
	ListLines(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error)
	UpdateLine(ctx context.Context, li *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	DeleteLine(ctx context.Context, id uuid.UUID) error
	DeleteChecked(ctx context.Context, listID uuid.UUID) (int, error)
}

type inventoryRepo interface {
	ListRestockCandidates(ctx context.Context, kitchenID uuid.UUID) ([]*postgresinv.RestockRow, error)
}

type accessService interface {
	RequireKitchen(ctx context.Context, userID, kitchenID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements shopping list business logic.
type Service struct {
	log       *slog.Logger
	repo      shoppingRepo
	inventory inventoryRepo
	access    accessService
	tx        txManager
}

// NewService creates a new shopping service.
func NewService(logger *slog.Logger, repo shoppingRepo, inventory inventoryRepo, access accessService, tx txManager) *Service {
	return &Service{
		log:       logger.With("service", "shopping"),
		repo:      repo,
		inventory: inventory,
		access:    access,
		tx:        tx,
	}
}

// requireList resolves a list and checks the caller's role on its kitchen.
func (s *Service) requireList(ctx context.Context, userID, listID uuid.UUID, minRole domain.Role) (*domain.ShoppingList, error) {
	list, err := s.repo.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, list.KitchenID, minRole); err != nil {
		return nil, err
	}
	return list, nil
}
