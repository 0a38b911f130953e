package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// CreateList makes an empty shopping list in a kitchen. Requires MEMBER.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireKitchen(ctx, userID, input.KitchenID, domain.RoleMember); err != nil {
		return nil, err
	}

	list, err := s.repo.CreateList(ctx, &domain.ShoppingList{
		ID:        uuid.New(),
		KitchenID: input.KitchenID,
		Name:      input.Name,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("shopping.CreateList: %w", err)
	}

	s.log.InfoContext(ctx, "shopping list created",
		slog.String("list_id", list.ID.String()),
		slog.String("kitchen_id", input.KitchenID.String()))

	return list, nil
}

// GetList returns one list the caller can see.
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.requireList(ctx, userID, listID, domain.RoleViewer)
}

// ListByKitchen returns all of a kitchen's shopping lists.
func (s *Service) ListByKitchen(ctx context.Context, kitchenID uuid.UUID) ([]*domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.ListByKitchen(ctx, kitchenID)
}

// RenameList changes a list's name. Requires MEMBER.
func (s *Service) RenameList(ctx context.Context, listID uuid.UUID, name string) (*domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	if _, err := s.requireList(ctx, userID, listID, domain.RoleMember); err != nil {
		return nil, err
	}
	return s.repo.RenameList(ctx, listID, name)
}

// DeleteList removes a list and its lines. Requires MEMBER.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.requireList(ctx, userID, listID, domain.RoleMember); err != nil {
		return err
	}
	return s.repo.DeleteList(ctx, listID)
}
