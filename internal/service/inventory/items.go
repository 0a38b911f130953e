package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	postgresinv "github.com/hearthhq/hearth-backend/internal/adapter/postgres/inventory"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// CreateItem adds an item kind to a kitchen. Requires MEMBER.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error) {
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

	item, err := s.repo.CreateItem(ctx, &domain.InventoryItem{
		ID:          uuid.New(),
		KitchenID:   input.KitchenID,
		Name:        input.Name,
		Category:    input.Category,
		DefaultUnit: input.DefaultUnit,
		Threshold:   input.Threshold,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.CreateItem: %w", err)
	}

	s.log.InfoContext(ctx, "inventory item created",
		slog.String("item_id", item.ID.String()),
		slog.String("kitchen_id", input.KitchenID.String()))

	return item, nil
}

// GetItem returns one item the caller can see.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, item.KitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns a kitchen's items matching the filter.
func (s *Service) ListItems(ctx context.Context, kitchenID uuid.UUID, filter postgresinv.ItemFilter) ([]*domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, kitchenID, filter)
}

// ItemQuantity returns the remaining active quantity of an item.
func (s *Service) ItemQuantity(ctx context.Context, itemID uuid.UUID) (float64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, item.KitchenID, domain.RoleViewer); err != nil {
		return 0, err
	}
	return s.repo.ItemQuantity(ctx, itemID)
}

// UpdateItem edits an item's descriptive fields. Requires MEMBER.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, item.KitchenID, domain.RoleMember); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Category = input.Category
	item.DefaultUnit = input.DefaultUnit
	item.Threshold = input.Threshold

	return s.repo.UpdateItem(ctx, item)
}

// DeleteItem removes an item and its batches. Requires MEMBER.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, item.KitchenID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("inventory.DeleteItem: %w", err)
	}
	return nil
}

// ListUsage returns an item's usage history since the cutoff.
func (s *Service) ListUsage(ctx context.Context, itemID uuid.UUID, since time.Time) ([]*domain.UsageLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, item.KitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.ListUsage(ctx, itemID, since)
}
