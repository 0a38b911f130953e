package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// AddBatch records newly acquired stock for an item. Requires MEMBER.
func (s *Service) AddBatch(ctx context.Context, input AddBatchInput) (*domain.InventoryBatch, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

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

	batch, err := s.repo.CreateBatch(ctx, &domain.InventoryBatch{
		ID:        uuid.New(),
		ItemID:    input.ItemID,
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		ExpiresAt: input.ExpiresAt,
		Status:    domain.BatchStatusActive,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.AddBatch: %w", err)
	}

	s.log.InfoContext(ctx, "batch added",
		slog.String("batch_id", batch.ID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.Float64("quantity", input.Quantity))

	return batch, nil
}

// ListBatches returns all batches of an item.
func (s *Service) ListBatches(ctx context.Context, itemID uuid.UUID) ([]*domain.InventoryBatch, error) {
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
	return s.repo.ListBatchesByItem(ctx, itemID)
}

// DiscardBatch marks a whole batch WASTED and logs the loss.
// Requires MEMBER.
func (s *Service) DiscardBatch(ctx context.Context, batchID uuid.UUID) (*domain.InventoryBatch, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	batch, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.GetItem(ctx, batch.ItemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, item.KitchenID, domain.RoleMember); err != nil {
		return nil, err
	}

	if batch.Status != domain.BatchStatusActive {
		return nil, fmt.Errorf("batch is %s: %w", batch.Status, domain.ErrConflict)
	}

	var updated *domain.InventoryBatch
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		wasted := batch.Quantity

		b, err := s.repo.UpdateBatch(txCtx, batchID, 0, domain.BatchStatusWasted)
		if err != nil {
			return fmt.Errorf("update batch: %w", err)
		}

		if wasted > 0 {
			_, err = s.repo.InsertUsage(txCtx, &domain.UsageLog{
				ID:        uuid.New(),
				ItemID:    batch.ItemID,
				BatchID:   &batchID,
				UserID:    userID,
				Action:    domain.UsageActionWasted,
				Quantity:  wasted,
				CreatedAt: time.Now(),
			})
			if err != nil {
				return fmt.Errorf("log waste: %w", err)
			}
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.DiscardBatch: %w", err)
	}
	return updated, nil
}

// DeleteBatch removes a batch record outright (data-entry fixups).
// Requires MEMBER.
func (s *Service) DeleteBatch(ctx context.Context, batchID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	batch, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		return err
	}
	item, err := s.repo.GetItem(ctx, batch.ItemID)
	if err != nil {
		return err
	}
	if _, err := s.access.RequireKitchen(ctx, userID, item.KitchenID, domain.RoleMember); err != nil {
		return err
	}

	return s.repo.DeleteBatch(ctx, batchID)
}
