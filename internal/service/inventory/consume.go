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

// Consume draws quantity down across an item's ACTIVE batches in FIFO
// order (soonest expiry first, then oldest). A batch drained to zero
// transitions to USED regardless of its expiry date. Drawing more than
// the total active quantity is refused
// with ErrConflict and changes nothing. Requires MEMBER.
//
// The whole walk runs in one transaction with the batches locked, so
// two concurrent consumers cannot double-spend a batch.
func (s *Service) Consume(ctx context.Context, input ConsumeInput) ([]*domain.InventoryBatch, error) {
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

	var touched []*domain.InventoryBatch
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		batches, err := s.repo.ListActiveBatchesFIFO(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("list batches: %w", err)
		}

		var available float64
		for _, b := range batches {
			available += b.Quantity
		}
		if input.Quantity > available {
			return fmt.Errorf("consume %g of %g available: %w",
				input.Quantity, available, domain.ErrConflict)
		}

		remaining := input.Quantity
		now := time.Now()
		for _, b := range batches {
			if remaining <= 0 {
				break
			}

			draw := min(remaining, b.Quantity)
			newQty := b.Quantity - draw
			status := domain.BatchStatusActive
			if newQty == 0 {
				status = domain.BatchStatusUsed
			}

			updated, err := s.repo.UpdateBatch(txCtx, b.ID, newQty, status)
			if err != nil {
				return fmt.Errorf("update batch %s: %w", b.ID, err)
			}

			_, err = s.repo.InsertUsage(txCtx, &domain.UsageLog{
				ID:        uuid.New(),
				ItemID:    input.ItemID,
				BatchID:   &b.ID,
				UserID:    userID,
				Action:    input.Action,
				Quantity:  draw,
				CreatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("log usage: %w", err)
			}

			touched = append(touched, updated)
			remaining -= draw
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.Consume: %w", err)
	}

	s.log.InfoContext(ctx, "stock consumed",
		slog.String("item_id", input.ItemID.String()),
		slog.Float64("quantity", input.Quantity),
		slog.String("action", input.Action.String()))

	return touched, nil
}
