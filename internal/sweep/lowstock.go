package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthhq/hearth-backend/internal/domain"

	"github.com/google/uuid"
)

// LowStockPass creates a LOW_STOCK reminder for every item whose
// remaining quantity sits at or below its threshold but above zero.
// Depleted items are handled by the restock prediction pass instead.
func (e *Engine) LowStockPass(ctx context.Context) error {
	rows, err := e.inventory.ListLowStock(ctx)
	if err != nil {
		return fmt.Errorf("low stock pass: %w", err)
	}

	now := e.clock.Now()
	created := 0
	for _, row := range rows {
		itemID := row.Item.ID
		body := fmt.Sprintf("%s is running low: %g %s left (threshold %g).",
			row.Item.Name, row.Quantity, row.Item.DefaultUnit, row.Item.Threshold)

		ok, err := e.ensureReminder(ctx, &domain.Reminder{
			ID:          uuid.New(),
			KitchenID:   row.Item.KitchenID,
			Type:        domain.ReminderTypeLowStock,
			Title:       fmt.Sprintf("Low stock: %s", row.Item.Name),
			Body:        &body,
			EntityID:    &itemID,
			ScheduledAt: now,
			CreatedAt:   now,
		})
		if err != nil {
			e.log.WarnContext(ctx, "low stock reminder not created",
				slog.String("item_id", itemID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if ok {
			created++
			e.notifyKitchen(ctx, row.Item.KitchenID,
				fmt.Sprintf("Low stock: %s", row.Item.Name), body,
				map[string]string{"item_id": itemID.String(), "type": "LOW_STOCK"})
		}
	}

	e.log.InfoContext(ctx, "low stock pass finished",
		slog.Int("candidates", len(rows)),
		slog.Int("created", created))
	return nil
}
