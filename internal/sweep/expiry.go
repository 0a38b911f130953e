package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthhq/hearth-backend/internal/domain"

	"github.com/google/uuid"
)

// ExpiryPass first marks overdue ACTIVE batches EXPIRED, then creates
// an EXPIRY reminder for every batch expiring inside the configured
// window.
func (e *Engine) ExpiryPass(ctx context.Context) error {
	now := e.clock.Now()

	expired, err := e.inventory.MarkExpiredBatches(ctx, now)
	if err != nil {
		return fmt.Errorf("expiry pass: mark expired: %w", err)
	}
	if len(expired) > 0 {
		e.log.InfoContext(ctx, "batches marked expired", slog.Int("count", len(expired)))
	}

	rows, err := e.inventory.ListExpiringBatches(ctx, now, e.cfg.ExpiryWindow)
	if err != nil {
		return fmt.Errorf("expiry pass: %w", err)
	}

	created := 0
	for _, row := range rows {
		batchID := row.Batch.ID
		days := int(row.Batch.ExpiresAt.Sub(now).Hours() / 24)
		var body string
		switch {
		case days <= 0:
			body = fmt.Sprintf("%g %s of %s expires today.",
				row.Batch.Quantity, row.Batch.Unit, row.ItemName)
		case days == 1:
			body = fmt.Sprintf("%g %s of %s expires tomorrow.",
				row.Batch.Quantity, row.Batch.Unit, row.ItemName)
		default:
			body = fmt.Sprintf("%g %s of %s expires in %d days.",
				row.Batch.Quantity, row.Batch.Unit, row.ItemName, days)
		}

		ok, err := e.ensureReminder(ctx, &domain.Reminder{
			ID:          uuid.New(),
			KitchenID:   row.Kitchen,
			Type:        domain.ReminderTypeExpiry,
			Title:       fmt.Sprintf("Expiring soon: %s", row.ItemName),
			Body:        &body,
			EntityID:    &batchID,
			ScheduledAt: now,
			CreatedAt:   now,
		})
		if err != nil {
			e.log.WarnContext(ctx, "expiry reminder not created",
				slog.String("batch_id", batchID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if ok {
			created++
			e.notifyKitchen(ctx, row.Kitchen,
				fmt.Sprintf("Expiring soon: %s", row.ItemName), body,
				map[string]string{"batch_id": batchID.String(), "type": "EXPIRY"})
		}
	}

	e.log.InfoContext(ctx, "expiry pass finished",
		slog.Int("candidates", len(rows)),
		slog.Int("created", created))
	return nil
}
