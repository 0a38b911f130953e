package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/hearthhq/hearth-backend/internal/domain"

	"github.com/google/uuid"
)

// UsagePass predicts depletion from recent consumption. For every item
// consumed inside the usage window, the daily rate is the consumed
// total divided by the window length in days; when the remaining
// quantity would run out within the depletion horizon, a SHOPPING
// reminder goes out. An item with 10 on hand and 60 consumed over a
// 30-day window depletes in 5 days, inside the default 7-day horizon.
func (e *Engine) UsagePass(ctx context.Context) error {
	now := e.clock.Now()
	windowDays := e.cfg.UsageWindow.Hours() / 24
	horizonDays := e.cfg.DepletionHorizon.Hours() / 24

	rows, err := e.inventory.ListConsumptionStats(ctx, now.Add(-e.cfg.UsageWindow))
	if err != nil {
		return fmt.Errorf("usage pass: %w", err)
	}

	created := 0
	for _, row := range rows {
		rate := row.Consumed / windowDays
		if rate <= 0 {
			continue
		}
		daysLeft := row.Quantity / rate
		if daysLeft > horizonDays {
			continue
		}

		itemID := row.Item.ID
		var body string
		if row.Quantity <= 0 {
			body = fmt.Sprintf("%s is used up. You were going through about %g %s a day.",
				row.Item.Name, roundRate(rate), row.Item.DefaultUnit)
		} else {
			body = fmt.Sprintf("%s will run out in about %d days at the current rate (%g %s a day).",
				row.Item.Name, int(math.Ceil(daysLeft)), roundRate(rate), row.Item.DefaultUnit)
		}

		ok, err := e.ensureReminder(ctx, &domain.Reminder{
			ID:          uuid.New(),
			KitchenID:   row.Item.KitchenID,
			Type:        domain.ReminderTypeShopping,
			Title:       fmt.Sprintf("Restock soon: %s", row.Item.Name),
			Body:        &body,
			EntityID:    &itemID,
			ScheduledAt: now,
			CreatedAt:   now,
		})
		if err != nil {
			e.log.WarnContext(ctx, "shopping reminder not created",
				slog.String("item_id", itemID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if ok {
			created++
			e.notifyKitchen(ctx, row.Item.KitchenID,
				fmt.Sprintf("Restock soon: %s", row.Item.Name), body,
				map[string]string{"item_id": itemID.String(), "type": "SHOPPING"})
		}
	}

	e.log.InfoContext(ctx, "usage pass finished",
		slog.Int("candidates", len(rows)),
		slog.Int("created", created))
	return nil
}

// roundRate trims the daily rate to two decimals for reminder text.
func roundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}
