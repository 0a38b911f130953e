package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthhq/hearth-backend/internal/recurrence"
)

// ScheduledPass delivers due reminders to kitchen members. One-shot
// reminders complete after delivery; recurring ones advance to their
// next occurrence. A recurring reminder with an unrecognized frequency
// is left untouched and logged, so a later fix still picks it up.
func (e *Engine) ScheduledPass(ctx context.Context) error {
	now := e.clock.Now()

	due, err := e.reminders.ListDue(ctx, now)
	if err != nil {
		return fmt.Errorf("scheduled pass: %w", err)
	}

	for _, rem := range due {
		body := ""
		if rem.Body != nil {
			body = *rem.Body
		}
		e.notifyKitchen(ctx, rem.KitchenID,
			fmt.Sprintf("Reminder: %s", rem.Title), body,
			map[string]string{"reminder_id": rem.ID.String(), "type": string(rem.Type)})

		if rem.IsRecurring && rem.Frequency != nil {
			next, ok := recurrence.Next(rem.ScheduledAt, *rem.Frequency, now)
			if !ok {
				e.log.WarnContext(ctx, "recurring reminder has unknown frequency",
					slog.String("reminder_id", rem.ID.String()),
					slog.String("frequency", string(*rem.Frequency)))
				continue
			}
			rem.ScheduledAt = next
			if _, err := e.reminders.Update(ctx, rem); err != nil {
				e.log.WarnContext(ctx, "rescheduling reminder failed",
					slog.String("reminder_id", rem.ID.String()),
					slog.String("error", err.Error()))
			}
			continue
		}

		if _, err := e.reminders.Complete(ctx, rem.ID); err != nil {
			e.log.WarnContext(ctx, "completing reminder failed",
				slog.String("reminder_id", rem.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	if len(due) > 0 {
		e.log.InfoContext(ctx, "scheduled pass finished", slog.Int("delivered", len(due)))
	}
	return nil
}
