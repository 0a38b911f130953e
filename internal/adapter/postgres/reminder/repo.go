// Package reminder implements reminder persistence using PostgreSQL.
//
// A partial unique index on (kitchen_id, type, entity_id) over
// incomplete rows makes sweep inserts race-safe: the second writer gets
// domain.ErrAlreadyExists instead of a duplicate reminder.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reminder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const reminderColumns = `id, kitchen_id, type, title, body, entity_id, scheduled_at, is_completed, is_recurring, frequency, created_at, updated_at`

const createReminderSQL = `
INSERT INTO reminders (id, kitchen_id, type, title, body, entity_id, scheduled_at, is_completed, is_recurring, frequency, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
RETURNING ` + reminderColumns

const getReminderSQL = `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`

const listRemindersSQL = `
SELECT ` + reminderColumns + ` FROM reminders
WHERE kitchen_id = $1 AND ($2::bool OR NOT is_completed)
ORDER BY scheduled_at`

const findOpenSQL = `
SELECT ` + reminderColumns + ` FROM reminders
WHERE kitchen_id = $1 AND type = $2 AND entity_id IS NOT DISTINCT FROM $3 AND NOT is_completed`

const listDueSQL = `
SELECT ` + reminderColumns + ` FROM reminders
WHERE NOT is_completed AND scheduled_at <= $1
ORDER BY scheduled_at`

const completeReminderSQL = `
UPDATE reminders SET is_completed = true, updated_at = now()
WHERE id = $1
RETURNING ` + reminderColumns

const updateReminderSQL = `
UPDATE reminders
SET title = $2, body = $3, scheduled_at = $4, is_recurring = $5, frequency = $6, updated_at = now()
WHERE id = $1
RETURNING ` + reminderColumns

const deleteReminderSQL = `DELETE FROM reminders WHERE id = $1`

// Create inserts a reminder. When an incomplete reminder for the same
// (kitchen, type, entity) already exists, the partial unique index
// rejects the insert and this returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanReminder(q.QueryRow(ctx, createReminderSQL,
		rem.ID, rem.KitchenID, rem.Type, rem.Title, rem.Body, rem.EntityID,
		rem.ScheduledAt, rem.IsCompleted, rem.IsRecurring, rem.Frequency, rem.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "reminder", rem.ID)
	}
	return out, nil
}

// GetByID returns a reminder by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanReminder(q.QueryRow(ctx, getReminderSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "reminder", id)
	}
	return out, nil
}

// ListByKitchen returns a kitchen's reminders, soonest first. Completed
// rows are included only when includeCompleted is set.
func (r *Repo) ListByKitchen(ctx context.Context, kitchenID uuid.UUID, includeCompleted bool) ([]*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRemindersSQL, kitchenID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// FindOpen returns the incomplete reminder for (kitchen, type, entity),
// or domain.ErrNotFound. The sweep checks here before creating.
func (r *Repo) FindOpen(ctx context.Context, kitchenID uuid.UUID, typ domain.ReminderType, entityID *uuid.UUID) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanReminder(q.QueryRow(ctx, findOpenSQL, kitchenID, typ, entityID))
	if err != nil {
		return nil, postgres.MapError(err, "reminder", uuid.Nil)
	}
	return out, nil
}

// ListDue returns every incomplete reminder scheduled at or before now,
// across all kitchens. The scheduled sweep delivers these.
func (r *Repo) ListDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDueSQL, now)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// Complete marks a reminder done.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanReminder(q.QueryRow(ctx, completeReminderSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "reminder", id)
	}
	return out, nil
}

// Update rewrites the editable fields of a reminder.
func (r *Repo) Update(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanReminder(q.QueryRow(ctx, updateReminderSQL,
		rem.ID, rem.Title, rem.Body, rem.ScheduledAt, rem.IsRecurring, rem.Frequency))
	if err != nil {
		return nil, postgres.MapError(err, "reminder", rem.ID)
	}
	return out, nil
}

// Delete removes a reminder.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteReminderSQL, id)
	if err != nil {
		return postgres.MapError(err, "reminder", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reminder %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanReminder(row pgx.Row) (*domain.Reminder, error) {
	var rem domain.Reminder
	err := row.Scan(&rem.ID, &rem.KitchenID, &rem.Type, &rem.Title, &rem.Body,
		&rem.EntityID, &rem.ScheduledAt, &rem.IsCompleted, &rem.IsRecurring,
		&rem.Frequency, &rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func collectReminders(rows pgx.Rows) ([]*domain.Reminder, error) {
	var out []*domain.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}
