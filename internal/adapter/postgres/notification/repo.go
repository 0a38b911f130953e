// Package notification implements notification and push subscription
// persistence using PostgreSQL.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const notificationColumns = `id, user_id, title, body, data, is_read, created_at`

const createNotificationSQL = `
INSERT INTO notifications (id, user_id, title, body, data, is_read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + notificationColumns

const listNotificationsSQL = `
SELECT ` + notificationColumns + ` FROM notifications
WHERE user_id = $1 AND ($2::bool OR NOT is_read)
ORDER BY created_at DESC
LIMIT $3`

const markReadSQL = `
UPDATE notifications SET is_read = true
WHERE id = $1 AND user_id = $2`

const markAllReadSQL = `
UPDATE notifications SET is_read = true
WHERE user_id = $1 AND NOT is_read`

const unreadCountSQL = `
SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`

// Create stores a notification for a user.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal notification data: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanNotification(q.QueryRow(ctx, createNotificationSQL,
		n.ID, n.UserID, n.Title, n.Body, data, n.IsRead, n.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}
	return out, nil
}

// ListForUser returns a user's notifications, newest first. Read rows
// are included only when includeRead is set.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, includeRead bool, limit int) ([]*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listNotificationsSQL, userID, includeRead, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead marks one notification read. The user filter keeps users
// from touching each other's rows.
func (r *Repo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markReadSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of a user read and
// reports how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markAllReadSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// UnreadCount returns the number of unread notifications for a user.
func (r *Repo) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, unreadCountSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	var data []byte
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &data, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return nil, fmt.Errorf("unmarshal notification data: %w", err)
		}
	}
	return &n, nil
}
