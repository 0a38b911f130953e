package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

const pushSubColumns = `id, user_id, endpoint, p256dh_key, auth_key, created_at`

const upsertPushSubSQL = `
INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh_key, auth_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, endpoint) DO UPDATE
SET p256dh_key = EXCLUDED.p256dh_key, auth_key = EXCLUDED.auth_key
RETURNING ` + pushSubColumns

const listPushSubsSQL = `
SELECT ` + pushSubColumns + ` FROM push_subscriptions WHERE user_id = $1`

const deletePushSubSQL = `
DELETE FROM push_subscriptions WHERE user_id = $1 AND endpoint = $2`

const deletePushSubByEndpointSQL = `
DELETE FROM push_subscriptions WHERE endpoint = $1`

// UpsertPushSubscription registers a browser push endpoint. Re-registering
// the same endpoint refreshes its keys.
func (r *Repo) UpsertPushSubscription(ctx context.Context, s *domain.PushSubscription) (*domain.PushSubscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanPushSub(q.QueryRow(ctx, upsertPushSubSQL,
		s.ID, s.UserID, s.Endpoint, s.P256dhKey, s.AuthKey, s.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "push subscription", s.ID)
	}
	return out, nil
}

// ListPushSubscriptions returns a user's registered push endpoints.
func (r *Repo) ListPushSubscriptions(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPushSubsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list push subscriptions: %w", err)
	}
	defer rows.Close()

	var out []*domain.PushSubscription
	for rows.Next() {
		s, err := scanPushSub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan push subscription: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeletePushSubscription removes one endpoint for a user. Idempotent.
func (r *Repo) DeletePushSubscription(ctx context.Context, userID uuid.UUID, endpoint string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deletePushSubSQL, userID, endpoint); err != nil {
		return fmt.Errorf("delete push subscription: %w", err)
	}
	return nil
}

// DeletePushSubscriptionByEndpoint removes an endpoint outright. Called
// when the push service reports the subscription gone (404/410).
func (r *Repo) DeletePushSubscriptionByEndpoint(ctx context.Context, endpoint string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deletePushSubByEndpointSQL, endpoint); err != nil {
		return fmt.Errorf("delete push subscription by endpoint: %w", err)
	}
	return nil
}

func scanPushSub(row pgx.Row) (*domain.PushSubscription, error) {
	var s domain.PushSubscription
	err := row.Scan(&s.ID, &s.UserID, &s.Endpoint, &s.P256dhKey, &s.AuthKey, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
