// Package token implements refresh token persistence using PostgreSQL.
// Only token hashes are stored; raw tokens never reach this layer.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

const createTokenSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tokenColumns

const getTokenByHashSQL = `SELECT ` + tokenColumns + ` FROM refresh_tokens WHERE token_hash = $1`

const revokeTokenSQL = `
UPDATE refresh_tokens SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllForUserSQL = `
UPDATE refresh_tokens SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM refresh_tokens WHERE expires_at < $1 OR revoked_at IS NOT NULL`

// Create stores a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.RefreshToken
	err := q.QueryRow(ctx, createTokenSQL, t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt).
		Scan(&out.ID, &out.UserID, &out.TokenHash, &out.ExpiresAt, &out.CreatedAt, &out.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", t.ID)
	}
	return &out, nil
}

// GetByHash returns a token row by its SHA-256 hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.RefreshToken
	err := q.QueryRow(ctx, getTokenByHashSQL, hash).
		Scan(&out.ID, &out.UserID, &out.TokenHash, &out.ExpiresAt, &out.CreatedAt, &out.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return &out, nil
}

// Revoke marks a single token revoked. Idempotent.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeTokenSQL, id); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllForUser revokes every live token of a user (logout everywhere).
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeAllForUserSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes expired and revoked rows. Returns the number deleted.
func (r *Repo) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
