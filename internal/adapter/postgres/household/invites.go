package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

const inviteColumns = `id, household_id, email, role, token_hash, status, invited_by, expires_at, created_at`

const insertInviteSQL = `
INSERT INTO invites (id, household_id, email, role, token_hash, status, invited_by, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + inviteColumns

const getInviteByTokenHashSQL = `SELECT ` + inviteColumns + ` FROM invites WHERE token_hash = $1`

const listInvitesSQL = `
SELECT ` + inviteColumns + ` FROM invites
WHERE household_id = $1 AND status = 'PENDING'
ORDER BY created_at`

const updateInviteStatusSQL = `
UPDATE invites SET status = $2
WHERE id = $1
RETURNING ` + inviteColumns

// InsertInvite stores a new invitation.
func (r *Repo) InsertInvite(ctx context.Context, inv *domain.Invite) (*domain.Invite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanInvite(q.QueryRow(ctx, insertInviteSQL,
		inv.ID, inv.HouseholdID, inv.Email, inv.Role, inv.TokenHash,
		inv.Status, inv.InvitedBy, inv.ExpiresAt, inv.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "invite", inv.ID)
	}
	return out, nil
}

// GetInviteByTokenHash returns an invite by its token hash.
func (r *Repo) GetInviteByTokenHash(ctx context.Context, hash string) (*domain.Invite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanInvite(q.QueryRow(ctx, getInviteByTokenHashSQL, hash))
	if err != nil {
		return nil, postgres.MapError(err, "invite", uuid.Nil)
	}
	return out, nil
}

// ListPendingInvites returns open invitations for a household.
func (r *Repo) ListPendingInvites(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listInvitesSQL, householdID)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()

	var out []*domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// UpdateInviteStatus moves an invite through its lifecycle.
func (r *Repo) UpdateInviteStatus(ctx context.Context, id uuid.UUID, status domain.InviteStatus) (*domain.Invite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanInvite(q.QueryRow(ctx, updateInviteStatusSQL, id, status))
	if err != nil {
		return nil, postgres.MapError(err, "invite", id)
	}
	return out, nil
}

func scanInvite(row pgx.Row) (*domain.Invite, error) {
	var inv domain.Invite
	err := row.Scan(&inv.ID, &inv.HouseholdID, &inv.Email, &inv.Role, &inv.TokenHash,
		&inv.Status, &inv.InvitedBy, &inv.ExpiresAt, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
