package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hearthhq/hearth-backend/internal/adapter/postgres"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

const membershipColumns = `id, household_id, user_id, role, created_at, updated_at`

const insertMembershipSQL = `
INSERT INTO memberships (id, household_id, user_id, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + membershipColumns

const getMembershipSQL = `
SELECT ` + membershipColumns + ` FROM memberships
WHERE household_id = $1 AND user_id = $2`

const listMembershipsSQL = `
SELECT ` + membershipColumns + ` FROM memberships
WHERE household_id = $1
ORDER BY created_at`

const listMembershipsByHouseholdsSQL = `
SELECT ` + membershipColumns + ` FROM memberships
WHERE household_id = ANY($1::uuid[])`

const updateMembershipRoleSQL = `
UPDATE memberships SET role = $3, updated_at = now()
WHERE household_id = $1 AND user_id = $2
RETURNING ` + membershipColumns

const deleteMembershipSQL = `
DELETE FROM memberships WHERE household_id = $1 AND user_id = $2`

const countOwnersSQL = `
SELECT count(*) FROM memberships WHERE household_id = $1 AND role = 'OWNER'`

// InsertMembership adds a user to a household. A duplicate (household,
// user) pair surfaces as domain.ErrAlreadyExists.
func (r *Repo) InsertMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanMembership(q.QueryRow(ctx, insertMembershipSQL,
		m.ID, m.HouseholdID, m.UserID, m.Role, m.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "membership", m.ID)
	}
	return out, nil
}

// GetMembership returns the membership of a user in a household.
func (r *Repo) GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanMembership(q.QueryRow(ctx, getMembershipSQL, householdID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}
	return out, nil
}

// ListMemberships returns all memberships of a household in join order.
func (r *Repo) ListMemberships(ctx context.Context, householdID uuid.UUID) ([]*domain.Membership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listMembershipsSQL, householdID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	return collectMemberships(rows)
}

// ListMembershipsByHouseholds returns memberships for a set of
// households (dataloader batch).
func (r *Repo) ListMembershipsByHouseholds(ctx context.Context, householdIDs []uuid.UUID) ([]*domain.Membership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listMembershipsByHouseholdsSQL, householdIDs)
	if err != nil {
		return nil, fmt.Errorf("list memberships by households: %w", err)
	}
	defer rows.Close()

	return collectMemberships(rows)
}

// UpdateMembershipRole changes a member's role.
func (r *Repo) UpdateMembershipRole(ctx context.Context, householdID, userID uuid.UUID, role domain.Role) (*domain.Membership, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanMembership(q.QueryRow(ctx, updateMembershipRoleSQL, householdID, userID, role))
	if err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}
	return out, nil
}

// DeleteMembership removes a user from a household.
func (r *Repo) DeleteMembership(ctx context.Context, householdID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteMembershipSQL, householdID, userID)
	if err != nil {
		return postgres.MapError(err, "membership", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("membership %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// CountOwners returns the number of OWNER memberships in a household.
// The service uses this to refuse demoting or removing the last owner.
func (r *Repo) CountOwners(ctx context.Context, householdID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countOwnersSQL, householdID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count owners: %w", err)
	}
	return count, nil
}

func scanMembership(row pgx.Row) (*domain.Membership, error) {
	var m domain.Membership
	if err := row.Scan(&m.ID, &m.HouseholdID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMemberships(rows pgx.Rows) ([]*domain.Membership, error) {
	var out []*domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
