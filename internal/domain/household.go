package domain

import (
	"time"

	"github.com/google/uuid"
)

// Household is the top-level tenant grouping users who share kitchens.
// Invariant: a household always has at least one OWNER membership.
type Household struct {
	ID        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Membership ties a user to a household with a role. Created when a
// household is created (creator becomes OWNER) or when an invitation is
// accepted; deleted when the user leaves or is removed. Only the role
// ever changes after creation.
type Membership struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	Role        Role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Invite is a pending email invitation to join a household. The raw
// token is emailed; only its hash is stored.
type Invite struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Email       string
	Role        Role
	TokenHash   string
	Status      InviteStatus
	InvitedBy   uuid.UUID
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Usable reports whether the invite can still be accepted at the given time.
func (i Invite) Usable(now time.Time) bool {
	return i.Status == InviteStatusPending && now.Before(i.ExpiresAt)
}
