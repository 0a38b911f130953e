package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. A user may belong to any number of
// households through Membership records.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a long-lived session token. Only the SHA-256 hash is
// stored; the raw token never touches the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// Valid reports whether the token can still be exchanged at the given time.
func (t RefreshToken) Valid(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// PushSubscription is a web-push endpoint registered by a user's browser.
type PushSubscription struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Endpoint  string
	P256dhKey string
	AuthKey   string
	CreatedAt time.Time
}
