package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message stored for a user. Delivery over web push is
// best effort; the stored row is the source of truth.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Body      string
	Data      map[string]string
	IsRead    bool
	CreatedAt time.Time
}
