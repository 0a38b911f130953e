// Package notification implements stored notifications with best-effort
// web push delivery.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, includeRead bool, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)

	UpsertPushSubscription(ctx context.Context, s *domain.PushSubscription) (*domain.PushSubscription, error)
	ListPushSubscriptions(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error)
	DeletePushSubscription(ctx context.Context, userID uuid.UUID, endpoint string) error
	DeletePushSubscriptionByEndpoint(ctx context.Context, endpoint string) error
}

// Pusher delivers one payload to one browser push endpoint. A
// webpush.ErrSubscriptionGone return means the endpoint rejected the
// subscription for good and its stored record should be dropped.
type Pusher interface {
	Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error
}

// Service implements notification business logic.
type Service struct {
	log  *slog.Logger
	repo notificationRepo
	push Pusher
}

// NewService creates a new notification service. push may be nil when
// web push is not configured; notifications are then store-only.
func NewService(logger *slog.Logger, repo notificationRepo, push Pusher) *Service {
	return &Service{
		log:  logger.With("service", "notification"),
		repo: repo,
		push: push,
	}
}
