package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/notification"
)

func (r *queryResolver) MyNotifications(ctx context.Context, includeRead bool, limit int) ([]*domain.Notification, error) {
	return r.notification.ListMine(ctx, includeRead, limit)
}

func (r *queryResolver) UnreadCount(ctx context.Context) (int, error) {
	return r.notification.UnreadCount(ctx)
}

func (r *mutationResolver) MarkNotificationRead(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.notification.MarkRead(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	return r.notification.MarkAllRead(ctx)
}

func (r *mutationResolver) SubscribePush(ctx context.Context, input notification.SubscribeInput) (*domain.PushSubscription, error) {
	return r.notification.Subscribe(ctx, input)
}

func (r *mutationResolver) UnsubscribePush(ctx context.Context, endpoint string) (bool, error) {
	if err := r.notification.Unsubscribe(ctx, endpoint); err != nil {
		return false, err
	}
	return true, nil
}
