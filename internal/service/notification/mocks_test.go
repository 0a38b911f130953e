package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

// notificationRepoMock is a hand-rolled stub: unset methods panic.
type notificationRepoMock struct {
	CreateFunc                           func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListForUserFunc                      func(ctx context.Context, userID uuid.UUID, includeRead bool, limit int) ([]*domain.Notification, error)
	MarkReadFunc                         func(ctx context.Context, id, userID uuid.UUID) error
	MarkAllReadFunc                      func(ctx context.Context, userID uuid.UUID) (int, error)
	UnreadCountFunc                      func(ctx context.Context, userID uuid.UUID) (int, error)
	UpsertPushSubscriptionFunc           func(ctx context.Context, s *domain.PushSubscription) (*domain.PushSubscription, error)
	ListPushSubscriptionsFunc            func(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error)
	DeletePushSubscriptionFunc           func(ctx context.Context, userID uuid.UUID, endpoint string) error
	DeletePushSubscriptionByEndpointFunc func(ctx context.Context, endpoint string) error
}

func (m *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if m.CreateFunc == nil {
		panic("notificationRepoMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, n)
}

func (m *notificationRepoMock) ListForUser(ctx context.Context, userID uuid.UUID, includeRead bool, limit int) ([]*domain.Notification, error) {
	if m.ListForUserFunc == nil {
		panic("notificationRepoMock.ListForUserFunc: method is nil but was called")
	}
	return m.ListForUserFunc(ctx, userID, includeRead, limit)
}

func (m *notificationRepoMock) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if m.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but was called")
	}
	return m.MarkReadFunc(ctx, id, userID)
}

func (m *notificationRepoMock) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but was called")
	}
	return m.MarkAllReadFunc(ctx, userID)
}

func (m *notificationRepoMock) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.UnreadCountFunc == nil {
		panic("notificationRepoMock.UnreadCountFunc: method is nil but was called")
	}
	return m.UnreadCountFunc(ctx, userID)
}

func (m *notificationRepoMock) UpsertPushSubscription(ctx context.Context, s *domain.PushSubscription) (*domain.PushSubscription, error) {
	if m.UpsertPushSubscriptionFunc == nil {
		panic("notificationRepoMock.UpsertPushSubscriptionFunc: method is nil but was called")
	}
	return m.UpsertPushSubscriptionFunc(ctx, s)
}

func (m *notificationRepoMock) ListPushSubscriptions(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error) {
	if m.ListPushSubscriptionsFunc == nil {
		panic("notificationRepoMock.ListPushSubscriptionsFunc: method is nil but was called")
	}
	return m.ListPushSubscriptionsFunc(ctx, userID)
}

func (m *notificationRepoMock) DeletePushSubscription(ctx context.Context, userID uuid.UUID, endpoint string) error {
	if m.DeletePushSubscriptionFunc == nil {
		panic("notificationRepoMock.DeletePushSubscriptionFunc: method is nil but was called")
	}
	return m.DeletePushSubscriptionFunc(ctx, userID, endpoint)
}

func (m *notificationRepoMock) DeletePushSubscriptionByEndpoint(ctx context.Context, endpoint string) error {
	if m.DeletePushSubscriptionByEndpointFunc == nil {
		panic("notificationRepoMock.DeletePushSubscriptionByEndpointFunc: method is nil but was called")
	}
	return m.DeletePushSubscriptionByEndpointFunc(ctx, endpoint)
}

// pusherMock records every send; SendFunc may be nil, in which case all
// sends succeed.
type pusherMock struct {
	mu       sync.Mutex
	SendFunc func(ctx context.Context, sub *domain.PushSubscription, payload []byte) error
	sent     []string
}

func (m *pusherMock) Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error {
	m.mu.Lock()
	m.sent = append(m.sent, sub.Endpoint)
	m.mu.Unlock()
	if m.SendFunc == nil {
		return nil
	}
	return m.SendFunc(ctx, sub, payload)
}

func (m *pusherMock) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}
