package notification

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/provider/webpush"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

func sub(userID uuid.UUID, endpoint string) *domain.PushSubscription {
	return &domain.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  endpoint,
		P256dhKey: "p256dh",
		AuthKey:   "auth",
	}
}

func TestNotify_StoresAndPushes(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var stored *domain.Notification
	var payload []byte

	repo := &notificationRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
			stored = n
			return n, nil
		},
		ListPushSubscriptionsFunc: func(ctx context.Context, u uuid.UUID) ([]*domain.PushSubscription, error) {
			return []*domain.PushSubscription{sub(userID, "https://push.example/a")}, nil
		},
	}
	push := &pusherMock{
		SendFunc: func(ctx context.Context, s *domain.PushSubscription, p []byte) error {
			payload = p
			return nil
		},
	}
	svc := NewService(slog.Default(), repo, push)

	n, err := svc.Notify(context.Background(), userID, "Milk is running low", "2 l left", map[string]string{"item_id": "x"})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if stored == nil || stored.ID != n.ID {
		t.Fatal("notification not stored")
	}
	if len(push.Sent()) != 1 {
		t.Fatalf("expected 1 push, got %d", len(push.Sent()))
	}

	var body pushPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if body.Title != "Milk is running low" || body.Data["item_id"] != "x" {
		t.Errorf("payload wrong: %+v", body)
	}
}

func TestNotify_PushFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &notificationRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
			return n, nil
		},
		ListPushSubscriptionsFunc: func(ctx context.Context, u uuid.UUID) ([]*domain.PushSubscription, error) {
			return []*domain.PushSubscription{sub(userID, "https://push.example/a")}, nil
		},
	}
	push := &pusherMock{
		SendFunc: func(ctx context.Context, s *domain.PushSubscription, p []byte) error {
			return errors.New("push service down")
		},
	}
	svc := NewService(slog.Default(), repo, push)

	if _, err := svc.Notify(context.Background(), userID, "t", "b", nil); err != nil {
		t.Fatalf("push failure must not propagate, got %v", err)
	}
}

func TestNotify_GoneSubscriptionIsPruned(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var pruned string

	repo := &notificationRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
			return n, nil
		},
		ListPushSubscriptionsFunc: func(ctx context.Context, u uuid.UUID) ([]*domain.PushSubscription, error) {
			return []*domain.PushSubscription{sub(userID, "https://push.example/dead")}, nil
		},
		DeletePushSubscriptionByEndpointFunc: func(ctx context.Context, endpoint string) error {
			pruned = endpoint
			return nil
		},
	}
	push := &pusherMock{
		SendFunc: func(ctx context.Context, s *domain.PushSubscription, p []byte) error {
			return webpush.ErrSubscriptionGone
		},
	}
	svc := NewService(slog.Default(), repo, push)

	if _, err := svc.Notify(context.Background(), userID, "t", "b", nil); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if pruned != "https://push.example/dead" {
		t.Errorf("dead subscription not pruned, got %q", pruned)
	}
}

func TestNotify_NoPusherConfigured(t *testing.T) {
	t.Parallel()

	repo := &notificationRepoMock{
		CreateFunc: func(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
			return n, nil
		},
		// ListPushSubscriptions left nil: it must not be called.
	}
	svc := NewService(slog.Default(), repo, nil)

	if _, err := svc.Notify(context.Background(), uuid.New(), "t", "b", nil); err != nil {
		t.Fatalf("Notify: %v", err)
	}
}

func TestSubscribe_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &notificationRepoMock{}, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.Subscribe(ctx, SubscribeInput{Endpoint: "http://insecure.example", P256dhKey: "k"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("expected 2 field errors (endpoint, auth_key), got %v", verr.Errors)
	}
}

func TestListMine_ClampsLimit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	repo := &notificationRepoMock{
		ListForUserFunc: func(ctx context.Context, userID uuid.UUID, includeRead bool, limit int) ([]*domain.Notification, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewService(slog.Default(), repo, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	if _, err := svc.ListMine(ctx, false, 100000); err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if gotLimit != defaultListLimit {
		t.Errorf("limit = %d, want clamp to %d", gotLimit, defaultListLimit)
	}
}

func TestMarkRead_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &notificationRepoMock{}, nil)
	if err := svc.MarkRead(context.Background(), uuid.New()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
