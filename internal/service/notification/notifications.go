package notification

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

const defaultListLimit = 50

// ListMine returns the caller's notifications, newest first.
func (s *Service) ListMine(ctx context.Context, includeRead bool, limit int) ([]*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}
	return s.repo.ListForUser(ctx, userID, includeRead, limit)
}

// MarkRead marks one of the caller's notifications read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	return s.repo.MarkRead(ctx, id, userID)
}

// MarkAllRead marks every unread notification of the caller read and
// reports how many changed.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return s.repo.MarkAllRead(ctx, userID)
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return s.repo.UnreadCount(ctx, userID)
}

// SubscribeInput holds a browser push subscription as handed out by the
// Push API.
type SubscribeInput struct {
	Endpoint  string
	P256dhKey string
	AuthKey   string
}

// Validate checks all fields and collects all errors.
func (i *SubscribeInput) Validate() error {
	var errs []domain.FieldError

	if i.Endpoint == "" {
		errs = append(errs, domain.FieldError{Field: "endpoint", Message: "required"})
	} else if u, err := url.Parse(i.Endpoint); err != nil || u.Scheme != "https" {
		errs = append(errs, domain.FieldError{Field: "endpoint", Message: "must be an https URL"})
	}
	if i.P256dhKey == "" {
		errs = append(errs, domain.FieldError{Field: "p256dh_key", Message: "required"})
	}
	if i.AuthKey == "" {
		errs = append(errs, domain.FieldError{Field: "auth_key", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Subscribe registers (or refreshes) a push subscription for the caller.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) (*domain.PushSubscription, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpsertPushSubscription(ctx, &domain.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  input.Endpoint,
		P256dhKey: input.P256dhKey,
		AuthKey:   input.AuthKey,
		CreatedAt: time.Now(),
	})
}

// Unsubscribe removes one of the caller's push subscriptions.
func (s *Service) Unsubscribe(ctx context.Context, endpoint string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	return s.repo.DeletePushSubscription(ctx, userID, endpoint)
}
