package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/provider/webpush"
)

// pushPayload is the JSON body handed to the browser's service worker.
type pushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Notify stores a notification for a user and pushes it to every
// registered browser endpoint. Push delivery is fire and forget:
// failures are logged, never returned. Only the store write can fail
// the call.
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) (*domain.Notification, error) {
	n, err := s.repo.Create(ctx, &domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("notification.Notify: %w", err)
	}

	if s.push != nil {
		s.deliverPush(ctx, n)
	}
	return n, nil
}

func (s *Service) deliverPush(ctx context.Context, n *domain.Notification) {
	subs, err := s.repo.ListPushSubscriptions(ctx, n.UserID)
	if err != nil {
		s.log.WarnContext(ctx, "listing push subscriptions failed",
			slog.String("user_id", n.UserID.String()),
			slog.String("error", err.Error()))
		return
	}
	if len(subs) == 0 {
		return
	}

	payload, err := json.Marshal(pushPayload{Title: n.Title, Body: n.Body, Data: n.Data})
	if err != nil {
		s.log.WarnContext(ctx, "encoding push payload failed", slog.String("error", err.Error()))
		return
	}

	for _, sub := range subs {
		err := s.push.Send(ctx, sub, payload)
		switch {
		case err == nil:
		case errors.Is(err, webpush.ErrSubscriptionGone):
			// The browser dropped the subscription; forget it.
			if derr := s.repo.DeletePushSubscriptionByEndpoint(ctx, sub.Endpoint); derr != nil {
				s.log.WarnContext(ctx, "pruning dead push subscription failed",
					slog.String("error", derr.Error()))
			}
		default:
			s.log.WarnContext(ctx, "push delivery failed",
				slog.String("user_id", n.UserID.String()),
				slog.String("error", err.Error()))
		}
	}
}
