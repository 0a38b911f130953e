// Package webpush delivers notification payloads to browser push
// endpoints using VAPID.
package webpush

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	wp "github.com/SherClockHolmes/webpush-go"

	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

// ErrSubscriptionGone is returned when the push service reports the
// subscription no longer exists and its stored record should be dropped.
var ErrSubscriptionGone = errors.New("push subscription gone")

const defaultTTL = 60 * 60 * 24 // seconds

// Sender pushes payloads signed with the application's VAPID key pair.
type Sender struct {
	cfg config.PushConfig
}

// NewSender creates a Sender from VAPID configuration.
func NewSender(cfg config.PushConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers one payload to one subscription endpoint.
func (s *Sender) Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error {
	resp, err := wp.SendNotificationWithContext(ctx, payload, &wp.Subscription{
		Endpoint: sub.Endpoint,
		Keys: wp.Keys{
			P256dh: sub.P256dhKey,
			Auth:   sub.AuthKey,
		},
	}, &wp.Options{
		Subscriber:      s.cfg.Subscriber,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             defaultTTL,
	})
	if err != nil {
		return fmt.Errorf("send web push: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return fmt.Errorf("push endpoint returned %d", resp.StatusCode)
	}
	return nil
}
