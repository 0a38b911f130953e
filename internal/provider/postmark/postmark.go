// Package postmark sends transactional email through the Postmark HTTP
// API.
package postmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/hearthhq/hearth-backend/internal/config"
)

// Mailer sends email via Postmark. Server errors and rate limiting are
// retried with exponential backoff; 4xx responses other than 429 fail
// immediately.
type Mailer struct {
	log        *slog.Logger
	http       *http.Client
	cfg        config.EmailConfig
	maxRetries uint64
}

// NewMailer creates a Mailer from email configuration.
func NewMailer(logger *slog.Logger, cfg config.EmailConfig) *Mailer {
	maxRetries := uint64(cfg.MaxRetries)
	if cfg.MaxRetries <= 0 {
		maxRetries = 3
	}
	return &Mailer{
		log:        logger.With("provider", "postmark"),
		http:       &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
		maxRetries: maxRetries,
	}
}

type message struct {
	From          string `json:"From"`
	To            string `json:"To"`
	Subject       string `json:"Subject"`
	TextBody      string `json:"TextBody"`
	HTMLBody      string `json:"HtmlBody,omitempty"`
	MessageStream string `json:"MessageStream"`
}

// SendInvite emails a household invitation link.
func (m *Mailer) SendInvite(ctx context.Context, to, inviterName, householdName, token string) error {
	link := fmt.Sprintf("%s/invites/accept?token=%s", m.cfg.BaseURL, url.QueryEscape(token))

	msg := message{
		From:    m.cfg.FromEmail,
		To:      to,
		Subject: fmt.Sprintf("%s invited you to join %s", inviterName, householdName),
		TextBody: fmt.Sprintf(
			"%s invited you to join the household %q.\n\nAccept the invitation:\n%s\n\nThe link expires. If you were not expecting this, ignore this email.",
			inviterName, householdName, link),
		MessageStream: "outbound",
	}
	return m.send(ctx, msg)
}

func (m *Mailer) send(ctx context.Context, msg message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode postmark message: %w", err)
	}

	backoff := retry.WithMaxRetries(m.maxRetries, retry.NewExponential(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIURL+"/email", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build postmark request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Postmark-Server-Token", m.cfg.ServerToken)

		resp, err := m.http.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("postmark request: %w", err))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode < 300:
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			m.log.WarnContext(ctx, "postmark transient failure",
				slog.Int("status", resp.StatusCode))
			return retry.RetryableError(fmt.Errorf("postmark returned %d", resp.StatusCode))
		default:
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return fmt.Errorf("postmark returned %d: %s", resp.StatusCode, detail)
		}
	})
}
