package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl (%v) must exceed access_token_ttl (%v)",
			c.Auth.RefreshTokenTTL, c.Auth.AccessTokenTTL)
	}

	// VAPID keys come in pairs.
	if (c.Push.VAPIDPublicKey == "") != (c.Push.VAPIDPrivateKey == "") {
		return fmt.Errorf("push: vapid keys must be set together or not at all")
	}

	if err := c.Sweep.validate(); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	return nil
}

func (s SweepConfig) validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"low_stock_interval", s.LowStockInterval},
		{"expiry_interval", s.ExpiryInterval},
		{"usage_interval", s.UsageInterval},
		{"scheduled_interval", s.ScheduledInterval},
		{"expiry_window", s.ExpiryWindow},
		{"usage_window", s.UsageWindow},
		{"depletion_horizon", s.DepletionHorizon},
	}
	for _, it := range durations {
		if it.d <= 0 {
			return fmt.Errorf("%s must be positive (got %v)", it.name, it.d)
		}
	}

	if s.ExpiryWindow >= s.UsageWindow {
		return fmt.Errorf("expiry_window (%v) must be shorter than usage_window (%v)",
			s.ExpiryWindow, s.UsageWindow)
	}

	return nil
}
