package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns a configuration that passes Validate.
func validConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			JWTSecret:       strings.Repeat("s", 32),
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
			InviteTTL:       168 * time.Hour,
		},
		Sweep: SweepConfig{
			LowStockInterval:  time.Hour,
			ExpiryInterval:    6 * time.Hour,
			UsageInterval:     12 * time.Hour,
			ScheduledInterval: 5 * time.Minute,
			ExpiryWindow:      72 * time.Hour,
			UsageWindow:       720 * time.Hour,
			DepletionHorizon:  168 * time.Hour,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ShortSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short jwt_secret")
	}
}

func TestValidate_RefreshTTLMustExceedAccessTTL(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.RefreshTokenTTL = cfg.Auth.AccessTokenTTL
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when refresh TTL does not exceed access TTL")
	}
}

func TestValidate_VAPIDKeysComeInPairs(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Push.VAPIDPublicKey = "pub"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for lone vapid public key")
	}

	cfg.Push.VAPIDPrivateKey = "priv"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with both keys: %v", err)
	}
}

func TestValidate_SweepDurations(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Sweep.ScheduledInterval = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero scheduled_interval")
	}

	cfg = validConfig()
	cfg.Sweep.ExpiryWindow = cfg.Sweep.UsageWindow
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when expiry_window is not shorter than usage_window")
	}
}
