package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.DefaultAccountID != 0 {
		t.Errorf("expected no default account, got %d", cfg.DefaultAccountID)
	}
	if cfg.RedisURL != "" {
		t.Errorf("expected redis disabled by default, got %q", cfg.RedisURL)
	}
	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("expected 7 day session TTL, got %s", cfg.SessionTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("DEFAULT_ACCOUNT_ID", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_CONNECT_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.HTTPPort)
	}
	if cfg.DefaultAccountID != 42 {
		t.Errorf("expected default account 42, got %d", cfg.DefaultAccountID)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
	if cfg.ConnectTimeout != 5*time.Second {
		t.Errorf("expected 5s connect timeout, got %s", cfg.ConnectTimeout)
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed duration")
	}
}
