package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "SESSION_KEY", "CSRF_KEY", "LOGIN_DELAY", "REGISTER_DELAY",
		"COUNTDOWN_INTERVAL", "PAST_EVENTS_LIMIT", "OPEN_ROUTES", "TIMEZONE", "ALLOWED_ORIGINS", "FIXTURES_AS_OF"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.LoginDelay != time.Second || cfg.RegisterDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected delays: %v / %v", cfg.LoginDelay, cfg.RegisterDelay)
	}
	if cfg.CountdownInterval != time.Minute {
		t.Fatalf("CountdownInterval = %v", cfg.CountdownInterval)
	}
	if cfg.PastEventsLimit != 7 {
		t.Fatalf("PastEventsLimit = %d, want 7", cfg.PastEventsLimit)
	}
	if len(cfg.SessionKey) != 32 {
		t.Fatalf("expected generated 32 byte session key, got %d bytes", len(cfg.SessionKey))
	}
	if len(cfg.CSRFKey) != 32 {
		t.Fatalf("expected generated 32 byte CSRF key, got %d bytes", len(cfg.CSRFKey))
	}
	if !cfg.FixturesAsOf.IsZero() {
		t.Fatalf("FixturesAsOf = %v, want zero", cfg.FixturesAsOf)
	}
	if cfg.OpenRoutes {
		t.Fatalf("routes should be protected by default")
	}
	if cfg.Location == nil {
		t.Fatalf("Location should never be nil")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOGIN_DELAY", "0s")
	t.Setenv("PAST_EVENTS_LIMIT", "3")
	t.Setenv("OPEN_ROUTES", "yes")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SESSION_KEY", strings.Repeat("k", 32))
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("FIXTURES_AS_OF", "2025-05-15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":9090" || cfg.LoginDelay != 0 || cfg.PastEventsLimit != 3 || !cfg.OpenRoutes {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if string(cfg.SessionKey) != strings.Repeat("k", 32) {
		t.Fatalf("SessionKey not taken from env")
	}
	if cfg.Location != time.UTC {
		t.Fatalf("Location = %v, want UTC", cfg.Location)
	}
	if want := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC); !cfg.FixturesAsOf.Equal(want) {
		t.Fatalf("FixturesAsOf = %v, want %v", cfg.FixturesAsOf, want)
	}
}

func TestLoadCollectsErrors(t *testing.T) {
	t.Setenv("LOGIN_DELAY", "soon")
	t.Setenv("PAST_EVENTS_LIMIT", "many")
	t.Setenv("OPEN_ROUTES", "maybe")
	t.Setenv("SESSION_KEY", "short")
	t.Setenv("FIXTURES_AS_OF", "15/05/2025")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, key := range []string{"LOGIN_DELAY", "PAST_EVENTS_LIMIT", "OPEN_ROUTES", "SESSION_KEY", "FIXTURES_AS_OF"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q does not mention %s", err, key)
		}
	}
}
