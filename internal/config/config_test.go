package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.LearningBuffer != 256 {
		t.Fatalf("expected default learning buffer, got %d", cfg.LearningBuffer)
	}
	if cfg.ResponseSeed != 0 {
		t.Fatalf("expected unseeded responses by default, got %d", cfg.ResponseSeed)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LEARNING_WORKERS", "3")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("LEAD_SOURCE", "landing_page")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://portal.example.com, https://www.example.com,")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected session ttl override, got %s", cfg.SessionTTL)
	}
	if cfg.LearningWorkers != 3 {
		t.Fatalf("expected learning workers override, got %d", cfg.LearningWorkers)
	}
	if !cfg.RedisTLS {
		t.Fatalf("expected redis tls enabled")
	}
	if cfg.LeadSource != "landing_page" {
		t.Fatalf("expected lead source override, got %s", cfg.LeadSource)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://portal.example.com" {
		t.Fatalf("expected parsed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadPublicBaseURLSeedsCORSOrigins(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://lendora.example")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://lendora.example" {
		t.Fatalf("expected public base URL as default CORS origin, got %v", cfg.CORSAllowedOrigins)
	}

	// An explicit allowlist wins over the public site default.
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://portal.example.com")
	cfg = Load()
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://portal.example.com" {
		t.Fatalf("expected explicit CORS origins to win, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("LEARNING_BUFFER", "not-a-number")
	t.Setenv("SESSION_TTL", "whenever")
	t.Setenv("REDIS_TLS", "maybe")
	cfg := Load()
	if cfg.LearningBuffer != 256 {
		t.Fatalf("expected fallback learning buffer, got %d", cfg.LearningBuffer)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected fallback session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.RedisTLS {
		t.Fatalf("expected fallback redis tls false")
	}
}
