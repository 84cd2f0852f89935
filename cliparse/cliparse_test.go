// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "JWT_SECRET", "BREVO_API_KEY",
		"MAIL_SENDER_EMAIL", "MAIL_SENDER_NAME", "COMMITTEE_EMAILS",
		"ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{
		"-p", "8080",
		"-d", "postgres://localhost/election",
		"-jwt-secret", "secret",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/election" {
		t.Errorf("Unexpected database URL: %q", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != "secret" {
		t.Errorf("Unexpected JWT secret: %q", cfg.JWTSecret)
	}
	if cfg.SenderName != "ITHS 2011 Alumni Election" {
		t.Errorf("Expected default sender name, got %q", cfg.SenderName)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://env/election")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("COMMITTEE_EMAILS", "a@example.com, b@example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://vote.example.com")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://env/election" {
		t.Errorf("Unexpected database URL: %q", cfg.DatabaseURL)
	}
	if len(cfg.CommitteeEmails) != 2 || cfg.CommitteeEmails[1] != "b@example.com" {
		t.Errorf("Unexpected committee emails: %v", cfg.CommitteeEmails)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://vote.example.com" {
		t.Errorf("Unexpected allowed origins: %v", cfg.AllowedOrigins)
	}
}

func TestParseFlagsFlagBeatsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/election")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := ParseFlags([]string{"-d", "postgres://flag/election"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.DatabaseURL != "postgres://flag/election" {
		t.Errorf("Expected flag to win, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/election")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Port)
	}
	if cfg.BrevoAPIKey != "" {
		t.Errorf("Expected empty Brevo key, got %q", cfg.BrevoAPIKey)
	}
}

func TestParseFlagsMissingRequired(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error when database URL is missing")
	}

	t.Setenv("DATABASE_URL", "postgres://env/election")
	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error when JWT secret is missing")
	}
}

func TestParseFlagsInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")
	t.Setenv("DATABASE_URL", "postgres://env/election")
	t.Setenv("JWT_SECRET", "env-secret")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error for invalid PORT")
	}
}
