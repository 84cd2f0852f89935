// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        int
	DatabaseURL string
	SeedFile    string

	// Secrets
	JWTSecret string

	// Email (optional; mail is disabled when the API key is empty)
	BrevoAPIKey     string
	SenderEmail     string
	SenderName      string
	CommitteeEmails []string

	// CORS
	AllowedOrigins []string
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var committeeEmails string
	var allowedOrigins string

	fs := flag.NewFlagSet("election-server", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.SeedFile, "seed", "", "Candidate seed file (JSON), loaded at startup")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Committee session signing secret (prefer env)")
	fs.StringVar(&cfg.BrevoAPIKey, "brevo-key", "", "Brevo transactional email API key (prefer env)")

	// Email addressing
	fs.StringVar(&cfg.SenderEmail, "sender-email", "", "Verified sender address for outgoing mail")
	fs.StringVar(&cfg.SenderName, "sender-name", "", "Sender display name for outgoing mail")
	fs.StringVar(&committeeEmails, "committee-emails", "", "Comma-separated committee notification recipients")

	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma-separated CORS origin allowlist")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Secrets - the session signing key MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.BrevoAPIKey == "" {
		cfg.BrevoAPIKey = os.Getenv("BREVO_API_KEY")
	}
	if cfg.SenderEmail == "" {
		cfg.SenderEmail = os.Getenv("MAIL_SENDER_EMAIL")
	}
	if cfg.SenderName == "" {
		cfg.SenderName = os.Getenv("MAIL_SENDER_NAME")
	}
	if cfg.SenderName == "" {
		cfg.SenderName = "ITHS 2011 Alumni Election"
	}

	if committeeEmails == "" {
		committeeEmails = os.Getenv("COMMITTEE_EMAILS")
	}
	cfg.CommitteeEmails = splitNonEmpty(committeeEmails)

	if allowedOrigins == "" {
		allowedOrigins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = splitNonEmpty(allowedOrigins)

	return cfg, nil
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
