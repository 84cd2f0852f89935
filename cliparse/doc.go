// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: PostgreSQL connection string (required)
  - JWTSecret: Committee session signing secret (required)
  - BrevoAPIKey: Transactional email API key (optional)
  - SenderEmail / SenderName: Outgoing mail sender
  - CommitteeEmails: Committee notification recipients
  - AllowedOrigins: CORS origin allowlist
  - SeedFile: Candidate seed file loaded at startup

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	JWT_SECRET        → -jwt-secret
	BREVO_API_KEY     → -brevo-key
	MAIL_SENDER_EMAIL → -sender-email
	MAIL_SENDER_NAME  → -sender-name
	COMMITTEE_EMAILS  → -committee-emails
	ALLOWED_ORIGINS   → -allowed-origins

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided
*/
package cliparse
