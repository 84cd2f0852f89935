// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ITHS 2011 Alumni Election
API server.

The backend records candidate registrations, accepts ballots through two
voting schemes (the legacy single-vote endpoint and the current bulk
endpoint), and serves merged tallies to authenticated committee members.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 -d "postgres://..." -jwt-secret "..."

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): Committee session signing secret

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - BREVO_API_KEY (-brevo-key): Transactional email API key; mail is
    disabled when empty
  - MAIL_SENDER_EMAIL / MAIL_SENDER_NAME: Outgoing mail sender
  - COMMITTEE_EMAILS (-committee-emails): Comma-separated notification
    recipients
  - ALLOWED_ORIGINS (-allowed-origins): Comma-separated CORS allowlist
  - -seed: JSON file of candidates to load at startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (candidates, voting, committee, tally)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, committee session gate
  - models: Position enum, domain and request/response types
  - auth: Surname hashing and session tokens
  - mailer: Transactional email behind an injected Notifier interface
  - db: Schema creation, seeding, constraint-error detection
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
