// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/iths-alumni/election-server/cliparse"
	"github.com/iths-alumni/election-server/db"
	"github.com/iths-alumni/election-server/mailer"
	"github.com/iths-alumni/election-server/middleware"
	"github.com/iths-alumni/election-server/router"
)

func main() {
	var err error

	// Load .env if present; real deployments set env directly
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Optional candidate seeding
	if cfg.SeedFile != "" {
		inserted, err := db.SeedCandidates(dbConn, cfg.SeedFile)
		if err != nil {
			slog.Error("candidate seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("candidates seeded", "inserted", inserted, "file", cfg.SeedFile)
	}

	// Email dispatch: Brevo when configured, otherwise a no-op
	var notifier mailer.Notifier
	if cfg.BrevoAPIKey != "" {
		notifier = &mailer.Brevo{
			APIKey:          cfg.BrevoAPIKey,
			SenderEmail:     cfg.SenderEmail,
			SenderName:      cfg.SenderName,
			CommitteeEmails: cfg.CommitteeEmails,
		}
		slog.Info("email notifications enabled", "committee_recipients", len(cfg.CommitteeEmails))
	} else {
		notifier = mailer.Noop{}
		slog.Info("email notifications disabled (no BREVO_API_KEY)")
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, notifier)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
