// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/iths-alumni/election-server/cliparse"
	"github.com/iths-alumni/election-server/handlers"
	"github.com/iths-alumni/election-server/mailer"
	"github.com/iths-alumni/election-server/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, notifier mailer.Notifier) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(db, cfg, notifier)
	votingHandler := handlers.NewVotingHandler(db, cfg, notifier)
	committeeHandler := handlers.NewCommitteeHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Candidate registry (public)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("POST /candidates/register", middleware.WithLogging(candidateHandler.RegisterCandidate))

	// Vote submission (public)
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("POST /votes/bulk", middleware.WithLogging(votingHandler.SubmitBulkVotes))
	mux.HandleFunc("GET /votes/stats", middleware.WithLogging(votingHandler.GetVoteStats))

	// Committee accounts and gated tally view
	mux.HandleFunc("POST /committee/signup", middleware.WithLogging(committeeHandler.Signup))
	mux.HandleFunc("POST /committee/login", middleware.WithLogging(committeeHandler.Login))
	mux.HandleFunc("GET /committee/candidates",
		middleware.WithLogging(middleware.RequireCommittee(cfg.JWTSecret, committeeHandler.Candidates)))

	// Root endpoint doubles as the JSON 404 for unmatched paths
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			middleware.ErrorResponse(w, http.StatusNotFound, "Route not found")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
			"message": "ITHS Election Backend API",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"health":     "/health",
				"candidates": "/candidates",
				"votes":      "/votes",
				"committee":  "/committee",
			},
		})
	})

	return mux
}
