// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iths-alumni/election-server/cliparse"
	"github.com/iths-alumni/election-server/db"
	"github.com/iths-alumni/election-server/mailer"
	"github.com/iths-alumni/election-server/middleware"
	"github.com/iths-alumni/election-server/models"
)

type CandidateHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	notifier mailer.Notifier
}

func NewCandidateHandler(dbConn *sql.DB, cfg cliparse.Config, notifier mailer.Notifier) *CandidateHandler {
	return &CandidateHandler{db: dbConn, cfg: cfg, notifier: notifier}
}

// ListCandidates handles GET /candidates
// Returns all registered candidates, most recently registered first.
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := loadCandidates(h.db)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateListResponse{
		Count:      len(candidates),
		Candidates: candidates,
	})
}

// RegisterCandidate handles POST /candidates/register
func (h *CandidateHandler) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Validate input
	if name == "" || email == "" || req.Position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !models.IsValidPosition(req.Position) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown position: "+req.Position)
		return
	}

	// One candidate registration per email, regardless of position
	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM candidate WHERE email = $1)
	`, email).Scan(&exists)
	if err != nil {
		slog.Error("failed to check existing candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error during registration")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusBadRequest, "This email has already been used to register for a position")
		return
	}

	candidate := models.Candidate{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Position:  req.Position,
		CreatedAt: time.Now(),
	}

	_, err = h.db.Exec(`
		INSERT INTO candidate (id, name, email, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, candidate.ID, candidate.Name, candidate.Email, candidate.Position, candidate.CreatedAt)

	if err != nil {
		// The unique constraint is the backstop for two racing registrations
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "This email has already been used to register for a position")
			return
		}
		slog.Error("failed to insert candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	slog.Info("candidate registered", "candidate_id", candidate.ID, "position", candidate.Position)

	// Notify the committee, fire-and-forget. A mail failure never rolls
	// back or fails the registration.
	go func(c models.Candidate) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.notifier.SendRegistrationNotice(ctx, c); err != nil {
			slog.Warn("registration notice failed", "error", err, "candidate_id", c.ID)
		}
	}(candidate)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterCandidateResponse{
		Message:   "Registration successful! The election committee has been notified.",
		Candidate: candidate,
	})
}

// loadCandidates returns all candidates ordered by creation time,
// newest first. This ordering is also the display order inside each
// position group of the committee tally view.
func loadCandidates(dbConn *sql.DB) ([]models.Candidate, error) {
	rows, err := dbConn.Query(`
		SELECT id, name, email, position, created_at
		FROM candidate
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Position, &c.CreatedAt); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
