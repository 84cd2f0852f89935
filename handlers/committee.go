// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iths-alumni/election-server/auth"
	"github.com/iths-alumni/election-server/cliparse"
	"github.com/iths-alumni/election-server/db"
	"github.com/iths-alumni/election-server/middleware"
	"github.com/iths-alumni/election-server/models"
)

type CommitteeHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCommitteeHandler(dbConn *sql.DB, cfg cliparse.Config) *CommitteeHandler {
	return &CommitteeHandler{db: dbConn, cfg: cfg}
}

// Signup handles POST /committee/signup
func (h *CommitteeHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.CommitteeSignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Surname == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email and surname are required")
		return
	}

	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM committee_member WHERE email = $1)
	`, email).Scan(&exists)
	if err != nil {
		slog.Error("failed to check existing committee member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Signup failed")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already registered")
		return
	}

	surnameHash, err := auth.HashSurname(req.Surname)
	if err != nil {
		slog.Error("failed to hash surname", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	memberID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO committee_member (id, email, surname_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, memberID, email, surnameHash, time.Now())

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Email already registered")
			return
		}
		slog.Error("failed to insert committee member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	slog.Info("committee member created", "member_id", memberID)

	middleware.JSONResponse(w, http.StatusCreated, models.CommitteeSignupResponse{
		Message: "Signup successful. You can now login.",
	})
}

// Login handles POST /committee/login
func (h *CommitteeHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CommitteeLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Surname == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email and surname are required")
		return
	}

	var member models.CommitteeMember
	err := h.db.QueryRow(`
		SELECT id, email, surname_hash FROM committee_member WHERE email = $1
	`, email).Scan(&member.ID, &member.Email, &member.SurnameHash)

	// Unknown email and wrong surname get the same answer
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or surname")
		return
	}
	if err != nil {
		slog.Error("failed to query committee member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := auth.CompareSurname(member.SurnameHash, req.Surname); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or surname")
		return
	}

	token, err := auth.NewSessionToken(member.ID, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to mint session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	slog.Info("committee member logged in", "member_id", member.ID)

	middleware.JSONResponse(w, http.StatusOK, models.CommitteeLoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    models.CommitteeUser{Email: member.Email},
	})
}

// Candidates handles GET /committee/candidates (authenticated)
// Returns candidates with merged vote counts, grouped by position.
// The router wraps this in middleware.RequireCommittee, so an invalid
// session never reaches the tally computation.
func (h *CommitteeHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	tallies, err := ComputeTallies(h.db)
	if err != nil {
		slog.Error("failed to compute tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error fetching candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommitteeCandidatesResponse{
		Tallies: tallies,
	})
}
