// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iths-alumni/election-server/cliparse"
	"github.com/iths-alumni/election-server/db"
	"github.com/iths-alumni/election-server/mailer"
	"github.com/iths-alumni/election-server/middleware"
	"github.com/iths-alumni/election-server/models"
)

type VotingHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	notifier mailer.Notifier
}

func NewVotingHandler(dbConn *sql.DB, cfg cliparse.Config, notifier mailer.Notifier) *VotingHandler {
	return &VotingHandler{db: dbConn, cfg: cfg, notifier: notifier}
}

// SubmitVote handles POST /votes - single vote, legacy scheme.
// Kept for backward compatibility with the old voting frontend.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voterName := strings.TrimSpace(req.VoterName)
	voterEmail := strings.ToLower(strings.TrimSpace(req.VoterEmail))

	// Validate input
	if voterName == "" || voterEmail == "" || req.Position == "" || req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !models.IsValidPosition(req.Position) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown position: "+req.Position)
		return
	}

	// Duplicate checks and the insert share one transaction so a racing
	// submission has the smallest possible window; the unique constraint
	// on (voter_email, position) closes it completely.
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting vote")
		return
	}
	defer tx.Rollback()

	// Already voted for this position in the legacy scheme?
	var exists bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM ballot
			WHERE voter_email = $1 AND position = $2 AND scheme = $3
		)
	`, voterEmail, req.Position, models.SchemeLegacy).Scan(&exists)
	if err != nil {
		slog.Error("failed to check legacy ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting vote")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"You have already voted for "+req.Position+" position")
		return
	}

	// Cross-scheme block: a bulk ballot at this position also counts.
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM ballot
			WHERE voter_email = $1 AND position = $2 AND scheme = $3
		)
	`, voterEmail, req.Position, models.SchemeBulk).Scan(&exists)
	if err != nil {
		slog.Error("failed to check bulk ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting vote")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"You have already voted for "+req.Position+" position in the new system")
		return
	}

	ballotID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO ballot (id, voter_name, voter_email, position, candidate_id, scheme, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ballotID, voterName, voterEmail, req.Position, req.CandidateID, models.SchemeLegacy, time.Now())

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "You have already voted for this position")
			return
		}
		slog.Error("failed to insert ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting vote")
		return
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "You have already voted for this position")
			return
		}
		slog.Error("failed to commit vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting vote")
		return
	}

	slog.Info("vote submitted", "ballot_id", ballotID, "position", req.Position, "scheme", models.SchemeLegacy)

	// No confirmation email on this path - the legacy frontend never had one.
	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Message:   "Vote submitted successfully!",
		ID:        ballotID,
		VoterName: voterName,
		Position:  req.Position,
	})
}

// SubmitBulkVotes handles POST /votes/bulk - one ballot per position,
// committed all-or-nothing.
func (h *VotingHandler) SubmitBulkVotes(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitBulkVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voterName := strings.TrimSpace(req.VoterName)
	voterEmail := strings.ToLower(strings.TrimSpace(req.VoterEmail))

	if voterName == "" || voterEmail == "" || len(req.Votes) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Voter name, email, and votes array are required")
		return
	}

	// Validate every entry and resolve its candidate before touching the
	// ballot table. One bad entry aborts the whole submission.
	type resolvedVote struct {
		position      string
		candidateID   string
		candidateName string
	}
	resolved := make([]resolvedVote, 0, len(req.Votes))

	for _, vote := range req.Votes {
		if vote.Position == "" || vote.CandidateID == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Each vote must have a position and candidateId")
			return
		}
		if !models.IsValidPosition(vote.Position) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown position: "+vote.Position)
			return
		}

		var candidateName, candidatePosition string
		err := h.db.QueryRow(`
			SELECT name, position FROM candidate WHERE id = $1
		`, vote.CandidateID).Scan(&candidateName, &candidatePosition)

		if err == sql.ErrNoRows {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid candidate selected for "+vote.Position)
			return
		}
		if err != nil {
			slog.Error("failed to resolve candidate", "error", err, "candidate_id", vote.CandidateID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting votes")
			return
		}
		// A candidate can only receive votes for the position they contest
		if candidatePosition != vote.Position {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				"Candidate "+candidateName+" is not running for "+vote.Position)
			return
		}

		resolved = append(resolved, resolvedVote{
			position:      vote.Position,
			candidateID:   vote.CandidateID,
			candidateName: candidateName,
		})
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting votes")
		return
	}
	defer tx.Rollback()

	// A bulk voter must be entirely new to the election: any prior ballot
	// by this email, in either scheme, rejects the whole submission.
	bulkPositions, err := votedPositions(tx, voterEmail, models.SchemeBulk)
	if err != nil {
		slog.Error("failed to check bulk ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting votes")
		return
	}
	if len(bulkPositions) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"You have already voted for the following positions in the new system: "+
				strings.Join(bulkPositions, ", ")+". Each email can only vote once per position.")
		return
	}

	legacyPositions, err := votedPositions(tx, voterEmail, models.SchemeLegacy)
	if err != nil {
		slog.Error("failed to check legacy ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting votes")
		return
	}
	if len(legacyPositions) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"You have already voted for the following positions in the old system: "+
				strings.Join(legacyPositions, ", ")+". Please contact the election committee if you need assistance.")
		return
	}

	// All ballots land in one transaction: either every position is
	// recorded or none are.
	now := time.Now()
	positionsVoted := make([]string, 0, len(resolved))
	for _, v := range resolved {
		_, err = tx.Exec(`
			INSERT INTO ballot (id, voter_name, voter_email, position, candidate_id, candidate_name, scheme, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, uuid.NewString(), voterName, voterEmail, v.position, v.candidateID, v.candidateName, models.SchemeBulk, now)

		if err != nil {
			if db.IsUniqueViolation(err) {
				middleware.ErrorResponse(w, http.StatusBadRequest,
					"Duplicate vote detected. You may have already voted for one of these positions.")
				return
			}
			slog.Error("failed to insert bulk ballot", "error", err, "position", v.position)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting votes")
			return
		}
		positionsVoted = append(positionsVoted, v.position)
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				"Duplicate vote detected. You may have already voted for one of these positions.")
			return
		}
		slog.Error("failed to commit bulk votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error submitting votes")
		return
	}

	slog.Info("bulk votes submitted", "voter_email", voterEmail, "count", len(positionsVoted))

	// Email side effects run after the commit and never affect the
	// already-recorded result.
	summaries := make([]mailer.VoteSummary, len(resolved))
	for i, v := range resolved {
		summaries[i] = mailer.VoteSummary{Position: v.position, CandidateName: v.candidateName}
	}
	go h.sendBulkNotifications(voterName, voterEmail, summaries, positionsVoted)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitBulkVotesResponse{
		Message:        "Successfully submitted " + strconv.Itoa(len(positionsVoted)) + " votes!",
		VoterName:      voterName,
		PositionsVoted: positionsVoted,
		Scheme:         models.SchemeBulk,
	})
}

// GetVoteStats handles GET /votes/stats
// Returns ballot and distinct-voter counts per scheme plus combined totals.
func (h *VotingHandler) GetVoteStats(w http.ResponseWriter, r *http.Request) {
	var stats models.VoteStatsResponse

	rows, err := h.db.Query(`
		SELECT scheme, COUNT(*), COUNT(DISTINCT voter_email)
		FROM ballot
		GROUP BY scheme
	`)
	if err != nil {
		slog.Error("failed to query vote stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving voting statistics")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var scheme string
		var s models.SchemeStats
		if err := rows.Scan(&scheme, &s.Votes, &s.Voters); err != nil {
			slog.Error("failed to scan vote stats", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving voting statistics")
			return
		}
		switch scheme {
		case models.SchemeLegacy:
			stats.Legacy = s
		case models.SchemeBulk:
			stats.Bulk = s
		}
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read vote stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving voting statistics")
		return
	}

	// A bulk submission requires a clean slate in both schemes, so the
	// voter sets are disjoint and the sums are exact.
	stats.Combined = models.CombinedStats{
		TotalVotes:  stats.Legacy.Votes + stats.Bulk.Votes,
		TotalVoters: stats.Legacy.Voters + stats.Bulk.Voters,
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

func (h *VotingHandler) sendBulkNotifications(voterName, voterEmail string, votes []mailer.VoteSummary, positions []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.notifier.SendVoteConfirmation(ctx, voterName, voterEmail, votes); err != nil {
		slog.Warn("vote confirmation email failed", "error", err)
	}
	if err := h.notifier.SendCommitteeNotification(ctx, voterName, voterEmail, positions); err != nil {
		slog.Warn("committee notification email failed", "error", err)
	}
}

// votedPositions returns the positions this voter has already voted for
// within one scheme, in ballot creation order.
func votedPositions(tx *sql.Tx, voterEmail, scheme string) ([]string, error) {
	rows, err := tx.Query(`
		SELECT position FROM ballot
		WHERE voter_email = $1 AND scheme = $2
		ORDER BY created_at
	`, voterEmail, scheme)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}
