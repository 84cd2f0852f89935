// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iths-alumni/election-server/middleware"
	"github.com/iths-alumni/election-server/models"
	"github.com/iths-alumni/election-server/testutil"
)

// TestElectionWorkflow runs a complete election round:
// 1. Candidates register for positions
// 2. One voter uses the legacy single-vote endpoint
// 3. Another voter submits a bulk ballot
// 4. Public stats reflect both schemes
// 5. A committee member signs up, logs in, and reads the tallies
func TestElectionWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	notifier := &testutil.RecordingNotifier{}

	candidateHandler := NewCandidateHandler(db, cfg, notifier)
	votingHandler := NewVotingHandler(db, cfg, notifier)
	committeeHandler := NewCommitteeHandler(db, cfg)

	// Step 1: register two candidates
	register := func(name, email, position string) string {
		w := httptest.NewRecorder()
		candidateHandler.RegisterCandidate(w, testutil.MakeRequest("POST", "/candidates/register", models.RegisterCandidateRequest{
			Name:     name,
			Email:    email,
			Position: position,
		}, nil))
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.RegisterCandidateResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.Candidate.ID
	}

	chairmanID := register("Ogi Simeon", "ogi@example.com", "Chairman")
	treasurerID := register("Shogbola Haruna", "shogbola@example.com", "Treasurer 1")

	w := httptest.NewRecorder()
	candidateHandler.ListCandidates(w, testutil.MakeRequest("GET", "/candidates", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.CandidateListResponse
	testutil.AssertJSON(t, w, &list)
	if list.Count != 2 {
		t.Fatalf("Expected 2 candidates, got %d", list.Count)
	}

	// Step 2: legacy single vote
	w = httptest.NewRecorder()
	votingHandler.SubmitVote(w, testutil.MakeRequest("POST", "/votes", models.SubmitVoteRequest{
		VoterName:   "Alice Voter",
		VoterEmail:  "alice@example.com",
		Position:    "Chairman",
		CandidateID: chairmanID,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Step 3: bulk ballot from a second voter
	w = httptest.NewRecorder()
	votingHandler.SubmitBulkVotes(w, testutil.MakeRequest("POST", "/votes/bulk", models.SubmitBulkVotesRequest{
		VoterName:  "Bob Voter",
		VoterEmail: "bob@example.com",
		Votes: []models.BulkVoteEntry{
			{Position: "Chairman", CandidateID: chairmanID},
			{Position: "Treasurer 1", CandidateID: treasurerID},
		},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Step 4: stats cover both schemes
	w = httptest.NewRecorder()
	votingHandler.GetVoteStats(w, testutil.MakeRequest("GET", "/votes/stats", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.VoteStatsResponse
	testutil.AssertJSON(t, w, &stats)
	if stats.Legacy.Votes != 1 || stats.Bulk.Votes != 2 {
		t.Errorf("Expected 1 legacy / 2 bulk votes, got %d / %d", stats.Legacy.Votes, stats.Bulk.Votes)
	}
	if stats.Combined.TotalVotes != 3 || stats.Combined.TotalVoters != 2 {
		t.Errorf("Expected 3 votes from 2 voters, got %d / %d", stats.Combined.TotalVotes, stats.Combined.TotalVoters)
	}

	// Step 5: committee signup, login, tally view
	w = httptest.NewRecorder()
	committeeHandler.Signup(w, testutil.MakeRequest("POST", "/committee/signup", models.CommitteeSignupRequest{
		Email:   "chair@example.com",
		Surname: "Adeyemi",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	committeeHandler.Login(w, testutil.MakeRequest("POST", "/committee/login", models.CommitteeLoginRequest{
		Email:   "chair@example.com",
		Surname: "Adeyemi",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.CommitteeLoginResponse
	testutil.AssertJSON(t, w, &login)
	if login.Token == "" {
		t.Fatal("Expected a session token")
	}

	guarded := middleware.RequireCommittee(cfg.JWTSecret, committeeHandler.Candidates)
	w = httptest.NewRecorder()
	guarded(w, testutil.MakeRequest("GET", "/committee/candidates", nil, map[string]string{
		"Authorization": "Bearer " + login.Token,
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var tallies models.CommitteeCandidatesResponse
	testutil.AssertJSON(t, w, &tallies)

	chairman := tallies.Tallies["Chairman"]
	if len(chairman) != 1 {
		t.Fatalf("Expected 1 Chairman candidate, got %d", len(chairman))
	}
	if chairman[0].VoteCount != 2 || chairman[0].Breakdown.Legacy != 1 || chairman[0].Breakdown.Bulk != 1 {
		t.Errorf("Expected Chairman tally 2 (1 legacy + 1 bulk), got %d (%+v)", chairman[0].VoteCount, chairman[0].Breakdown)
	}

	treasurer := tallies.Tallies["Treasurer 1"]
	if len(treasurer) != 1 || treasurer[0].VoteCount != 1 {
		t.Errorf("Expected Treasurer 1 tally of 1, got %+v", treasurer)
	}

	// The bulk voter's confirmation email was dispatched
	waitForConfirmations(t, notifier, 1)
}
