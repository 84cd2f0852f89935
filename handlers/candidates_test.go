// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iths-alumni/election-server/mailer"
	"github.com/iths-alumni/election-server/models"
	"github.com/iths-alumni/election-server/testutil"
)

func TestRegisterCandidate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewCandidateHandler(db, cfg, mailer.Noop{})

	tests := []struct {
		name           string
		requestBody    models.RegisterCandidateRequest
		expectedStatus int
	}{
		{
			name: "valid registration",
			requestBody: models.RegisterCandidateRequest{
				Name:     "Ogi Simeon",
				Email:    "ogi@example.com",
				Position: "Chairman",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing name",
			requestBody: models.RegisterCandidateRequest{
				Email:    "new@example.com",
				Position: "Chairman",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			requestBody: models.RegisterCandidateRequest{
				Name:     "Shogbola Haruna",
				Position: "Chairman",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown position",
			requestBody: models.RegisterCandidateRequest{
				Name:     "Shogbola Haruna",
				Email:    "shogbola@example.com",
				Position: "President",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			requestBody: models.RegisterCandidateRequest{
				Name:     "Ogi Again",
				Email:    "ogi@example.com",
				Position: "Treasurer 1",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/candidates/register", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.RegisterCandidate(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.RegisterCandidateResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Candidate.ID == "" {
					t.Error("Expected non-empty candidate id")
				}
				if resp.Candidate.Position != tt.requestBody.Position {
					t.Errorf("Expected position %q, got %q", tt.requestBody.Position, resp.Candidate.Position)
				}
			}
		})
	}
}

func TestRegisterCandidateNormalizesEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewCandidateHandler(db, cfg, mailer.Noop{})

	first := models.RegisterCandidateRequest{
		Name:     "Ogi Simeon",
		Email:    "  Ogi@Example.COM ",
		Position: "Chairman",
	}
	w := httptest.NewRecorder()
	handler.RegisterCandidate(w, testutil.MakeRequest("POST", "/candidates/register", first, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterCandidateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Candidate.Email != "ogi@example.com" {
		t.Errorf("Expected normalized email, got %q", resp.Candidate.Email)
	}

	// The lowered form collides with the stored candidate
	second := models.RegisterCandidateRequest{
		Name:     "Ogi Again",
		Email:    "ogi@example.com",
		Position: "Treasurer 1",
	}
	w = httptest.NewRecorder()
	handler.RegisterCandidate(w, testutil.MakeRequest("POST", "/candidates/register", second, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestRegisterCandidateSendsNotice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	notifier := &testutil.RecordingNotifier{}
	handler := NewCandidateHandler(db, cfg, notifier)

	req := models.RegisterCandidateRequest{
		Name:     "Ogi Simeon",
		Email:    "ogi@example.com",
		Position: "Chairman",
	}
	w := httptest.NewRecorder()
	handler.RegisterCandidate(w, testutil.MakeRequest("POST", "/candidates/register", req, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// The notice goes out from a goroutine after the response
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if notifier.RegistrationCount() == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("Expected a registration notice to be sent")
}

func TestListCandidates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewCandidateHandler(db, cfg, mailer.Noop{})

	// Empty registry
	w := httptest.NewRecorder()
	handler.ListCandidates(w, testutil.MakeRequest("GET", "/candidates", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var empty models.CandidateListResponse
	testutil.AssertJSON(t, w, &empty)
	if empty.Count != 0 || len(empty.Candidates) != 0 {
		t.Errorf("Expected empty list, got count %d", empty.Count)
	}

	firstID := testutil.CreateTestCandidate(t, db, "Ogi Simeon", "ogi@example.com", "Chairman")
	secondID := testutil.CreateTestCandidate(t, db, "Shogbola Haruna", "shogbola@example.com", "Treasurer 1")

	w = httptest.NewRecorder()
	handler.ListCandidates(w, testutil.MakeRequest("GET", "/candidates", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CandidateListResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 2 {
		t.Fatalf("Expected count 2, got %d", resp.Count)
	}

	// Newest registration first
	if resp.Candidates[0].ID != secondID || resp.Candidates[1].ID != firstID {
		t.Errorf("Expected newest-first ordering, got %q then %q", resp.Candidates[0].Name, resp.Candidates[1].Name)
	}
}
