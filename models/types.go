// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Ballot scheme constants
const (
	SchemeLegacy = "legacy"
	SchemeBulk   = "bulk"
)

// Positions is the closed set of contestable roles, in ballot order.
var Positions = []string{
	"Chairman",
	"Vice-Chairman",
	"Treasurer 1",
	"Treasurer 2",
	"Welfare 1",
	"Welfare 2",
	"Secretary 1",
	"Secretary 2",
	"PRO 1",
	"PRO 2",
	"Social Director 1",
	"Social Director 2",
}

var validPositions = func() map[string]bool {
	m := make(map[string]bool, len(Positions))
	for _, p := range Positions {
		m[p] = true
	}
	return m
}()

// IsValidPosition reports whether p is one of the contested positions.
func IsValidPosition(p string) bool {
	return validPositions[p]
}

// Request types

type RegisterCandidateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
}

type SubmitVoteRequest struct {
	VoterName   string `json:"voterName"`
	VoterEmail  string `json:"voterEmail"`
	Position    string `json:"position"`
	CandidateID string `json:"candidateId"`
}

type BulkVoteEntry struct {
	Position    string `json:"position"`
	CandidateID string `json:"candidateId"`
}

type SubmitBulkVotesRequest struct {
	VoterName  string          `json:"voterName"`
	VoterEmail string          `json:"voterEmail"`
	Votes      []BulkVoteEntry `json:"votes"`
}

type CommitteeSignupRequest struct {
	Email   string `json:"email"`
	Surname string `json:"surname"`
}

type CommitteeLoginRequest struct {
	Email   string `json:"email"`
	Surname string `json:"surname"`
}

// Response types

type CandidateListResponse struct {
	Count      int         `json:"count"`
	Candidates []Candidate `json:"data"`
}

type RegisterCandidateResponse struct {
	Message   string    `json:"msg"`
	Candidate Candidate `json:"data"`
}

type SubmitVoteResponse struct {
	Message   string `json:"msg"`
	ID        string `json:"id"`
	VoterName string `json:"voterName"`
	Position  string `json:"position"`
}

type SubmitBulkVotesResponse struct {
	Message        string   `json:"msg"`
	VoterName      string   `json:"voterName"`
	PositionsVoted []string `json:"positionsVoted"`
	Scheme         string   `json:"scheme"`
}

type SchemeStats struct {
	Votes  int `json:"votes"`
	Voters int `json:"voters"`
}

type CombinedStats struct {
	TotalVotes  int `json:"totalVotes"`
	TotalVoters int `json:"totalVoters"`
}

type VoteStatsResponse struct {
	Legacy   SchemeStats   `json:"legacy"`
	Bulk     SchemeStats   `json:"bulk"`
	Combined CombinedStats `json:"combined"`
}

type CommitteeSignupResponse struct {
	Message string `json:"msg"`
}

type CommitteeUser struct {
	Email string `json:"email"`
}

type CommitteeLoginResponse struct {
	Message string        `json:"msg"`
	Token   string        `json:"token"`
	User    CommitteeUser `json:"user"`
}

type CommitteeCandidatesResponse struct {
	Tallies map[string][]CandidateTally `json:"data"`
}

// Domain types

type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

type Ballot struct {
	ID            string    `json:"id"`
	VoterName     string    `json:"voterName"`
	VoterEmail    string    `json:"-"` // Never expose in JSON
	Position      string    `json:"position"`
	CandidateID   string    `json:"candidateId"`
	CandidateName *string   `json:"candidateName,omitempty"` // Snapshot at cast time, bulk scheme only
	Scheme        string    `json:"scheme"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CommitteeMember struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	SurnameHash string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"createdAt"`
}

// Tally types

type VoteBreakdown struct {
	Legacy int `json:"legacy"`
	Bulk   int `json:"bulk"`
}

// CandidateTally is a candidate merged with its derived vote counts.
// Recomputed on every read, never stored.
type CandidateTally struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Position  string        `json:"position"`
	CreatedAt time.Time     `json:"createdAt"`
	VoteCount int           `json:"voteCount"`
	Breakdown VoteBreakdown `json:"breakdown"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
