// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterCandidateRequest: name, email, position
  - SubmitVoteRequest: voterName, voterEmail, position, candidateId
  - SubmitBulkVotesRequest: voterName, voterEmail, votes
  - CommitteeSignupRequest / CommitteeLoginRequest: email, surname

# Response Types

Types for JSON responses:

  - CandidateListResponse: count, data
  - RegisterCandidateResponse: msg, data
  - SubmitVoteResponse: msg, id, voterName, position
  - SubmitBulkVotesResponse: msg, voterName, positionsVoted, scheme
  - VoteStatsResponse: legacy, bulk, combined
  - CommitteeLoginResponse: msg, token, user
  - CommitteeCandidatesResponse: data (tallies grouped by position)
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Candidate: registered candidate, immutable after creation
  - Ballot: one recorded (voter, position, candidate) choice
  - CommitteeMember: committee account with hashed surname
  - CandidateTally: candidate merged with derived vote counts

# Positions

Positions is the closed enumeration of contestable roles (Chairman
through Social Director 2). Candidates and ballots must reference it;
IsValidPosition checks membership.

# Schemes

Ballot recording schemes:

	SchemeLegacy = "legacy"
	SchemeBulk   = "bulk"
*/
package models
