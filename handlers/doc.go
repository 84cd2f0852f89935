// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the election API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - CandidateHandler: Candidate listing and registration
  - VotingHandler: Single and bulk vote submission, voting statistics
  - CommitteeHandler: Committee accounts and the gated tally view

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(db, cfg, notifier)

The notifier is the mailer.Notifier used for fire-and-forget email side
effects; handlers never let a mail failure affect a committed result.

# Voting Schemes

Ballots are recorded under one of two schemes:

	POST /votes      → SubmitVote (legacy, one position per request)
	POST /votes/bulk → SubmitBulkVotes (one ballot per position, atomic)

A voter email may hold at most one ballot per position across both
schemes. Both paths pre-check the other scheme and run their inserts in
a transaction; the unique constraint on (voter_email, position) is the
final authority when submissions race.

The bulk path resolves every candidate id against the registry before
inserting anything, and rejects the whole submission if any id is
unknown or names a candidate contesting a different position.

# Tallies

ComputeTallies in tally.go derives per-candidate counts:

	tallies, err := handlers.ComputeTallies(db)

It merges per-scheme ballot counts with the candidate registry, keeps
zero-vote candidates, drops ballots whose candidate id resolves to
nothing, and groups results by position in candidate listing order.
GET /committee/candidates serves it behind the committee session gate.
*/
package handlers
