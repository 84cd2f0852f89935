// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the election API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, notifier)

# Endpoints

Health:

	GET /health

Candidate registry (public):

	GET  /candidates          - List candidates
	POST /candidates/register - Register a candidate

Voting (public):

	POST /votes       - Single vote (legacy scheme)
	POST /votes/bulk  - Bulk votes (atomic, one per position)
	GET  /votes/stats - Per-scheme and combined counts

Committee (session required for reads):

	POST /committee/signup     - Create committee account
	POST /committee/login      - Get session token
	GET  /committee/candidates - Tallies by position (Bearer token)

Unmatched paths get a JSON 404; GET / returns API info.

# Handler Initialization

The router creates handler instances with dependency injection:

	candidateHandler := handlers.NewCandidateHandler(db, cfg, notifier)
	votingHandler := handlers.NewVotingHandler(db, cfg, notifier)
	committeeHandler := handlers.NewCommitteeHandler(db, cfg)
*/
package router
