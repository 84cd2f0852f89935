// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    position TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_candidate_position ON candidate(position);
CREATE INDEX IF NOT EXISTS idx_candidate_created_at ON candidate(created_at DESC);

-- Ballots, both schemes in one table.
-- The unique constraint spans both scheme values: one ballot per
-- (voter_email, position) across the whole election, regardless of
-- which scheme recorded it.
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    voter_name TEXT NOT NULL,
    voter_email TEXT NOT NULL,
    position TEXT NOT NULL,
    candidate_id TEXT NOT NULL,
    candidate_name TEXT,
    scheme TEXT NOT NULL CHECK (scheme IN ('legacy', 'bulk')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (voter_email, position)
);

CREATE INDEX IF NOT EXISTS idx_ballot_voter_email ON ballot(voter_email);
CREATE INDEX IF NOT EXISTS idx_ballot_candidate ON ballot(candidate_id, position);
CREATE INDEX IF NOT EXISTS idx_ballot_scheme ON ballot(scheme);

-- Committee accounts
CREATE TABLE IF NOT EXISTS committee_member (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    surname_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`
