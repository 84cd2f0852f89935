// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and candidate seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - candidate: Registered candidates, one per email
  - ballot: Cast votes from both schemes, discriminated by the scheme
    column
  - committee_member: Committee accounts with hashed surnames

# Vote Integrity

The ballot table carries UNIQUE (voter_email, position) spanning both
scheme values. Application code pre-checks for duplicates so rejections
can name the scheme and positions involved, but this constraint is the
final authority when submissions race.

# Seeding

SeedCandidates loads a JSON array of {name, email, position} records:

	inserted, err := db.SeedCandidates(conn, "candidates.json")

Inserts use ON CONFLICT (email) DO NOTHING, so re-applying a seed file
is safe.

# Error Classification

IsUniqueViolation recognizes Postgres SQLSTATE 23505 so handlers can
report a constraint-caught duplicate as a duplicate vote rather than a
generic server error.
*/
package db
