// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/iths-alumni/election-server/models"
)

type tallyKey struct {
	candidateID string
	position    string
}

// ComputeTallies derives per-candidate vote counts from both ballot
// schemes and groups the merged records by contested position.
//
// Guarantees:
//   - every registered candidate appears, with voteCount 0 when nobody
//     has voted for them in either scheme
//   - voteCount is exactly legacy count + bulk count
//   - a candidate only accrues votes recorded for their own position
//   - ballots whose candidate id matches no registered candidate are
//     silently excluded
//   - within a position group, candidates keep listing order (creation
//     time descending), not vote-count order
func ComputeTallies(dbConn *sql.DB) (map[string][]models.CandidateTally, error) {
	legacyCounts, bulkCounts, err := countBallots(dbConn)
	if err != nil {
		return nil, err
	}

	candidates, err := loadCandidates(dbConn)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	tallies := make(map[string][]models.CandidateTally, len(models.Positions))
	for _, c := range candidates {
		key := tallyKey{candidateID: c.ID, position: c.Position}
		legacy := legacyCounts[key]
		bulk := bulkCounts[key]

		tallies[c.Position] = append(tallies[c.Position], models.CandidateTally{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Position:  c.Position,
			CreatedAt: c.CreatedAt,
			VoteCount: legacy + bulk,
			Breakdown: models.VoteBreakdown{Legacy: legacy, Bulk: bulk},
		})
	}

	return tallies, nil
}

// countBallots groups ballots by (candidate, position) per scheme in a
// single pass over the ballot table.
func countBallots(dbConn *sql.DB) (legacy, bulk map[tallyKey]int, err error) {
	rows, err := dbConn.Query(`
		SELECT candidate_id, position, scheme, COUNT(*)
		FROM ballot
		GROUP BY candidate_id, position, scheme
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count ballots: %w", err)
	}
	defer rows.Close()

	legacy = make(map[tallyKey]int)
	bulk = make(map[tallyKey]int)
	for rows.Next() {
		var key tallyKey
		var scheme string
		var count int
		if err := rows.Scan(&key.candidateID, &key.position, &scheme, &count); err != nil {
			return nil, nil, fmt.Errorf("failed to scan ballot count: %w", err)
		}
		switch scheme {
		case models.SchemeLegacy:
			legacy[key] = count
		case models.SchemeBulk:
			bulk[key] = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read ballot counts: %w", err)
	}

	return legacy, bulk, nil
}
