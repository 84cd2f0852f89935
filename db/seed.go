// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iths-alumni/election-server/models"
)

type seedCandidate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
}

// SeedCandidates loads candidates from a JSON file and inserts any that
// are not already registered. Existing emails are left untouched, so the
// seed file can be re-applied safely. Returns the number of candidates
// inserted.
func SeedCandidates(db *sql.DB, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []seedCandidate
	if err := json.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	inserted := 0
	for _, s := range seeds {
		if s.Name == "" || s.Email == "" || s.Position == "" {
			return inserted, fmt.Errorf("seed entry missing name, email, or position: %+v", s)
		}
		if !models.IsValidPosition(s.Position) {
			return inserted, fmt.Errorf("seed entry has unknown position %q", s.Position)
		}

		res, err := db.Exec(`
			INSERT INTO candidate (id, name, email, position, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO NOTHING
		`, uuid.NewString(), strings.TrimSpace(s.Name), strings.ToLower(strings.TrimSpace(s.Email)), s.Position, time.Now())
		if err != nil {
			return inserted, fmt.Errorf("failed to seed candidate %q: %w", s.Email, err)
		}

		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	return inserted, nil
}
