// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"context"

	"github.com/iths-alumni/election-server/models"
)

// VoteSummary is one line of a voter's confirmation email.
type VoteSummary struct {
	Position      string
	CandidateName string
}

// Notifier dispatches transactional email. Implementations must return
// failures as errors rather than panicking; callers treat every send as
// best-effort and never let a failure reach the voter.
type Notifier interface {
	// SendVoteConfirmation emails a voter a summary of their recorded votes.
	SendVoteConfirmation(ctx context.Context, voterName, voterEmail string, votes []VoteSummary) error

	// SendCommitteeNotification tells the committee a ballot came in.
	SendCommitteeNotification(ctx context.Context, voterName, voterEmail string, positions []string) error

	// SendRegistrationNotice tells the committee a candidate registered.
	SendRegistrationNotice(ctx context.Context, candidate models.Candidate) error
}

// Noop is a Notifier that silently discards all mail. Used when no API
// key is configured and in tests.
type Noop struct{}

func (Noop) SendVoteConfirmation(context.Context, string, string, []VoteSummary) error {
	return nil
}

func (Noop) SendCommitteeNotification(context.Context, string, string, []string) error {
	return nil
}

func (Noop) SendRegistrationNotice(context.Context, models.Candidate) error {
	return nil
}
