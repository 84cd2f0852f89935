// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mailer sends transactional email for the election.

# Notifier

Handlers depend on the Notifier interface, injected at startup, never
on a package-level client. All sends are best-effort: handlers dispatch
them in goroutines after the database commit and only log failures.

	notifier.SendVoteConfirmation(ctx, name, email, votes)
	notifier.SendCommitteeNotification(ctx, name, email, positions)
	notifier.SendRegistrationNotice(ctx, candidate)

# Implementations

Brevo posts to the Brevo transactional API (api.brevo.com/v3/smtp/email)
with the api-key header. Its URL and HTTP client are overridable for
tests.

Noop discards everything; main falls back to it when BREVO_API_KEY is
not configured, and tests use it or testutil.RecordingNotifier.
*/
package mailer
