// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iths-alumni/election-server/models"
)

const defaultBrevoURL = "https://api.brevo.com/v3/smtp/email"

// Brevo sends transactional email through the Brevo SMTP API.
type Brevo struct {
	APIKey          string
	SenderEmail     string
	SenderName      string
	CommitteeEmails []string

	// URL overrides the API endpoint; empty means production.
	URL string

	// Client overrides the HTTP client; nil means a 10s-timeout default.
	Client *http.Client
}

type brevoAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoEmail struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

func (b *Brevo) send(ctx context.Context, msg brevoEmail) error {
	if b.APIKey == "" {
		return errors.New("brevo API key not configured")
	}
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	url := b.URL
	if url == "" {
		url = defaultBrevoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", b.APIKey)

	client := b.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode, detail)
	}

	return nil
}

func (b *Brevo) sender() brevoAddress {
	return brevoAddress{Email: b.SenderEmail, Name: b.SenderName}
}

func (b *Brevo) committeeRecipients() []brevoAddress {
	var to []brevoAddress
	for _, email := range b.CommitteeEmails {
		to = append(to, brevoAddress{Email: email})
	}
	return to
}

// SendVoteConfirmation emails a voter a summary of their recorded votes.
func (b *Brevo) SendVoteConfirmation(ctx context.Context, voterName, voterEmail string, votes []VoteSummary) error {
	var rows strings.Builder
	for _, v := range votes {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td></tr>",
			html.EscapeString(v.Position), html.EscapeString(v.CandidateName))
	}

	content := fmt.Sprintf(`<html><body>
<h1>Vote Submitted Successfully</h1>
<p>Dear <strong>%s</strong>,</p>
<p>Your vote has been recorded. Here's a summary of your votes:</p>
<table border="1" cellpadding="8">
<thead><tr><th>Position</th><th>Candidate Voted For</th></tr></thead>
<tbody>%s</tbody>
</table>
<p><strong>Total positions voted:</strong> %d</p>
<p><strong>Voter email:</strong> %s</p>
<p><em>This is an automated confirmation. Please do not reply.</em></p>
</body></html>`,
		html.EscapeString(voterName), rows.String(), len(votes), html.EscapeString(voterEmail))

	return b.send(ctx, brevoEmail{
		Sender:      b.sender(),
		To:          []brevoAddress{{Email: voterEmail, Name: voterName}},
		Subject:     "Vote Confirmation - ITHS 2011 Alumni Election",
		HTMLContent: content,
	})
}

// SendCommitteeNotification tells the committee a ballot came in.
func (b *Brevo) SendCommitteeNotification(ctx context.Context, voterName, voterEmail string, positions []string) error {
	to := b.committeeRecipients()
	if len(to) == 0 {
		return errors.New("no committee emails configured")
	}

	var items strings.Builder
	for _, p := range positions {
		fmt.Fprintf(&items, "<li>%s</li>", html.EscapeString(p))
	}

	content := fmt.Sprintf(`<html><body>
<h1>New Votes Submitted</h1>
<p><strong>Voter name:</strong> %s</p>
<p><strong>Voter email:</strong> %s</p>
<p><strong>Total votes:</strong> %d</p>
<p><strong>Positions voted:</strong></p>
<ul>%s</ul>
</body></html>`,
		html.EscapeString(voterName), html.EscapeString(voterEmail), len(positions), items.String())

	return b.send(ctx, brevoEmail{
		Sender:      b.sender(),
		To:          to,
		Subject:     fmt.Sprintf("New Votes Submitted - %s", voterName),
		HTMLContent: content,
	})
}

// SendRegistrationNotice tells the committee a candidate registered.
func (b *Brevo) SendRegistrationNotice(ctx context.Context, candidate models.Candidate) error {
	to := b.committeeRecipients()
	if len(to) == 0 {
		return errors.New("no committee emails configured")
	}

	content := fmt.Sprintf(`<html><body>
<h1>New Candidate Registration</h1>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Position:</strong> %s</p>
</body></html>`,
		html.EscapeString(candidate.Name), html.EscapeString(candidate.Email), html.EscapeString(candidate.Position))

	return b.send(ctx, brevoEmail{
		Sender:      b.sender(),
		To:          to,
		Subject:     fmt.Sprintf("New Candidate Registration - %s", candidate.Position),
		HTMLContent: content,
	})
}
