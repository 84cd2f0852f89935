// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides committee credential hashing and session tokens.

# Surname Hashing

The committee login credential is the member's surname, stored only as
a bcrypt hash:

	hash, err := auth.HashSurname(surname)
	err = auth.CompareSurname(hash, provided)

CompareSurname returns ErrInvalidCredentials on mismatch so handlers
can answer unknown-email and wrong-surname identically.

# Session Tokens

Sessions are HS256-signed JWTs carrying the member ID as the subject,
valid for SessionDuration (24 hours):

	token, err := auth.NewSessionToken(memberID, secret)
	memberID, err := auth.ParseSessionToken(token, secret)

ParseSessionToken rejects expired, malformed, or wrongly-signed tokens
with ErrInvalidToken; it also pins the HMAC signing method so a token
claiming a different algorithm never verifies.
*/
package auth
