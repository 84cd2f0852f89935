// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid session token")
	ErrInvalidCredentials = errors.New("invalid email or surname")
)

// SessionDuration is how long a committee login remains valid.
const SessionDuration = 24 * time.Hour

// HashSurname hashes a committee member's surname for storage.
// The surname doubles as the login credential, so it is never stored
// in the clear.
func HashSurname(surname string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(surname), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash surname: %w", err)
	}
	return string(hash), nil
}

// CompareSurname checks a provided surname against the stored hash.
// Returns ErrInvalidCredentials on mismatch.
func CompareSurname(hash, surname string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(surname)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NewSessionToken mints a signed committee session token for the member.
func NewSessionToken(memberID, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   memberID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken verifies a session token and returns the member ID
// it was issued to. Expired, malformed, or wrongly-signed tokens all
// fail with ErrInvalidToken.
func ParseSessionToken(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
