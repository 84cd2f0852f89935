// Copyright (c) 2026 ITHS 2011 Alumni Association.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestHashAndCompareSurname(t *testing.T) {
	hash, err := HashSurname("Adeyemi")
	if err != nil {
		t.Fatalf("HashSurname failed: %v", err)
	}
	if hash == "Adeyemi" {
		t.Error("Expected surname to be hashed, got plaintext")
	}

	if err := CompareSurname(hash, "Adeyemi"); err != nil {
		t.Errorf("Expected matching surname to verify, got %v", err)
	}
	if err := CompareSurname(hash, "Wrong"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := NewSessionToken("member-123", "test-secret")
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	memberID, err := ParseSessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseSessionToken failed: %v", err)
	}
	if memberID != "member-123" {
		t.Errorf("Expected member-123, got %q", memberID)
	}
}

func TestParseSessionTokenRejects(t *testing.T) {
	goodToken, err := NewSessionToken("member-123", "test-secret")
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	// Expired token, signed with the right secret
	past := time.Now().Add(-2 * SessionDuration)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "member-123",
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(SessionDuration)),
	})
	expiredString, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign expired token: %v", err)
	}

	// Token with no subject
	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionDuration)),
	})
	noSubjectString, err := noSubject.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign subjectless token: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", goodToken, "other-secret"},
		{"garbage token", "not.a.token", "test-secret"},
		{"empty token", "", "test-secret"},
		{"expired token", expiredString, "test-secret"},
		{"missing subject", noSubjectString, "test-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tt.token, tt.secret); err != ErrInvalidToken {
				t.Errorf("Expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
