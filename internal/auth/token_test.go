package auth

import (
	"errors"
	"testing"
	"time"

	"example.com/fitlife/internal/session"
)

func testSession() session.Session {
	now := time.Now().UTC()
	return session.Session{
		ID:        "sess-1",
		UserID:    42,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestIssueAndParseToken(t *testing.T) {
	cfg := Config{Secret: "test-secret", Issuer: "fitlife-test"}
	sess := testSession()

	token, err := IssueToken(cfg, sess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := ParseToken(token, cfg)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.SessionID != sess.ID {
		t.Fatalf("expected session id %s, got %s", sess.ID, claims.SessionID)
	}
	if claims.UserID != sess.UserID {
		t.Fatalf("expected user id %d, got %d", sess.UserID, claims.UserID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := Config{Secret: "test-secret", Issuer: "fitlife-test"}
	token, err := IssueToken(cfg, testSession())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = ParseToken(token, Config{Secret: "other-secret", Issuer: "fitlife-test"})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	cfg := Config{Secret: "test-secret", Issuer: "fitlife-test"}
	token, err := IssueToken(cfg, testSession())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = ParseToken(token, Config{Secret: "test-secret", Issuer: "someone-else"})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenEmpty(t *testing.T) {
	_, err := ParseToken("", Config{Secret: "test-secret", Issuer: "fitlife-test"})
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
