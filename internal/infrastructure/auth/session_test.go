package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Issue(&domain.User{ID: 7, Email: "a@b.id", Name: "Harri"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	session, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if session.ID != 7 {
		t.Errorf("expected user id 7, got %d", session.ID)
	}
	if session.Email != "a@b.id" {
		t.Errorf("expected email a@b.id, got %s", session.Email)
	}
	if session.Name != "Harri" {
		t.Errorf("expected name Harri, got %s", session.Name)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)

	token, err := m.Issue(&domain.User{ID: 1, Email: "a@b.id"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = m.Verify(token)
	if !errors.Is(err, domain.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-one", time.Hour)
	verifier := NewSessionManager("secret-two", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: 1, Email: "a@b.id"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	if _, err := m.Verify("not.a.token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
