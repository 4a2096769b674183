package usecase

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
)

func TestLoginIssuesValidToken(t *testing.T) {
	m := NewSessionManager("hunter2", "")

	token, expires, err := m.Login("hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if !m.Validate(token) {
		t.Error("fresh token does not validate")
	}
	wantExpiry := time.Now().Add(SessionTTL)
	if expires.Before(wantExpiry.Add(-time.Minute)) || expires.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expiry %v not ~24h out", expires)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	m := NewSessionManager("hunter2", "")

	token, _, err := m.Login("hunter3")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if token != "" {
		t.Errorf("rejected login returned token %q", token)
	}
	if m.Validate("") {
		t.Error("empty token must never validate")
	}
	if m.Validate("made-up-token") {
		t.Error("unknown token must never validate")
	}
}

func TestLoginEmptySecretAlwaysFails(t *testing.T) {
	m := NewSessionManager("", "")
	if _, _, err := m.Login(""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	m := NewSessionManager("hunter2", "")
	current := time.Now()
	m.now = func() time.Time { return current }

	token, _, err := m.Login("hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	current = current.Add(SessionTTL - time.Minute)
	if !m.Validate(token) {
		t.Error("token expired early")
	}

	current = current.Add(2 * time.Minute)
	if m.Validate(token) {
		t.Error("token validated past expiry")
	}
	// expired sessions are dropped, not resurrected
	if m.Validate(token) {
		t.Error("expired token validated on recheck")
	}
}

func TestBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	m := NewSessionManager("ignored-plain", string(hash))

	if _, _, err := m.Login("s3cret"); err != nil {
		t.Errorf("hashed password rejected: %v", err)
	}
	if _, _, err := m.Login("ignored-plain"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Error("plain secret must be ignored when a hash is configured")
	}
}
