package usecase

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
)

// SessionTTL is the fixed lifetime of an admin session. There is no
// server-side revocation: a token stays valid until it expires, even after
// the client logs out.
const SessionTTL = 24 * time.Hour

// SessionManager issues and validates opaque admin session tokens. The
// session table lives in process memory; a restart logs everyone out.
type SessionManager struct {
	password     string
	passwordHash []byte

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry

	now func() time.Time
}

// NewSessionManager configures the auth gate. When hash is non-empty it
// takes precedence and password is checked with bcrypt; otherwise the
// plain secret is compared in constant time.
func NewSessionManager(password, hash string) *SessionManager {
	return &SessionManager{
		password:     password,
		passwordHash: []byte(hash),
		sessions:     make(map[string]time.Time),
		now:          time.Now,
	}
}

// Login checks the supplied password and mints a session token. Mismatches
// return domain.ErrInvalidCredentials and nothing else; there is only one
// user, but the error still stays generic.
func (m *SessionManager) Login(password string) (token string, expires time.Time, err error) {
	if !m.check(password) {
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	token = hex.EncodeToString(buf)
	expires = m.now().Add(SessionTTL)

	m.mu.Lock()
	m.prune()
	m.sessions[token] = expires
	m.mu.Unlock()

	return token, expires, nil
}

// Validate reports whether token belongs to an unexpired session.
func (m *SessionManager) Validate(token string) bool {
	if token == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.sessions[token]
	if !ok {
		return false
	}
	if m.now().After(expiry) {
		delete(m.sessions, token)
		return false
	}
	return true
}

func (m *SessionManager) check(password string) bool {
	if len(m.passwordHash) > 0 {
		return bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)) == nil
	}
	if m.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
}

// prune drops expired sessions. Caller holds the lock.
func (m *SessionManager) prune() {
	now := m.now()
	for t, exp := range m.sessions {
		if now.After(exp) {
			delete(m.sessions, t)
		}
	}
}
