package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the bearer credential for the active register session. It is
// created empty, begun on login and ended on logout; boundary calls read the
// token from here instead of from ambient storage. The register is driven by
// a single actor, so there is no locking.
type Session struct {
	token     string
	username  string
	expiresAt time.Time
}

func New() *Session {
	return &Session{}
}

// Begin installs the credential returned by a successful login. The token's
// expiry is read from its unverified claims; verification is the server's
// job, the client only needs to know when to prompt for a fresh login.
func (s *Session) Begin(token, username string) {
	s.token = token
	s.username = username
	s.expiresAt = time.Time{}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.ExpiresAt != nil {
		s.expiresAt = claims.ExpiresAt.Time
	}
}

// End tears the session down.
func (s *Session) End() {
	s.token = ""
	s.username = ""
	s.expiresAt = time.Time{}
}

// Token returns the bearer credential, empty when logged out.
func (s *Session) Token() string {
	return s.token
}

func (s *Session) Username() string {
	return s.username
}

// Active reports whether a login has been performed and not torn down.
func (s *Session) Active() bool {
	return s.token != ""
}

// Expired reports whether the token's lifetime has passed. Tokens whose
// expiry could not be read never report expired here; the server still
// rejects them.
func (s *Session) Expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && now.After(s.expiresAt)
}

// ExpiresAt returns the token expiry, zero when unknown.
func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}
