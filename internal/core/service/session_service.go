package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agriportal/analytics-api/internal/core/domain"
	"github.com/agriportal/analytics-api/internal/core/ports"
)

// SessionService owns the process-wide session and the three transitions on
// it: login, signup, logout. The session is replaced as a whole on every
// successful transition, so readers always observe a consistent pair of
// (user, is_authenticated).
type SessionService struct {
	registry ports.CredentialRegistry
	latency  time.Duration
	logger   zerolog.Logger

	mu      sync.RWMutex
	session domain.Session
}

// NewSessionService creates a SessionService starting in the anonymous
// state. latency simulates the round-trip of a real identity provider on
// Login and Signup; pass 0 to resolve synchronously (tests).
func NewSessionService(registry ports.CredentialRegistry, latency time.Duration, logger zerolog.Logger) *SessionService {
	if latency < 0 {
		latency = 0
	}
	return &SessionService{
		registry: registry,
		latency:  latency,
		logger:   logger,
		session:  domain.Anonymous(),
	}
}

// Login resolves the credential triple against the registry. On a match the
// session is replaced with the matched identity and true is returned. On any
// mismatch the session is left untouched and false is returned; the caller
// cannot tell which field was wrong.
func (s *SessionService) Login(ctx context.Context, email, password string, role domain.Role) bool {
	s.simulateRoundTrip()

	user, err := s.registry.Resolve(ctx, email, password, role)
	if err != nil {
		s.logger.Debug().Str("email", email).Str("role", string(role)).Msg("login rejected")
		return false
	}

	s.replace(domain.Authenticated(user))
	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("login succeeded")
	return true
}

// Signup registers a fresh credential record and signs the new identity in.
// A duplicate email, whatever its role, fails with false and leaves the
// session untouched.
func (s *SessionService) Signup(ctx context.Context, email, password, name string, role domain.Role) bool {
	s.simulateRoundTrip()

	user, err := s.registry.Register(ctx, email, password, name, role)
	if err != nil {
		s.logger.Debug().Str("email", email).Err(err).Msg("signup rejected")
		return false
	}

	s.replace(domain.Authenticated(user))
	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("signup succeeded")
	return true
}

// Logout unconditionally resets the session to anonymous. Idempotent.
func (s *SessionService) Logout() {
	s.replace(domain.Anonymous())
	s.logger.Info().Msg("logged out")
}

// Current returns a snapshot of the session. Callers that take more than one
// authorization decision must take them from a single snapshot.
func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *SessionService) replace(next domain.Session) {
	s.mu.Lock()
	s.session = next
	s.mu.Unlock()
}

// simulateRoundTrip blocks for the configured latency. Once a login or
// signup is invoked it always resolves; there is no cancellation or timeout.
func (s *SessionService) simulateRoundTrip() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
