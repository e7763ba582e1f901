// Package registry provides CredentialRegistry implementations. Memory is
// the demo fixture with plain exact-match passwords; Bcrypt stores hashes
// and stands in for a real credential store behind the same interface.
package registry

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agriportal/analytics-api/internal/core/domain"
)

// SeedCredential is a pre-registered login triple plus its identity fields.
type SeedCredential struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     domain.Role
	Location string
	Verified bool
}

// DemoSeed returns the three fixed demo accounts, one per role. The demo
// access buttons on the landing screen depend on these exact triples.
func DemoSeed() []SeedCredential {
	return []SeedCredential{
		{ID: "1", Email: "farmer@demo.com", Password: "demo123", Name: "Raj Patel", Role: domain.RoleFarmer, Location: "Punjab, India", Verified: true},
		{ID: "2", Email: "gov@demo.com", Password: "demo123", Name: "Dr. Anita Sharma", Role: domain.RoleGovernment, Location: "New Delhi, India", Verified: true},
		{ID: "3", Email: "business@demo.com", Password: "demo123", Name: "Vikram Industries", Role: domain.RoleBusiness, Location: "Mumbai, India", Verified: true},
	}
}

type record struct {
	password string
	user     domain.User
}

// Memory is the in-memory credential registry. Records are append-only and
// emails are unique across the registry.
type Memory struct {
	mu      sync.RWMutex
	byEmail map[string]record
}

// NewMemory creates a registry pre-loaded with the given seed credentials.
func NewMemory(seed []SeedCredential) *Memory {
	m := &Memory{byEmail: make(map[string]record, len(seed))}
	for _, s := range seed {
		m.byEmail[s.Email] = record{
			password: s.Password,
			user: domain.User{
				ID:       s.ID,
				Email:    s.Email,
				Name:     s.Name,
				Role:     s.Role,
				Location: s.Location,
				Verified: s.Verified,
			},
		}
	}
	return m
}

// Resolve matches all three fields exactly (case-sensitive). Unknown email,
// wrong password and wrong role are indistinguishable to the caller.
func (m *Memory) Resolve(_ context.Context, email, password string, role domain.Role) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byEmail[email]
	if !ok || rec.password != password || rec.user.Role != role {
		return nil, domain.ErrInvalidCredentials
	}

	user := rec.user
	return &user, nil
}

// Register appends a new credential record. The email must be unused,
// whatever role it was previously registered under.
func (m *Memory) Register(_ context.Context, email, password, name string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[email]; exists {
		return nil, domain.ErrUserExists
	}

	user := domain.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Role:     role,
		Verified: false,
	}
	m.byEmail[email] = record{password: password, user: user}

	out := user
	return &out, nil
}
