package ports

import (
	"context"

	"github.com/agriportal/analytics-api/internal/core/domain"
)

// CredentialRegistry resolves and records login credentials. The demo
// fixture is an in-memory implementation; a hashed store or an external
// identity provider can be substituted without touching the session store
// or the access gate.
type CredentialRegistry interface {
	// Resolve returns the identity bound to the (email, password, role)
	// triple. Every mismatch — unknown email, wrong password, wrong role —
	// collapses to domain.ErrInvalidCredentials so the caller cannot tell
	// which field was wrong.
	Resolve(ctx context.Context, email, password string, role domain.Role) (*domain.User, error)

	// Register appends a new credential record and returns the created
	// identity. Fails with domain.ErrUserExists when the email is already
	// registered, regardless of role.
	Register(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, error)
}
