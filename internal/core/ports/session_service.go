package ports

import (
	"context"

	"github.com/agriportal/analytics-api/internal/core/domain"
)

// SessionService is the single source of truth for "who is logged in".
// Login and Signup report success as a bare boolean: all failure causes
// collapse to false and the session is left untouched.
type SessionService interface {
	Login(ctx context.Context, email, password string, role domain.Role) bool
	Signup(ctx context.Context, email, password, name string, role domain.Role) bool
	Logout()
	Current() domain.Session
}
