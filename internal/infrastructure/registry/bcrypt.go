package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agriportal/analytics-api/internal/core/domain"
)

type hashedRecord struct {
	hash []byte
	user domain.User
}

// Bcrypt is a CredentialRegistry that never holds plaintext passwords. Seed
// passwords are hashed at construction; lookups still match the full
// (email, password, role) triple, so it is a drop-in replacement for Memory.
type Bcrypt struct {
	mu      sync.RWMutex
	byEmail map[string]hashedRecord
}

// NewBcrypt creates a hashed registry from the given seed credentials.
func NewBcrypt(seed []SeedCredential) (*Bcrypt, error) {
	b := &Bcrypt{byEmail: make(map[string]hashedRecord, len(seed))}
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed credential %s: %w", s.Email, err)
		}
		b.byEmail[s.Email] = hashedRecord{
			hash: hash,
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
	return b, nil
}

func (b *Bcrypt) Resolve(_ context.Context, email, password string, role domain.Role) (*domain.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rec, ok := b.byEmail[email]
	if !ok || rec.user.Role != role {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(rec.hash, []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := rec.user
	return &user, nil
}

func (b *Bcrypt) Register(_ context.Context, email, password, name string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.byEmail[email]; exists {
		return nil, domain.ErrUserExists
	}

	user := domain.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Role:     role,
		Verified: false,
	}
	b.byEmail[email] = hashedRecord{hash: hash, user: user}

	out := user
	return &out, nil
}
