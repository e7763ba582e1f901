package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend names for the credential registry.
const (
	BackendMemory = "memory"
	BackendBcrypt = "bcrypt"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AuthLatency simulates the identity-provider round trip on login and
	// signup. Set to 0 to resolve immediately.
	AuthLatency time.Duration `env:"AUTH_LATENCY, default=1s"`

	// CredentialBackend selects the registry implementation: "memory"
	// (plain demo fixture) or "bcrypt" (hashed storage).
	CredentialBackend string `env:"CREDENTIAL_BACKEND, default=memory"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	switch cfg.CredentialBackend {
	case BackendMemory, BackendBcrypt:
	default:
		return nil, fmt.Errorf("unknown credential backend %q", cfg.CredentialBackend)
	}

	return &cfg, nil
}
