package config

import (
	"fmt"
	"time"
)

// AuthConfig holds admin authentication configuration.
type AuthConfig struct {
	// JWTSecret signs session tokens. Must be set in production.
	JWTSecret string
	// TokenTTL is the session token validity window.
	TokenTTL time.Duration
	// AdminUsername and AdminPassword seed the initial admin principal
	// at startup when both are set. An existing principal is never
	// overwritten.
	AdminUsername string
	AdminPassword string
}

// LoadAuthConfigFromEnv loads authentication configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:     GetEnv("JWT_SECRET", ""),
		TokenTTL:      GetEnvDuration("SESSION_TOKEN_TTL", 8*time.Hour),
		AdminUsername: GetEnv("ADMIN_USERNAME", ""),
		AdminPassword: GetEnv("ADMIN_PASSWORD", ""),
	}
}

// Validate validates authentication configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	if c.AdminUsername != "" && c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set when ADMIN_USERNAME is set")
	}
	return nil
}
