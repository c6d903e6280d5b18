package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for locally issued development tokens.
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates self-signed identity tokens used when the
// managed identity provider is not configured.
type TokenService interface {
	// GenerateToken signs a token for the identity and returns it with its expiry.
	GenerateToken(identity Identity) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
