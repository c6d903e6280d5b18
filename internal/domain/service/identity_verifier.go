// Package service defines interfaces for core, stateless domain logic and the
// external collaborators the use cases talk to.
package service

import (
	"context"
	"errors"
)

// ErrInvalidIdentityToken is returned when a bearer token cannot be verified.
var ErrInvalidIdentityToken = errors.New("invalid identity token")

// Identity is the caller as asserted by the identity provider.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// IdentityVerifier checks a bearer token issued by the identity provider.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
