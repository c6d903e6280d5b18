// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"farmdesk/config"
	"farmdesk/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	defaultTokenTTL = 12 * time.Hour
	tokenIssuer     = "farmdesk-dev"
)

// JWTService signs and checks HS256 identity tokens for local development.
// It serves as both the TokenService and an IdentityVerifier.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for JWTService.
func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.DevTokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &JWTService{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken signs a token asserting the given identity.
func (s *JWTService) GenerateToken(identity service.Identity) (string, time.Time, error) {
	if identity.UID == "" {
		return "", time.Time{}, errors.New("uid is required")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &service.Claims{
		UID:   identity.UID,
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks the signature, algorithm and expiry of a token.
func (s *JWTService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid || claims.UID == "" {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// Verify implements service.IdentityVerifier.
func (s *JWTService) Verify(_ context.Context, token string) (*service.Identity, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidIdentityToken, err.Error())
	}

	return &service.Identity{
		UID:   claims.UID,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
