package auth

import (
	"context"
	"testing"
	"time"

	"farmdesk/config"
	"farmdesk/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *JWTService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		Provider:    "jwt",
		JWTSecret:   secret,
		DevTokenTTL: time.Hour,
	}})
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)

	_, err = NewJWTService(&config.Config{Auth: &config.AuthConfig{Provider: "jwt"}})
	require.Error(t, err)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")

	token, expiresAt, err := svc.GenerateToken(service.Identity{UID: "uid-1", Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	identity, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &service.Identity{UID: "uid-1", Email: "ana@example.com", Name: "Ana"}, identity)
}

func TestJWTService_GenerateRequiresUID(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")
	_, _, err := svc.GenerateToken(service.Identity{Email: "ana@example.com"})
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")
	other := newTestJWTService(t, "another_secret_key_very_long_for_testing")

	foreign, _, err := other.GenerateToken(service.Identity{UID: "uid-1"})
	require.NoError(t, err)

	expiredSvc := newTestJWTService(t, "test_secret_key_very_long_for_testing")
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredSvc.GenerateToken(service.Identity{UID: "uid-1"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		UID:              "uid-1",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "none algorithm", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			identity, err := svc.Verify(context.Background(), tt.token)
			require.ErrorIs(t, err, service.ErrInvalidIdentityToken)
			assert.Nil(t, identity)
		})
	}
}
