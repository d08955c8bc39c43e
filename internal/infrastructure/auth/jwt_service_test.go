package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

func newTestJWTService() domain.TokenService {
	return NewJWTService("test-secret-key-for-unit-tests", "rentalsvc", 15*time.Minute, 7*24*time.Hour)
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateAccessToken(42, domain.RoleOwner, "sess-abc")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, domain.RoleOwner, claims.Role)
	assert.Equal(t, "sess-abc", claims.SessionID)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestJWTExpired(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-unit-tests", "rentalsvc", -time.Minute, -time.Minute)

	token, err := svc.GenerateAccessToken(42, domain.RoleUser, "sess-abc")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService("a-different-secret", "rentalsvc", 15*time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken(42, domain.RoleUser, "sess-abc")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTGarbage(t *testing.T) {
	svc := newTestJWTService()
	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
