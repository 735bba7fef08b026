package auth

import (
	"testing"
	"time"

	"movie-catalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(secret string, ttl time.Duration) *TokenManager {
	return NewTokenManager(config.AuthConfig{JWTSecret: secret, TokenTTL: ttl})
}

func TestTokenRoundTrip(t *testing.T) {
	m := newManager("test-secret", time.Hour)

	token, err := m.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := newManager("secret-a", time.Hour).Generate(42)
	require.NoError(t, err)

	_, err = newManager("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	m := newManager("test-secret", -time.Minute)

	token, err := m.Generate(42)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	m := newManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}
