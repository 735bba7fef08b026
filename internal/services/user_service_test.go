package services

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/auth"
	"movie-catalog/internal/config"
	"movie-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) UserService {
	t.Helper()

	db := newTestDB(t)
	tokens := auth.NewTokenManager(config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
	return NewUserService(repository.NewUserRepository(db), tokens, quietLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	// The plaintext never ends up in the stored hash.
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	token, loggedIn, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "a@example.com", "pw")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Register(ctx, "alice", "", "pw")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Register(ctx, "alice", "a@example.com", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "pw")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	// Unknown user and wrong password are indistinguishable.
	_, _, err = svc.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
