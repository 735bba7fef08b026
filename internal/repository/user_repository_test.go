package repository

import (
	"context"
	"testing"

	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndFind(t *testing.T) {
	users := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, user))
	require.NotZero(t, user.ID)

	byID, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestUserFindMissing(t *testing.T) {
	users := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := users.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
