package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreGetOrCreateKeepsFirstName(t *testing.T) {
	genres := NewGenreRepository(newTestDB(t))
	ctx := context.Background()

	first, err := genres.GetOrCreate(ctx, 28, "Action")
	require.NoError(t, err)
	assert.Equal(t, "Action", first.Name)

	// The stored name survives later spellings.
	second, err := genres.GetOrCreate(ctx, 28, "Azione")
	require.NoError(t, err)
	assert.Equal(t, "Action", second.Name)
}

func TestGenreFindAll(t *testing.T) {
	genres := NewGenreRepository(newTestDB(t))
	ctx := context.Background()

	_, err := genres.GetOrCreate(ctx, 28, "Action")
	require.NoError(t, err)
	_, err = genres.GetOrCreate(ctx, 35, "Comedy")
	require.NoError(t, err)

	all, err := genres.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPersonGetOrCreateKeepsFirstName(t *testing.T) {
	people := NewPersonRepository(newTestDB(t))
	ctx := context.Background()

	actor, err := people.GetOrCreateActor(ctx, 819, "Edward Norton", "/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Edward Norton", actor.Name)

	again, err := people.GetOrCreateActor(ctx, 819, "Ed Norton", "/other.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Edward Norton", again.Name)
	assert.Equal(t, "/p.jpg", again.ProfilePath)

	director, err := people.GetOrCreateDirector(ctx, 7467, "David Fincher", "")
	require.NoError(t, err)
	assert.Equal(t, "David Fincher", director.Name)
}
