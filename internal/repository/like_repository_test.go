package repository

import (
	"context"
	"testing"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, db *database.Database, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLikeMovieRoundTrip(t *testing.T) {
	db := newTestDB(t)
	likes := NewLikeRepository(db)
	movies := NewMovieRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	movie, err := movies.GetOrCreate(ctx, 550, models.Movie{Title: "Fight Club"})
	require.NoError(t, err)

	require.NoError(t, likes.LikeMovie(ctx, user.ID, movie))

	liked, err := likes.LikedMovies(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, int64(550), liked[0].ID)

	require.NoError(t, likes.UnlikeMovie(ctx, user.ID, 550))

	liked, err = likes.LikedMovies(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestLikeMovieTwiceIsDuplicate(t *testing.T) {
	db := newTestDB(t)
	likes := NewLikeRepository(db)
	movies := NewMovieRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	movie, err := movies.GetOrCreate(ctx, 550, models.Movie{})
	require.NoError(t, err)

	require.NoError(t, likes.LikeMovie(ctx, user.ID, movie))
	assert.ErrorIs(t, likes.LikeMovie(ctx, user.ID, movie), ErrDuplicate)
}

func TestUnlikeAbsentMovieIsNotFound(t *testing.T) {
	db := newTestDB(t)
	likes := NewLikeRepository(db)

	user := createUser(t, db, "alice")
	assert.ErrorIs(t, likes.UnlikeMovie(context.Background(), user.ID, 550), ErrNotFound)
}

func TestLikesAreScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	likes := NewLikeRepository(db)
	movies := NewMovieRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	movie, err := movies.GetOrCreate(ctx, 550, models.Movie{})
	require.NoError(t, err)

	require.NoError(t, likes.LikeMovie(ctx, alice.ID, movie))

	bobLiked, err := likes.LikedMovies(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobLiked)

	// Bob liking the same movie is not a duplicate of Alice's like.
	require.NoError(t, likes.LikeMovie(ctx, bob.ID, movie))
}

func TestLikeActorAndDirector(t *testing.T) {
	db := newTestDB(t)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	actor := &models.Actor{ID: 819, Name: "Edward Norton"}
	director := &models.Director{ID: 7467, Name: "David Fincher"}
	require.NoError(t, db.Create(actor).Error)
	require.NoError(t, db.Create(director).Error)

	require.NoError(t, likes.LikeActor(ctx, user.ID, actor))
	assert.ErrorIs(t, likes.LikeActor(ctx, user.ID, actor), ErrDuplicate)

	require.NoError(t, likes.LikeDirector(ctx, user.ID, director))
	assert.ErrorIs(t, likes.LikeDirector(ctx, user.ID, director), ErrDuplicate)

	actors, err := likes.LikedActors(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, actors, 1)
	assert.Equal(t, "Edward Norton", actors[0].Name)

	require.NoError(t, likes.UnlikeActor(ctx, user.ID, 819))
	assert.ErrorIs(t, likes.UnlikeActor(ctx, user.ID, 819), ErrNotFound)

	require.NoError(t, likes.UnlikeDirector(ctx, user.ID, 7467))
	assert.ErrorIs(t, likes.UnlikeDirector(ctx, user.ID, 7467), ErrNotFound)
}

func TestLikeGenreIsSilentlyIdempotent(t *testing.T) {
	db := newTestDB(t)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	genre := &models.Genre{ID: 28, Name: "Action"}
	require.NoError(t, db.Create(genre).Error)

	require.NoError(t, likes.LikeGenre(ctx, user.ID, genre))
	// Already-liked genres are skipped, not rejected.
	require.NoError(t, likes.LikeGenre(ctx, user.ID, genre))

	genres, err := likes.LikedGenres(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, genres, 1)

	require.NoError(t, likes.UnlikeGenre(ctx, user.ID, 28))
	assert.ErrorIs(t, likes.UnlikeGenre(ctx, user.ID, 28), ErrNotFound)
}
