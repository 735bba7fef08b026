package services

import (
	"context"
	"net/http"
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLikeService(t *testing.T, handler http.Handler) (LikeService, *models.User, repository.MovieRepository) {
	t.Helper()

	db := newTestDB(t)
	var provider *tmdb.Client
	if handler != nil {
		provider = newTestProvider(t, handler)
	}

	movieRepo := repository.NewMovieRepository(db)
	svc := NewLikeService(
		repository.NewLikeRepository(db),
		movieRepo,
		repository.NewGenreRepository(db),
		repository.NewPersonRepository(db),
		provider,
		quietLogger(),
	)

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	return svc, user, movieRepo
}

func TestLikeMovieCreatesPlaceholderRow(t *testing.T) {
	svc, user, movieRepo := newLikeService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.LikeMovie(ctx, user.ID, MovieLike{MovieID: 550, PosterPath: "/p.jpg"}))

	cached, err := movieRepo.FindByID(ctx, 550)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "/p.jpg", cached.PosterPath)

	liked, err := svc.LikedMovies(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, liked, 1)
}

func TestLikeMovieValidation(t *testing.T) {
	svc, user, _ := newLikeService(t, nil)

	err := svc.LikeMovie(context.Background(), user.ID, MovieLike{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLikeMovieDuplicate(t *testing.T) {
	svc, user, _ := newLikeService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.LikeMovie(ctx, user.ID, MovieLike{MovieID: 550}))
	err := svc.LikeMovie(ctx, user.ID, MovieLike{MovieID: 550})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestLikeActorDefaultsUnknownName(t *testing.T) {
	svc, user, _ := newLikeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	ctx := context.Background()

	require.NoError(t, svc.LikeActor(ctx, user.ID, PersonLike{ID: 819}))

	suggestions, err := svc.LikedActorSuggestions(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Actor", suggestions.Name)
}

func TestLikeGenresBatchSkipsAlreadyLiked(t *testing.T) {
	svc, user, _ := newLikeService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.LikeGenres(ctx, user.ID, []GenreLike{{GenreID: 28, Name: "Action"}}))

	// A batch whose first entry is already liked still processes the rest.
	err := svc.LikeGenres(ctx, user.ID, []GenreLike{
		{GenreID: 28, Name: "Action"},
		{GenreID: 35, Name: "Comedy"},
	})
	require.NoError(t, err)
}

func TestLikeGenresValidation(t *testing.T) {
	svc, user, _ := newLikeService(t, nil)

	err := svc.LikeGenres(context.Background(), user.ID, []GenreLike{{Name: "No id"}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLikedActorSuggestionsEmptySet(t *testing.T) {
	svc, user, _ := newLikeService(t, nil)

	suggestions, err := svc.LikedActorSuggestions(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, suggestions.Name)
	assert.Equal(t, []tmdb.MovieSummary{}, suggestions.Results)
}

func TestLikedDirectorSuggestionsUseCrewFilter(t *testing.T) {
	svc, user, _ := newLikeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		assert.Equal(t, "7467", r.URL.Query().Get("with_crew"))
		w.Write([]byte(`{"results":[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5},{"id":6},{"id":7}]}`))
	}))
	ctx := context.Background()

	require.NoError(t, svc.LikeDirector(ctx, user.ID, PersonLike{ID: 7467, Name: "David Fincher"}))

	suggestions, err := svc.LikedDirectorSuggestions(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "David Fincher", suggestions.Name)

	movies, ok := suggestions.Results.([]tmdb.MovieSummary)
	require.True(t, ok)
	assert.Len(t, movies, 5)
}

func TestLikedGenreSuggestions(t *testing.T) {
	svc, user, _ := newLikeService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "28", r.URL.Query().Get("with_genres"))
		w.Write([]byte(`{"results":[{"id":1,"title":"Match"}]}`))
	}))
	ctx := context.Background()

	require.NoError(t, svc.LikeGenres(ctx, user.ID, []GenreLike{{GenreID: 28, Name: "Action"}}))

	shelves, err := svc.LikedGenreSuggestions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, shelves, 1)
	assert.Len(t, shelves["Action"], 1)
}

func TestUnlikeValidationAndNotFound(t *testing.T) {
	svc, user, _ := newLikeService(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.UnlikeGenre(ctx, user.ID, 0), ErrValidation)
	assert.ErrorIs(t, svc.UnlikeMovie(ctx, user.ID, 550), repository.ErrNotFound)
	assert.ErrorIs(t, svc.UnlikeActor(ctx, user.ID, 819), repository.ErrNotFound)
	assert.ErrorIs(t, svc.UnlikeDirector(ctx, user.ID, 7467), repository.ErrNotFound)
}
