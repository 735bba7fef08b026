package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMovieFromProviderRejectsMissingID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewMovieRepository(db), repository.NewLikeRepository(db), nil, quietLogger())

	_, err := svc.SaveMovieFromProvider(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SaveMovieFromProvider(context.Background(), &tmdb.MovieDetail{Title: "No id"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveMovieFromProviderNormalizesCredits(t *testing.T) {
	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)
	svc := NewCatalogService(movieRepo, repository.NewLikeRepository(db), nil, quietLogger())
	ctx := context.Background()

	payload := &tmdb.MovieDetail{
		ID:     42,
		Title:  "Example",
		Genres: []tmdb.Genre{{ID: 878, Name: "Science Fiction"}},
		Credits: &tmdb.Credits{
			Crew: []tmdb.CrewMember{
				{ID: 7467, Name: "David Fincher", Job: "Director"},
				{ID: 500, Name: "Someone Else", Job: "Producer"},
				{ID: 501, Name: "Another Director", Job: "Director"},
			},
		},
	}
	// 12 cast entries, only the first 10 are persisted.
	for i := 0; i < 12; i++ {
		payload.Credits.Cast = append(payload.Credits.Cast, tmdb.CastMember{
			ID:   int64(100 + i),
			Name: fmt.Sprintf("Actor %d", i),
		})
	}

	saved, err := svc.SaveMovieFromProvider(ctx, payload)
	require.NoError(t, err)
	assert.Len(t, saved.Actors, 10)
	assert.Len(t, saved.Directors, 2)

	found, err := movieRepo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, found.Actors, 10)

	ids := make([]int64, 0, len(found.Directors))
	for _, d := range found.Directors {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []int64{7467, 501}, ids)
}

func TestGetMovieDetailServesFromCache(t *testing.T) {
	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)

	providerCalls := 0
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		providerCalls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	svc := NewCatalogService(movieRepo, repository.NewLikeRepository(db), provider, quietLogger())
	ctx := context.Background()

	_, err := movieRepo.Upsert(ctx, &models.Movie{ID: 550, Title: "Fight Club"},
		[]models.Genre{{ID: 18, Name: "Drama"}}, nil, nil)
	require.NoError(t, err)

	result, err := svc.GetMovieDetail(ctx, 550)
	require.NoError(t, err)

	movie, ok := result.(*models.Movie)
	require.True(t, ok)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Zero(t, providerCalls)
}

func TestGetMovieDetailCacheMissPersistsAndMerges(t *testing.T) {
	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)

	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/7":
			w.Write([]byte(`{"id":7,"title":"New Movie","runtime":120,"tagline":"Fresh","genres":[{"id":18,"name":"Drama"}]}`))
		case "/movie/7/credits":
			w.Write([]byte(`{"cast":[{"id":819,"name":"Edward Norton"}],"crew":[{"id":7467,"name":"David Fincher","job":"Director"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	svc := NewCatalogService(movieRepo, repository.NewLikeRepository(db), provider, quietLogger())
	ctx := context.Background()

	result, err := svc.GetMovieDetail(ctx, 7)
	require.NoError(t, err)

	merged, ok := result.(map[string]interface{})
	require.True(t, ok)
	// Persisted fields and provider-only fields coexist in the response.
	assert.Equal(t, "New Movie", merged["title"])
	assert.Equal(t, float64(120), merged["runtime"])
	assert.Equal(t, "Fresh", merged["tagline"])

	cached, err := movieRepo.FindByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Len(t, cached.Actors, 1)
	assert.Len(t, cached.Directors, 1)
	assert.Len(t, cached.Genres, 1)
}

func TestGetMovieDetailSurvivesCreditsFailure(t *testing.T) {
	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)

	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/7":
			w.Write([]byte(`{"id":7,"title":"New Movie","genres":[{"id":18,"name":"Drama"}]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	svc := NewCatalogService(movieRepo, repository.NewLikeRepository(db), provider, quietLogger())
	ctx := context.Background()

	_, err := svc.GetMovieDetail(ctx, 7)
	require.NoError(t, err)

	cached, err := movieRepo.FindByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Empty(t, cached.Actors)
	assert.Empty(t, cached.Directors)
	assert.Len(t, cached.Genres, 1)
}

func TestGetMovieDetailUpstreamFailure(t *testing.T) {
	db := newTestDB(t)
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	svc := NewCatalogService(repository.NewMovieRepository(db), repository.NewLikeRepository(db), provider, quietLogger())

	_, err := svc.GetMovieDetail(context.Background(), 7)
	assert.ErrorIs(t, err, tmdb.ErrUpstream)
}

func TestTopRatedPersistsFirstTen(t *testing.T) {
	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)

	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := `{"results":[`
		for i := 0; i < 12; i++ {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{"id":%d,"title":"Movie %d","genre_ids":[18]}`, i+1, i+1)
		}
		body += `]}`
		w.Write([]byte(body))
	}))
	svc := NewCatalogService(movieRepo, repository.NewLikeRepository(db), provider, quietLogger())
	ctx := context.Background()

	movies, err := svc.TopRated(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 10)

	// List entries carry genre ids without names, so no relation is stored.
	cached, err := movieRepo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Empty(t, cached.Genres)
}

func TestFilterReleased(t *testing.T) {
	now := mustDate(t, "2026-08-29")

	results := []tmdb.MovieSummary{
		{ID: 1, ReleaseDate: "2026-08-01"},
		{ID: 2, ReleaseDate: "2026-12-25"}, // future
		{ID: 3, ReleaseDate: "2026-08-29"}, // today counts as released
		{ID: 4, ReleaseDate: ""},           // unknown date is dropped
		{ID: 5, ReleaseDate: "2025-01-01"},
	}

	released := filterReleased(results, now, 10)
	require.Len(t, released, 3)
	assert.Equal(t, int64(3), released[0].ID)
	assert.Equal(t, int64(1), released[1].ID)
	assert.Equal(t, int64(5), released[2].ID)
}

func TestFilterReleasedLimit(t *testing.T) {
	now := mustDate(t, "2026-08-29")

	var results []tmdb.MovieSummary
	for i := 0; i < 15; i++ {
		results = append(results, tmdb.MovieSummary{
			ID:          int64(i + 1),
			ReleaseDate: fmt.Sprintf("2026-07-%02d", i+1),
		})
	}

	released := filterReleased(results, now, 10)
	assert.Len(t, released, 10)
	// Newest first.
	assert.Equal(t, "2026-07-15", released[0].ReleaseDate)
}

func TestGenreDiscoveryAnonymous(t *testing.T) {
	db := newTestDB(t)
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/genre/movie/list":
			w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":35,"name":"Comedy"},{"id":18,"name":"Drama"}]}`))
		case "/discover/movie":
			w.Write([]byte(`{"results":[{"id":1,"title":"Match"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	svc := NewCatalogService(repository.NewMovieRepository(db), repository.NewLikeRepository(db), provider, quietLogger())

	shelves, err := svc.GenreDiscovery(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, shelves, 3)
	assert.Len(t, shelves["Action"], 1)
}

func TestGenreDiscoveryPicksGenreTheUserHasNotLiked(t *testing.T) {
	db := newTestDB(t)
	likeRepo := repository.NewLikeRepository(db)
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/genre/movie/list":
			w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":35,"name":"Comedy"}]}`))
		case "/discover/movie":
			assert.Equal(t, "35", r.URL.Query().Get("with_genres"))
			w.Write([]byte(`{"results":[{"id":1,"title":"Match"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	svc := NewCatalogService(repository.NewMovieRepository(db), likeRepo, provider, quietLogger())
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	action := &models.Genre{ID: 28, Name: "Action"}
	require.NoError(t, db.Create(action).Error)
	require.NoError(t, likeRepo.LikeGenre(ctx, user.ID, action))

	shelves, err := svc.GenreDiscovery(ctx, &user.ID)
	require.NoError(t, err)
	require.Len(t, shelves, 1)
	assert.Contains(t, shelves, "Comedy")
}

func TestGenreDiscoveryAllGenresLiked(t *testing.T) {
	db := newTestDB(t)
	likeRepo := repository.NewLikeRepository(db)
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/genre/movie/list":
			w.Write([]byte(`{"genres":[{"id":28,"name":"Action"}]}`))
		default:
			t.Errorf("unexpected request %s", r.URL.Path)
		}
	}))
	svc := NewCatalogService(repository.NewMovieRepository(db), likeRepo, provider, quietLogger())
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	action := &models.Genre{ID: 28, Name: "Action"}
	require.NoError(t, db.Create(action).Error)
	require.NoError(t, likeRepo.LikeGenre(ctx, user.ID, action))

	shelves, err := svc.GenreDiscovery(ctx, &user.ID)
	require.NoError(t, err)
	assert.Empty(t, shelves)
	assert.NotNil(t, shelves)
}

func TestActorDetailAttachesFilmography(t *testing.T) {
	db := newTestDB(t)
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/person/819":
			w.Write([]byte(`{"id":819,"name":"Edward Norton"}`))
		case "/person/819/movie_credits":
			w.Write([]byte(`{"cast":[{"id":550,"title":"Fight Club"}],"crew":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	svc := NewCatalogService(repository.NewMovieRepository(db), repository.NewLikeRepository(db), provider, quietLogger())

	person, err := svc.ActorDetail(context.Background(), 819)
	require.NoError(t, err)
	assert.Equal(t, "Edward Norton", person["name"])
	assert.NotNil(t, person["filmography"])
}

func TestActorDetailSurvivesFilmographyFailure(t *testing.T) {
	db := newTestDB(t)
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/person/819":
			w.Write([]byte(`{"id":819,"name":"Edward Norton"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	svc := NewCatalogService(repository.NewMovieRepository(db), repository.NewLikeRepository(db), provider, quietLogger())

	person, err := svc.ActorDetail(context.Background(), 819)
	require.NoError(t, err)
	assert.Equal(t, "Edward Norton", person["name"])
	_, ok := person["filmography"]
	assert.False(t, ok)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
