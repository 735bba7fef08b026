package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/tmdb"

	"github.com/sirupsen/logrus"
)

// maxCastMembers bounds how many cast entries of a credits payload are
// persisted as actors. Provider ordering is used only for truncation.
const maxCastMembers = 10

const directorJob = "Director"

// GenreMovies maps a genre name to its discovery results.
type GenreMovies map[string][]tmdb.MovieSummary

type CatalogService interface {
	// SaveMovieFromProvider runs one raw provider payload through the
	// normalize-and-upsert pipeline and returns the persisted movie with
	// its relation sets populated.
	SaveMovieFromProvider(ctx context.Context, payload *tmdb.MovieDetail) (*models.Movie, error)

	// GetMovieDetail serves from the local cache when possible; on a miss
	// it fetches detail and credits from the provider, persists them, and
	// returns the merged object so transient provider-only fields survive.
	GetMovieDetail(ctx context.Context, movieID int64) (interface{}, error)

	TopRated(ctx context.Context) ([]models.Movie, error)
	Popular(ctx context.Context) ([]tmdb.MovieSummary, error)
	NowPlaying(ctx context.Context) ([]tmdb.MovieSummary, error)

	// GenreDiscovery returns discovery shelves. Anonymous callers get
	// five random genres; authenticated callers get one random genre they
	// have not liked yet.
	GenreDiscovery(ctx context.Context, userID *uint) (GenreMovies, error)

	ActorDetail(ctx context.Context, actorID int64) (map[string]interface{}, error)
	DirectorDetail(ctx context.Context, directorID int64) (map[string]interface{}, error)
}

type catalogService struct {
	movieRepo repository.MovieRepository
	likeRepo  repository.LikeRepository
	provider  *tmdb.Client
	logger    *logrus.Logger
}

func NewCatalogService(movieRepo repository.MovieRepository, likeRepo repository.LikeRepository, provider *tmdb.Client, logger *logrus.Logger) CatalogService {
	return &catalogService{
		movieRepo: movieRepo,
		likeRepo:  likeRepo,
		provider:  provider,
		logger:    logger,
	}
}

func (s *catalogService) SaveMovieFromProvider(ctx context.Context, payload *tmdb.MovieDetail) (*models.Movie, error) {
	if payload == nil || payload.ID == 0 {
		return nil, fmt.Errorf("%w: payload id is required", ErrValidation)
	}

	genres := make([]models.Genre, 0, len(payload.Genres))
	for _, g := range payload.Genres {
		genres = append(genres, models.Genre{ID: g.ID, Name: g.Name})
	}

	var actors []models.Actor
	var directors []models.Director
	if payload.Credits != nil {
		cast := payload.Credits.Cast
		if len(cast) > maxCastMembers {
			cast = cast[:maxCastMembers]
		}
		for _, member := range cast {
			actors = append(actors, models.Actor{
				ID:          member.ID,
				Name:        member.Name,
				ProfilePath: member.ProfilePath,
			})
		}

		for _, member := range payload.Credits.Crew {
			if member.Job != directorJob {
				continue
			}
			directors = append(directors, models.Director{
				ID:          member.ID,
				Name:        member.Name,
				ProfilePath: member.ProfilePath,
			})
		}
	}

	movie := &models.Movie{
		ID:           payload.ID,
		Title:        payload.Title,
		Overview:     payload.Overview,
		ReleaseDate:  payload.ReleaseDate,
		Popularity:   payload.Popularity,
		VoteAverage:  payload.VoteAverage,
		VoteCount:    payload.VoteCount,
		PosterPath:   payload.PosterPath,
		BackdropPath: payload.BackdropPath,
	}

	saved, err := s.movieRepo.Upsert(ctx, movie, genres, actors, directors)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert movie %d: %w", payload.ID, err)
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id":  saved.ID,
		"genres":    len(saved.Genres),
		"actors":    len(saved.Actors),
		"directors": len(saved.Directors),
	}).Debug("Movie payload normalized and persisted")

	return saved, nil
}

func (s *catalogService) GetMovieDetail(ctx context.Context, movieID int64) (interface{}, error) {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie != nil {
		// Local hit is terminal: stored data only, no freshness check.
		return movie, nil
	}

	detail, raw, err := s.provider.MovieDetail(ctx, movieID)
	if err != nil {
		return nil, err
	}

	credits, rawCredits, err := s.provider.MovieCredits(ctx, movieID)
	if err == nil {
		detail.Credits = credits
		raw["credits"] = rawCredits
	} else {
		s.logger.WithError(err).WithField("movie_id", movieID).Warn("Failed to fetch credits, persisting detail without cast")
	}

	saved, err := s.SaveMovieFromProvider(ctx, detail)
	if err != nil {
		return nil, err
	}

	// Persisted fields overlay the raw payload, everything else (runtime,
	// tagline, ...) passes through untouched.
	merged, err := overlayMovie(raw, saved)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func overlayMovie(raw map[string]interface{}, movie *models.Movie) (map[string]interface{}, error) {
	encoded, err := json.Marshal(movie)
	if err != nil {
		return nil, err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, err
	}

	for k, v := range fields {
		raw[k] = v
	}
	return raw, nil
}

func (s *catalogService) TopRated(ctx context.Context) ([]models.Movie, error) {
	results, err := s.provider.TopRated(ctx)
	if err != nil {
		return nil, err
	}
	if len(results) > 10 {
		results = results[:10]
	}

	saved := make([]models.Movie, 0, len(results))
	for _, summary := range results {
		movie, err := s.SaveMovieFromProvider(ctx, summaryToPayload(summary))
		if err != nil {
			return nil, err
		}
		saved = append(saved, *movie)
	}
	return saved, nil
}

// summaryToPayload converts a list entry to an upsert payload. List entries
// carry genre ids without names, so the relation sets stay empty and reflect
// exactly what this payload said.
func summaryToPayload(summary tmdb.MovieSummary) *tmdb.MovieDetail {
	return &tmdb.MovieDetail{
		ID:           summary.ID,
		Title:        summary.Title,
		Overview:     summary.Overview,
		ReleaseDate:  summary.ReleaseDate,
		Popularity:   summary.Popularity,
		VoteAverage:  summary.VoteAverage,
		VoteCount:    summary.VoteCount,
		PosterPath:   summary.PosterPath,
		BackdropPath: summary.BackdropPath,
	}
}

func (s *catalogService) Popular(ctx context.Context) ([]tmdb.MovieSummary, error) {
	results, err := s.provider.Popular(ctx)
	if err != nil {
		return nil, err
	}
	if len(results) > 10 {
		results = results[:10]
	}
	return results, nil
}

func (s *catalogService) NowPlaying(ctx context.Context) ([]tmdb.MovieSummary, error) {
	results, err := s.provider.NowPlaying(ctx)
	if err != nil {
		return nil, err
	}
	return filterReleased(results, time.Now().UTC(), 10), nil
}

// filterReleased drops entries released after today and orders the rest
// newest-first. ISO dates compare correctly as strings.
func filterReleased(results []tmdb.MovieSummary, now time.Time, limit int) []tmdb.MovieSummary {
	today := now.Format("2006-01-02")

	released := make([]tmdb.MovieSummary, 0, len(results))
	for _, summary := range results {
		if summary.ReleaseDate == "" || summary.ReleaseDate > today {
			continue
		}
		released = append(released, summary)
	}

	for i := 1; i < len(released); i++ {
		for j := i; j > 0 && released[j-1].ReleaseDate < released[j].ReleaseDate; j-- {
			released[j-1], released[j] = released[j], released[j-1]
		}
	}

	if len(released) > limit {
		released = released[:limit]
	}
	return released
}

func (s *catalogService) GenreDiscovery(ctx context.Context, userID *uint) (GenreMovies, error) {
	if userID != nil {
		return s.userGenreDiscovery(ctx, *userID)
	}
	return s.randomGenreDiscovery(ctx)
}

func (s *catalogService) randomGenreDiscovery(ctx context.Context) (GenreMovies, error) {
	genres, err := s.provider.GenreList(ctx)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(genres), func(i, j int) {
		genres[i], genres[j] = genres[j], genres[i]
	})
	if len(genres) > 5 {
		genres = genres[:5]
	}

	shelves := make(GenreMovies, len(genres))
	for _, genre := range genres {
		movies, err := s.provider.DiscoverByGenre(ctx, genre.ID)
		if err != nil {
			s.logger.WithError(err).WithField("genre_id", genre.ID).Warn("Genre discovery fetch failed, skipping genre")
			continue
		}
		if len(movies) > 10 {
			movies = movies[:10]
		}
		shelves[genre.Name] = movies
	}
	return shelves, nil
}

func (s *catalogService) userGenreDiscovery(ctx context.Context, userID uint) (GenreMovies, error) {
	liked, err := s.likeRepo.LikedGenres(ctx, userID)
	if err != nil {
		return nil, err
	}
	likedIDs := make(map[int]bool, len(liked))
	for _, g := range liked {
		likedIDs[g.ID] = true
	}

	genres, err := s.provider.GenreList(ctx)
	if err != nil {
		return nil, err
	}

	var notLiked []tmdb.Genre
	for _, g := range genres {
		if !likedIDs[g.ID] {
			notLiked = append(notLiked, g)
		}
	}
	if len(notLiked) == 0 {
		return GenreMovies{}, nil
	}

	genre := notLiked[rand.IntN(len(notLiked))]
	movies, err := s.provider.DiscoverByGenre(ctx, genre.ID)
	if err != nil {
		return nil, err
	}
	if len(movies) > 10 {
		movies = movies[:10]
	}

	return GenreMovies{genre.Name: movies}, nil
}

func (s *catalogService) ActorDetail(ctx context.Context, actorID int64) (map[string]interface{}, error) {
	person, err := s.provider.PersonDetail(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if credits, err := s.provider.PersonMovieCredits(ctx, actorID); err == nil {
		person["filmography"] = credits["cast"]
	} else {
		s.logger.WithError(err).WithField("actor_id", actorID).Warn("Failed to fetch filmography")
	}
	return person, nil
}

func (s *catalogService) DirectorDetail(ctx context.Context, directorID int64) (map[string]interface{}, error) {
	person, err := s.provider.PersonDetail(ctx, directorID)
	if err != nil {
		return nil, err
	}

	if credits, err := s.provider.PersonMovieCredits(ctx, directorID); err == nil {
		person["filmography"] = credits["crew"]
	} else {
		s.logger.WithError(err).WithField("director_id", directorID).Warn("Failed to fetch filmography")
	}
	return person, nil
}
