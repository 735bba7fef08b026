package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/tmdb"

	"github.com/sirupsen/logrus"
)

// MovieLike carries the creation defaults a like request may supply for a
// movie that is not cached yet. Defaults are ignored for existing rows.
type MovieLike struct {
	MovieID    int64  `json:"movie_id"`
	PosterPath string `json:"poster_path"`
}

type PersonLike struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

type GenreLike struct {
	GenreID int    `json:"genre_id"`
	Name    string `json:"name"`
}

// Suggestions are discovery results seeded by one randomly chosen liked row.
type Suggestions struct {
	Name    string      `json:"name,omitempty"`
	Results interface{} `json:"results"`
}

type LikeService interface {
	LikedMovies(ctx context.Context, userID uint) ([]models.Movie, error)
	LikeMovie(ctx context.Context, userID uint, like MovieLike) error
	UnlikeMovie(ctx context.Context, userID uint, movieID int64) error

	LikeActor(ctx context.Context, userID uint, like PersonLike) error
	UnlikeActor(ctx context.Context, userID uint, actorID int64) error

	LikeDirector(ctx context.Context, userID uint, like PersonLike) error
	UnlikeDirector(ctx context.Context, userID uint, directorID int64) error

	// LikeGenres is the batch variant: already-liked entries are skipped,
	// not rejected.
	LikeGenres(ctx context.Context, userID uint, likes []GenreLike) error
	UnlikeGenre(ctx context.Context, userID uint, genreID int) error

	// Suggestion feeds pick one random liked actor/director/genre and
	// discover movies by it. An empty liked set yields empty results.
	LikedActorSuggestions(ctx context.Context, userID uint) (*Suggestions, error)
	LikedDirectorSuggestions(ctx context.Context, userID uint) (*Suggestions, error)
	LikedGenreSuggestions(ctx context.Context, userID uint) (GenreMovies, error)
}

type likeService struct {
	likeRepo   repository.LikeRepository
	movieRepo  repository.MovieRepository
	genreRepo  repository.GenreRepository
	personRepo repository.PersonRepository
	provider   *tmdb.Client
	logger     *logrus.Logger
}

func NewLikeService(likeRepo repository.LikeRepository, movieRepo repository.MovieRepository, genreRepo repository.GenreRepository, personRepo repository.PersonRepository, provider *tmdb.Client, logger *logrus.Logger) LikeService {
	return &likeService{
		likeRepo:   likeRepo,
		movieRepo:  movieRepo,
		genreRepo:  genreRepo,
		personRepo: personRepo,
		provider:   provider,
		logger:     logger,
	}
}

func (s *likeService) LikedMovies(ctx context.Context, userID uint) ([]models.Movie, error) {
	return s.likeRepo.LikedMovies(ctx, userID)
}

func (s *likeService) LikeMovie(ctx context.Context, userID uint, like MovieLike) error {
	if like.MovieID == 0 {
		return fmt.Errorf("%w: movie_id is required", ErrValidation)
	}

	movie, err := s.movieRepo.GetOrCreate(ctx, like.MovieID, models.Movie{PosterPath: like.PosterPath})
	if err != nil {
		return err
	}
	return s.likeRepo.LikeMovie(ctx, userID, movie)
}

func (s *likeService) UnlikeMovie(ctx context.Context, userID uint, movieID int64) error {
	return s.likeRepo.UnlikeMovie(ctx, userID, movieID)
}

func (s *likeService) LikeActor(ctx context.Context, userID uint, like PersonLike) error {
	if like.ID == 0 {
		return fmt.Errorf("%w: actor id is required", ErrValidation)
	}

	name := like.Name
	if name == "" {
		name = "Unknown Actor"
	}
	actor, err := s.personRepo.GetOrCreateActor(ctx, like.ID, name, like.ProfilePath)
	if err != nil {
		return err
	}
	return s.likeRepo.LikeActor(ctx, userID, actor)
}

func (s *likeService) UnlikeActor(ctx context.Context, userID uint, actorID int64) error {
	return s.likeRepo.UnlikeActor(ctx, userID, actorID)
}

func (s *likeService) LikeDirector(ctx context.Context, userID uint, like PersonLike) error {
	if like.ID == 0 {
		return fmt.Errorf("%w: director id is required", ErrValidation)
	}

	name := like.Name
	if name == "" {
		name = "Unknown Director"
	}
	director, err := s.personRepo.GetOrCreateDirector(ctx, like.ID, name, like.ProfilePath)
	if err != nil {
		return err
	}
	return s.likeRepo.LikeDirector(ctx, userID, director)
}

func (s *likeService) UnlikeDirector(ctx context.Context, userID uint, directorID int64) error {
	return s.likeRepo.UnlikeDirector(ctx, userID, directorID)
}

func (s *likeService) LikeGenres(ctx context.Context, userID uint, likes []GenreLike) error {
	for _, like := range likes {
		if like.GenreID == 0 {
			return fmt.Errorf("%w: genre_id is required", ErrValidation)
		}

		genre, err := s.genreRepo.GetOrCreate(ctx, like.GenreID, like.Name)
		if err != nil {
			return err
		}
		if err := s.likeRepo.LikeGenre(ctx, userID, genre); err != nil {
			return err
		}
	}
	return nil
}

func (s *likeService) UnlikeGenre(ctx context.Context, userID uint, genreID int) error {
	if genreID == 0 {
		return fmt.Errorf("%w: genre_id is required", ErrValidation)
	}
	return s.likeRepo.UnlikeGenre(ctx, userID, genreID)
}

func (s *likeService) LikedActorSuggestions(ctx context.Context, userID uint) (*Suggestions, error) {
	liked, err := s.likeRepo.LikedActors(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(liked) == 0 {
		return &Suggestions{Results: []tmdb.MovieSummary{}}, nil
	}

	actor := liked[rand.IntN(len(liked))]
	movies, err := s.provider.DiscoverByCast(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(movies) > 5 {
		movies = movies[:5]
	}
	return &Suggestions{Name: actor.Name, Results: movies}, nil
}

func (s *likeService) LikedDirectorSuggestions(ctx context.Context, userID uint) (*Suggestions, error) {
	liked, err := s.likeRepo.LikedDirectors(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(liked) == 0 {
		return &Suggestions{Results: []tmdb.MovieSummary{}}, nil
	}

	director := liked[rand.IntN(len(liked))]
	movies, err := s.provider.DiscoverByCrew(ctx, director.ID)
	if err != nil {
		return nil, err
	}
	if len(movies) > 5 {
		movies = movies[:5]
	}
	return &Suggestions{Name: director.Name, Results: movies}, nil
}

func (s *likeService) LikedGenreSuggestions(ctx context.Context, userID uint) (GenreMovies, error) {
	liked, err := s.likeRepo.LikedGenres(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(liked) == 0 {
		return GenreMovies{}, nil
	}

	genre := liked[rand.IntN(len(liked))]
	movies, err := s.provider.DiscoverByGenre(ctx, genre.ID)
	if err != nil {
		return nil, err
	}
	if len(movies) > 5 {
		movies = movies[:5]
	}
	return GenreMovies{genre.Name: movies}, nil
}
