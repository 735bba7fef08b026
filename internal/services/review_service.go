package services

import (
	"context"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReviewService interface {
	ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error)

	// Create lazily creates the movie row when only the id (and optional
	// poster path) is known, then writes the review owned by the caller.
	Create(ctx context.Context, userID uint, movieID int64, content, posterPath string) (*models.Review, error)

	Update(ctx context.Context, userID uint, movieID int64, reviewID uint, content string) (*models.Review, error)
	Delete(ctx context.Context, userID uint, movieID int64, reviewID uint) error

	// Like is add-only; there is no unlike path for reviews.
	Like(ctx context.Context, userID uint, movieID int64, reviewID uint) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
	logger     *logrus.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo repository.MovieRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		logger:     logger,
	}
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	return s.reviewRepo.ListByMovie(ctx, movieID)
}

func (s *reviewService) Create(ctx context.Context, userID uint, movieID int64, content, posterPath string) (*models.Review, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	movie, err := s.movieRepo.GetOrCreate(ctx, movieID, models.Movie{PosterPath: posterPath})
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		Content: content,
		MovieID: movie.ID,
		UserID:  userID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	review.Movie = movie
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, userID uint, movieID int64, reviewID uint, content string) (*models.Review, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	review, err := s.reviewRepo.FindScoped(ctx, reviewID, movieID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.UpdateContent(ctx, review, content); err != nil {
		return nil, err
	}
	review.Content = content
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, userID uint, movieID int64, reviewID uint) error {
	review, err := s.reviewRepo.FindScoped(ctx, reviewID, movieID, userID)
	if err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, review)
}

func (s *reviewService) Like(ctx context.Context, userID uint, movieID int64, reviewID uint) error {
	return s.reviewRepo.AddLike(ctx, reviewID, movieID, userID)
}
