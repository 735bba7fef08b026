package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error

	// FindScoped loads a review by (id, movie id, author). A mismatch on
	// any dimension is ErrNotFound, never a partial match.
	FindScoped(ctx context.Context, id uint, movieID int64, userID uint) (*models.Review, error)

	UpdateContent(ctx context.Context, review *models.Review, content string) error
	Delete(ctx context.Context, review *models.Review) error

	// AddLike is add-only and idempotent: repeated likes by the same user
	// succeed without writing anything.
	AddLike(ctx context.Context, id uint, movieID int64, userID uint) error
}

type reviewRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *reviewRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *reviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindScoped(ctx context.Context, id uint, movieID int64, userID uint) (*models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var review models.Review
	err := r.db.WithContext(ctx).
		Where("id = ? AND movie_id = ? AND user_id = ?", id, movieID, userID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) UpdateContent(ctx context.Context, review *models.Review, content string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(review).Update("content", content).Error
}

func (r *reviewRepository) Delete(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(review).Error
}

func (r *reviewRepository) AddLike(ctx context.Context, id uint, movieID int64, userID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var review models.Review
	err := db.Where("id = ? AND movie_id = ?", id, movieID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var n int64
	if err := db.Table("review_likes").
		Where("review_id = ? AND user_id = ?", id, userID).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return db.Model(&review).Association("LikedBy").Append(&models.User{ID: userID})
}
