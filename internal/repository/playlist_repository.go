package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Playlist, error)
	Create(ctx context.Context, playlist *models.Playlist) error

	// FindOwned loads a playlist by (id, owner); a playlist owned by
	// someone else is indistinguishable from a missing one.
	FindOwned(ctx context.Context, id, userID uint) (*models.Playlist, error)

	Update(ctx context.Context, playlist *models.Playlist, fields map[string]interface{}) error
	Delete(ctx context.Context, playlist *models.Playlist) error

	Movies(ctx context.Context, playlist *models.Playlist) ([]models.Movie, error)
	AddMovies(ctx context.Context, playlist *models.Playlist, movies []models.Movie) error
	RemoveMovies(ctx context.Context, playlist *models.Playlist, movies []models.Movie) error
}

type playlistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewPlaylistRepository(db *database.Database) PlaylistRepository {
	return &playlistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *playlistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *playlistRepository) ListByUser(ctx context.Context, userID uint) ([]models.Playlist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var playlists []models.Playlist
	err := r.db.WithContext(ctx).
		Preload("Movies").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&playlists).Error
	return playlists, err
}

func (r *playlistRepository) Create(ctx context.Context, playlist *models.Playlist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *playlistRepository) FindOwned(ctx context.Context, id, userID uint) (*models.Playlist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var playlist models.Playlist
	err := r.db.WithContext(ctx).
		Preload("Movies").
		Where("id = ? AND user_id = ?", id, userID).
		First(&playlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *models.Playlist, fields map[string]interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(playlist).Updates(fields).Error
}

func (r *playlistRepository) Delete(ctx context.Context, playlist *models.Playlist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	if err := db.Model(playlist).Association("Movies").Clear(); err != nil {
		return err
	}
	return db.Delete(playlist).Error
}

func (r *playlistRepository) Movies(ctx context.Context, playlist *models.Playlist) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Model(playlist).Association("Movies").Find(&movies)
	return movies, err
}

func (r *playlistRepository) AddMovies(ctx context.Context, playlist *models.Playlist, movies []models.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(playlist).Association("Movies").Append(&movies)
}

func (r *playlistRepository) RemoveMovies(ctx context.Context, playlist *models.Playlist, movies []models.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(playlist).Association("Movies").Delete(&movies)
}
