package services

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// PlaylistUpdate carries a partial update; nil fields stay untouched.
type PlaylistUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
}

type PlaylistService interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Playlist, error)

	// Create filters the initial movie-id list against existing rows;
	// unknown ids are silently dropped.
	Create(ctx context.Context, userID uint, title, description, coverURL string, movieIDs []int64) (*models.Playlist, error)

	Update(ctx context.Context, userID, playlistID uint, update PlaylistUpdate) (*models.Playlist, error)
	Delete(ctx context.Context, userID, playlistID uint) error

	Movies(ctx context.Context, userID, playlistID uint) ([]models.Movie, error)
	AddMovies(ctx context.Context, userID, playlistID uint, movieIDs []int64) error
	RemoveMovies(ctx context.Context, userID, playlistID uint, movieIDs []int64) error
}

type playlistService struct {
	playlistRepo repository.PlaylistRepository
	movieRepo    repository.MovieRepository
	covers       *MinIOService
	logger       *logrus.Logger
}

// NewPlaylistService wires the playlist CRUD. covers may be nil when object
// storage is not configured.
func NewPlaylistService(playlistRepo repository.PlaylistRepository, movieRepo repository.MovieRepository, covers *MinIOService, logger *logrus.Logger) PlaylistService {
	return &playlistService{
		playlistRepo: playlistRepo,
		movieRepo:    movieRepo,
		covers:       covers,
		logger:       logger,
	}
}

func (s *playlistService) ListByUser(ctx context.Context, userID uint) ([]models.Playlist, error) {
	return s.playlistRepo.ListByUser(ctx, userID)
}

func (s *playlistService) Create(ctx context.Context, userID uint, title, description, coverURL string, movieIDs []int64) (*models.Playlist, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	movies, err := s.movieRepo.FilterExisting(ctx, movieIDs)
	if err != nil {
		return nil, err
	}

	playlist := &models.Playlist{
		Title:       title,
		Description: description,
		CoverURL:    coverURL,
		UserID:      userID,
		Movies:      movies,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) Update(ctx context.Context, userID, playlistID uint, update PlaylistUpdate) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.FindOwned(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Title != nil {
		if *update.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.CoverURL != nil {
		s.deleteStoredCover(playlist.CoverURL)
		fields["cover_url"] = *update.CoverURL
	}

	if len(fields) == 0 {
		return playlist, nil
	}

	if err := s.playlistRepo.Update(ctx, playlist, fields); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) Delete(ctx context.Context, userID, playlistID uint) error {
	playlist, err := s.playlistRepo.FindOwned(ctx, playlistID, userID)
	if err != nil {
		return err
	}

	s.deleteStoredCover(playlist.CoverURL)
	return s.playlistRepo.Delete(ctx, playlist)
}

// deleteStoredCover removes a cover object when the URL points into our
// bucket. External URLs are left alone, and failures only log: the playlist
// operation itself must not fail over an orphaned object.
func (s *playlistService) deleteStoredCover(coverURL string) {
	if s.covers == nil || coverURL == "" {
		return
	}
	if !strings.Contains(coverURL, s.covers.Bucket()) {
		return
	}
	if err := s.covers.DeleteFile(coverURL); err != nil {
		s.logger.WithError(err).WithField("cover_url", coverURL).Warn("Failed to delete playlist cover from object storage")
	}
}

func (s *playlistService) Movies(ctx context.Context, userID, playlistID uint) ([]models.Movie, error) {
	playlist, err := s.playlistRepo.FindOwned(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}
	return s.playlistRepo.Movies(ctx, playlist)
}

func (s *playlistService) AddMovies(ctx context.Context, userID, playlistID uint, movieIDs []int64) error {
	playlist, err := s.playlistRepo.FindOwned(ctx, playlistID, userID)
	if err != nil {
		return err
	}

	movies, err := s.movieRepo.FilterExisting(ctx, movieIDs)
	if err != nil {
		return err
	}
	return s.playlistRepo.AddMovies(ctx, playlist, movies)
}

func (s *playlistService) RemoveMovies(ctx context.Context, userID, playlistID uint, movieIDs []int64) error {
	playlist, err := s.playlistRepo.FindOwned(ctx, playlistID, userID)
	if err != nil {
		return err
	}

	movies, err := s.movieRepo.FilterExisting(ctx, movieIDs)
	if err != nil {
		return err
	}
	return s.playlistRepo.RemoveMovies(ctx, playlist, movies)
}
