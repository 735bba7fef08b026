package services

import (
	"context"
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(t *testing.T) (ReviewService, *models.User, *models.User, repository.MovieRepository) {
	t.Helper()

	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)
	svc := NewReviewService(repository.NewReviewRepository(db), movieRepo, quietLogger())

	author := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	other := &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(author).Error)
	require.NoError(t, db.Create(other).Error)

	return svc, author, other, movieRepo
}

func TestReviewCreateCachesMovieOnTheFly(t *testing.T) {
	svc, author, _, movieRepo := newReviewService(t)
	ctx := context.Background()

	review, err := svc.Create(ctx, author.ID, 550, "great", "/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(550), review.MovieID)
	assert.Equal(t, author.ID, review.UserID)

	cached, err := movieRepo.FindByID(ctx, 550)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "/p.jpg", cached.PosterPath)
}

func TestReviewCreateRequiresContent(t *testing.T) {
	svc, author, _, _ := newReviewService(t)

	_, err := svc.Create(context.Background(), author.ID, 550, "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReviewUpdateOnlyByAuthor(t *testing.T) {
	svc, author, other, _ := newReviewService(t)
	ctx := context.Background()

	review, err := svc.Create(ctx, author.ID, 550, "draft", "")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, author.ID, 550, review.ID, "final")
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Content)

	_, err = svc.Update(ctx, other.ID, 550, review.ID, "hijacked")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReviewDeleteOnlyByAuthor(t *testing.T) {
	svc, author, other, _ := newReviewService(t)
	ctx := context.Background()

	review, err := svc.Create(ctx, author.ID, 550, "draft", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, other.ID, 550, review.ID), repository.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, author.ID, 550, review.ID))

	listed, err := svc.ListByMovie(ctx, 550)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestReviewLikeAnyonesReview(t *testing.T) {
	svc, author, other, _ := newReviewService(t)
	ctx := context.Background()

	review, err := svc.Create(ctx, author.ID, 550, "great", "")
	require.NoError(t, err)

	// Liking is not restricted to the author, and repeats are no-ops.
	require.NoError(t, svc.Like(ctx, other.ID, 550, review.ID))
	require.NoError(t, svc.Like(ctx, other.ID, 550, review.ID))

	assert.ErrorIs(t, svc.Like(ctx, other.ID, 550, review.ID+1), repository.ErrNotFound)
}
