package repository

import (
	"context"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

// LikeRepository manages the per-user liked sets. Every set is idempotent:
// adding a present member fails with ErrDuplicate, removing an absent one
// fails with ErrNotFound, and nothing is written in either case.
type LikeRepository interface {
	LikedMovies(ctx context.Context, userID uint) ([]models.Movie, error)
	LikeMovie(ctx context.Context, userID uint, movie *models.Movie) error
	UnlikeMovie(ctx context.Context, userID uint, movieID int64) error

	LikedActors(ctx context.Context, userID uint) ([]models.Actor, error)
	LikeActor(ctx context.Context, userID uint, actor *models.Actor) error
	UnlikeActor(ctx context.Context, userID uint, actorID int64) error

	LikedDirectors(ctx context.Context, userID uint) ([]models.Director, error)
	LikeDirector(ctx context.Context, userID uint, director *models.Director) error
	UnlikeDirector(ctx context.Context, userID uint, directorID int64) error

	LikedGenres(ctx context.Context, userID uint) ([]models.Genre, error)
	// LikeGenre skips silently when the genre is already liked; the batch
	// endpoint must not fail halfway through a list.
	LikeGenre(ctx context.Context, userID uint, genre *models.Genre) error
	UnlikeGenre(ctx context.Context, userID uint, genreID int) error
}

type likeRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewLikeRepository(db *database.Database) LikeRepository {
	return &likeRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *likeRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *likeRepository) isMember(db *gorm.DB, table, column string, userID uint, id interface{}) (bool, error) {
	var n int64
	err := db.Table(table).
		Where("user_id = ? AND "+column+" = ?", userID, id).
		Count(&n).Error
	return n > 0, err
}

func (r *likeRepository) LikedMovies(ctx context.Context, userID uint) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user := models.User{ID: userID}
	var movies []models.Movie
	err := r.db.WithContext(ctx).Model(&user).Association("LikedMovies").Find(&movies)
	return movies, err
}

func (r *likeRepository) LikeMovie(ctx context.Context, userID uint, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	liked, err := r.isMember(db, "user_liked_movies", "movie_id", userID, movie.ID)
	if err != nil {
		return err
	}
	if liked {
		return ErrDuplicate
	}

	user := models.User{ID: userID}
	return db.Model(&user).Association("LikedMovies").Append(movie)
}

func (r *likeRepository) UnlikeMovie(ctx context.Context, userID uint, movieID int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	liked, err := r.isMember(db, "user_liked_movies", "movie_id", userID, movieID)
	if err != nil {
		return err
	}
	if !liked {
		return ErrNotFound
	}

	user := models.User{ID: userID}
	return db.Model(&user).Association("LikedMovies").Delete(&models.Movie{ID: movieID})
}

func (r *likeRepository) LikedActors(ctx context.Context, userID uint) ([]models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user := models.User{ID: userID}
	var actors []models.Actor
	err := r.db.WithContext(ctx).Model(&user).Association("LikedActors").Find(&actors)
	return actors, err
}

func (r *likeRepository) LikeActor(ctx context.Context, userID uint, actor *models.Actor) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	liked, err := r.isMember(db, "user_liked_actors", "actor_id", userID, actor.ID)
	if err != nil {
		return err
	}
	if liked {
		return ErrDuplicate
	}

	user := models.User{ID: userID}
	return db.Model(&user).Association("LikedActors").Append(actor)
}

func (r *likeRepository) UnlikeActor(ctx context.Context, userID uint, actorID int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	liked, err := r.isMember(db, "user_liked_actors", "actor_id", userID, actorID)
	if err != nil {
		return err
	}
	if !liked {
		return ErrNotFound
	}

	user := models.User{ID: userID}
	return db.Model(&user).Association("LikedActors").Delete(&models.Actor{ID: actorID})
}

func (r *likeRepository) LikedDirectors(ctx context.Context, userID uint) ([]models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user := models.User{ID: userID}
	var directors []models.Director
	err := r.db.WithContext(ctx).Model(&user).Association("LikedDirectors").Find(&directors)
	return directors, err
}

func (r *likeRepository) LikeDirector(ctx context.Context, userID uint, director *models.Director) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	liked, err := r.isMember(db, "user_liked_directors", "director_id", userID, director.ID)
	if err != nil {
		return err
	}
	if liked {
		return ErrDuplicate
	}

	user := models.User{ID: userID}
	return db.Model(&user).Association("LikedDirectors").Append(director)
}

func (r *likeRepository) UnlikeDirector(ctx context.Context, userID uint, directorID int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	liked, err := r.isMember(db, "user_liked_directors", "director_id", userID, directorID)
	if err != nil {
		return err
	}
	if !liked {
		return ErrNotFound
	}

	user := models.User{ID: userID}
	return db.Model(&user).Association("LikedDirectors").Delete(&models.Director{ID: directorID})
}

func (r *likeRepository) LikedGenres(ctx context.Context, userID uint) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user := models.User{ID: userID}
	var genres []models.Genre
	err := r.db.WithContext(ctx).Model(&user).Association("LikedGenres").Find(&genres)
	return genres, err
}

func (r *likeRepository) LikeGenre(ctx context.Context, userID uint, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	liked, err := r.isMember(db, "user_liked_genres", "genre_id", userID, genre.ID)
	if err != nil {
		return err
	}
	if liked {
		return nil
	}

	user := models.User{ID: userID}
	return db.Model(&user).Association("LikedGenres").Append(genre)
}

func (r *likeRepository) UnlikeGenre(ctx context.Context, userID uint, genreID int) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	liked, err := r.isMember(db, "user_liked_genres", "genre_id", userID, genreID)
	if err != nil {
		return err
	}
	if !liked {
		return ErrNotFound
	}

	user := models.User{ID: userID}
	return db.Model(&user).Association("LikedGenres").Delete(&models.Genre{ID: genreID})
}
