package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// movieScalarColumns are overwritten unconditionally on every upsert:
// movie scalars are last-write-wins, unlike genre and person names.
var movieScalarColumns = []string{
	"title", "overview", "release_date", "popularity",
	"vote_average", "vote_count", "poster_path", "backdrop_path", "updated_at",
}

type MovieRepository interface {
	// FindByID returns the movie with relation sets preloaded, or
	// (nil, nil) when it is not cached locally.
	FindByID(ctx context.Context, id int64) (*models.Movie, error)

	// Upsert persists one normalized payload atomically: genres and
	// people are insert-ignore-on-conflict, movie scalars are
	// ON CONFLICT DO UPDATE, and the three relation sets are reconciled
	// to exactly the given sets.
	Upsert(ctx context.Context, movie *models.Movie, genres []models.Genre, actors []models.Actor, directors []models.Director) (*models.Movie, error)

	// GetOrCreate inserts a minimal row when the id is unknown. Defaults
	// are ignored for existing rows.
	GetOrCreate(ctx context.Context, id int64, defaults models.Movie) (*models.Movie, error)

	// FilterExisting returns the subset of ids that are cached locally,
	// as movie rows. Unknown ids are silently dropped.
	FilterExisting(ctx context.Context, ids []int64) ([]models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Preload("Genres").Preload("Actors").Preload("Directors").
		First(&movie, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Upsert(ctx context.Context, movie *models.Movie, genres []models.Genre, actors []models.Actor, directors []models.Director) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Insert-ignore keeps existing rows untouched, so the re-read
		// below surfaces the stored (first-seen) names, not the
		// payload's.
		var err error
		if genres, err = upsertAndReload(tx, genres, func(g models.Genre) interface{} { return g.ID }); err != nil {
			return err
		}
		if actors, err = upsertAndReload(tx, actors, func(a models.Actor) interface{} { return a.ID }); err != nil {
			return err
		}
		if directors, err = upsertAndReload(tx, directors, func(d models.Director) interface{} { return d.ID }); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(movieScalarColumns),
		}).Create(movie).Error; err != nil {
			return err
		}

		if err := reconcileAssociation(tx, movie, "Genres", genres, func(g models.Genre) int { return g.ID }); err != nil {
			return err
		}
		if err := reconcileAssociation(tx, movie, "Actors", actors, func(a models.Actor) int64 { return a.ID }); err != nil {
			return err
		}
		return reconcileAssociation(tx, movie, "Directors", directors, func(d models.Director) int64 { return d.ID })
	})
	if err != nil {
		return nil, err
	}

	movie.Genres = genres
	movie.Actors = actors
	movie.Directors = directors
	return movie, nil
}

func (r *movieRepository) GetOrCreate(ctx context.Context, id int64, defaults models.Movie) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	defaults.ID = id
	db := r.db.WithContext(ctx)

	// Atomic insert-ignore then read, safe under concurrent first-writers.
	if err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error; err != nil {
		return nil, err
	}

	var movie models.Movie
	if err := db.First(&movie, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FilterExisting(ctx context.Context, ids []int64) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if len(ids) == 0 {
		return nil, nil
	}

	var movies []models.Movie
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&movies).Error
	return movies, err
}

// upsertAndReload creates the rows that do not exist yet, leaves existing
// rows untouched, and reads the whole set back so first-seen names win.
func upsertAndReload[T any](tx *gorm.DB, rows []T, key func(T) interface{}) ([]T, error) {
	if len(rows) == 0 {
		return rows, nil
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, key(row))
	}

	var stored []T
	if err := tx.Where("id IN ?", ids).Find(&stored).Error; err != nil {
		return nil, err
	}
	return stored, nil
}

// reconcileAssociation diffs the desired relation set against the current
// junction rows and applies only the additions and removals, instead of
// rewriting the whole set on every pass.
func reconcileAssociation[T any, K comparable](tx *gorm.DB, movie *models.Movie, name string, desired []T, key func(T) K) error {
	var current []T
	if err := tx.Model(movie).Association(name).Find(&current); err != nil {
		return err
	}

	wanted := make(map[K]bool, len(desired))
	for _, d := range desired {
		wanted[key(d)] = true
	}

	linked := make(map[K]bool, len(current))
	var remove []T
	for _, c := range current {
		k := key(c)
		linked[k] = true
		if !wanted[k] {
			remove = append(remove, c)
		}
	}

	var add []T
	for _, d := range desired {
		if !linked[key(d)] {
			add = append(add, d)
		}
	}

	if len(add) > 0 {
		if err := tx.Model(movie).Association(name).Append(&add); err != nil {
			return err
		}
	}
	if len(remove) > 0 {
		if err := tx.Model(movie).Association(name).Delete(&remove); err != nil {
			return err
		}
	}
	return nil
}
