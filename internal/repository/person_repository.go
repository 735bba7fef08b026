package repository

import (
	"context"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm/clause"
)

// PersonRepository covers both people tables. Rows are created lazily on
// first reference and never deleted; name and profile path are creation
// defaults only.
type PersonRepository interface {
	GetOrCreateActor(ctx context.Context, id int64, name, profilePath string) (*models.Actor, error)
	GetOrCreateDirector(ctx context.Context, id int64, name, profilePath string) (*models.Director, error)
}

type personRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewPersonRepository(db *database.Database) PersonRepository {
	return &personRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *personRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *personRepository) GetOrCreateActor(ctx context.Context, id int64, name, profilePath string) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	actor := models.Actor{ID: id, Name: name, ProfilePath: profilePath}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&actor).Error; err != nil {
		return nil, err
	}

	if err := db.First(&actor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &actor, nil
}

func (r *personRepository) GetOrCreateDirector(ctx context.Context, id int64, name, profilePath string) (*models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	director := models.Director{ID: id, Name: name, ProfilePath: profilePath}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&director).Error; err != nil {
		return nil, err
	}

	if err := db.First(&director, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &director, nil
}
