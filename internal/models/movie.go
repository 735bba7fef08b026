package models

import (
	"time"
)

// Movie caches one provider record. The provider-assigned id is reused
// verbatim as the local primary key, so autoIncrement is disabled.
type Movie struct {
	ID           int64      `gorm:"primaryKey;autoIncrement:false" json:"id" example:"550"`
	Title        string     `gorm:"index" json:"title" example:"Fight Club"`
	Overview     string     `gorm:"type:text" json:"overview" example:"A ticking-time-bomb insomniac..."`
	ReleaseDate  string     `gorm:"index" json:"release_date" example:"1999-10-15"`
	Popularity   float64    `gorm:"index" json:"popularity" example:"61.416"`
	VoteAverage  float64    `gorm:"index" json:"vote_average" example:"8.4"`
	VoteCount    int        `json:"vote_count" example:"26280"`
	PosterPath   string     `json:"poster_path" example:"/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
	BackdropPath string     `json:"backdrop_path" example:"/52AfXWuXCHn3UjD17rBruA9f5qb.jpg"`
	Genres       []Genre    `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	Actors       []Actor    `gorm:"many2many:movie_actors;" json:"actors,omitempty"`
	Directors    []Director `gorm:"many2many:movie_directors;" json:"directors,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}
