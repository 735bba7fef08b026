package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email        string `gorm:"uniqueIndex;not null;size:100" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Liked sets are idempotent, unordered memberships.
	LikedMovies    []Movie    `gorm:"many2many:user_liked_movies;" json:"-"`
	LikedActors    []Actor    `gorm:"many2many:user_liked_actors;" json:"-"`
	LikedDirectors []Director `gorm:"many2many:user_liked_directors;" json:"-"`
	LikedGenres    []Genre    `gorm:"many2many:user_liked_genres;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
