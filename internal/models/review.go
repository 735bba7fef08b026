package models

import "time"

// Review ownership is fixed at creation: only the author may update or
// delete, and lookups are always scoped by (id, movie, author).
type Review struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	MovieID int64  `gorm:"index;not null" json:"movie_id"`
	Movie   *Movie `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	User    *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Add-only like set, repeated likes are a no-op.
	LikedBy []User `gorm:"many2many:review_likes;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
