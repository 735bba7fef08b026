package models

import "time"

type Playlist struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null;size:50" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	CoverURL    string  `json:"cover_url"`
	UserID      uint    `gorm:"index;not null" json:"user_id"`
	User        *User   `gorm:"foreignKey:UserID" json:"-"`
	Movies      []Movie `gorm:"many2many:playlist_movies;" json:"movies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Playlist) TableName() string {
	return "playlists"
}
